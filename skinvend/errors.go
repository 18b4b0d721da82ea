package skinvend

import (
	"errors"
	"fmt"
)

var (
	ErrConfiguration = errors.New("skinvend: invalid configuration")
	ErrServer        = errors.New("skinvend: server returned an error")
	ErrNoResponse    = errors.New("skinvend: no response received")
	ErrTransport     = errors.New("skinvend: request could not be sent")
)

// ConfigurationError reports a missing credential or required call argument.
// It is raised synchronously, before any network activity.
type ConfigurationError struct {
	Field   string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("skinvend: configuration: %s: %s", e.Field, e.Message)
	}

	return "skinvend: configuration: " + e.Message
}

func (e *ConfigurationError) Is(target error) bool {
	return errors.Is(target, ErrConfiguration)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrConfiguration
}

func newConfigurationError(field, message string) *ConfigurationError {
	return &ConfigurationError{
		Field:   field,
		Message: message,
	}
}

// ServerError is a non-2xx response from the marketplace. Body carries the
// response payload verbatim.
type ServerError struct {
	StatusCode int
	Body       string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("skinvend: server returned status %d: %s", e.StatusCode, e.Body)
}

func (e *ServerError) Is(target error) bool {
	return errors.Is(target, ErrServer)
}

func (e *ServerError) Unwrap() error {
	return ErrServer
}

// NoResponseError means the request went out but nothing came back within
// the configured timeout (or the connection dropped mid-exchange).
type NoResponseError struct {
	Err error
}

func (e *NoResponseError) Error() string {
	if e.Err != nil {
		return "skinvend: no response received: " + e.Err.Error()
	}

	return "skinvend: no response received"
}

func (e *NoResponseError) Is(target error) bool {
	return errors.Is(target, ErrNoResponse)
}

func (e *NoResponseError) Unwrap() error {
	return ErrNoResponse
}

// TransportError means the request could not be constructed or sent at all,
// or a successful response carried a payload this client cannot decode.
type TransportError struct {
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("skinvend: transport: %s: %v", e.Message, e.Err)
	}

	return "skinvend: transport: " + e.Message
}

func (e *TransportError) Is(target error) bool {
	return errors.Is(target, ErrTransport)
}

func (e *TransportError) Unwrap() error {
	return ErrTransport
}

func IsServerError(err error) (*ServerError, bool) {
	var srvErr *ServerError
	if errors.As(err, &srvErr) {
		return srvErr, true
	}

	return nil, false
}

func IsConfigurationError(err error) (*ConfigurationError, bool) {
	var cfgErr *ConfigurationError
	if errors.As(err, &cfgErr) {
		return cfgErr, true
	}

	return nil, false
}
