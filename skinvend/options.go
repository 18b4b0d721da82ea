package skinvend

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/sapsanDev/skinvedapi/signing"
)

const (
	HeaderAPIKey      = "x-api-key"
	HeaderTimestamp   = "x-timestamp"
	HeaderSignature   = "x-signature"
	HeaderXRequestID  = "X-Request-ID"
	HeaderContentType = "Content-Type"
	ContentTypeJSON   = "application/json"
)

type Option func(*Client)

// WithHTTPClient swaps the underlying net/http client while keeping the
// dispatcher's base URL, timeout and static headers.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.rc = resty.NewWithClient(httpClient)
		}
	}
}

// WithRestyClient supplies a preconfigured resty client. The dispatcher
// still binds its own base URL, timeout and static headers on top.
func WithRestyClient(restyClient *resty.Client) Option {
	return func(c *Client) {
		if restyClient != nil {
			c.rc = restyClient
		}
	}
}

func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithClock injects the signing clock. Intended for tests that need
// reproducible timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.signer = signing.NewSignerWithClock(c.cfg.SecretKey, now)
		}
	}
}
