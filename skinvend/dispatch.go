package skinvend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/google/uuid"
)

// do performs one signed exchange. The envelope is computed over exactly
// the parameter set being sent and attached to this request object only;
// the shared resty client carries nothing but static configuration.
func (c *Client) do(ctx context.Context, method, path string, params map[string]any, out any) error {
	envelope := c.signer.Stamp(params)
	requestID := uuid.NewString()

	req := c.rc.R().
		SetContext(ctx).
		SetHeader(HeaderTimestamp, envelope.TimestampText()).
		SetHeader(HeaderSignature, envelope.Signature).
		SetHeader(HeaderXRequestID, requestID)

	if method == http.MethodGet {
		req.SetQueryParamsFromValues(queryValues(params))
	} else {
		req.SetBody(bodyParams(params))
	}

	start := time.Now()

	resp, err := req.Execute(method, path)
	if err != nil {
		normalized := normalizeTransportFailure(err)

		c.logger.Debug().
			Str("method", method).
			Str("path", path).
			Str("request_id", requestID).
			Dur("duration", time.Since(start)).
			Err(normalized).
			Msg("Request failed")

		return normalized
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Str("request_id", requestID).
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Msg("Request completed")

	if resp.IsError() {
		return &ServerError{
			StatusCode: resp.StatusCode(),
			Body:       string(resp.Body()),
		}
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return &TransportError{Message: "failed to decode response", Err: err}
	}

	return nil
}

// normalizeTransportFailure maps a transport-level failure into the error
// taxonomy: timeouts and dropped connections mean the request went out and
// nothing came back; everything else means it could not be sent.
func normalizeTransportFailure(err error) error {
	var netErr net.Error

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &NoResponseError{Err: err}
	case errors.As(err, &netErr) && netErr.Timeout():
		return &NoResponseError{Err: err}
	case errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.Is(err, io.EOF):
		return &NoResponseError{Err: err}
	default:
		return &TransportError{Message: "request failed", Err: err}
	}
}
