// Package skinvend is a client for the SkinVend virtual-goods marketplace
// API. Every outgoing request is individually authenticated: the flat
// parameter set is canonicalized and signed (see the signing package) and
// the resulting timestamp/signature pair travels in per-request headers.
//
// A single Client is safe for concurrent use. Authentication headers are
// attached to each outgoing request object, never to shared client state,
// so concurrent calls cannot overwrite one another's envelope.
package skinvend

import (
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/sapsanDev/skinvedapi/signing"
)

type Client struct {
	cfg    Config
	rc     *resty.Client
	signer *signing.Signer
	logger zerolog.Logger
}

// New validates cfg, applies options and binds the transport to
// {baseURL}/{apiVersion}/api. A missing API key or secret key fails here,
// before any network activity.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg, err := cfg.validate()
	if err != nil {
		return nil, err
	}

	client := &Client{
		cfg:    cfg,
		rc:     resty.New(),
		signer: signing.NewSigner(cfg.SecretKey),
		logger: zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	client.rc.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/") + "/" + cfg.APIVersion + "/api").
		SetTimeout(cfg.Timeout).
		SetHeader(HeaderAPIKey, cfg.APIKey).
		SetHeader(HeaderContentType, ContentTypeJSON)

	return client, nil
}

// BaseURL returns the effective transport target, including the API version
// segment.
func (c *Client) BaseURL() string {
	return c.rc.BaseURL
}

func (c *Client) gameID(override int) int {
	if override != 0 {
		return override
	}

	return c.cfg.GameID
}
