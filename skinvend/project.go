package skinvend

import (
	"context"
	"net/http"

	"github.com/shopspring/decimal"
)

// GetProjectBalance returns the project's current balance and exchange
// rate.
func (c *Client) GetProjectBalance(ctx context.Context) (*ProjectBalance, error) {
	var balance ProjectBalance
	if err := c.do(ctx, http.MethodGet, endpointProjectBalance, map[string]any{}, &balance); err != nil {
		return nil, err
	}

	return &balance, nil
}

// UpdateProjectRate sets the project's payout rate. rate must be positive.
func (c *Client) UpdateProjectRate(ctx context.Context, rate decimal.Decimal) (*ProjectRate, error) {
	if !rate.IsPositive() {
		return nil, newConfigurationError("rate", "must be positive")
	}

	params := map[string]any{"rate": rate}

	var updated ProjectRate
	if err := c.do(ctx, http.MethodPatch, endpointProjectRate, params, &updated); err != nil {
		return nil, err
	}

	return &updated, nil
}
