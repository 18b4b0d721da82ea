package skinvend

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// CreateDepositRequest describes a new deposit. SteamID and TradeURL are
// required; zero-valued optional fields are left off the wire entirely.
type CreateDepositRequest struct {
	SteamID   string
	TradeURL  string
	MinAmount decimal.Decimal
	Currency  string
	CustomID  string
	GameID    int
}

func (r CreateDepositRequest) params(c *Client) map[string]any {
	params := map[string]any{
		"steam_id":  r.SteamID,
		"trade_url": r.TradeURL,
		"game_id":   c.gameID(r.GameID),
	}

	if !r.MinAmount.IsZero() {
		params["min_amount"] = r.MinAmount
	}

	if r.Currency != "" {
		params["currency"] = r.Currency
	}

	if r.CustomID != "" {
		params["custom_id"] = r.CustomID
	}

	if c.cfg.DepositRedirectURL != "" {
		params["redirect_url"] = c.cfg.DepositRedirectURL
	}

	if c.cfg.SuccessRedirectURL != "" {
		params["success_url"] = c.cfg.SuccessRedirectURL
	}

	if c.cfg.FailRedirectURL != "" {
		params["fail_url"] = c.cfg.FailRedirectURL
	}

	return params
}

// CreateDeposit registers a deposit for the given Steam account.
func (c *Client) CreateDeposit(ctx context.Context, req CreateDepositRequest) (*Deposit, error) {
	if req.SteamID == "" {
		return nil, newConfigurationError("steam_id", "is required")
	}

	if req.TradeURL == "" {
		return nil, newConfigurationError("trade_url", "is required")
	}

	var deposit Deposit
	if err := c.do(ctx, http.MethodPost, endpointDepositCreate, req.params(c), &deposit); err != nil {
		return nil, err
	}

	return &deposit, nil
}

func (c *Client) GetDepositStatus(ctx context.Context, depositID string) (*Deposit, error) {
	if depositID == "" {
		return nil, newConfigurationError("deposit_id", "is required")
	}

	var deposit Deposit

	params := map[string]any{"deposit_id": depositID}
	if err := c.do(ctx, http.MethodGet, endpointDepositStatus, params, &deposit); err != nil {
		return nil, err
	}

	return &deposit, nil
}

func (c *Client) GetDepositDetails(ctx context.Context, depositID string) (*DepositDetails, error) {
	if depositID == "" {
		return nil, newConfigurationError("deposit_id", "is required")
	}

	var details DepositDetails

	params := map[string]any{"deposit_id": depositID}
	if err := c.do(ctx, http.MethodGet, endpointDepositDetails, params, &details); err != nil {
		return nil, err
	}

	return &details, nil
}

// DepositHistoryRequest filters the deposit history listing. All fields are
// optional; zero values are omitted from the request.
type DepositHistoryRequest struct {
	Status   DepositStatus
	Page     int
	PerPage  int
	DateFrom time.Time
	DateTo   time.Time
}

func (r DepositHistoryRequest) params() map[string]any {
	params := map[string]any{}

	if r.Status != "" {
		params["status"] = string(r.Status)
	}

	if r.Page > 0 {
		params["page"] = r.Page
	}

	if r.PerPage > 0 {
		params["per_page"] = r.PerPage
	}

	if !r.DateFrom.IsZero() {
		params["date_from"] = r.DateFrom.Unix()
	}

	if !r.DateTo.IsZero() {
		params["date_to"] = r.DateTo.Unix()
	}

	return params
}

func (c *Client) GetDepositHistory(ctx context.Context, req DepositHistoryRequest) (*DepositHistory, error) {
	var history DepositHistory
	if err := c.do(ctx, http.MethodGet, endpointDepositHistory, req.params(), &history); err != nil {
		return nil, err
	}

	return &history, nil
}
