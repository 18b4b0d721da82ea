package skinvend

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// GetSteamInventory fetches the tradable inventory for a Steam account.
// gameID of 0 falls back to the configured default game.
func (c *Client) GetSteamInventory(ctx context.Context, steamID string, gameID int) (*Inventory, error) {
	if steamID == "" {
		return nil, newConfigurationError("steam_id", "is required")
	}

	params := map[string]any{
		"steam_id": steamID,
		"game_id":  c.gameID(gameID),
	}

	var inventory Inventory
	if err := c.do(ctx, http.MethodGet, endpointSteamInventory, params, &inventory); err != nil {
		return nil, err
	}

	return &inventory, nil
}

// SearchItemsRequest filters the marketplace listing. Names, when set,
// limits results to exact market hash names and travels in bracket
// notation; it is excluded from the signature like every array parameter.
type SearchItemsRequest struct {
	Query    string
	Names    []string
	GameID   int
	MinPrice decimal.Decimal
	MaxPrice decimal.Decimal
	Page     int
	PerPage  int
}

func (r SearchItemsRequest) params(c *Client) map[string]any {
	params := map[string]any{
		"game_id": c.gameID(r.GameID),
	}

	if r.Query != "" {
		params["query"] = r.Query
	}

	if len(r.Names) > 0 {
		params["names"] = r.Names
	}

	if !r.MinPrice.IsZero() {
		params["min_price"] = r.MinPrice
	}

	if !r.MaxPrice.IsZero() {
		params["max_price"] = r.MaxPrice
	}

	if r.Page > 0 {
		params["page"] = r.Page
	}

	if r.PerPage > 0 {
		params["per_page"] = r.PerPage
	}

	return params
}

func (c *Client) SearchItems(ctx context.Context, req SearchItemsRequest) (*SearchResult, error) {
	var result SearchResult
	if err := c.do(ctx, http.MethodGet, endpointMarketSearch, req.params(c), &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// CheckBotStatus reports whether the marketplace trade bots are available.
func (c *Client) CheckBotStatus(ctx context.Context) (*BotStatus, error) {
	var status BotStatus
	if err := c.do(ctx, http.MethodGet, endpointBotStatus, map[string]any{}, &status); err != nil {
		return nil, err
	}

	return &status, nil
}

// BuyItemRequest describes a purchase. ItemID, TradeURL and a positive
// Price are required; Price is the maximum the caller agrees to pay.
type BuyItemRequest struct {
	ItemID   string
	TradeURL string
	Price    decimal.Decimal
	CustomID string
	GameID   int
}

func (r BuyItemRequest) params(c *Client) map[string]any {
	params := map[string]any{
		"item_id":   r.ItemID,
		"trade_url": r.TradeURL,
		"price":     r.Price,
		"game_id":   c.gameID(r.GameID),
	}

	if r.CustomID != "" {
		params["custom_id"] = r.CustomID
	}

	return params
}

func (c *Client) BuyItem(ctx context.Context, req BuyItemRequest) (*Purchase, error) {
	if req.ItemID == "" {
		return nil, newConfigurationError("item_id", "is required")
	}

	if req.TradeURL == "" {
		return nil, newConfigurationError("trade_url", "is required")
	}

	if !req.Price.IsPositive() {
		return nil, newConfigurationError("price", "must be positive")
	}

	var purchase Purchase
	if err := c.do(ctx, http.MethodPost, endpointMarketBuy, req.params(c), &purchase); err != nil {
		return nil, err
	}

	return &purchase, nil
}

// PurchaseStatusRequest identifies a purchase by the marketplace's buy id,
// by the caller's custom id, or both. At least one is required; when both
// are set, both are sent.
type PurchaseStatusRequest struct {
	BuyID    string
	CustomID string
}

func (c *Client) GetPurchaseStatus(ctx context.Context, req PurchaseStatusRequest) (*Purchase, error) {
	if req.BuyID == "" && req.CustomID == "" {
		return nil, newConfigurationError("buy_id", "either buy_id or custom_id is required")
	}

	params := map[string]any{}

	if req.BuyID != "" {
		params["buy_id"] = req.BuyID
	}

	if req.CustomID != "" {
		params["custom_id"] = req.CustomID
	}

	var purchase Purchase
	if err := c.do(ctx, http.MethodGet, endpointBuyStatus, params, &purchase); err != nil {
		return nil, err
	}

	return &purchase, nil
}

type PurchaseHistoryRequest struct {
	Status   PurchaseStatus
	Page     int
	PerPage  int
	DateFrom time.Time
	DateTo   time.Time
}

func (r PurchaseHistoryRequest) params() map[string]any {
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

func (c *Client) GetPurchaseHistory(ctx context.Context, req PurchaseHistoryRequest) (*PurchaseHistory, error) {
	var history PurchaseHistory
	if err := c.do(ctx, http.MethodGet, endpointBuyHistory, req.params(), &history); err != nil {
		return nil, err
	}

	return &history, nil
}
