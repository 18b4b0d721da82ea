package skinvend

import (
	"github.com/shopspring/decimal"
)

type DepositStatus string

const (
	DepositStatusPending   DepositStatus = "pending"
	DepositStatusActive    DepositStatus = "active"
	DepositStatusCompleted DepositStatus = "completed"
	DepositStatusCanceled  DepositStatus = "canceled"
)

type PurchaseStatus string

const (
	PurchaseStatusPending  PurchaseStatus = "pending"
	PurchaseStatusSent     PurchaseStatus = "sent"
	PurchaseStatusAccepted PurchaseStatus = "accepted"
	PurchaseStatusFailed   PurchaseStatus = "failed"
)

type Deposit struct {
	ID        string          `json:"id"`
	Status    DepositStatus   `json:"status"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	CustomID  string          `json:"custom_id,omitempty"`
	CreatedAt int64           `json:"created_at"`
}

type DepositItem struct {
	AssetID        string          `json:"asset_id"`
	MarketHashName string          `json:"market_hash_name"`
	Price          decimal.Decimal `json:"price"`
}

type DepositDetails struct {
	Deposit

	TradeOfferID string        `json:"trade_offer_id,omitempty"`
	Items        []DepositItem `json:"items"`
}

type DepositHistory struct {
	Items   []Deposit `json:"items"`
	Page    int       `json:"page"`
	PerPage int       `json:"per_page"`
	Total   int       `json:"total"`
}

type Offer struct {
	ID           string `json:"id"`
	DepositID    string `json:"deposit_id"`
	TradeOfferID string `json:"trade_offer_id"`
	Status       string `json:"status"`
}

type ProjectBalance struct {
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
	Rate     decimal.Decimal `json:"rate"`
}

type ProjectRate struct {
	Rate decimal.Decimal `json:"rate"`
}

type InventoryItem struct {
	AssetID        string          `json:"asset_id"`
	MarketHashName string          `json:"market_hash_name"`
	Price          decimal.Decimal `json:"price"`
	Tradable       bool            `json:"tradable"`
}

type Inventory struct {
	SteamID string          `json:"steam_id"`
	GameID  int             `json:"game_id"`
	Items   []InventoryItem `json:"items"`
}

type MarketItem struct {
	ID             string          `json:"id"`
	MarketHashName string          `json:"market_hash_name"`
	Price          decimal.Decimal `json:"price"`
	GameID         int             `json:"game_id"`
	Count          int             `json:"count"`
}

type SearchResult struct {
	Items []MarketItem `json:"items"`
	Total int          `json:"total"`
}

type BotStatus struct {
	Online     bool `json:"online"`
	ActiveBots int  `json:"active_bots"`
}

type Purchase struct {
	ID           string          `json:"id"`
	ItemID       string          `json:"item_id"`
	Status       PurchaseStatus  `json:"status"`
	Price        decimal.Decimal `json:"price"`
	TradeOfferID string          `json:"trade_offer_id,omitempty"`
	CustomID     string          `json:"custom_id,omitempty"`
	CreatedAt    int64           `json:"created_at"`
}

type PurchaseHistory struct {
	Items   []Purchase `json:"items"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
	Total   int        `json:"total"`
}
