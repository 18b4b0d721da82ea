package skinvend_test

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sapsanDev/skinvedapi/skinvend"
	"github.com/sapsanDev/skinvedapi/testutil"
)

func TestGetSteamInventory(t *testing.T) {
	t.Parallel()

	srv := testutil.NewMarketplaceServer(t, testSecret)
	srv.RespondWith(http.StatusOK, `{
		"steam_id": "76561198000000001",
		"game_id": 730,
		"items": [
			{"asset_id": "a1", "market_hash_name": "AK-47 | Redline", "price": "8.35", "tradable": true}
		]
	}`)
	client := newTestClient(t, srv)

	inventory, err := client.GetSteamInventory(testutil.Context(t), "76561198000000001", 0)

	require.NoError(t, err)
	require.Len(t, inventory.Items, 1)
	assert.Equal(t, "AK-47 | Redline", inventory.Items[0].MarketHashName)
	assert.True(t, inventory.Items[0].Tradable)

	received := srv.LastRequest(t)
	assert.Equal(t, "/v1/api/steam/inventory", received.Path)
	assert.Equal(t, "730", received.Query.Get("game_id"), "zero game id falls back to the configured default")
	assert.True(t, received.SignatureOK)
}

func TestGetSteamInventory_RequiresSteamID(t *testing.T) {
	t.Parallel()

	srv := testutil.NewMarketplaceServer(t, testSecret)
	client := newTestClient(t, srv)

	_, err := client.GetSteamInventory(testutil.Context(t), "", 0)

	require.ErrorIs(t, err, skinvend.ErrConfiguration)
	require.Zero(t, srv.RequestCount())
}

func TestSearchItems_MapsPriceFilters(t *testing.T) {
	t.Parallel()

	srv := testutil.NewMarketplaceServer(t, testSecret)
	client := newTestClient(t, srv)

	_, err := client.SearchItems(testutil.Context(t), skinvend.SearchItemsRequest{
		MinPrice: decimal.RequireFromString("0.50"),
		MaxPrice: decimal.RequireFromString("25"),
	})
	require.NoError(t, err)

	received := srv.LastRequest(t)

	assert.Equal(t, "0.5", received.Query.Get("min_price"))
	assert.Equal(t, "25", received.Query.Get("max_price"))
	assert.True(t, received.SignatureOK)
}

func TestCheckBotStatus(t *testing.T) {
	t.Parallel()

	srv := testutil.NewMarketplaceServer(t, testSecret)
	srv.RespondWith(http.StatusOK, `{"online": true, "active_bots": 4}`)
	client := newTestClient(t, srv)

	status, err := client.CheckBotStatus(testutil.Context(t))

	require.NoError(t, err)
	assert.True(t, status.Online)
	assert.Equal(t, 4, status.ActiveBots)

	received := srv.LastRequest(t)
	assert.Equal(t, "/v1/api/bot/status", received.Path)
	assert.True(t, received.SignatureOK, "empty parameter sets still get signed")
}

func TestBuyItem_Validation(t *testing.T) {
	t.Parallel()

	srv := testutil.NewMarketplaceServer(t, testSecret)
	client := newTestClient(t, srv)
	ctx := testutil.Context(t)

	tests := []struct {
		name string
		req  skinvend.BuyItemRequest
	}{
		{"missing item id", skinvend.BuyItemRequest{TradeURL: "https://example.com", Price: decimal.NewFromInt(1)}},
		{"missing trade url", skinvend.BuyItemRequest{ItemID: "i1", Price: decimal.NewFromInt(1)}},
		{"zero price", skinvend.BuyItemRequest{ItemID: "i1", TradeURL: "https://example.com"}},
		{"negative price", skinvend.BuyItemRequest{ItemID: "i1", TradeURL: "https://example.com", Price: decimal.NewFromInt(-5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.BuyItem(ctx, tt.req)

			require.ErrorIs(t, err, skinvend.ErrConfiguration)
		})
	}

	require.Zero(t, srv.RequestCount())
}

func TestBuyItem_SendsSignedPurchase(t *testing.T) {
	t.Parallel()

	srv := testutil.NewMarketplaceServer(t, testSecret)
	srv.RespondWith(http.StatusOK, `{"id":"buy_7","item_id":"i1","status":"pending","price":"8.35"}`)
	client := newTestClient(t, srv)

	purchase, err := client.BuyItem(testutil.Context(t), skinvend.BuyItemRequest{
		ItemID:   "i1",
		TradeURL: testutil.RandomTradeURL(),
		Price:    decimal.RequireFromString("8.35"),
		CustomID: "order-1234",
	})

	require.NoError(t, err)
	assert.Equal(t, "buy_7", purchase.ID)
	assert.Equal(t, skinvend.PurchaseStatusPending, purchase.Status)

	received := srv.LastRequest(t)
	require.Equal(t, http.MethodPost, received.Method)
	assert.Equal(t, "/v1/api/market/buy", received.Path)
	assert.Equal(t, "order-1234", received.Params["custom_id"])
	assert.True(t, received.SignatureOK)
}

func TestGetPurchaseStatus_RequiresAnIdentifier(t *testing.T) {
	t.Parallel()

	srv := testutil.NewMarketplaceServer(t, testSecret)
	client := newTestClient(t, srv)

	_, err := client.GetPurchaseStatus(testutil.Context(t), skinvend.PurchaseStatusRequest{})

	require.ErrorIs(t, err, skinvend.ErrConfiguration)
	require.Zero(t, srv.RequestCount())
}

func TestGetPurchaseStatus_ByCustomID(t *testing.T) {
	t.Parallel()

	srv := testutil.NewMarketplaceServer(t, testSecret)
	client := newTestClient(t, srv)

	_, err := client.GetPurchaseStatus(testutil.Context(t), skinvend.PurchaseStatusRequest{CustomID: "order-1234"})
	require.NoError(t, err)

	received := srv.LastRequest(t)
	assert.Equal(t, "order-1234", received.Query.Get("custom_id"))
	assert.Empty(t, received.Query.Get("buy_id"))
	assert.True(t, received.SignatureOK)
}

func TestGetPurchaseStatus_SendsBothIdentifiersWhenBothSet(t *testing.T) {
	t.Parallel()

	srv := testutil.NewMarketplaceServer(t, testSecret)
	client := newTestClient(t, srv)

	_, err := client.GetPurchaseStatus(testutil.Context(t), skinvend.PurchaseStatusRequest{
		BuyID:    "buy_7",
		CustomID: "order-1234",
	})
	require.NoError(t, err)

	received := srv.LastRequest(t)
	assert.Equal(t, "buy_7", received.Query.Get("buy_id"))
	assert.Equal(t, "order-1234", received.Query.Get("custom_id"))
	assert.True(t, received.SignatureOK)
}

func TestGetPurchaseHistory_MapsFilters(t *testing.T) {
	t.Parallel()

	srv := testutil.NewMarketplaceServer(t, testSecret)
	client := newTestClient(t, srv)

	_, err := client.GetPurchaseHistory(testutil.Context(t), skinvend.PurchaseHistoryRequest{
		Status:  skinvend.PurchaseStatusAccepted,
		PerPage: 25,
	})
	require.NoError(t, err)

	received := srv.LastRequest(t)
	assert.Equal(t, "/v1/api/market/buy/history", received.Path)
	assert.Equal(t, "accepted", received.Query.Get("status"))
	assert.Equal(t, "25", received.Query.Get("per_page"))
	assert.True(t, received.SignatureOK)
}
