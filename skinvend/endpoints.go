package skinvend

// Relative endpoint paths, resolved against {baseURL}/{apiVersion}/api.
const (
	endpointDepositCreate  = "/deposit/create"
	endpointDepositStatus  = "/deposit/status"
	endpointDepositHistory = "/deposit/history"
	endpointDepositDetails = "/deposit/details"
	endpointOfferSend      = "/offer/send"
	endpointProjectBalance = "/project/balance"
	endpointProjectRate    = "/project/rate"
	endpointSteamInventory = "/steam/inventory"
	endpointMarketSearch   = "/market/search"
	endpointBotStatus      = "/bot/status"
	endpointMarketBuy      = "/market/buy"
	endpointBuyStatus      = "/market/buy/status"
	endpointBuyHistory     = "/market/buy/history"
)
