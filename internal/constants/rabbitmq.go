package constants

const (
	ListingsExchange     = "listings_exchange"
	ListingsExchangeType = "direct"

	RoutingKeyPropertyCreated = "property.created"
	RoutingKeyPropertyUpdated = "property.updated"
	RoutingKeyPropertyDeleted = "property.deleted"
)
