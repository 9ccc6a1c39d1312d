package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Log message constants
const (
	// Log message for handler errors
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"

	LogMsgPublishFailed = "Event publish failed"
)

// Transfer kinds carried by TransferPayloadV1
const (
	TransferGive       = "give"
	TransferSell       = "sell"
	TransferBuy        = "buy"
	TransferPay        = "pay"
	TransferAdminGive  = "admin_give"
	TransferAdminTake  = "admin_take"
	TransferGiveCustom = "give_custom"
)

// Shop close reasons carried by ShopClosedPayloadV1
const (
	ShopClosedByOwner = "owner"
	ShopClosedIdle    = "idle"
	ShopClosedEvicted = "evicted"
)
