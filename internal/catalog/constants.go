package catalog

// Plugin name used for lock keys and metrics labels
const PluginName = "catalog"

// User-facing validation messages
const (
	ErrMsgNotAnObject     = "Item or Override must be a dict."
	ErrMsgBadBuyPriceFmt  = "Buying price not a valid integer: %s."
	ErrMsgBadSellPriceFmt = "Selling price not a valid integer: %s."
	ErrMsgBadFields       = "Fields must be lists of two values each."
	ErrMsgBadImage        = "Image must be a string."
	ErrMsgEmptyID         = "Item id must not be empty or contain whitespace."
)

// Log Messages
const (
	LogMsgItemUpserted = "Item upserted"
	LogMsgItemDeleted  = "Item deleted"
	LogMsgItemsSaved   = "Item catalog saved"
)

// Embed presentation
const (
	EmbedColor     = 16711680
	CustomItemMark = " ★"
)
