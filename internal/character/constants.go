package character

// Plugin name used for lock keys and metrics labels
const PluginName = "character"

// Render layout
const (
	EmbedColor       = 16711680
	MaxListedEntries = 32
	ListNameWidth    = 24
	OverrideMark     = "*"
	KeyItemsTitle    = "Key Items"
	ItemsTitle       = "Items"
	MoneyFooterFmt   = "Money: %d"
	MoreEntriesFmt   = "And %d more..."
)

// User-facing validation messages
const (
	ErrMsgNotAnObject   = "Character must be a dict."
	ErrMsgBadFields     = "Fields must be lists of two string values each."
	ErrMsgBadOwner      = "Owner must be a user id."
	ErrMsgBadMoney      = "Money must be an integer."
	ErrMsgBadEntryFmt   = "Inventory entry %d is not a valid item."
	ErrMsgBadCountFmt   = "Inventory entry %d has no valid count."
	ErrMsgEmptyName     = "Character name required."
	ErrMsgNotValidJSON  = "Not a valid JSON document: %v."
	ErrMsgBadUploadJSON = "Character upload does not match the expected layout: %v."
)

// Log Messages
const (
	LogMsgCharacterCreatedFromBio = "Character created from bio"
	LogMsgCharacterUploaded       = "Character uploaded"
	LogMsgCharacterDeleted        = "Character deleted"
	LogMsgCharactersFlushed       = "Characters flushed"
	LogMsgFlushFailed             = "Failed to flush characters"
)
