package economy

// Plugin name used for logging
const PluginName = "economy"

// ==================== Error Messages ====================

// Amount and format errors
const (
	ErrMsgInvalidAmountFmt    = "%d is not a valid amount."
	ErrMsgUseTakeCommand      = "Please use the Take command to remove items."
	ErrMsgUseGiveCommand      = "Please use the Give command to add items."
	ErrMsgBaseItemNotFound    = "Base item not found."
	ErrMsgBadCustomItem       = "Incorrectly formatted item."
	ErrMsgNotValidJSON        = "Not a valid JSON block: %v."
	ErrMsgInsufficientFundFmt = "Insufficient funds: %d needed, %d available."
)

// Permission errors
const (
	ErrMsgGiveKeyItem    = "Can not give away key items."
	ErrMsgSellKeyItem    = "Can not sell key items."
	ErrMsgGiveTooMany    = "Can not give more items than you possess."
	ErrMsgSellTooMany    = "Can not sell more items than you possess."
	ErrMsgTakeTooManyFmt = "Can not take more than %d from this stack."
	ErrMsgBalanceLimit   = "That would exceed the balance limit."
	ErrMsgStackLimit     = "That would exceed the stack limit."
	ErrMsgCostTooLarge   = "Insufficient funds: the total cost is too large."
)

// ==================== Log Messages ====================

const (
	LogMsgItemGiven          = "Item given"
	LogMsgItemSold           = "Item sold"
	LogMsgOverriddenItemSold = "Overridden item sold"
	LogMsgNoBuyer            = "No buyer for item"
	LogMsgItemPurchased      = "Item purchased"
	LogMsgMoneyPaid          = "Money paid"
	LogMsgAdminGive          = "Admin give"
	LogMsgAdminTake          = "Admin take"
	LogMsgCustomItemGiven    = "Custom item given"
)
