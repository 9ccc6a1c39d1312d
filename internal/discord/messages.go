package discord

// Reply formats
const (
	MsgItemGivenFmt      = "**AFFIRMATIVE. %s given to %s.**"
	MsgNoBuyer           = "**WARNING: Failed to find buyer for your item.**"
	MsgItemSoldFmt       = "**AFFIRMATIVE. %d %s%s sold for %d currency.**"
	MsgUploadCompleted   = "**AFFIRMATIVE. File upload completed.**"
	MsgPaidFmt           = "**AFFIRMATIVE. %d currency transferred to %s.**"
	MsgPurchasedFmt      = "**AFFIRMATIVE. %d %s purchased.**"
	MsgMoneyGivenFmt     = "**AFFIRMATIVE. %d currency given to %s.**"
	MsgMoneyTakenFmt     = "**AFFIRMATIVE. %d currency taken from %s.**"
	MsgAdminItemGivenFmt = "**AFFIRMATIVE. %d %s given to %s.**"
	MsgAdminItemTakenFmt = "**AFFIRMATIVE. %d %s taken from %s.**"
	MsgSuggestions       = "**ANALYSIS: Perhaps you meant one of these?**"
	MsgItemCreatedFmt    = "**AFFIRMATIVE. %s with id %s created.**"
	MsgItemUpdatedFmt    = "**AFFIRMATIVE. %s with id %s updated.**"
	MsgItemDeletedFmt    = "**AFFIRMATIVE. Item %s deleted.**"
	MsgCharCreatedFmt    = "**AFFIRMATIVE. Character %s with id %s created.**"
	MsgCharUpdatedFmt    = "**AFFIRMATIVE. Character %s with id %s updated.**"
	MsgCharDeletedFmt    = "**AFFIRMATIVE. Character %s deleted.**"
	MsgReloadedFmt       = "**AFFIRMATIVE. %s reloaded.**"
	MsgNoCategories      = "**ANALYSIS: The shop has no categories.**"
	MsgEmptyShop         = "**ANALYSIS: No items for sale.**"
	MsgEmptyList         = "**ANALYSIS: Nothing to list.**"
	MsgListItemsHeader   = "**AFFIRMATIVE. Listing off all items:**"
	MsgListCharsHeader   = "**AFFIRMATIVE. Listing off all chars:**"
	MsgCategoriesHeader  = "**AFFIRMATIVE. Listing categories:**"
	MsgShopItemsHeader   = "**AFFIRMATIVE. Listing shop items:**"
	MsgCategoryHeader    = "**ANALYSIS: items in requested category:**"

	MsgBioCreatedFmt    = "**AFFIRMATIVE. Created character %s.**"
	MsgBioFieldSetFmt   = "**AFFIRMATIVE. %s set.**"
	MsgBioFieldResetFmt = "**AFFIRMATIVE. %s reset.**"
	MsgBioRenamedFmt    = "**AFFIRMATIVE. Character %s can now be accessed as %s.**"
	MsgBioDeletedFmt    = "**AFFIRMATIVE. Character %s has been deleted.**"
	MsgBioUpdatedFmt    = "**AFFIRMATIVE. Character %s was updated.**"
	MsgBioUploadedFmt   = "**AFFIRMATIVE. Character %s was created.**"
	MsgBioPinnedFmt     = "**AFFIRMATIVE. Bio %s pinned.**"
	MsgBioListHeader    = "**ANALYSIS: Following character bios found:**"
	MsgBioOwnerListFmt  = "**ANALYSIS: User <@%s> has following characters:**"

	MsgRaceRolesHeader    = "**ANALYSIS: Currently approved race roles:**"
	MsgRolesHeaderFmt     = "**ANALYSIS: Currently %s roles:**"
	MsgRoleDiffHeader     = "**AFFIRMATIVE. ANALYSIS:**"
	MsgRaceRoleRemoved    = "**AFFIRMATIVE. Race role removed.**"
	MsgRaceRoleGrantedFmt = "**AFFIRMATIVE. Race role %s granted.**"
	MsgRaceToggleFmt      = "**AFFIRMATIVE. Race role requesting %s.**"
	MsgRoleAddedFmt       = "**AFFIRMATIVE. Role %s added.**"
	MsgRoleRemovedFmt     = "**AFFIRMATIVE. Role %s removed.**"

	MsgPrintWarningFmt = "**WARNING: %s**"
	MsgDocUploadedFmt  = "**AFFIRMATIVE. Document %s saved with %d posts.**"
	MsgDocDeletedFmt   = "**AFFIRMATIVE. Document %s deleted.**"
	MsgDocListHeader   = "**ANALYSIS: Stored documents:**"

	MsgScreenShareFmt = "**[Screen share link for %s.](https://discord.com/channels/%s/%s)**"
	MsgNotInVoice     = "ANALYSIS: User is not connected to a voice channel."

	MsgMaintainersOnly = "ANALYSIS: Only bot maintainers may do that."
	MsgMissingFile     = "No file attached."
	MsgGenericError    = "**ERROR: Something went wrong.**"
	MsgErrorFmt        = "**ERROR: %s**"
)

// Error Messages
const (
	ErrMsgUnknownSubcommandFmt = "Unknown subcommand %s."
	ErrMsgGuildOnly            = "This command only works in a server."
	ErrMsgNotAUser             = "Not a user or user not found."
	ErrMsgModeratorsOnly       = "You need the Manage Messages permission for that."
	ErrMsgUnknownReloadFmt     = "Unknown reload target %s."
)

// Discord limits
const (
	MaxMessageLength   = 2000
	MaxAutocompleteHit = 25
)

// List layouts
const (
	ItemListWidth      = 24
	CharacterListWidth = 32
	BioListIDWidth     = 16
	ListFmt            = "%s: %s"
	BioListFmt         = "%s : %s"
)

// Embed colors
const (
	ColorScreenShare = 0xFF0000
)

// Log Messages
const (
	LogMsgCommandFailed      = "Command failed"
	LogMsgCommandRejected    = "Command rejected"
	LogMsgCommandDenied      = "Command denied"
	LogMsgUnknownCommand     = "Unhandled command"
	LogMsgRespondFailed      = "Failed to send interaction response"
	LogMsgDeferFailed        = "Failed to send deferred response"
	LogMsgAutocompleteFailed = "Failed to send autocomplete choices"
	LogMsgReactionRemove     = "Failed to remove shop reaction"
	LogMsgReactionAdd        = "Failed to add shop reaction"
	LogMsgResponseDelete     = "Failed to delete deferred response"
	LogMsgReloaded           = "Stored data reloaded"
	LogMsgDefaultRoles       = "Failed to apply default roles"
	LogMsgBotReady           = "Bot is ready"
	LogMsgBotRunning         = "Discord bot is now running"
	LogMsgCommandsChecking   = "Checking Discord commands"
	LogMsgCommandsUnchanged  = "Commands unchanged, skipping registration"
	LogMsgCommandsChanged    = "Commands changed, updating"
	LogMsgCommandsUpdated    = "Commands updated successfully"
	LogMsgCommandsForced     = "Force update enabled - replacing all commands"
)
