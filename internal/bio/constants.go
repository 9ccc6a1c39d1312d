package bio

// PluginName is used for lock keys.
const PluginName = "roleplay"

// Field limits
const (
	MaxShortFieldLength = 64
	MaxLongFieldLength  = 1024
	Undefined           = "undefined"
	ClassHint           = "bio"
)

// Embed layout
const (
	EmbedColor      = 16711680
	OwnerFooterFmt  = "Character belonging to %s"
	ThemeLinkFmt    = "[Theme song.](%s)\n"
	ExtendedLinkFmt = "[Extended bio.](%s)\n"
	OwnerLineFmt    = "Owner: %s"
	DumpExtension   = ".json"
)

// Audit log reasons
const (
	ReasonRaceRemove = "Race role change."
	ReasonRaceGrant  = "Race role requested."
)

// Error Messages
const (
	ErrMsgEmptyName          = "Empty name provided."
	ErrMsgInvalidFieldFmt    = "%s is not a valid field."
	ErrMsgFieldTooLongFmt    = "Exceeded length of field %s: %d characters."
	ErrMsgNoSuchCharacterFmt = "No such character: %s."
	ErrMsgAlreadyExistsFmt   = "Character %s already exists."
	ErrMsgNotOwner           = "Character belongs to another user."
	ErrMsgNoName             = "Not a valid character file: No name."
	ErrMsgNotValidJSONFmt    = "Not a valid JSON document: %v."
	ErrMsgPinChannelFmt      = "Autopinned bios must all be in channel <#%s>."
	ErrMsgAlreadyPinnedFmt   = "Bio with id %s is already pinned."
	ErrMsgRaceRolesDisabled  = "Race role requesting is disabled on this server."
	ErrMsgNotRaceRole        = "Not an approved race role."
	ErrMsgRoleNotFound       = "Not a role or role not found."
)

// Log Messages
const (
	LogMsgBioCreated      = "Bio created"
	LogMsgBioUpdated      = "Bio updated"
	LogMsgBioRenamed      = "Bio renamed"
	LogMsgBioDeleted      = "Bio deleted"
	LogMsgBioUploaded     = "Bio uploaded"
	LogMsgBioPinned       = "Bio pinned"
	LogMsgBioUnpinned     = "Bio unpinned"
	LogMsgPinUpdateFailed = "Failed to update pinned bio"
	LogMsgPinDeleteFailed = "Failed to delete pinned bio"
	LogMsgOwnerLookup     = "Failed to look up bio owner"
	LogMsgRaceRoleGranted = "Race role granted"
)
