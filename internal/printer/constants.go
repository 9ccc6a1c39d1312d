package printer

// Discord message and embed limits
const (
	MaxMessageLength     = 2000
	MaxTitleLength       = 256
	MaxDescriptionLength = 2048
	MaxFooterTextLength  = 2048
	MaxAuthorNameLength  = 256
	MaxFieldNameLength   = 256
	MaxFieldValueLength  = 1024
	DefaultMaxFileSize   = 8 * 1024 * 1024
	AttachmentBaseName   = "wallfile"
)

// Verification messages
const (
	ErrMsgTooLongFmt        = "%s too long. (limit %d)"
	ErrMsgInvalidURLFmt     = "%s invalid url."
	ErrMsgNotTextFmt        = "%s must be text."
	ErrMsgNotObjectFmt      = "%s must be an object."
	ErrMsgInvalidColor      = "Invalid color value."
	ErrMsgFieldsNotList     = "fields must be a list."
	ErrMsgFieldNotObjectFmt = "Field %d must be an object."
	ErrMsgFieldInlineFmt    = "Field %d, \"inline\" must be true or false."
	ErrMsgFieldNameFmt      = "Field %d \"name\" too long. (Limit 256)"
	ErrMsgFieldValueFmt     = "Field %d \"value\" too long. (Limit 1024)"
	ErrMsgPostTooLongFmt    = "Message %d is too long. (Limit 2000)"
	ErrMsgPostEmbedFmt      = "Message %d invalid embed: %s"
	ErrMsgPostFileFmt       = "Message %d invalid attach url."
	ErrMsgPostTypeFmt       = "Message %d not an object or string."
	ErrMsgNoSuchDocument    = "No such document."
	ErrMsgDocumentNameEmpty = "Document name required."
	ErrMsgNotValidDocFmt    = "Not a valid document: %v."
	ErrMsgFileTooBig        = "file too big"
)

// Log Messages
const (
	LogMsgAttachmentFailed = "Attachment fetch failed during printout"
	LogMsgDocumentPrinted  = "Document printed"
	LogMsgDocumentSaved    = "Document saved"
	LogMsgDocumentDeleted  = "Document deleted"
)
