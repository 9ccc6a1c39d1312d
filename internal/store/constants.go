package store

// Document namespaces, one file or table partition per plugin document.
const (
	NamespaceItems      = "items"
	NamespaceCharacters = "characters"
	NamespaceBios       = "bios"
	NamespaceSettings   = "settings"
)

// Backend names accepted by STORE_BACKEND
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
	BackendMemory   = "memory"
)

// Error Messages
const (
	ErrMsgFailedToLoad   = "failed to load documents"
	ErrMsgFailedToSave   = "failed to save documents"
	ErrMsgFailedToDecode = "failed to decode guild document"
	ErrMsgFailedToEncode = "failed to encode guild document"
)

// Log Messages
const (
	LogMsgDocumentsLoaded = "Loaded documents"
	LogMsgDocumentsSaved  = "Saved documents"
)
