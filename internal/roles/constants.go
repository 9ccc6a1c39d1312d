package roles

// Audit log reasons
const (
	ReasonRequestAdd    = "Added by request through plugin."
	ReasonRequestRemove = "Removed by request through plugin."
	ReasonDefaultRoles  = "Adding default roles."
)

// Error Messages
const (
	ErrMsgQueryRequired     = "Role query required."
	ErrMsgRoleNotFoundFmt   = "Unable to find role %s."
	ErrMsgNotRequestableFmt = "Role %s is not requestable."
	ErrMsgNothingChanged    = "None of the given roles changed the list."
)

// Log Messages
const (
	LogMsgRoleToggled         = "Requestable role toggled"
	LogMsgDefaultRolesApplied = "Default roles applied"
	LogMsgDefaultRoleMissing  = "Default role no longer exists"
	LogMsgRoleListEdited      = "Role list edited"
)
