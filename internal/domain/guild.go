package domain

// Role is a guild role as the plugins see it.
type Role struct {
	ID       string
	Name     string
	Color    int
	Position int
}

// Member is a guild member as the plugins see it.
type Member struct {
	ID          string
	DisplayName string
	AvatarURL   string
	Roles       []string
}

// Mention returns the chat mention markup for the member.
func (m Member) Mention() string {
	return "<@" + m.ID + ">"
}

// HasRole reports whether the member holds roleID.
func (m Member) HasRole(roleID string) bool {
	for _, r := range m.Roles {
		if r == roleID {
			return true
		}
	}
	return false
}
