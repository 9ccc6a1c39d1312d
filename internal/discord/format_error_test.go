package discord

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/RoleplayBot_Go/internal/domain"
)

func TestFormatFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected string
	}{
		{
			name:     "Syntax",
			input:    domain.SyntaxError("Amount must be a positive number."),
			expected: "**ERROR: Amount must be a positive number.**",
		},
		{
			name:     "Permission",
			input:    domain.PermissionError("Not your bio."),
			expected: "**ERROR: Not your bio.**",
		},
		{
			name:     "Wrapped sentinel",
			input:    fmt.Errorf("buy: %w", domain.ErrInsufficientFunds),
			expected: "**ERROR: buy: permission denied: insufficient funds**",
		},
		{
			name:     "Suggestions",
			input:    domain.NewNotFoundError(domain.ErrItemNotFound, "swrd", []string{"Sword", "Sword of Dawn"}),
			expected: MsgSuggestions + "```\nSword\nSword of Dawn```",
		},
		{
			name:     "Not found without suggestions",
			input:    domain.NewNotFoundError(domain.ErrItemNotFound, "zzz", nil),
			expected: "**ERROR: item not found: zzz**",
		},
		{
			name:     "Internal",
			input:    errors.New("connection reset"),
			expected: MsgGenericError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatFriendlyError(tt.input))
		})
	}
}
