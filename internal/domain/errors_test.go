package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorFamilies(t *testing.T) {
	assert.ErrorIs(t, ErrItemNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrInsufficientFunds, ErrPermission)
	assert.ErrorIs(t, SyntaxError("bad %d", 1), ErrSyntax)
	assert.ErrorIs(t, PermissionError("nope"), ErrPermission)
	assert.Equal(t, "bad 1", SyntaxError("bad %d", 1).Error())

	wrapped := fmt.Errorf("buying: %w", PermissionError("nope"))
	var ue *UserError
	assert.True(t, errors.As(wrapped, &ue))
	assert.Equal(t, "nope", ue.Message)
}

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError(ErrItemNotFound, "potoin", []string{"Potion", "Poison"})

	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.True(t, err.HasSuggestions())
	assert.Equal(t, "item not found: potoin (did you mean: Potion, Poison)", err.Error())

	bare := NewNotFoundError(ErrCharacterNotFound, "bob", nil)
	assert.False(t, bare.HasSuggestions())
	assert.Equal(t, "character not found: bob", bare.Error())
}
