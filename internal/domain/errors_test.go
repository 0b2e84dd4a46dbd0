package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersistence(t *testing.T) {
	assert.Nil(t, Persistence(nil))

	err := Persistence(errors.New("connection reset"))
	assert.ErrorIs(t, err, ErrPersistence)
	assert.Contains(t, err.Error(), "connection reset")

	notFound := fmt.Errorf("member 3: %w", ErrNotFound)
	assert.Same(t, notFound, Persistence(notFound))

	vErr := NewValidationError("birth_date", "must be YYYY-MM-DD")
	var target *ValidationError
	assert.True(t, errors.As(Persistence(vErr), &target))
	assert.Equal(t, "birth_date", target.Field)
}

func TestValidationError_Error(t *testing.T) {
	assert.Equal(t, "amount: must be a number", NewValidationError("amount", "must be a number").Error())
	assert.Equal(t, "bad input", NewValidationError("", "bad input").Error())
}
