package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_Message(t *testing.T) {
	err := NewNotFoundError("Car", 7)
	assert.Equal(t, "Car not found: 7", err.Error())
}

func TestErrors_MatchThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("open rental: %w", NewConflictError("car is not available"))

	var conflictErr *ConflictError
	assert.True(t, errors.As(wrapped, &conflictErr))
	assert.Equal(t, "car is not available", conflictErr.Message)
}
