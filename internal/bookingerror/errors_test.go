package bookingerror

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundErrorUnwrap(t *testing.T) {
	err := &NotFoundError{Resource: "flights.csv", Err: os.ErrNotExist}
	assert.Contains(t, err.Error(), "flights.csv")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestMalformedRowError(t *testing.T) {
	inner := fmt.Errorf("invalid syntax")
	err := &MalformedRowError{
		Resource: "hotels.csv",
		Line:     3,
		Field:    "rooms",
		Value:    "abc",
		Err:      inner,
	}
	assert.Contains(t, err.Error(), "hotels.csv")
	assert.Contains(t, err.Error(), "rooms='abc'")
	assert.Equal(t, inner, errors.Unwrap(err))
}

func TestErrorsAsMatching(t *testing.T) {
	var wrapped error = fmt.Errorf("reserve failed: %w", &InsufficientCapacityError{
		OfferingID: "F100",
		Requested:  5,
		Available:  2,
	})

	var capErr *InsufficientCapacityError
	assert.True(t, errors.As(wrapped, &capErr))
	assert.Equal(t, 5, capErr.Requested)
	assert.Equal(t, 2, capErr.Available)
}

func TestMessages(t *testing.T) {
	assert.Equal(t, "user ID already exists: C100",
		(&DuplicateUserError{UserID: "C100"}).Error())
	assert.Equal(t, "invalid credentials for user C100",
		(&InvalidCredentialsError{UserID: "C100"}).Error())
	assert.Equal(t, "row index 4 out of range [0, 3)",
		(&OutOfRangeError{Index: 4, Count: 3}).Error())
}
