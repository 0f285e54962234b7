package code

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetStatusTaxonomy(t *testing.T) {
	cases := map[int]int{
		ErrValidation:               StatusBadRequest,
		ErrOccupancyExceedsCapacity: StatusBadRequest,
		ErrInsufficientQuantity:     StatusBadRequest,
		ErrTokenMissing:             StatusUnauthorized,
		ErrUserPasswordIncorrect:    StatusUnauthorized,
		ErrTokenInvalid:             StatusForbidden,
		ErrForbidden:                StatusForbidden,
		ErrReportNotFound:           StatusNotFound,
		ErrUserAlreadyExist:         StatusConflict,
		ErrRolesMissing:             StatusInternalServerError,
		ErrDatabase:                 StatusInternalServerError,
		999999:                      StatusInternalServerError,
	}
	for c, want := range cases {
		assert.Equal(t, want, GetStatus(c), "code %d", c)
	}
}

func TestFromKeepsTypedErrors(t *testing.T) {
	original := New(ErrShelterNotFound)
	wrapped := fmt.Errorf("loading shelter: %w", original)

	got := From(wrapped)
	assert.Same(t, original, got)
	assert.True(t, Is(wrapped, ErrShelterNotFound))
	assert.False(t, Is(wrapped, ErrTaskNotFound))
}

func TestFromHidesUntypedErrors(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.1:3306: connection refused")

	got := From(cause)
	assert.Equal(t, ErrDatabase, got.Code)
	assert.Equal(t, "Server error", got.Message)
	assert.ErrorIs(t, got, cause)
	assert.Equal(t, StatusInternalServerError, got.Status())
	assert.Nil(t, From(nil))
}

func TestNewfMessage(t *testing.T) {
	err := Newf(ErrRoleNotFound, "Role with ID %d does not exist", 7)
	assert.Equal(t, "Role with ID 7 does not exist", err.Message)
	assert.Equal(t, StatusBadRequest, err.Status())
}
