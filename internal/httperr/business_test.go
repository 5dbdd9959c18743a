package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness("duplicate_booking")

	assert.True(t, IsBusiness(err, "duplicate_booking"))
	assert.False(t, IsBusiness(err, "booking_not_found"))
	assert.False(t, IsBusiness(errors.New("boom"), "duplicate_booking"))
	assert.False(t, IsBusiness(nil, "duplicate_booking"))

	wrapped := fmt.Errorf("admission: %w", err)
	assert.True(t, IsBusiness(wrapped, "duplicate_booking"))
}

func TestIsAnyBusiness(t *testing.T) {
	assert.True(t, IsAnyBusiness(ErrBusiness("already_paid")))
	assert.False(t, IsAnyBusiness(errors.New("boom")))
	assert.False(t, IsAnyBusiness(nil))
}
