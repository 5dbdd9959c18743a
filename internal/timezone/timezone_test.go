package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2024-05-01", "America/New_York"))
	assert.True(t, IsValidDate("2024-05-01", ""), "invalid tz falls back to default")

	assert.False(t, IsValidDate("05/01/2024", "America/New_York"))
	assert.False(t, IsValidDate("2024-5-1", "America/New_York"))
	assert.False(t, IsValidDate("", "America/New_York"))
	assert.False(t, IsValidDate("2024-13-40", "America/New_York"))
}

func TestLocation(t *testing.T) {
	assert.Equal(t, "America/Sao_Paulo", Location("America/Sao_Paulo").String())
	assert.Equal(t, DefaultTimezone, Location("Nowhere/Invalid").String())
	assert.Equal(t, DefaultTimezone, Location("").String())
}
