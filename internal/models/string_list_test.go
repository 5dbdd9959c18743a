package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringListValue(t *testing.T) {
	v, err := StringList{"9am", "10am"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `["9am","10am"]`, v)

	v, err = StringList(nil).Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", v)
}

func TestStringListScan(t *testing.T) {
	t.Run("From Bytes", func(t *testing.T) {
		var l StringList
		require.NoError(t, l.Scan([]byte(`["9am","10am","11am"]`)))
		assert.Equal(t, StringList{"9am", "10am", "11am"}, l)
	})

	t.Run("From String", func(t *testing.T) {
		var l StringList
		require.NoError(t, l.Scan(`["1pm"]`))
		assert.Equal(t, StringList{"1pm"}, l)
	})

	t.Run("Null Column", func(t *testing.T) {
		var l StringList
		require.NoError(t, l.Scan(nil))
		assert.Empty(t, l)
	})

	t.Run("Garbage", func(t *testing.T) {
		var l StringList
		assert.Error(t, l.Scan([]byte("not json")))
		assert.Error(t, l.Scan(42))
	})
}
