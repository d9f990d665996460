package decimal128

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromInt64ToInt64RoundTrip(t *testing.T) {
	tests := []int64{0, 1, -1, math.MaxInt64, math.MinInt64, math.MinInt64 + 1}
	for _, n := range tests {
		v := FromInt64(n)
		got, err := v.ToInt64()
		require.NoError(t, err)
		assert.Equal(t, n, got)
	}
}

func TestToInt64OverflowsOnLargeMagnitude(t *testing.T) {
	_, err := MaxUnscaled.ToInt64()
	require.ErrorIs(t, err, ErrOverflow)
}

func TestToInt64OverflowsOneBelowMinInt64(t *testing.T) {
	v := MustFromBigInt(bigFromString(t, "-9223372036854775809"))
	_, err := v.ToInt64()
	require.ErrorIs(t, err, ErrOverflow)
}

func TestFromInt64MinInt64(t *testing.T) {
	v := FromInt64(math.MinInt64)
	assert.True(t, v.IsNegative())
	assert.Equal(t, "-9223372036854775808", v.String())
}
