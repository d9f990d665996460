package decimal128

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestU128Cmp(t *testing.T) {
	a := u128{lo: 5}
	b := u128{lo: 10}
	assert.Equal(t, -1, a.cmp(b))
	assert.Equal(t, 1, b.cmp(a))
	assert.Equal(t, 0, a.cmp(a))
}

func TestU128AddCarry(t *testing.T) {
	max := u128{lo: ^uint64(0), hi: ^uint64(0)}
	one := u128{lo: 1}
	sum, carry := max.add(one)
	assert.True(t, sum.isZero())
	assert.Equal(t, uint64(1), carry)
}

func TestU128SubBorrow(t *testing.T) {
	small := u128{lo: 1}
	big := u128{lo: 2}
	_, borrow := small.sub(big)
	assert.Equal(t, uint64(1), borrow)
}

func TestU128LshThenRshClearsHighBits(t *testing.T) {
	x := u128{lo: 0x0123456789ABCDEF, hi: 0x00000000FEDCBA98}
	for n := uint(1); n < 64; n++ {
		shiftedLeft := x.lsh(n)
		shiftedBack, _, _ := shiftedLeft.rsh(n)
		want := u128{lo: x.lo, hi: x.hi & (^uint64(0) >> n)}
		assert.Equal(t, want, shiftedBack, "n=%d", n)
	}
}

func TestU128LshZeroIsIdentity(t *testing.T) {
	x := u128{lo: 42, hi: 7}
	assert.Equal(t, x, x.lsh(0))
	z, stickyLo, stickyHi := x.rsh(0)
	assert.Equal(t, x, z)
	assert.Equal(t, uint64(0), stickyLo)
	assert.Equal(t, uint64(0), stickyHi)
}

func TestU128BitLen(t *testing.T) {
	tests := []struct {
		x    u128
		want int
	}{
		{u128{}, 0},
		{u128{lo: 1}, 1},
		{u128{lo: 0xFFFFFFFFFFFFFFFF}, 64},
		{u128{lo: 0, hi: 1}, 65},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.x.bitLen())
	}
}
