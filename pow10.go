package decimal128

import (
	"fmt"
	"math/big"
)

// pow10big and pow10mag are precomputed tables of 10^k for k in [0, 38],
// the range spec.md section 3 requires ("precomputed table of 10^k for
// k in [0, 38]"). pow10big backs the big.Int codec's range check;
// pow10mag backs the fast 128-bit paths (rescale, overflow checks, and
// the division kernel's pre-rescale step) that never need to go through
// big.Int.
//
// Both tables are built at package init by repeated big.Int
// multiplication by ten, mirroring the teacher's bpow10/sintPow10 tables, rather than hand-typed
// as 128-bit hex constants, to eliminate any risk of a transcription error
// in numbers this large.
var (
	pow10big [MaxPrecision + 1]*big.Int
	pow10mag [MaxPrecision + 1]u128
)

func init() {
	ten := big.NewInt(10)
	acc := big.NewInt(1)
	mask64 := new(big.Int).SetUint64(^uint64(0))
	for k := 0; k <= MaxPrecision; k++ {
		v := new(big.Int).Set(acc)
		pow10big[k] = v

		lo := new(big.Int).And(v, mask64).Uint64()
		hi := new(big.Int).Rsh(v, 64).Uint64()
		pow10mag[k] = u128{lo: lo, hi: hi}

		acc.Mul(acc, ten)
	}
	if pow10big[MaxPrecision].BitLen() > 127 {
		panic(fmt.Sprintf("pow10 table build failed: 10^%d needs more than 127 bits", MaxPrecision))
	}

	maxMag := pow10mag[MaxPrecision].sub1()
	MaxUnscaled = newUnsafe(false, maxMag)
	MinUnscaled = newUnsafe(true, maxMag)
}
