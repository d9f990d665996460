package decimal128

import (
	"math/big"
	"testing"
)

// clampTo38Digits returns n reduced modulo 10^38 with its original sign
// preserved, so fuzz-generated seeds always land in the representable
// range instead of spending every trial on an immediate overflow.
func clampTo38Digits(n *big.Int) *big.Int {
	mod := new(big.Int).Mod(new(big.Int).Abs(n), pow10big[MaxPrecision])
	if n.Sign() < 0 {
		mod.Neg(mod)
	}
	return mod
}

func FuzzAddAgreesWithBigInt(f *testing.F) {
	f.Add(int64(5), int64(7))
	f.Add(int64(-5), int64(7))
	f.Add(int64(0), int64(0))
	f.Fuzz(func(t *testing.T, a, b int64) {
		va, vb := FromInt64(a), FromInt64(b)
		want := new(big.Int).Add(va.ToBigInt(), vb.ToBigInt())

		got, err := Add(va, vb)
		if want.CmpAbs(pow10big[MaxPrecision]) >= 0 {
			if err == nil {
				t.Fatalf("Add(%d, %d): expected overflow, got %v", a, b, got)
			}
			return
		}
		if err != nil {
			t.Fatalf("Add(%d, %d): unexpected error %v", a, b, err)
		}
		if got.ToBigInt().Cmp(want) != 0 {
			t.Fatalf("Add(%d, %d) = %v, want %v", a, b, got.ToBigInt(), want)
		}
	})
}

func FuzzMultiplyAgreesWithBigInt(f *testing.F) {
	f.Add(int64(6), int64(7))
	f.Add(int64(-6), int64(7))
	f.Fuzz(func(t *testing.T, a, b int64) {
		va, vb := FromInt64(a), FromInt64(b)
		want := new(big.Int).Mul(va.ToBigInt(), vb.ToBigInt())

		got, err := Multiply(va, vb)
		if new(big.Int).Abs(want).Cmp(pow10big[MaxPrecision]) >= 0 {
			if err == nil {
				t.Fatalf("Multiply(%d, %d): expected overflow, got %v", a, b, got)
			}
			return
		}
		if err != nil {
			t.Fatalf("Multiply(%d, %d): unexpected error %v", a, b, err)
		}
		if got.ToBigInt().Cmp(want) != 0 {
			t.Fatalf("Multiply(%d, %d) = %v, want %v", a, b, got.ToBigInt(), want)
		}
	})
}

func FuzzDivideAgreesWithBigInt(f *testing.F) {
	f.Add(int64(43), int64(6))
	f.Add(int64(43), int64(-6))
	f.Add(int64(-43), int64(6))
	f.Add(int64(-43), int64(-6))
	f.Add(int64(1), int64(3))
	f.Fuzz(func(t *testing.T, a, b int64) {
		if b == 0 {
			t.Skip()
		}
		va, vb := FromInt64(a), FromInt64(b)
		wantQ, wantR := new(big.Int).QuoRem(va.ToBigInt(), vb.ToBigInt(), new(big.Int))

		q, r, err := Divide(va, 0, vb, 0)
		if err != nil {
			t.Fatalf("Divide(%d, %d): unexpected error %v", a, b, err)
		}
		if q.ToBigInt().Cmp(wantQ) != 0 {
			t.Fatalf("Divide(%d, %d) quotient = %v, want %v", a, b, q.ToBigInt(), wantQ)
		}
		if r.ToBigInt().Cmp(wantR) != 0 {
			t.Fatalf("Divide(%d, %d) remainder = %v, want %v", a, b, r.ToBigInt(), wantR)
		}
	})
}

func FuzzFromBigIntToBigIntRoundTrip(f *testing.F) {
	f.Add([]byte{1, 2, 3})
	f.Add([]byte{0})
	f.Fuzz(func(t *testing.T, raw []byte) {
		if len(raw) == 0 {
			t.Skip()
		}
		n := new(big.Int).SetBytes(raw)
		n = clampTo38Digits(n)

		v, err := FromBigInt(n)
		if err != nil {
			t.Fatalf("FromBigInt(%s): unexpected error %v", n, err)
		}
		if v.ToBigInt().Cmp(n) != 0 {
			t.Fatalf("round trip mismatch: FromBigInt(%s).ToBigInt() = %s", n, v.ToBigInt())
		}
	})
}

func FuzzRescaleDownAgreesWithHalfUpRounding(f *testing.F) {
	f.Add(int64(1250), 2)
	f.Add(int64(-1250), 2)
	f.Fuzz(func(t *testing.T, n int64, digits int) {
		if digits <= 0 || digits > MaxPrecision {
			t.Skip()
		}
		v := FromInt64(n)
		got, err := Rescale(v, -digits)
		if err != nil {
			t.Fatalf("Rescale(%d, %d): unexpected error %v", n, -digits, err)
		}

		divisor := pow10big[digits]
		q, r := new(big.Int).QuoRem(v.ToBigInt(), divisor, new(big.Int))
		doubled := new(big.Int).Mul(new(big.Int).Abs(r), big.NewInt(2))
		if doubled.CmpAbs(divisor) >= 0 {
			if q.Sign() < 0 {
				q.Sub(q, big.NewInt(1))
			} else {
				q.Add(q, big.NewInt(1))
			}
		}
		if got.ToBigInt().Cmp(q) != 0 {
			t.Fatalf("Rescale(%d, %d) = %v, want %v", n, -digits, got.ToBigInt(), q)
		}
	})
}
