package decimal128

// This file implements the multi-precision limb arithmetic that underlies
// [multiply256Destructive] and [Divide]. Limbs are base-2^32 digits stored
// little-endian (index 0 is the least significant limb), the same
// convention spec.md section 4.2 and 4.5 describe for the division
// kernel's scratch buffers.
//
// The carry/borrow propagation here is grounded on the classic
// addVV/subVV/shlVU/mulAddVWW/addMulVVW word-vector routines found in the
// Go standard library's own arbitrary-precision integer package (the
// from-scratch, assembly-free fallback implementations), adapted from
// native machine words down to 32-bit limbs with a 64-bit accumulator so
// no limb-pair splitting trick is needed.

// addVV computes z = x + y over equal-length limb slices and returns the
// carry out of the top limb (0 or 1).
func addVV(z, x, y []uint32) uint32 {
	var c uint64
	for i := range z {
		s := uint64(x[i]) + uint64(y[i]) + c
		z[i] = uint32(s)
		c = s >> 32
	}
	return uint32(c)
}

// subVV computes z = x - y over equal-length limb slices and returns the
// borrow out of the top limb (0 or 1).
func subVV(z, x, y []uint32) uint32 {
	var b uint64
	for i := range z {
		d := uint64(x[i]) - uint64(y[i]) - b
		z[i] = uint32(d)
		b = (d >> 63) & 1
	}
	return uint32(b)
}

// addVW computes z = x + y, where y is a single limb added to the lowest
// position, and returns the carry out of the top limb.
func addVW(z, x []uint32, y uint32) uint32 {
	c := uint64(y)
	for i := range z {
		s := uint64(x[i]) + c
		z[i] = uint32(s)
		c = s >> 32
	}
	return uint32(c)
}

// shlVU shifts x left by s bits (0 <= s < 32) into z and returns the bits
// shifted out of the top limb, right-justified.
func shlVU(z, x []uint32, s uint) uint32 {
	if len(z) == 0 {
		return 0
	}
	if s == 0 {
		copy(z, x)
		return 0
	}
	var carry uint32
	for i := range z {
		w := x[i]
		z[i] = w<<s | carry
		carry = w >> (32 - s)
	}
	return carry
}

// shrVU shifts x right by s bits (0 <= s < 32) into z and returns the bits
// shifted out of the bottom limb, left-justified in a 32-bit word.
func shrVU(z, x []uint32, s uint) uint32 {
	if len(z) == 0 {
		return 0
	}
	if s == 0 {
		copy(z, x)
		return 0
	}
	var carry uint32
	for i := len(z) - 1; i >= 0; i-- {
		w := x[i]
		z[i] = w>>s | carry
		carry = w << (32 - s)
	}
	return carry
}

// mulAddVWW computes z = x*y + r, where y and r are single limbs, and
// returns the carry out of the top limb.
func mulAddVWW(z, x []uint32, y, r uint32) uint32 {
	c := uint64(r)
	for i := range z {
		p := uint64(x[i])*uint64(y) + c
		z[i] = uint32(p)
		c = p >> 32
	}
	return uint32(c)
}

// addMulVVW computes z += x*y, where y is a single limb, and returns the
// carry out of the top limb. Used by the multiplicative kernel's
// schoolbook accumulation (spec.md section 4.4).
func addMulVVW(z, x []uint32, y uint32) uint32 {
	var c uint64
	for i := range z {
		p := uint64(x[i])*uint64(y) + uint64(z[i]) + c
		z[i] = uint32(p)
		c = p >> 32
	}
	return uint32(c)
}

// subMulVVW computes z -= x*y, where y is a single limb, and returns the
// borrow out of the top limb. It computes the multiply-and-subtract step of
// Knuth Algorithm D (spec.md section 4.5, step D4) in one pass;
// [divideLimbs] performs that step with [mulAddVWW] and [subVV] instead.
func subMulVVW(z, x []uint32, y uint32) uint32 {
	var borrow uint64
	for i := range z {
		p := uint64(x[i])*uint64(y) + borrow
		lo := uint32(p)
		borrow = p >> 32
		d := z[i] - lo
		if z[i] < lo {
			borrow++
		}
		z[i] = d
	}
	return uint32(borrow)
}

// limbsFromU128 decomposes a 128-bit magnitude into four little-endian
// 32-bit limbs.
func limbsFromU128(x u128) [4]uint32 {
	return [4]uint32{
		uint32(x.lo),
		uint32(x.lo >> 32),
		uint32(x.hi),
		uint32(x.hi >> 32),
	}
}

// u128FromLimbs recomposes a 128-bit magnitude from its four low-order
// little-endian 32-bit limbs. Any limbs beyond index 3 must be zero; the
// caller is responsible for having checked this (it is the overflow
// condition for whichever operation produced the limbs).
func u128FromLimbs(l []uint32) u128 {
	var lo, hi uint64
	lo = uint64(l[0]) | uint64(l[1])<<32
	if len(l) > 2 {
		hi = uint64(l[2])
	}
	if len(l) > 3 {
		hi |= uint64(l[3]) << 32
	}
	return u128{lo: lo, hi: hi}
}

// limbsLen returns the number of significant (non-zero, from the top)
// limbs in x, or 0 if x is entirely zero.
func limbsLen(x []uint32) int {
	n := len(x)
	for n > 0 && x[n-1] == 0 {
		n--
	}
	return n
}

// shiftLeftMultiPrecision shifts the limbs in x[:usedLen] left by n bits,
// writing the result into z, which must have room for usedLen +
// ceil(n/32) limbs (spec.md section 4.2). It returns the new used length.
func shiftLeftMultiPrecision(z, x []uint32, usedLen int, n uint) int {
	limbShift := int(n / 32)
	bitShift := n % 32

	for i := len(z) - 1; i >= 0; i-- {
		z[i] = 0
	}
	for i := usedLen - 1; i >= 0; i-- {
		z[i+limbShift] = x[i]
	}

	newLen := usedLen + limbShift
	if bitShift != 0 {
		carry := shlVU(z[limbShift:newLen], z[limbShift:newLen], bitShift)
		if carry != 0 {
			z[newLen] = carry
			newLen++
		}
	}
	return newLen
}

// shiftRightMultiPrecision shifts the limbs in x[:usedLen] right by n
// bits, writing the result into z (z may alias x). It returns the new
// used length.
func shiftRightMultiPrecision(z, x []uint32, usedLen int, n uint) int {
	limbShift := int(n / 32)
	bitShift := n % 32

	if limbShift >= usedLen {
		for i := 0; i < usedLen; i++ {
			z[i] = 0
		}
		return 0
	}

	newLen := usedLen - limbShift
	for i := 0; i < newLen; i++ {
		z[i] = x[i+limbShift]
	}
	for i := newLen; i < usedLen; i++ {
		z[i] = 0
	}
	if bitShift != 0 {
		shrVU(z[:newLen], z[:newLen], bitShift)
	}
	return limbsLen(z[:newLen])
}
