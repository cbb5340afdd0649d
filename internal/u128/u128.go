// Package u128 provides the handful of 128-bit operations the Camellia key schedule needs, on values held as two
// 64-bit words.
package u128

import "encoding/binary"

// Uint128 is a 128-bit unsigned integer. Hi holds the most significant 64 bits.
type Uint128 struct {
	Hi, Lo uint64
}

// Load reads a big-endian 128-bit value from the first 16 bytes of b.
func Load(b []byte) Uint128 {
	_ = b[15] // bounds check hint to compiler
	return Uint128{
		Hi: binary.BigEndian.Uint64(b[0:8]),
		Lo: binary.BigEndian.Uint64(b[8:16]),
	}
}

// Xor returns x ^ y.
func (x Uint128) Xor(y Uint128) Uint128 {
	return Uint128{Hi: x.Hi ^ y.Hi, Lo: x.Lo ^ y.Lo}
}

// RotateLeft returns x rotated left by n bits, with n taken modulo 128.
func RotateLeft(x Uint128, n uint) Uint128 {
	hi, lo := x.Hi, x.Lo
	if n&64 != 0 {
		hi, lo = lo, hi
	}

	// Go defines shifts of 64 or more as zero, so s == 0 leaves both words unchanged.
	s := n % 64
	return Uint128{
		Hi: hi<<s | lo>>(64-s),
		Lo: lo<<s | hi>>(64-s),
	}
}
