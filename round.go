package camellia

import (
	"crypto/subtle"
	"math/bits"
)

// fLookup is the F function with direct table indexing. Memory access depends on x^k.
func fLookup(x, k uint64) uint64 {
	x ^= k
	return diffuse(
		sbox1[byte(x>>56)],
		sbox2[byte(x>>48)],
		sbox3[byte(x>>40)],
		sbox4[byte(x>>32)],
		sbox2[byte(x>>24)],
		sbox3[byte(x>>16)],
		sbox4[byte(x>>8)],
		sbox1[byte(x)],
	)
}

// fConstantTime is the F function with every substitution reading all 256 table entries.
func fConstantTime(x, k uint64) uint64 {
	x ^= k
	return diffuse(
		lookupConstantTime(&sbox1, byte(x>>56)),
		lookupConstantTime(&sbox2, byte(x>>48)),
		lookupConstantTime(&sbox3, byte(x>>40)),
		lookupConstantTime(&sbox4, byte(x>>32)),
		lookupConstantTime(&sbox2, byte(x>>24)),
		lookupConstantTime(&sbox3, byte(x>>16)),
		lookupConstantTime(&sbox4, byte(x>>8)),
		lookupConstantTime(&sbox1, byte(x)),
	)
}

func lookupConstantTime(table *[256]byte, idx byte) byte {
	var v byte
	for i := range 256 {
		mask := byte(-subtle.ConstantTimeByteEq(byte(i), idx))
		v |= table[i] & mask
	}
	return v
}

// diffuse is the P-layer.
func diffuse(t1, t2, t3, t4, t5, t6, t7, t8 byte) uint64 {
	return uint64(t1^t3^t4^t6^t7^t8)<<56 |
		uint64(t1^t2^t4^t5^t7^t8)<<48 |
		uint64(t1^t2^t3^t5^t6^t8)<<40 |
		uint64(t2^t3^t4^t5^t6^t7)<<32 |
		uint64(t1^t2^t6^t7^t8)<<24 |
		uint64(t2^t3^t5^t7^t8)<<16 |
		uint64(t3^t4^t5^t6^t8)<<8 |
		uint64(t1^t4^t5^t6^t7)
}

func fl(x, k uint64) uint64 {
	x1, x2 := uint32(x>>32), uint32(x)
	k1, k2 := uint32(k>>32), uint32(k)

	x2 ^= bits.RotateLeft32(x1&k1, 1)
	x1 ^= x2 | k2
	return uint64(x1)<<32 | uint64(x2)
}

func flinv(y, k uint64) uint64 {
	y1, y2 := uint32(y>>32), uint32(y)
	k1, k2 := uint32(k>>32), uint32(k)

	y1 ^= y2 | k2
	y2 ^= bits.RotateLeft32(y1&k1, 1)
	return uint64(y1)<<32 | uint64(y2)
}
