package camellia

import "encoding/binary"

// encryptBlock encrypts the first BlockSize bytes of src into dst. Both words are read before dst is written, so dst
// and src may overlap.
func encryptBlock(sk *subkeys, dst, src []byte) {
	_, _ = src[BlockSize-1], dst[BlockSize-1] // bounds check hint to compiler

	d1 := binary.BigEndian.Uint64(src[0:8]) ^ sk.kw[0]
	d2 := binary.BigEndian.Uint64(src[8:16]) ^ sk.kw[1]

	for g := range sk.groups {
		if g > 0 {
			d1 = fl(d1, sk.ke[2*g-2])
			d2 = flinv(d2, sk.ke[2*g-1])
		}

		k := sk.k[6*g : 6*g+6]
		d2 ^= f(d1, k[0])
		d1 ^= f(d2, k[1])
		d2 ^= f(d1, k[2])
		d1 ^= f(d2, k[3])
		d2 ^= f(d1, k[4])
		d1 ^= f(d2, k[5])
	}

	d2 ^= sk.kw[2]
	d1 ^= sk.kw[3]

	binary.BigEndian.PutUint64(dst[0:8], d2)
	binary.BigEndian.PutUint64(dst[8:16], d1)
}

// decryptBlock is encryptBlock with the whitening keys swapped and the round and FL keys consumed in reverse.
func decryptBlock(sk *subkeys, dst, src []byte) {
	_, _ = src[BlockSize-1], dst[BlockSize-1] // bounds check hint to compiler

	d1 := binary.BigEndian.Uint64(src[0:8]) ^ sk.kw[2]
	d2 := binary.BigEndian.Uint64(src[8:16]) ^ sk.kw[3]

	for g := sk.groups - 1; g >= 0; g-- {
		k := sk.k[6*g : 6*g+6]
		d2 ^= f(d1, k[5])
		d1 ^= f(d2, k[4])
		d2 ^= f(d1, k[3])
		d1 ^= f(d2, k[2])
		d2 ^= f(d1, k[1])
		d1 ^= f(d2, k[0])

		if g > 0 {
			d1 = fl(d1, sk.ke[2*g-1])
			d2 = flinv(d2, sk.ke[2*g-2])
		}
	}

	d2 ^= sk.kw[0]
	d1 ^= sk.kw[1]

	binary.BigEndian.PutUint64(dst[0:8], d2)
	binary.BigEndian.PutUint64(dst[8:16], d1)
}
