package camellia

import (
	"encoding/binary"

	"github.com/codahale/camellia/internal/u128"
)

// The key schedule constants Σ1..Σ6.
const (
	sigma1 = 0xA09E667F3BCC908B
	sigma2 = 0xB67AE8584CAA73B2
	sigma3 = 0xC6EF372FE94F82BE
	sigma4 = 0x54FF53A5F1D36F1C
	sigma5 = 0x10E527FADE682D1D
	sigma6 = 0xB05688C2B3E6C1FD
)

// subkeys is a complete Camellia key schedule. 128-bit keys use k[0:18] and ke[0:4] and run three groups of six
// rounds; 192- and 256-bit keys use every slot and run four.
type subkeys struct {
	kw     [4]uint64
	k      [24]uint64
	ke     [6]uint64
	groups int
}

// schedule derives the subkeys for key. It returns a KeySizeError, and no subkeys, unless key is 16, 24, or 32 bytes
// long.
func schedule(key []byte) (subkeys, error) {
	switch len(key) {
	case 16:
		kl := u128.Load(key)
		return schedule128(kl, mixKA(kl, u128.Uint128{})), nil
	case 24, 32:
		kl, kr := splitKey(key)
		ka := mixKA(kl, kr)
		return schedule256(kl, kr, ka, mixKB(ka, kr)), nil
	default:
		return subkeys{}, KeySizeError(len(key))
	}
}

// splitKey returns KL and KR for a 24- or 32-byte key. A 24-byte key's KR is its last eight bytes followed by their
// complement.
func splitKey(key []byte) (kl, kr u128.Uint128) {
	kl = u128.Load(key)
	if len(key) == 24 {
		last := binary.BigEndian.Uint64(key[16:24])
		return kl, u128.Uint128{Hi: last, Lo: ^last}
	}
	return kl, u128.Load(key[16:])
}

func mixKA(kl, kr u128.Uint128) u128.Uint128 {
	d := kl.Xor(kr)
	d.Lo ^= f(d.Hi, sigma1)
	d.Hi ^= f(d.Lo, sigma2)
	d = d.Xor(kl)
	d.Lo ^= f(d.Hi, sigma3)
	d.Hi ^= f(d.Lo, sigma4)
	return d
}

func mixKB(ka, kr u128.Uint128) u128.Uint128 {
	d := ka.Xor(kr)
	d.Lo ^= f(d.Hi, sigma5)
	d.Hi ^= f(d.Lo, sigma6)
	return d
}

func schedule128(kl, ka u128.Uint128) subkeys {
	var sk subkeys
	sk.groups = 3

	sk.kw[0], sk.kw[1] = kl.Hi, kl.Lo
	sk.k[0], sk.k[1] = ka.Hi, ka.Lo

	r := u128.RotateLeft(kl, 15)
	sk.k[2], sk.k[3] = r.Hi, r.Lo
	r = u128.RotateLeft(ka, 15)
	sk.k[4], sk.k[5] = r.Hi, r.Lo

	r = u128.RotateLeft(ka, 30)
	sk.ke[0], sk.ke[1] = r.Hi, r.Lo

	r = u128.RotateLeft(kl, 45)
	sk.k[6], sk.k[7] = r.Hi, r.Lo
	r = u128.RotateLeft(ka, 45)
	sk.k[8] = r.Hi

	r = u128.RotateLeft(kl, 60)
	sk.k[9] = r.Lo
	r = u128.RotateLeft(ka, 60)
	sk.k[10], sk.k[11] = r.Hi, r.Lo

	r = u128.RotateLeft(kl, 77)
	sk.ke[2], sk.ke[3] = r.Hi, r.Lo

	r = u128.RotateLeft(kl, 94)
	sk.k[12], sk.k[13] = r.Hi, r.Lo
	r = u128.RotateLeft(ka, 94)
	sk.k[14], sk.k[15] = r.Hi, r.Lo

	r = u128.RotateLeft(kl, 111)
	sk.k[16], sk.k[17] = r.Hi, r.Lo
	r = u128.RotateLeft(ka, 111)
	sk.kw[2], sk.kw[3] = r.Hi, r.Lo

	return sk
}

func schedule256(kl, kr, ka, kb u128.Uint128) subkeys {
	var sk subkeys
	sk.groups = 4

	sk.kw[0], sk.kw[1] = kl.Hi, kl.Lo
	sk.k[0], sk.k[1] = kb.Hi, kb.Lo

	r := u128.RotateLeft(kr, 15)
	sk.k[2], sk.k[3] = r.Hi, r.Lo
	r = u128.RotateLeft(ka, 15)
	sk.k[4], sk.k[5] = r.Hi, r.Lo

	r = u128.RotateLeft(kr, 30)
	sk.ke[0], sk.ke[1] = r.Hi, r.Lo
	r = u128.RotateLeft(kb, 30)
	sk.k[6], sk.k[7] = r.Hi, r.Lo

	r = u128.RotateLeft(kl, 45)
	sk.k[8], sk.k[9] = r.Hi, r.Lo
	r = u128.RotateLeft(ka, 45)
	sk.k[10], sk.k[11] = r.Hi, r.Lo

	r = u128.RotateLeft(kl, 60)
	sk.ke[2], sk.ke[3] = r.Hi, r.Lo
	r = u128.RotateLeft(kr, 60)
	sk.k[12], sk.k[13] = r.Hi, r.Lo
	r = u128.RotateLeft(kb, 60)
	sk.k[14], sk.k[15] = r.Hi, r.Lo

	r = u128.RotateLeft(kl, 77)
	sk.k[16], sk.k[17] = r.Hi, r.Lo
	r = u128.RotateLeft(ka, 77)
	sk.ke[4], sk.ke[5] = r.Hi, r.Lo

	r = u128.RotateLeft(kr, 94)
	sk.k[18], sk.k[19] = r.Hi, r.Lo
	r = u128.RotateLeft(ka, 94)
	sk.k[20], sk.k[21] = r.Hi, r.Lo

	r = u128.RotateLeft(kl, 111)
	sk.k[22], sk.k[23] = r.Hi, r.Lo
	r = u128.RotateLeft(kb, 111)
	sk.kw[2], sk.kw[3] = r.Hi, r.Lo

	return sk
}
