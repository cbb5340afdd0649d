// Package keygen generates random Camellia keys.
package keygen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// DefaultBits is the key size used when GenerateKey is asked for zero bits.
const DefaultBits = 128

// ErrInvalidKeySize is returned when the requested key size is not 128, 192, or 256 bits.
var ErrInvalidKeySize = errors.New("camellia/keygen: key size must be 128, 192, or 256 bits")

// GenerateKey reads a key of the given size in bits from r. A bits value of zero selects DefaultBits, and a nil r
// selects crypto/rand.Reader.
func GenerateKey(r io.Reader, bits int) ([]byte, error) {
	if bits == 0 {
		bits = DefaultBits
	}

	switch bits {
	case 128, 192, 256:
	default:
		return nil, fmt.Errorf("%w: got %d", ErrInvalidKeySize, bits)
	}

	if r == nil {
		r = rand.Reader
	}

	key := make([]byte, bits/8)
	if _, err := io.ReadFull(r, key); err != nil {
		return nil, fmt.Errorf("camellia/keygen: reading key: %w", err)
	}
	return key, nil
}
