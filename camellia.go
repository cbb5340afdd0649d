// Package camellia implements the Camellia block cipher as specified in [RFC 3713].
//
// Camellia has a 128-bit block and accepts 128-, 192-, and 256-bit keys. A *Cipher satisfies [cipher.Block], so any
// mode of operation in crypto/cipher can drive it.
//
// By default the F function indexes its S-boxes with secret-dependent bytes, which leaks timing information through
// the CPU cache to an attacker sharing the machine. Building with the camellia_consttime tag replaces each lookup
// with a scan of the whole table. It is much slower, and [ConstantTime] reports which implementation was compiled.
//
// [RFC 3713]: https://www.rfc-editor.org/rfc/rfc3713
package camellia

import (
	"crypto/cipher"
	"errors"
	"fmt"
	"strconv"
)

// BlockSize is the Camellia block size in bytes.
const BlockSize = 16

var (
	// ErrInvalidKey is matched by errors returned when a key is not 16, 24, or 32 bytes long.
	ErrInvalidKey = errors.New("camellia: invalid key")

	// ErrInvalidBlockLength is returned when a buffer passed to EncryptBlock or DecryptBlock is not exactly BlockSize
	// bytes long.
	ErrInvalidBlockLength = errors.New("camellia: invalid block length")
)

// KeySizeError is returned by NewCipher for keys of an unsupported length.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "camellia: invalid key size " + strconv.Itoa(int(k))
}

// Is reports whether target is ErrInvalidKey.
func (k KeySizeError) Is(target error) bool {
	return target == ErrInvalidKey
}

// A Cipher is an instance of Camellia using a particular key. It is immutable and safe for concurrent use.
type Cipher struct {
	sk      subkeys
	keySize int
}

// NewCipher creates and returns a new Cipher. The key argument should be 16, 24, or 32 bytes long to select
// Camellia-128, Camellia-192, or Camellia-256.
func NewCipher(key []byte) (*Cipher, error) {
	sk, err := schedule(key)
	if err != nil {
		return nil, err
	}
	return &Cipher{sk: sk, keySize: len(key)}, nil
}

// BlockSize returns BlockSize.
func (c *Cipher) BlockSize() int { return BlockSize }

// KeySize returns the length of the cipher's key in bytes.
func (c *Cipher) KeySize() int { return c.keySize }

// Encrypt encrypts the first block of src into dst. It panics if either slice is shorter than BlockSize.
func (c *Cipher) Encrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("camellia: input not full block")
	}
	if len(dst) < BlockSize {
		panic("camellia: output not full block")
	}
	encryptBlock(&c.sk, dst, src)
}

// Decrypt decrypts the first block of src into dst. It panics if either slice is shorter than BlockSize.
func (c *Cipher) Decrypt(dst, src []byte) {
	if len(src) < BlockSize {
		panic("camellia: input not full block")
	}
	if len(dst) < BlockSize {
		panic("camellia: output not full block")
	}
	decryptBlock(&c.sk, dst, src)
}

// EncryptBlock encrypts the block src into dst. Unlike Encrypt, it returns ErrInvalidBlockLength instead of panicking
// if either slice is not exactly BlockSize bytes long, and dst is left untouched.
func (c *Cipher) EncryptBlock(dst, src []byte) error {
	if err := checkBlocks(dst, src); err != nil {
		return err
	}
	encryptBlock(&c.sk, dst, src)
	return nil
}

// DecryptBlock decrypts the block src into dst. Unlike Decrypt, it returns ErrInvalidBlockLength instead of panicking
// if either slice is not exactly BlockSize bytes long, and dst is left untouched.
func (c *Cipher) DecryptBlock(dst, src []byte) error {
	if err := checkBlocks(dst, src); err != nil {
		return err
	}
	decryptBlock(&c.sk, dst, src)
	return nil
}

func checkBlocks(dst, src []byte) error {
	if len(src) != BlockSize {
		return fmt.Errorf("%w: input is %d bytes", ErrInvalidBlockLength, len(src))
	}
	if len(dst) != BlockSize {
		return fmt.Errorf("%w: output is %d bytes", ErrInvalidBlockLength, len(dst))
	}
	return nil
}

var _ cipher.Block = (*Cipher)(nil)
