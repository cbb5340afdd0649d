// Package kat loads and checks Camellia known-answer test vectors.
//
// Vector files are line-oriented. Each line is a TAG:VALUE pair, a comment introduced by '#', or blank. The tags are
// KEY, PLAINTEXT, and CIPHERTEXT, with hexadecimal values. A vector is complete as soon as all three tags have been
// seen; the key carries over to the next vector until another KEY line replaces it. Unknown tags are ignored.
//
// Plaintexts and ciphertexts may span several blocks, each of which is checked independently under the same key.
package kat

import (
	"bufio"
	"bytes"
	"embed"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/codahale/camellia"
	"github.com/spf13/afero"
)

const (
	tagKey        = "KEY"
	tagPlaintext  = "PLAINTEXT"
	tagCiphertext = "CIPHERTEXT"
)

// BuiltinName is the name of the embedded vector file.
const BuiltinName = "vectors/camellia-ecb.txt"

//go:embed vectors/camellia-ecb.txt
var builtin embed.FS

var (
	// ErrMalformed is returned for vector files or vectors which cannot be parsed or checked.
	ErrMalformed = errors.New("camellia/kat: malformed vector")

	// ErrMismatch is returned when the cipher's output differs from a vector's expected output.
	ErrMismatch = errors.New("camellia/kat: output mismatch")
)

// A Vector is a single known-answer test.
type Vector struct {
	Name       string
	Key        []byte
	Plaintext  []byte
	Ciphertext []byte
}

// Parse reads vectors from r.
func Parse(r io.Reader) ([]Vector, error) {
	var (
		vectors []Vector
		cur     Vector
		haveKey bool
		havePT  bool
		haveCT  bool
		lineNo  int
	)

	s := bufio.NewScanner(r)
	for s.Scan() {
		lineNo++

		line := s.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		tag, value, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}

		var dst *[]byte
		switch strings.TrimSpace(tag) {
		case tagKey:
			dst, haveKey = &cur.Key, true
		case tagPlaintext:
			dst, havePT = &cur.Plaintext, true
		case tagCiphertext:
			dst, haveCT = &cur.Ciphertext, true
		default:
			continue
		}

		b, err := hex.DecodeString(strings.TrimSpace(value))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformed, lineNo, err)
		}
		*dst = b

		if haveKey && havePT && haveCT {
			cur.Name = "ECB Test " + strconv.Itoa(len(vectors)+1)
			vectors = append(vectors, cur)
			cur = Vector{Key: cur.Key}
			havePT, haveCT = false, false
		}
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("camellia/kat: reading vectors: %w", err)
	}
	return vectors, nil
}

// Load reads vectors from the named file in fsys.
func Load(fsys afero.Fs, name string) ([]Vector, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("camellia/kat: opening vectors: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// Builtin returns the vectors embedded in the package: the RFC 3713 examples followed by vectors covering all-zero
// inputs and multi-block plaintexts for each key size.
func Builtin() ([]Vector, error) {
	return Load(afero.FromIOFS{FS: builtin}, BuiltinName)
}

// Filesystem returns a read-only view of the local filesystem. If root is not empty, names are resolved inside root
// and cannot escape it.
func Filesystem(root string) afero.Fs {
	fsys := afero.NewOsFs()
	if root != "" {
		fsys = afero.NewBasePathFs(fsys, root)
	}
	return afero.NewReadOnlyFs(fsys)
}

// Verify encrypts each plaintext block of v and decrypts each ciphertext block, comparing both against the vector.
func Verify(v Vector) error {
	c, err := camellia.NewCipher(v.Key)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMalformed, v.Name, err)
	}

	if len(v.Plaintext) == 0 || len(v.Plaintext)%camellia.BlockSize != 0 {
		return fmt.Errorf("%w: %s: plaintext is %d bytes, not a whole number of blocks",
			ErrMalformed, v.Name, len(v.Plaintext))
	}

	if len(v.Ciphertext) != len(v.Plaintext) {
		return fmt.Errorf("%w: %s: ciphertext is %d bytes, plaintext is %d",
			ErrMalformed, v.Name, len(v.Ciphertext), len(v.Plaintext))
	}

	out := make([]byte, camellia.BlockSize)
	for i := 0; i < len(v.Plaintext); i += camellia.BlockSize {
		pt := v.Plaintext[i : i+camellia.BlockSize]
		ct := v.Ciphertext[i : i+camellia.BlockSize]

		if err := c.EncryptBlock(out, pt); err != nil {
			return err
		}
		if !bytes.Equal(out, ct) {
			return fmt.Errorf("%w: %s: encrypt block %d: got %x, want %x",
				ErrMismatch, v.Name, i/camellia.BlockSize, out, ct)
		}

		if err := c.DecryptBlock(out, ct); err != nil {
			return err
		}
		if !bytes.Equal(out, pt) {
			return fmt.Errorf("%w: %s: decrypt block %d: got %x, want %x",
				ErrMismatch, v.Name, i/camellia.BlockSize, out, pt)
		}
	}

	return nil
}
