// Command camellia_keygen prints a random Camellia key in hexadecimal.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/codahale/camellia/keygen"
)

func main() {
	log := slog.New(slog.Default().Handler())

	bits := flag.Int("bits", keygen.DefaultBits, "the key size in bits (128, 192, or 256)")
	flag.Parse()

	key, err := keygen.GenerateKey(nil, *bits)
	if err != nil {
		log.Error("failed to generate key", "err", err)
		os.Exit(1)
	}

	fmt.Println(hex.EncodeToString(key))
}
