// Command camellia_kat checks the Camellia implementation against a file of known-answer vectors.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/codahale/camellia"
	"github.com/codahale/camellia/kat"
)

func main() {
	log := slog.New(slog.Default().Handler())

	vectorsPath := flag.String("vectors", "", "the vector file to check (defaults to the built-in vectors)")
	root := flag.String("root", "", "resolve the vector file inside this directory")
	flag.Parse()

	var (
		vectors []kat.Vector
		err     error
	)
	if *vectorsPath == "" {
		vectors, err = kat.Builtin()
	} else {
		vectors, err = kat.Load(kat.Filesystem(*root), *vectorsPath)
	}
	if err != nil {
		log.Error("failed to load vectors", "err", err)
		os.Exit(1)
	}
	log.Info("loaded vectors", "count", len(vectors), "constant_time", camellia.ConstantTime)

	failed := 0
	for _, v := range vectors {
		if err := kat.Verify(v); err != nil {
			log.Error("vector failed", "name", v.Name, "err", err)
			failed++
			continue
		}
		log.Info("vector passed", "name", v.Name, "key_bits", len(v.Key)*8)
	}

	log.Info("finished", "total", len(vectors), "passed", len(vectors)-failed, "failed", failed)
	if failed > 0 {
		os.Exit(1)
	}
}
