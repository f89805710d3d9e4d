package probe

import (
	"encoding/hex"
	"errors"
	"fmt"
	"hash"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"
)

// ErrUnknownAlgorithm is returned by Hash for an unsupported algorithm name.
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

// Supported digest algorithms.
const (
	AlgoBLAKE3 = "blake3"
	AlgoXXHash = "xxhash"
)

// Algorithms lists the names accepted by Hash.
func Algorithms() []string {
	return []string{AlgoBLAKE3, AlgoXXHash}
}

func newHash(algo string) (hash.Hash, error) {
	switch algo {
	case AlgoBLAKE3:
		return blake3.New(), nil
	case AlgoXXHash:
		return xxhash.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
}

// Hash computes the digest of the file at path, returning it hex-encoded.
func Hash(path, algo string) (string, error) {
	h, err := newHash(algo)
	if err != nil {
		return "", err
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buf := make([]byte, 32*1024)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
