package hashing

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"go.dedis.ch/kyber/v4/suites"
)

// HexLen is the number of hex characters of a digest.
const HexLen = 64

// ZeroHash is the previous-hash of the genesis block.
var ZeroHash = strings.Repeat("0", HexLen)

var suite suites.Suite = suites.MustFind("Ed25519")

// Sum returns the hex digest of the canonical encoding of v.
func Sum(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode %T: %w", v, err)
	}
	return SumBytes(data), nil
}

// MustSum is like Sum but panics if v cannot be encoded.
// It is meant for types made only of strings and numbers.
func MustSum(v any) string {
	h, err := Sum(v)
	if err != nil {
		panic(err)
	}
	return h
}

// SumBytes digests raw bytes without any encoding step.
func SumBytes(data []byte) string {
	h := suite.Hash()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// IsHash reports whether s looks like a digest produced by this package.
func IsHash(s string) bool {
	if len(s) != HexLen {
		return false
	}
	for _, c := range s {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}
	return true
}
