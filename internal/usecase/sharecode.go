package usecase

import (
	"crypto/rand"
	"math/big"
)

// shareCodeAlphabet excludes visually ambiguous glyphs (0/O, 1/l/I, o).
// 56 characters by 8 positions gives a keyspace of 56^8 (~2^46); the code
// is the only secret protecting a link, so it must come from a CSPRNG.
const shareCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghjkmnpqrstuvwxyz23456789"

// ShareCodeLength is the fixed length of every share code.
const ShareCodeLength = 8

// GenerateShareCode produces a new share code with each character drawn
// uniformly from the alphabet via crypto/rand.
func GenerateShareCode() string {
	alphabetSize := big.NewInt(int64(len(shareCodeAlphabet)))
	b := make([]byte, ShareCodeLength)
	for i := range b {
		idx, _ := rand.Int(rand.Reader, alphabetSize)
		b[i] = shareCodeAlphabet[idx.Int64()]
	}
	return string(b)
}

// IsValidShareCode reports whether the input has the exact length and
// alphabet of a share code. It runs before any storage lookup so malformed
// probes are rejected without touching the database.
func IsValidShareCode(code string) bool {
	if len(code) != ShareCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if !isShareCodeChar(code[i]) {
			return false
		}
	}
	return true
}

func isShareCodeChar(c byte) bool {
	for i := 0; i < len(shareCodeAlphabet); i++ {
		if shareCodeAlphabet[i] == c {
			return true
		}
	}
	return false
}
