package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateShareCode(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code := GenerateShareCode()
		assert.Len(t, code, ShareCodeLength)
		assert.True(t, IsValidShareCode(code), "generated code %q must validate", code)
		seen[code] = true
	}
	// 100 draws from a 2^46 keyspace colliding would point at a broken
	// generator.
	assert.Greater(t, len(seen), 95)
}

func TestShareCodeAlphabetExcludesAmbiguousGlyphs(t *testing.T) {
	for _, glyph := range "0O1lIo" {
		assert.NotContains(t, shareCodeAlphabet, string(glyph))
	}
	assert.Len(t, shareCodeAlphabet, 56)
}

func TestIsValidShareCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"valid mixed case", "aB3xK9mP", true},
		{"valid all lowercase", "abcdefgh", true},
		{"valid digits", "23456789", true},
		{"too short", "aB3xK9m", false},
		{"too long", "aB3xK9mPq", false},
		{"empty", "", false},
		{"contains zero", "aB30K9mP", false},
		{"contains capital O", "aBOxK9mP", false},
		{"contains one", "aB31K9mP", false},
		{"contains lowercase l", "aBlxK9mP", false},
		{"contains capital I", "aBIxK9mP", false},
		{"contains lowercase o", "aBoxK9mP", false},
		{"contains symbol", "aB3xK9m!", false},
		{"contains space", "aB3x K9m", false},
		{"unicode letter", "aB3xK9mÄ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidShareCode(tt.code))
		})
	}
}

func TestGeneratedCodesStayInAlphabet(t *testing.T) {
	for i := 0; i < 50; i++ {
		for _, ch := range GenerateShareCode() {
			assert.True(t, strings.ContainsRune(shareCodeAlphabet, ch))
		}
	}
}
