package model

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSubject(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		key     string
		display string
	}{
		{"trims and lowercases", "  MATH  ", "math", "Math"},
		{"already normalized", "physics", "physics", "Physics"},
		{"blank input", "   ", "", ""},
		{"accented first letter", "économie", "économie", "Économie"},
		{"cjk subject", "数学", "数学", "数学"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key, display := NormalizeSubject(tc.raw)
			assert.Equal(t, tc.key, key)
			assert.Equal(t, tc.display, display)
			assert.True(t, utf8.ValidString(display), "display name must stay valid UTF-8")
		})
	}
}

func TestCapitalize_MultiByteFirstRune(t *testing.T) {
	assert.Equal(t, "Über", Capitalize("über"))
	assert.Equal(t, "数学", Capitalize("数学"))
	assert.True(t, utf8.ValidString(Capitalize("über")))
}
