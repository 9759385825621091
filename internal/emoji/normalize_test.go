package emoji

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain emoji", "\U0001F600", "\U0001F600"},
		{"keycap sequence kept whole", "1️⃣", "1️⃣"},
		{"flag sequence", "\U0001F1E6\U0001F1E8", "\U0001F1E6\U0001F1E8"},
		// U+0903 is a spacing combining mark (Mc); standalone it forms a
		// cluster of nothing but Mc codepoints and is dropped.
		{"lone spacing combining mark", "ः", ""},
		// Attached to a base it shares a cluster with a non-Mc codepoint
		// and the cluster survives intact.
		{"mark attached to base", "aः", "aः"},
		{"ascii text", "grinning face", "grinning face"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeKey(tt.input))
		})
	}
}

func TestNormalizeKeyIdempotent(t *testing.T) {
	samples := []string{
		"",
		"\U0001F600",
		"1️⃣",
		"ः",
		"aःbः",
		"\U0001F44D\U0001F3FB",
		"plain",
	}
	for _, s := range samples {
		once := NormalizeKey(s)
		assert.Equal(t, once, NormalizeKey(once), "normalize must be idempotent for %+q", s)
	}
}

func TestLiteralKey(t *testing.T) {
	lit := UnicodeLiteral([]rune{0x1F600})
	assert.Equal(t, "\U0001F600", lit.Key())

	keycap := UnicodeLiteral([]rune{0x31, 0xFE0F, 0x20E3})
	assert.Equal(t, NormalizeKey("1️⃣"), keycap.Key())
}
