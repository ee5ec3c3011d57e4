package uniuri_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Greengage-project/interlinker-ceditor/internal/uniuri"
)

func TestNewMapper(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		mapper := uniuri.NewMapper()

		assert.Len(t, mapper, uniuri.MapperLen)

		for _, r := range mapper {
			if r < 'a' || r > 'z' {
				t.Fatalf("mapper %q contains non lowercase rune %q", mapper, r)
			}
		}

		assert.False(t, seen[mapper], "mapper %q generated twice", mapper)
		seen[mapper] = true
	}
}

func TestNewLenChars(t *testing.T) {
	tests := []struct {
		name   string
		length int
		chars  []byte
	}{
		{name: "standard chars", length: uniuri.StdLen, chars: uniuri.StdChars},
		{name: "single length", length: 1, chars: uniuri.LowerChars},
		{name: "long token", length: 256, chars: uniuri.StdChars},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := uniuri.NewLenChars(tt.length, tt.chars)

			assert.Len(t, out, tt.length)

			for _, r := range out {
				if !strings.ContainsRune(string(tt.chars), r) {
					t.Fatalf("token %q contains rune %q outside charset", out, r)
				}
			}
		})
	}
}

func TestNewLenCharsZeroLength(t *testing.T) {
	assert.Empty(t, uniuri.NewLenChars(0, uniuri.StdChars))
}
