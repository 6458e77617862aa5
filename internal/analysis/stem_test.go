package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStem(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"developer", "develop"},
		{"developed", "develop"},
		{"developing", "develop"},
		{"testing", "test"},
		{"skills", "skill"},
		{"libraries", "librar"},
		{"optimization", "optim"},
		{"management", "manag"},
		{"python", "python"},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, Stem(tt.word))
		})
	}
}

func TestStem_Lowercases(t *testing.T) {
	assert.Equal(t, "develop", Stem("Developer"))
}

func TestStem_ShortStemKeptWhole(t *testing.T) {
	// Stripping would leave two characters or fewer, so the word is kept
	assert.Equal(t, "led", Stem("led"))
	assert.Equal(t, "aws", Stem("aws"))
}
