package internal

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig_RedactedTermList(t *testing.T) {
	req := require.New(t)

	tests := []struct {
		name     string
		raw      string
		expected []string
	}{
		{name: "Empty setting", raw: "", expected: nil},
		{name: "Single term", raw: "hunter2", expected: []string{"hunter2"}},
		{name: "Multiple terms", raw: "hunter2,apikey", expected: []string{"hunter2", "apikey"}},
		{name: "Spaces and blanks dropped", raw: " hunter2 , , apikey ,", expected: []string{"hunter2", "apikey"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := Config{RedactedTerms: tt.raw}
			req.Equal(tt.expected, config.RedactedTermList(), "raw=%q", tt.raw)
		})
	}
}

func TestCharacterRune(t *testing.T) {
	req := require.New(t)

	r, err := CharacterRune("*")
	req.NoError(err)
	req.Equal('*', r)

	// Multi-byte characters are still a single rune.
	r, err = CharacterRune("█")
	req.NoError(err)
	req.Equal('█', r)

	_, err = CharacterRune("")
	req.Error(err)

	_, err = CharacterRune("**")
	req.Error(err)
}
