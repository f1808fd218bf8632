package identifier_test

import (
	"strings"
	"testing"

	"common-games/feature/games/identifier"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  identifier.Kind
	}{
		{"Canonical starting 7", "76561198000000001", identifier.Canonical},
		{"Canonical starting 8", "86561198000000001", identifier.Canonical},
		{"Canonical starting 9", "96561198000000001", identifier.Canonical},
		{"17 digits starting 1", "16561198000000001", identifier.Vanity},
		{"17 digits starting 0", "06561198000000001", identifier.Vanity},
		{"Too short", "7656119800000001", identifier.Vanity},
		{"Too long", "765611980000000011", identifier.Vanity},
		{"Contains letter", "7656119800000000a", identifier.Vanity},
		{"Plain name", "gamertag", identifier.Vanity},
		{"Empty", "", identifier.Vanity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, identifier.Classify(tt.token))
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("All Valid", func(t *testing.T) {
		failures := identifier.Validate([]string{"76561198000000001", "gamertag"})
		assert.Empty(t, failures)
	})

	t.Run("Vanity Too Short", func(t *testing.T) {
		failures := identifier.Validate([]string{"ab"})
		assert.Len(t, failures, 1)
		assert.Equal(t, "ab", failures[0].Identifier)
		assert.Contains(t, failures[0].Message, "between 3 and 32")
	})

	t.Run("Vanity Too Long", func(t *testing.T) {
		failures := identifier.Validate([]string{strings.Repeat("a", 33)})
		assert.Len(t, failures, 1)
		assert.Contains(t, failures[0].Message, "between 3 and 32")
	})

	t.Run("Vanity Boundary Lengths", func(t *testing.T) {
		failures := identifier.Validate([]string{"abc", strings.Repeat("a", 32)})
		assert.Empty(t, failures)
	})

	t.Run("Vanity Not Alphanumeric", func(t *testing.T) {
		failures := identifier.Validate([]string{"bad%value1"})
		assert.Len(t, failures, 1)
		assert.Contains(t, failures[0].Message, "letters and digits")
	})

	t.Run("Valid Vanity", func(t *testing.T) {
		failures := identifier.Validate([]string{"gamer123"})
		assert.Empty(t, failures)
	})

	t.Run("All Failures Collected", func(t *testing.T) {
		failures := identifier.Validate([]string{"ab", "bad%value1", "gamertag"})
		assert.Len(t, failures, 2)
	})
}
