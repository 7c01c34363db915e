package gatewayutil

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeDescription(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Plain text unchanged", input: "Overdue book", expected: "Overdue book"},
		{name: "Markup characters replaced", input: `Overdue <book> & "more"`, expected: "Overdue book more"},
		{name: "Control characters dropped", input: "Overdue\x00\tbook\n", expected: "Overdue book"},
		{name: "Whitespace collapsed", input: "Overdue    book", expected: "Overdue book"},
		{name: "Empty falls back", input: "", expected: "Library fee"},
		{name: "Only rejected characters falls back", input: "<>&\"", expected: "Library fee"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeDescription(tc.input))
		})
	}
}

func TestSanitizeDescriptionClampsLength(t *testing.T) {
	long := strings.Repeat("a", 300)
	assert.Len(t, SanitizeDescription(long), 100)
}

func TestSanitizeDescriptionClampsOnRuneBoundary(t *testing.T) {
	// Multibyte titles must not be cut mid-rune into invalid UTF-8.
	long := strings.Repeat("ü", 150)

	got := SanitizeDescription(long)

	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("ü", 100), got)
}

func TestProductCode(t *testing.T) {
	assert.Equal(t, "FINE-OVERDUE", ProductCode("overdue"))
	assert.Equal(t, "FINE-OVERDUE", ProductCode("OVERDUE"))
	assert.Equal(t, "FINE-LOST", ProductCode("lost"))
	assert.Equal(t, "FINE-HOLD", ProductCode("hold"))
	assert.Equal(t, "FEE", ProductCode("fee"))
	assert.Equal(t, "FEE", ProductCode("something-new"))
	assert.Equal(t, "FEE", ProductCode(""))
}
