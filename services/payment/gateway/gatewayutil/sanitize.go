package gatewayutil

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxDescriptionLength = 100

// SanitizeDescription strips characters payment providers commonly reject
// from line item descriptions and clamps the length. Composed by each
// adapter rather than baked into one.
func SanitizeDescription(description string) string {
	var b strings.Builder
	for _, r := range description {
		switch {
		case unicode.IsControl(r):
			// dropped
		case r == '<' || r == '>' || r == '&' || r == '"':
			b.WriteRune(' ')
		default:
			b.WriteRune(r)
		}
	}

	// Clamp on rune boundaries; a byte slice could split a multibyte rune
	// and send invalid UTF-8 to the provider.
	clean := strings.Join(strings.Fields(b.String()), " ")
	if utf8.RuneCountInString(clean) > maxDescriptionLength {
		runes := []rune(clean)
		clean = string(runes[:maxDescriptionLength])
	}
	if clean == "" {
		clean = "Library fee"
	}
	return clean
}

// ProductCode maps a fine type to the product code providers expect on a
// line item. Unknown types fall back to the generic fee code.
func ProductCode(fineType string) string {
	switch strings.ToLower(fineType) {
	case "overdue":
		return "FINE-OVERDUE"
	case "lost":
		return "FINE-LOST"
	case "hold":
		return "FINE-HOLD"
	case "fee":
		return "FEE"
	default:
		return "FEE"
	}
}
