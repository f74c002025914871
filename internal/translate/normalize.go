package translate

import "strings"

// Normalize lowercases the input, strips punctuation except internal
// hyphens, and splits it into word tokens. Empty or whitespace-only input
// yields an empty slice, which is a valid input for the rest of the
// pipeline, not an error.
func Normalize(text string) []string {
	lower := strings.ToLower(text)

	var b strings.Builder

	b.Grow(len(lower))

	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte(' ')
		}
	}

	fields := strings.Fields(b.String())

	tokens := make([]string, 0, len(fields))

	for _, f := range fields {
		// Hyphens survive only between word characters.
		f = strings.Trim(f, "-")
		if f != "" {
			tokens = append(tokens, f)
		}
	}

	return tokens
}
