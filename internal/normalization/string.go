package normalization

import (
	"strings"
)

func ParseInputString(input string) string {
	normalized := strings.ToLower(strings.TrimSpace(input))
	return normalized
}

// TrimInputString keeps case but drops surrounding whitespace. Goal titles and
// chat messages go through here so user-visible text is not lowercased.
func TrimInputString(input string) string {
	return strings.TrimSpace(input)
}
