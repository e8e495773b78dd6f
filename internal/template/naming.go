package template

import (
	"strings"
	"unicode"
)

// DashName converts an application name to its hyphenated lowercase slug:
// spaces become hyphens and the whole name is lowercased.
func DashName(appName string) string {
	return strings.ToLower(strings.ReplaceAll(appName, " ", "-"))
}

// CapsName converts a hyphenated name into a single capitalized identifier:
// each hyphen-separated word is capitalized and the words are joined without
// a separator. Callers derive it from DashName so that spaced and dashed
// spellings of the same app name agree.
func CapsName(dashName string) string {
	words := strings.Split(dashName, "-")
	for i, word := range words {
		words[i] = capitalize(word)
	}
	return strings.Join(words, "")
}

// capitalize upper-cases the first rune of word and lower-cases the rest
func capitalize(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	out := make([]rune, len(runes))
	out[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		out[i] = unicode.ToLower(runes[i])
	}
	return string(out)
}
