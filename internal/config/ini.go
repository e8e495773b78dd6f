package config

import "strings"

// defaultSection is the only INI section whose keys become settings.
const defaultSection = "[DEFAULT]"

// ParseINI extracts key/value pairs from INI-like text. Parsing is permissive
// and cannot fail: blank lines, comment lines (# or ;), section headers other
// than [DEFAULT], and lines without a = or : delimiter are skipped. Keys are
// case-sensitive and preserved as written; later duplicates win. Keys that
// appear before any section header are treated as [DEFAULT] keys.
func ParseINI(raw string) map[string]string {
	settings := make(map[string]string)
	recognized := true

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			recognized = line == defaultSection
			continue
		}
		if !recognized {
			continue
		}

		idx := strings.IndexAny(line, "=:")
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		if key == "" {
			continue
		}
		settings[key] = strings.TrimSpace(line[idx+1:])
	}

	return settings
}

// StripQuotes removes one pair of surrounding quotes when the value both
// starts and ends with the same quote character. Mismatched or unterminated
// quotes are preserved unchanged.
func StripQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}

// TruthyBool reports whether s spells an affirmative boolean. Exactly "true",
// "yes", "1" and "on" count, case-insensitively and ignoring surrounding
// whitespace; everything else, including the empty string, is false.
func TruthyBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "1", "on":
		return true
	}
	return false
}
