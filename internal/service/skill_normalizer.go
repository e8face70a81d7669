package service

import (
	"regexp"
	"strings"
)

var skillSeparators = regexp.MustCompile(`[,;/\n]+`)

// NormalizeSkill canonicalizes a single skill string for matching.
func NormalizeSkill(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SplitSkills tokenizes free text into normalized skills. Tokens are split on
// commas, semicolons, slashes and newlines; empty tokens are dropped. Order
// of the surviving tokens is preserved.
func SplitSkills(text string) []string {
	if text == "" {
		return []string{}
	}
	parts := skillSeparators.Split(text, -1)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := NormalizeSkill(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// DedupeSkills merges already-normalized skill lists into one list with set
// semantics, keeping first-seen order.
func DedupeSkills(lists ...[]string) []string {
	seen := make(map[string]bool)
	out := []string{}
	for _, list := range lists {
		for _, s := range list {
			if s == "" || seen[s] {
				continue
			}
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
