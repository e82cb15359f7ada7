// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package recommend

import "strings"

// aliases maps informal skill and interest names to their canonical form.
// Applied to profile tokens only.
var aliases = map[string]string{
	"py":      "python",
	"js":      "javascript",
	"reactjs": "react",
	"nodejs":  "node",
}

// NormalizeTokens trims and lowercases each value and drops empty ones.
// Order and duplicates are preserved.
func NormalizeTokens(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// SplitTokens splits a comma-separated field and normalizes the parts.
func SplitTokens(s string) []string {
	if s == "" {
		return nil
	}
	return NormalizeTokens(strings.Split(s, ","))
}

// ExpandAliases returns tokens with known aliases replaced by their
// canonical names. The input slice is not modified.
func ExpandAliases(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		if canonical, ok := aliases[t]; ok {
			out[i] = canonical
			continue
		}
		out[i] = t
	}
	return out
}

// normalizeText trims and lowercases a free-text field.
func normalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
