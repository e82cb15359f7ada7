// InternMatch - Internship Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/internmatch

package recommend

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Jaccard returns |A ∩ B| / |A ∪ B| treating both slices as sets.
// Returns 0 when either side is empty.
func Jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	setA := make(map[string]struct{}, len(a))
	for _, v := range a {
		setA[v] = struct{}{}
	}
	setB := make(map[string]struct{}, len(b))
	for _, v := range b {
		setB[v] = struct{}{}
	}

	intersection := 0
	for v := range setA {
		if _, ok := setB[v]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// TokenSetRatio compares two strings as sets of words and returns a
// similarity in [0, 1]. Word order and repetition do not matter.
//
// Both strings are reduced to lowercase alphanumeric words. The shared words
// and each side's remaining words are sorted and joined, and the best of the
// three pairwise indel ratios is returned, rounded to whole percent.
func TokenSetRatio(a, b string) float64 {
	a, b = processFuzzy(a), processFuzzy(b)
	if a == "" || b == "" {
		return 0
	}

	tokensA := tokenSet(a)
	tokensB := tokenSet(b)

	var shared, onlyA, onlyB []string
	for t := range tokensA {
		if _, ok := tokensB[t]; ok {
			shared = append(shared, t)
		} else {
			onlyA = append(onlyA, t)
		}
	}
	for t := range tokensB {
		if _, ok := tokensA[t]; !ok {
			onlyB = append(onlyB, t)
		}
	}
	sort.Strings(shared)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	sect := strings.Join(shared, " ")
	combinedA := strings.TrimSpace(sect + " " + strings.Join(onlyA, " "))
	combinedB := strings.TrimSpace(sect + " " + strings.Join(onlyB, " "))

	best := max(
		indelRatio(sect, combinedA),
		indelRatio(sect, combinedB),
		indelRatio(combinedA, combinedB),
	)
	return best / 100
}

// processFuzzy drops Latin-1 supplement runes, replaces every other
// non-word rune with a space, lowercases and trims.
func processFuzzy(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 128 && r < 256:
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			sb.WriteRune(unicode.ToLower(r))
		default:
			sb.WriteByte(' ')
		}
	}
	return strings.TrimSpace(sb.String())
}

func tokenSet(s string) map[string]struct{} {
	fields := strings.Fields(s)
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

// indelRatio returns 100 * 2*LCS(a, b) / (len(a)+len(b)) rounded half to
// even, or 0 when either string is empty.
func indelRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	lcs := longestCommonSubsequence(ra, rb)
	return math.RoundToEven(100 * float64(2*lcs) / float64(len(ra)+len(rb)))
}

func longestCommonSubsequence(a, b []rune) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			switch {
			case a[i-1] == b[j-1]:
				curr[j] = prev[j-1] + 1
			case prev[j] >= curr[j-1]:
				curr[j] = prev[j]
			default:
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
