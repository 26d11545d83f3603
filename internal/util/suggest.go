package util

import (
	"github.com/agext/levenshtein"
)

// Suggest returns the candidate closest to input by edit distance, provided the distance is at
// most maxDistance. Ties go to the earlier candidate.
func Suggest(input string, candidates []string, maxDistance int) (string, bool) {
	best := ""
	bestDistance := maxDistance + 1
	for _, c := range candidates {
		if c == input {
			continue
		}
		if d := levenshtein.Distance(input, c, nil); d < bestDistance {
			best, bestDistance = c, d
		}
	}

	return best, best != ""
}

// Contains checks if a string slice contains a value
func Contains(slice []string, value string) bool {
	for _, v := range slice {
		if v == value {
			return true
		}
	}

	return false
}
