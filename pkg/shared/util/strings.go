package util

import (
	"strings"
)

// SplitAndTrim splits a comma separated list, trimming blanks and dropping empty items.
func SplitAndTrim(input string) []string {
	result := make([]string, 0)
	for _, part := range strings.Split(input, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
