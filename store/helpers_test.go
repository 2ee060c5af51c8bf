package store

import "strings"

func containsFold(line, pattern string) bool {
	return strings.Contains(strings.ToLower(line), strings.ToLower(pattern))
}

// chooseInput simulates a user typing input at the selection prompt.
func chooseInput(input string) Chooser {
	return func(m Matches) (int, error) {
		return ParseSelection(input, len(m))
	}
}
