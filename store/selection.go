package store

import (
	"errors"
	"strconv"
	"strings"
)

// NoSelection is the sentinel meaning "perform no action".
const NoSelection = 0

// ParseSelection turns one line of user input into a 1-based selection within
// [1, max]. One leading '+' is accepted. Empty or non-numeric input yields
// NoSelection without an error.
// A number above max yields NoSelection and a *SelectionError, which callers
// report and otherwise treat as a cancellation.
func ParseSelection(input string, max int) (int, error) {
	text := strings.TrimSpace(input)
	n, err := strconv.ParseUint(strings.TrimPrefix(text, "+"), 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return NoSelection, &SelectionError{Input: text, Max: max}
		}
		return NoSelection, nil
	}
	if n > uint64(max) {
		return NoSelection, &SelectionError{Input: text, Max: max}
	}
	return int(n), nil
}
