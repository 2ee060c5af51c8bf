package store

import (
	"strings"

	"github.com/Tourelou/mdp/internal/util"
)

// Match is one line selected by a scan.
type Match struct {
	// Position is the 1-based display slot shown to the user.
	Position int
	// Index is the 0-based position of the line in the store.
	Index     int
	Record    Record
	Malformed bool
}

// Matches is the ordered result of a scan. Element k has Position k+1, so a
// displayed number always resolves to the line shown next to it, malformed
// lines included.
type Matches []Match

// Scan returns every line whose case-folded text contains the case-folded
// pattern, in store order.
func (s *Store) Scan(pattern string) Matches {
	needle := util.Lower(pattern)
	var out Matches
	for i, line := range s.lines {
		if !strings.Contains(util.Lower(line), needle) {
			continue
		}
		rec, ok := Decode(line)
		out = append(out, Match{
			Position:  len(out) + 1,
			Index:     i,
			Record:    rec,
			Malformed: !ok,
		})
	}
	return out
}

// Indices returns the global store indices of m in order.
func (m Matches) Indices() []int {
	idx := make([]int, len(m))
	for i, match := range m {
		idx[i] = match.Index
	}
	return idx
}

// At resolves a 1-based selection. ok is false for the sentinel or any value
// outside the match set.
func (m Matches) At(selection int) (Match, bool) {
	if selection < 1 || selection > len(m) {
		return Match{}, false
	}
	return m[selection-1], true
}
