package store

import "fmt"

// Chooser presents matches to the user and returns their 1-based selection,
// or NoSelection. An error from the chooser aborts the operation with the
// store untouched.
type Chooser func(matches Matches) (int, error)

// Removal describes the line taken out by Delete.
type Removal struct {
	Match Match
	Line  string
}

// Delete scans for pattern, asks choose for one of the matches and removes
// exactly that line. The store is modified only when a Removal is returned
// with a nil error; the caller must then persist it.
func (s *Store) Delete(pattern string, choose Chooser) (Removal, error) {
	match, err := s.choose(pattern, choose)
	if err != nil {
		return Removal{}, err
	}
	line, err := s.Remove(match.Index)
	if err != nil {
		return Removal{}, err
	}
	return Removal{Match: match, Line: line}, nil
}

// Find scans for pattern and returns the well-formed record the user picks.
// A malformed pick is returned together with ErrMalformedRecord.
func (s *Store) Find(pattern string, choose Chooser) (Match, error) {
	match, err := s.choose(pattern, choose)
	if err != nil {
		return Match{}, err
	}
	if match.Malformed {
		return match, fmt.Errorf("line %d: %w", match.Index+1, ErrMalformedRecord)
	}
	return match, nil
}

func (s *Store) choose(pattern string, choose Chooser) (Match, error) {
	matches := s.Scan(pattern)
	if len(matches) == 0 {
		return Match{}, ErrNoMatch
	}
	selection, err := choose(matches)
	if err != nil {
		return Match{}, err
	}
	match, ok := matches.At(selection)
	if !ok {
		return Match{}, ErrCancelled
	}
	return match, nil
}
