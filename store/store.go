package store

import (
	"fmt"
	"strings"
)

// Store is the ordered list of raw lines of a credential file. Malformed lines
// are kept verbatim. A Store is not safe for concurrent use.
type Store struct {
	lines []string
}

// New returns a Store holding a copy of lines.
func New(lines []string) *Store {
	return &Store{lines: append([]string(nil), lines...)}
}

// Len returns the number of lines.
func (s *Store) Len() int { return len(s.lines) }

// Line returns the raw line at index i.
func (s *Store) Line(i int) string { return s.lines[i] }

// Lines returns a copy of all lines in order.
func (s *Store) Lines() []string {
	return append([]string(nil), s.lines...)
}

// Add validates rec and appends it as a new line.
func (s *Store) Add(rec Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	s.lines = append(s.lines, rec.Line())
	return nil
}

// Remove deletes the line at global index i, shifting later lines down.
func (s *Store) Remove(i int) (string, error) {
	if i < 0 || i >= len(s.lines) {
		return "", fmt.Errorf("index %d out of bounds [0,%d)", i, len(s.lines))
	}
	line := s.lines[i]
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	return line, nil
}

// String joins the lines with newlines, the plaintext handed to the cipher.
func (s *Store) String() string {
	return strings.Join(s.lines, "\n")
}
