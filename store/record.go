// Package store holds the decrypted credential list: one record per line,
// secret and description joined by a reserved delimiter.
package store

import "strings"

// Delimiter separates the secret from the description inside a line.
const Delimiter = "∫∆∫"

// Record is one secret/description pair.
type Record struct {
	Secret      string
	Description string
}

// Encode joins secret and description into a store line. It does not validate;
// use Record.Validate before writing user-supplied fields.
func Encode(secret, description string) string {
	return secret + Delimiter + description
}

// Decode splits line on the first delimiter. ok is false for lines without one.
func Decode(line string) (rec Record, ok bool) {
	secret, description, ok := strings.Cut(line, Delimiter)
	if !ok {
		return Record{}, false
	}
	return Record{Secret: secret, Description: description}, true
}

// Line returns the encoded form of r.
func (r Record) Line() string {
	return Encode(r.Secret, r.Description)
}

// Validate rejects fields that would make the encoded line ambiguous.
func (r Record) Validate() error {
	if err := validateField(r.Secret, "secret"); err != nil {
		return err
	}
	return validateField(r.Description, "description")
}

func validateField(value, label string) error {
	if value == "" {
		return fieldErrorf("%s must not be empty", label)
	}
	if strings.Contains(value, Delimiter) {
		return fieldErrorf("%s contains the reserved delimiter %q", label, Delimiter)
	}
	if strings.ContainsAny(value, "\r\n") {
		return fieldErrorf("%s contains a line break", label)
	}
	return nil
}
