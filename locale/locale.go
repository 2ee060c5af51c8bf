// Package locale holds the user-facing message tables. Tables are embedded
// TOML files loaded once at startup; keys missing from a translation fall
// back to English.
package locale

import (
	"embed"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"
)

//go:embed *.toml
var tables embed.FS

// Supported lists the available tables; the first one is the fallback.
var Supported = []language.Tag{language.English, language.French, language.Spanish}

var matcher = language.NewMatcher(Supported)

// Catalog is one message table. Fields holding fmt verbs document their
// arguments in en.toml.
type Catalog struct {
	Tag language.Tag `toml:"-"`

	GeneratedPassword string `toml:"generated_password"`
	NoMatch           string `toml:"no_match"`
	LegacyEntry       string `toml:"legacy_entry"`
	AskCopy           string `toml:"ask_copy"`
	AskDelete         string `toml:"ask_delete"`
	IndexTooBig       string `toml:"index_too_big"`
	Cancelled         string `toml:"cancelled"`
	Copied            string `toml:"copied"`
	CopyFailed        string `toml:"copy_failed"`
	NoClipboard       string `toml:"no_clipboard"`
	MalformedSelected string `toml:"malformed_selected"`
	Deleted           string `toml:"deleted"`
	DeletedLegacy     string `toml:"deleted_legacy"`
	Added             string `toml:"added"`
	AskPassword       string `toml:"ask_password"`
	ConfirmPassword   string `toml:"confirm_password"`
	PasswordMismatch  string `toml:"password_mismatch"`
	PasswordRequired  string `toml:"password_required"`
	NoOpenSSL         string `toml:"no_openssl"`
	FileIsDir         string `toml:"file_is_dir"`
	ParentMissing     string `toml:"parent_missing"`
	ExecPath          string `toml:"exec_path"`
	StoreMissing      string `toml:"store_missing"`
	CreatingStore     string `toml:"creating_store"`
	CipherFailed      string `toml:"cipher_failed"`
	InvalidEntry      string `toml:"invalid_entry"`
	Version           string `toml:"version"`
}

// Load returns the catalog best matching code, e.g. "fr", "fr_CA.UTF-8" or
// "es-MX". Unknown codes select English.
func Load(code string) (*Catalog, error) {
	tag := Match(code)

	var cat Catalog
	if err := decode(language.English, &cat); err != nil {
		return nil, err
	}
	if tag != language.English {
		if err := decode(tag, &cat); err != nil {
			return nil, err
		}
	}
	cat.Tag = tag
	return &cat, nil
}

// Match maps a locale code to one of Supported.
func Match(code string) language.Tag {
	code = Clean(code)
	if code == "" {
		return Supported[0]
	}
	_, idx := language.MatchStrings(matcher, code)
	return Supported[idx]
}

// Clean turns a POSIX locale such as "fr_CA.UTF-8@euro" into a BCP 47 code.
// "C" and "POSIX" yield "".
func Clean(code string) string {
	if i := strings.IndexAny(code, ".@"); i >= 0 {
		code = code[:i]
	}
	code = strings.ReplaceAll(strings.TrimSpace(code), "_", "-")
	if code == "C" || code == "POSIX" {
		return ""
	}
	return code
}

// Detect reads LC_ALL, LANG and LANGUAGE in that order and returns the first
// non-empty value.
func Detect(getenv func(string) string) string {
	for _, key := range []string{"LC_ALL", "LANG", "LANGUAGE"} {
		if v := getenv(key); v != "" {
			// LANGUAGE may hold a priority list such as "fr:en".
			v, _, _ = strings.Cut(v, ":")
			return v
		}
	}
	return ""
}

func decode(tag language.Tag, cat *Catalog) error {
	base, _ := tag.Base()
	name := base.String() + ".toml"
	data, err := tables.ReadFile(name)
	if err != nil {
		return fmt.Errorf("reading locale table %s: %w", name, err)
	}
	if _, err := toml.Decode(string(data), cat); err != nil {
		return fmt.Errorf("parsing locale table %s: %w", name, err)
	}
	return nil
}
