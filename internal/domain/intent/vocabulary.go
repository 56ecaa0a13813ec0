package intent

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Type identifies an intent category.
type Type string

const (
	TypeLogin     Type = "login"
	TypeDashboard Type = "dashboard"
	TypeList      Type = "list"
	TypeTable     Type = "table"
	TypeForm      Type = "form"
	TypeButton    Type = "button"
	TypeNavbar    Type = "navbar"

	// TypeUnknown is the fallback when no vocabulary entry matches.
	TypeUnknown Type = "unknown"
)

// Entry maps one intent type to its synonym phrases. Synonyms are checked in
// declared order; longer phrases should come before their prefixes so that
// word-bounded matches win over substring matches of a shorter synonym.
type Entry struct {
	Type     Type     `yaml:"type" json:"type"`
	Synonyms []string `yaml:"synonyms" json:"synonyms"`
}

// Vocabulary is an ordered keyword table. Entry order determines the order
// of extracted intents.
type Vocabulary []Entry

// DefaultVocabulary returns the built-in keyword table. It is constructed
// fresh on each call so callers can never mutate shared state.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		{TypeLogin, []string{"login", "log in", "sign in", "signin", "sign up", "signup", "authentication", "auth"}},
		{TypeDashboard, []string{"dashboard", "home screen", "overview", "admin panel"}},
		{TypeList, []string{"list", "listing", "feed", "items"}},
		{TypeTable, []string{"table", "grid", "spreadsheet", "data view"}},
		{TypeForm, []string{"form", "input fields", "survey", "submit"}},
		{TypeButton, []string{"button", "call to action", "cta"}},
		{TypeNavbar, []string{"navbar", "navigation", "nav bar", "menu", "header"}},
	}
}

// LoadVocabulary reads a keyword table from a YAML file. The file holds a
// list of entries in the same shape as Entry:
//
//	- type: login
//	  synonyms: ["login", "sign in"]
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	var vocab Vocabulary
	if err := yaml.Unmarshal(data, &vocab); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file: %w", err)
	}

	if err := vocab.Validate(); err != nil {
		return nil, fmt.Errorf("invalid vocabulary file %s: %w", path, err)
	}

	return vocab, nil
}

// Validate checks that the table is usable for extraction.
func (v Vocabulary) Validate() error {
	if len(v) == 0 {
		return fmt.Errorf("vocabulary has no entries")
	}

	seen := make(map[Type]bool, len(v))
	for i, entry := range v {
		if entry.Type == "" {
			return fmt.Errorf("entry %d: type is required", i)
		}
		if entry.Type == TypeUnknown {
			return fmt.Errorf("entry %d: %q is reserved for the fallback intent", i, TypeUnknown)
		}
		if seen[entry.Type] {
			return fmt.Errorf("entry %d: duplicate type %q", i, entry.Type)
		}
		seen[entry.Type] = true

		if len(entry.Synonyms) == 0 {
			return fmt.Errorf("entry %d (%s): at least one synonym is required", i, entry.Type)
		}
		for j, syn := range entry.Synonyms {
			if syn == "" {
				return fmt.Errorf("entry %d (%s): synonym %d is empty", i, entry.Type, j)
			}
		}
	}

	return nil
}
