// Package phrasebook holds the per-emotion tables used by pattern rewriting
// and general advice: phrase replacements, sentence endings and tips.
package phrasebook

import "strings"

// DefaultKey names the entry used for emotions without their own table.
const DefaultKey = "default"

// Replacement swaps every case-insensitive occurrence of Phrase for With.
type Replacement struct {
	Phrase string `yaml:"phrase" json:"phrase"`
	With   string `yaml:"with" json:"with"`
}

// Tables are keyed by lower-case emotion name. Replacement order matters:
// later entries see the output of earlier ones.
type Tables struct {
	Replacements map[string][]Replacement `yaml:"replacements" json:"replacements"`
	Endings      map[string]string        `yaml:"endings" json:"endings"`
	General      map[string][]string      `yaml:"general" json:"general"`
}

// ReplacementsFor returns the replacement list for emotion or the default list.
func (t Tables) ReplacementsFor(emotion string) []Replacement {
	if r, ok := t.Replacements[key(emotion)]; ok {
		return r
	}
	return t.Replacements[DefaultKey]
}

// EndingFor returns the closing clause for emotion or the default ending.
func (t Tables) EndingFor(emotion string) string {
	if e, ok := t.Endings[key(emotion)]; ok {
		return e
	}
	if e, ok := t.Endings[DefaultKey]; ok {
		return e
	}
	return "."
}

// GeneralFor returns the advice list for emotion or the default list.
func (t Tables) GeneralFor(emotion string) []string {
	if g, ok := t.General[key(emotion)]; ok {
		return g
	}
	return t.General[DefaultKey]
}

// Merge returns a copy of t where every emotion present in override replaces
// the corresponding entry.
func (t Tables) Merge(override Tables) Tables {
	out := Tables{
		Replacements: make(map[string][]Replacement, len(t.Replacements)),
		Endings:      make(map[string]string, len(t.Endings)),
		General:      make(map[string][]string, len(t.General)),
	}
	for k, v := range t.Replacements {
		out.Replacements[k] = v
	}
	for k, v := range t.Endings {
		out.Endings[k] = v
	}
	for k, v := range t.General {
		out.General[k] = v
	}
	for k, v := range override.Replacements {
		out.Replacements[key(k)] = v
	}
	for k, v := range override.Endings {
		out.Endings[key(k)] = v
	}
	for k, v := range override.General {
		out.General[key(k)] = v
	}
	return out
}

// Empty reports whether t has no entries at all.
func (t Tables) Empty() bool {
	return len(t.Replacements) == 0 && len(t.Endings) == 0 && len(t.General) == 0
}

func key(emotion string) string {
	return strings.ToLower(strings.TrimSpace(emotion))
}
