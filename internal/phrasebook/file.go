package phrasebook

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned for phrasebook files that are not YAML.
var ErrUnknownFormat = errors.New("unknown phrasebook format")

// LoadFile reads override tables from a YAML file.
func LoadFile(path string) (Tables, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
	default:
		return Tables{}, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("read phrasebook %s: %w", path, err)
	}
	var t Tables
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return Tables{}, fmt.Errorf("parse phrasebook %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Tables{}, fmt.Errorf("phrasebook %s: %w", path, err)
	}
	return t, nil
}

// Validate rejects replacements with an empty phrase.
func (t Tables) Validate() error {
	for emotion, list := range t.Replacements {
		for i, r := range list {
			if strings.TrimSpace(r.Phrase) == "" {
				return fmt.Errorf("replacement %d for %q has an empty phrase", i, emotion)
			}
		}
	}
	return nil
}
