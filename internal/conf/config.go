package conf

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is a canonical-key mapping of option name to value, produced by
// parsing a configuration source. Keys use the underscore convention; values
// are scalars or token lists as declared by the schema.
type Document map[string]any

// Source selects where the base configuration comes from. See the Read
// method.
type Source struct {
	// Path of a user-supplied configuration document. Empty means fall back
	// to a built-in preset.
	Path string
	// WholeGenome selects the whole-genome preset when Path is empty.
	WholeGenome bool
	// Presets supplies the built-in documents.
	Presets *Store
}

// Read loads and returns the base configuration mapping from exactly one
// source:
//
//  1. No path: the selected built-in preset (default, or whole-genome)
//  2. A path: the parsed, schema-checked user document
//
// Requesting both a path and the whole-genome preset is an error, reported
// before the filesystem is touched. A missing document is an error with a
// remediation hint; an existing but malformed document is also an error
// (let's not hide problems from the users).
func (s *Source) Read() (Document, error) {
	if s.Path != "" && s.WholeGenome {
		return nil, ErrConflictingSources
	}
	if s.Path == "" {
		slog.Debug("using built-in preset", "whole_genome", s.WholeGenome)
		return s.Presets.Preset(s.WholeGenome), nil
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s (run \"vgpipe generate-config > %s\" to create it)", ErrNotFound, s.Path, s.Path)
	}
	doc, err := parseDocument(data)
	if err != nil {
		slog.Error("failed to parse configuration document", "path", s.Path, "error", err)
		return nil, fmt.Errorf("failed to parse %s: %w", s.Path, err)
	}
	if _, ok := doc[deprecatedPruneOpts]; ok {
		return nil, fmt.Errorf("%s: option %q is %w", s.Path, DocumentKey(deprecatedPruneOpts), ErrDeprecatedOption)
	}
	if err := validateDocument(doc); err != nil {
		return nil, fmt.Errorf("%s: %w", s.Path, err)
	}
	slog.Debug("loaded configuration document", "path", s.Path, "options", len(doc))
	return doc, nil
}

// parseDocument parses YAML into a canonical-key Document. Keys translate
// from the document's hyphen convention to underscores, with no other
// transformation. Null-valued keys are equivalent to omitted ones and are
// dropped.
func parseDocument(data []byte) (Document, error) {
	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	doc := make(Document, len(raw))
	for key, value := range raw {
		if value == nil {
			continue
		}
		doc[canonicalKey(key)] = value
	}
	return doc, nil
}

// clone returns a copy deep enough that mutating the result, including its
// token lists, leaves the receiver untouched.
func (d Document) clone() Document {
	out := make(Document, len(d))
	for key, value := range d {
		out[key] = cloneValue(value)
	}
	return out
}

func cloneValue(value any) any {
	switch t := value.(type) {
	case []string:
		out := make([]string, len(t))
		copy(out, t)
		return out
	case [][]string:
		out := make([][]string, len(t))
		for i, inner := range t {
			stage := make([]string, len(inner))
			copy(stage, inner)
			out[i] = stage
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, inner := range t {
			out[i] = cloneValue(inner)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for key, inner := range t {
			out[key] = cloneValue(inner)
		}
		return out
	}
	return value
}
