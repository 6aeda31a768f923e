package conf

import (
	_ "embed"
	"fmt"
)

// defaultDocument is the built-in starter configuration, sized for small
// datasets on a single machine.
//
//go:embed data/config-default.yaml
var defaultDocument string

// wholeGenomeDocument is the built-in configuration tuned to process a whole
// genome on 32-core instances.
//
//go:embed data/config-whole-genome.yaml
var wholeGenomeDocument string

// optContainer is the one option whose default is decided at runtime rather
// than by the embedded documents.
const optContainer = "container"

// ProbeFunc reports which container engine is available on the host:
// "Docker", "Singularity" or "None".
type ProbeFunc func() string

// Store holds the two built-in presets. Presets are complete: every schema
// option has a value. The accessors hand out copies, the presets themselves
// never change after construction.
type Store struct {
	container   string
	defaults    Document
	wholeGenome Document
}

// NewStore parses the embedded preset documents and fills in the container
// option from probe. A nil probe behaves as if no engine were found.
//
// NewStore panics when an embedded preset fails to parse or is incomplete
// against the schema. That is a broken build, not an operator error.
func NewStore(probe ProbeFunc) *Store {
	engine := "None"
	if probe != nil {
		engine = probe()
	}
	return &Store{
		container:   engine,
		defaults:    mustParsePreset(defaultDocument, engine),
		wholeGenome: mustParsePreset(wholeGenomeDocument, engine),
	}
}

// Preset returns a copy of the selected preset's complete option mapping,
// sequence-typed options already in canonical token-list form.
func (s *Store) Preset(wholeGenome bool) Document {
	if wholeGenome {
		return s.wholeGenome.clone()
	}
	return s.defaults.clone()
}

func mustParsePreset(text string, engine string) Document {
	doc, err := parseDocument([]byte(text))
	if err != nil {
		panic(fmt.Sprintf("failed to parse embedded preset: %v", err))
	}
	if err := validateDocument(doc); err != nil {
		panic(fmt.Sprintf("embedded preset is invalid: %v", err))
	}
	doc[optContainer] = engine
	for _, opt := range options {
		if _, ok := doc[opt.Name]; !ok {
			panic(fmt.Sprintf("embedded preset is missing option %q", opt.Name))
		}
	}
	normalizeDocument(doc)
	return doc
}
