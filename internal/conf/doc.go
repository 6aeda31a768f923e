// Package conf resolves the final pipeline configuration from built-in
// presets, an optional user-supplied document and command-line values.
//
// # Usage
//
// Build a preset store once, read the base mapping, then merge the command
// line over it:
//
//	store := conf.NewStore(container.Detect)
//	source := &conf.Source{Path: path, WholeGenome: wholeGenome, Presets: store}
//	base, err := source.Read()
//	if err != nil {
//	    // fatal operator error: missing document, conflicting sources,
//	    // deprecated option or schema mismatch
//	}
//	resolved := conf.Resolve(args, base)
//
// For the generate-config command, Render returns a preset as editable
// document text.
//
// # Load Order
//
// The base mapping comes from exactly one source:
//
//  1. A built-in preset: default, or whole-genome when requested
//  2. A user document named by its path
//
// Naming a document and requesting the whole-genome preset at the same time
// is an error. Command-line values are merged over the base afterwards; a
// command-line value wins when it is truthy or when the base has no entry
// for its key. An explicit falsy command-line value never overrides a
// present base value. Downstream stages depend on that asymmetry.
//
// # Internal Architecture
//
//   - options/Option: the closed schema. One table declares every
//     recognized option with its Kind; document validation, normalization
//     and command-line flag generation are all driven from it.
//
//   - Store: the two embedded preset documents, parsed and checked for
//     completeness at construction. The container option's default comes
//     from an injected ProbeFunc so nothing here touches the environment.
//
//   - Source: loads the base Document from a preset or a user file and
//     applies the error taxonomy (ErrNotFound, ErrConflictingSources,
//     ErrDeprecatedOption, ErrSchemaType) eagerly.
//
//   - NormalizeOpts/NormalizeOptsList: canonicalize sequence-typed values
//     from free text or lists, stripping -t/--threads flag pairs.
//
//   - Resolve: the precedence merge. Pure, no error paths; all validation
//     happened in Source.Read.
//
//   - Render/WriteDocument: turn presets and resolved mappings back into
//     document text.
package conf
