package conf

import "log/slog"

// Args carries command-line option values keyed by canonical name. A nil
// value is the absent sentinel: the option was not passed. Flag parsing
// cannot tell an explicitly empty value from an absent one for falsy
// scalars; the merge in Resolve conflates the two on purpose.
type Args map[string]any

// Resolved is the final configuration mapping handed to stage consumers.
// Every sequence-typed option is in canonical token-list form.
type Resolved map[string]any

// Resolve merges command-line values over the base mapping.
//
// Sequence-typed options are normalized on both sides first. Then, for every
// key in args, the command-line value wins when it is truthy or when base
// has no entry for the key at all. An explicit falsy command-line value
// therefore never overrides a present base value. Downstream stages depend
// on this precedence; keep it.
//
// Resolve never fails: existence, mutual-exclusion and schema checks all
// happened when the base was read.
func Resolve(args Args, base Document) Resolved {
	work := base.clone()
	normalizeDocument(work)
	merged := Resolved(work)

	for name, value := range args {
		value = normalizeValue(name, value)
		_, present := merged[name]
		if truthy(value) || !present {
			merged[name] = value
		}
	}
	slog.Debug("resolved configuration", "options", len(merged))
	return merged
}

// normalizeDocument canonicalizes every sequence-typed value in place.
func normalizeDocument(doc Document) {
	for name, value := range doc {
		doc[name] = normalizeValue(name, value)
	}
}

// normalizeValue applies the normalizer to values of the enumerated
// sequence-typed options and passes everything else through. Nil stays nil
// so the absent sentinel survives normalization.
func normalizeValue(name string, value any) any {
	if value == nil {
		return nil
	}
	if name == MoreMpmapOpts {
		return NormalizeOptsList(value)
	}
	opt, ok := byName[name]
	if !ok {
		return value
	}
	switch opt.Kind {
	case KindOpts:
		return NormalizeOpts(value)
	case KindOptsList:
		return NormalizeOptsList(value)
	}
	return value
}

// truthy reports whether a command-line value counts as "set" for precedence
// purposes: non-nil, non-zero, non-empty, non-false.
func truthy(value any) bool {
	switch t := value.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	case []string:
		return len(t) > 0
	case [][]string:
		return len(t) > 0
	case []any:
		return len(t) > 0
	}
	return true
}

// String returns the named option as a string, or "" when it is unset or
// not a string.
func (r Resolved) String(name string) string {
	v, _ := r[name].(string)
	return v
}

// Bool returns the named option as a bool, or false when it is unset or not
// a bool.
func (r Resolved) Bool(name string) bool {
	v, _ := r[name].(bool)
	return v
}

// Int returns the named option as an int, or 0 when it is unset or not an
// integer.
func (r Resolved) Int(name string) int {
	switch t := r[name].(type) {
	case int:
		return t
	case int64:
		return int(t)
	}
	return 0
}

// Opts returns the named option as a token list, or nil when it is unset or
// not a token list.
func (r Resolved) Opts(name string) []string {
	v, _ := r[name].([]string)
	return v
}

// OptsList returns the named option as a list of token lists, or nil when it
// is unset or not one.
func (r Resolved) OptsList(name string) [][]string {
	v, _ := r[name].([][]string)
	return v
}
