package conf

import (
	"fmt"
	"strings"
)

// NormalizeOpts converts a sequence-typed option value to its canonical
// token-list form. Free text is split on whitespace with empty tokens
// discarded; an existing list keeps its tokens, stringified where the
// document gave numbers. Thread flags are stripped either way. A nil value
// stays nil.
func NormalizeOpts(value any) []string {
	if value == nil {
		return nil
	}
	return stripThreadFlags(tokenize(value))
}

// NormalizeOptsList normalizes a list-of-token-lists option. Every element
// is normalized independently: textual elements are split, list elements
// keep their tokens. No stripping happens at the outer level, the elements
// are whole stages, not flags. A nil value stays nil.
func NormalizeOptsList(value any) [][]string {
	if value == nil {
		return nil
	}
	var stages []any
	switch t := value.(type) {
	case []any:
		stages = t
	case []string:
		stages = make([]any, len(t))
		for i, stage := range t {
			stages[i] = stage
		}
	case [][]string:
		stages = make([]any, len(t))
		for i, stage := range t {
			stages[i] = stage
		}
	default:
		stages = []any{value}
	}
	out := make([][]string, len(stages))
	for i, stage := range stages {
		out[i] = NormalizeOpts(stage)
	}
	return out
}

// stripThreadFlags removes every -t / --threads token together with the
// single token that follows it. Parallelism is assigned by the pipeline's
// resource scheduling and must not leak in through tool options.
func stripThreadFlags(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		if tokens[i] == "-t" || tokens[i] == "--threads" {
			i++
			continue
		}
		out = append(out, tokens[i])
	}
	return out
}

func tokenize(value any) []string {
	switch t := value.(type) {
	case string:
		return strings.Fields(t)
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, tok := range t {
			out = append(out, token(tok))
		}
		return out
	}
	return strings.Fields(fmt.Sprint(value))
}

// token renders a scalar list element as a command-line token. Numbers in
// document option lists arrive as ints or floats.
func token(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}
