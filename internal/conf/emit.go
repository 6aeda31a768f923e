package conf

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Render returns the selected preset in document form, section comments
// included, with the container line set to the probed engine. This is the
// output of generate-config; parsing it back reproduces the preset's values.
func (s *Store) Render(wholeGenome bool) string {
	text := defaultDocument
	if wholeGenome {
		text = wholeGenomeDocument
	}
	return setContainerLine(text, s.container)
}

// setContainerLine rewrites the non-comment container line of a preset
// document. The embedded documents carry a placeholder there; the real value
// is only known once the host has been probed.
func setContainerLine(text, engine string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "container:") {
			lines[i] = "container: " + engine
		}
	}
	return strings.Join(lines, "\n")
}

// WriteDocument writes doc to w in document form: schema options first, in
// schema order, then any remaining keys sorted by name. Keys use the
// document spelling. Nil values are omitted, a document expresses absence by
// omission.
func WriteDocument(w io.Writer, doc map[string]any) error {
	names := make([]string, 0, len(doc))
	seen := make(map[string]bool, len(doc))
	for _, opt := range options {
		if _, ok := doc[opt.Name]; ok {
			names = append(names, opt.Name)
			seen[opt.Name] = true
		}
	}
	var extra []string
	for name := range doc {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	names = append(names, extra...)

	for _, name := range names {
		value := doc[name]
		if value == nil {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s: %s\n", DocumentKey(name), renderValue(value)); err != nil {
			return err
		}
	}
	return nil
}

// renderValue formats a value as document text. Strings are single-quoted,
// token lists use flow style, matching the embedded presets.
func renderValue(value any) string {
	switch t := value.(type) {
	case string:
		return quote(t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	case []string:
		return renderFlow(t)
	case [][]string:
		parts := make([]string, len(t))
		for i, stage := range t {
			parts[i] = renderFlow(stage)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case []any:
		parts := make([]string, len(t))
		for i, inner := range t {
			parts[i] = renderValue(inner)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return fmt.Sprint(value)
}

func renderFlow(tokens []string) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = quote(tok)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// quote single-quotes a scalar for the document; embedded quotes double.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
