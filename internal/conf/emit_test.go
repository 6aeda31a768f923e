package conf

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestRenderRoundTrip pins the generate-config contract: loading a rendered
// preset back reproduces the preset's option values exactly.
func TestRenderRoundTrip(t *testing.T) {
	store := NewStore(func() string { return "Docker" })

	tests := []struct {
		name        string
		wholeGenome bool
	}{
		{name: "default", wholeGenome: false},
		{name: "whole-genome", wholeGenome: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(store.Render(tt.wholeGenome)), 0644); err != nil {
				t.Fatalf("failed to write rendered preset: %v", err)
			}

			source := &Source{Path: path, Presets: store}
			doc, err := source.Read()
			if err != nil {
				t.Fatalf("rendered preset failed to load: %v", err)
			}
			normalizeDocument(doc)

			if diff := cmp.Diff(store.Preset(tt.wholeGenome), doc); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRenderContainerLine(t *testing.T) {
	store := NewStore(func() string { return "Docker" })

	for _, wholeGenome := range []bool{false, true} {
		text := store.Render(wholeGenome)
		if !strings.Contains(text, "\ncontainer: Docker\n") {
			t.Errorf("wholeGenome=%v: rendered document does not carry the probed engine", wholeGenome)
		}
		if strings.Contains(text, "\ncontainer: None\n") {
			t.Errorf("wholeGenome=%v: rendered document kept the placeholder engine", wholeGenome)
		}
	}
}

func TestRenderKeepsComments(t *testing.T) {
	store := NewStore(nil)

	text := store.Render(false)
	if !strings.HasPrefix(text, "# vgpipe pipeline configuration file (created by vgpipe generate-config)") {
		t.Error("rendered document lost its header comment")
	}
	if !strings.Contains(text, "# Comments (beginning with #) do not need to be removed.") {
		t.Error("rendered document lost its section comments")
	}
	if text != store.Render(false) {
		t.Error("rendering is not deterministic")
	}

	wg := store.Render(true)
	if !strings.Contains(wg, "# This profile is tuned to process a whole genome on 32-core instances.") {
		t.Error("whole-genome document lost its profile comment")
	}
}

func TestWriteDocument(t *testing.T) {
	doc := map[string]any{
		"misc_cores":   1,
		"index_name":   "hg38",
		"genotype":     false,
		"map_opts":     []string{"-k", "16"},
		"prune_opts":   [][]string{{"-D"}, {"-S", "-l", "32"}},
		"vcfeval_opts": nil,
		MoreMpmapOpts:  [][]string{{"-u", "8"}},
	}

	var buf bytes.Buffer
	if err := WriteDocument(&buf, doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// schema options first in schema order, extras after, nil omitted
	expected := `misc-cores: 1
index-name: 'hg38'
prune-opts: [['-D'], ['-S', '-l', '32']]
map-opts: ['-k', '16']
genotype: false
more-mpmap-opts: [['-u', '8']]
`
	if diff := cmp.Diff(expected, buf.String()); diff != "" {
		t.Errorf("WriteDocument() mismatch (-want +got):\n%s", diff)
	}
}
