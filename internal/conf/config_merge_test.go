package conf

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestResolvePrecedence pins the merge rule: a command-line value wins when
// it is truthy or when the base has no entry for its key. An explicit falsy
// command-line value cannot override a present base value.
func TestResolvePrecedence(t *testing.T) {
	tests := []struct {
		name     string
		args     Args
		base     Document
		expected Resolved
	}{
		{
			name:     "truthy argument overrides the base",
			args:     Args{"index_name": "hg38"},
			base:     Document{"index_name": "genome"},
			expected: Resolved{"index_name": "hg38"},
		},
		{
			name:     "zero does not override a present value",
			args:     Args{"reads_per_chunk": 0},
			base:     Document{"reads_per_chunk": 10000000},
			expected: Resolved{"reads_per_chunk": 10000000},
		},
		{
			name:     "zero is kept when the base has no entry",
			args:     Args{"reads_per_chunk": 0},
			base:     Document{},
			expected: Resolved{"reads_per_chunk": 0},
		},
		{
			name:     "false does not override true",
			args:     Args{"genotype": false},
			base:     Document{"genotype": true},
			expected: Resolved{"genotype": true},
		},
		{
			name:     "empty string does not override",
			args:     Args{"index_name": ""},
			base:     Document{"index_name": "genome"},
			expected: Resolved{"index_name": "genome"},
		},
		{
			name:     "unset argument leaves the base alone",
			args:     Args{"index_name": nil},
			base:     Document{"index_name": "genome"},
			expected: Resolved{"index_name": "genome"},
		},
		{
			name:     "unset argument is carried when the base has no entry",
			args:     Args{"index_name": nil},
			base:     Document{},
			expected: Resolved{"index_name": nil},
		},
		{
			name:     "base keys without arguments pass through",
			args:     Args{},
			base:     Document{"overlap": 2000},
			expected: Resolved{"overlap": 2000},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Resolve(tt.args, tt.base)
			if diff := cmp.Diff(tt.expected, result); diff != "" {
				t.Errorf("Resolve() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResolveNormalizesArguments(t *testing.T) {
	base := Document{"map_opts": []any{}}
	args := Args{"map_opts": "-t 4 -k 16"}

	result := Resolve(args, base)
	if diff := cmp.Diff([]string{"-k", "16"}, result.Opts("map_opts")); diff != "" {
		t.Errorf("map_opts mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveNormalizesBase(t *testing.T) {
	base := Document{
		"mpmap_opts": []any{"-S"},
		"prune_opts": []any{[]any{"-D"}, []any{"-S", "-l", 32}},
	}

	result := Resolve(Args{}, base)
	if diff := cmp.Diff([]string{"-S"}, result.Opts("mpmap_opts")); diff != "" {
		t.Errorf("mpmap_opts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]string{{"-D"}, {"-S", "-l", "32"}}, result.OptsList("prune_opts")); diff != "" {
		t.Errorf("prune_opts mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveNormalizedEmptyLosesToBase(t *testing.T) {
	// "-t 4" normalizes to an empty token list, which is falsy and cannot
	// override the present base value
	base := Document{"map_opts": []any{"-k", "16"}}

	result := Resolve(Args{"map_opts": "-t 4"}, base)
	if diff := cmp.Diff([]string{"-k", "16"}, result.Opts("map_opts")); diff != "" {
		t.Errorf("map_opts mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveMoreMpmapOpts(t *testing.T) {
	result := Resolve(Args{MoreMpmapOpts: []string{"-u 8 -t 4", "-v"}}, Document{})

	expected := [][]string{{"-u", "8"}, {"-v"}}
	if diff := cmp.Diff(expected, result.OptsList(MoreMpmapOpts)); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", MoreMpmapOpts, diff)
	}
}

func TestResolveDoesNotMutateInputs(t *testing.T) {
	base := Document{"mpmap_opts": []any{"-S"}, "overlap": 2000}
	args := Args{"map_opts": "-k 16", "overlap": 0}
	baseSnapshot := base.clone()
	argsSnapshot := Args{"map_opts": "-k 16", "overlap": 0}

	Resolve(args, base)

	if diff := cmp.Diff(baseSnapshot, base); diff != "" {
		t.Errorf("base changed (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(argsSnapshot, args); diff != "" {
		t.Errorf("args changed (-want +got):\n%s", diff)
	}
}

func TestResolveOverDefaultPreset(t *testing.T) {
	store := NewStore(nil)
	base := store.Preset(false)

	args := make(Args)
	for _, opt := range Options() {
		args[opt.Name] = nil
	}
	args["index_name"] = "hg38"
	args["genotype"] = false

	result := Resolve(args, base)

	if got := result.String("index_name"); got != "hg38" {
		t.Errorf("expected index_name=hg38, got %q", got)
	}
	// the preset already has genotype, so the falsy argument changes nothing
	if got := result.Bool("genotype"); got != false {
		t.Errorf("expected genotype=false from the preset, got %v", got)
	}
	if got := result.Int("reads_per_chunk"); got != 10000000 {
		t.Errorf("expected reads_per_chunk=10000000, got %d", got)
	}
	if got := result.String("container"); got != "None" {
		t.Errorf("expected container=None, got %q", got)
	}
	if len(result) != len(Options()) {
		t.Errorf("resolved %d options, want %d", len(result), len(Options()))
	}
}

func TestResolvedAccessors(t *testing.T) {
	r := Resolved{
		"index_name":      "genome",
		"genotype":        true,
		"reads_per_chunk": 10000000,
		"map_opts":        []string{"-k", "16"},
		"prune_opts":      [][]string{{"-D"}},
	}

	if got := r.String("index_name"); got != "genome" {
		t.Errorf("String() = %q, want genome", got)
	}
	if !r.Bool("genotype") {
		t.Error("Bool() = false, want true")
	}
	if got := r.Int("reads_per_chunk"); got != 10000000 {
		t.Errorf("Int() = %d, want 10000000", got)
	}
	if diff := cmp.Diff([]string{"-k", "16"}, r.Opts("map_opts")); diff != "" {
		t.Errorf("Opts() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([][]string{{"-D"}}, r.OptsList("prune_opts")); diff != "" {
		t.Errorf("OptsList() mismatch (-want +got):\n%s", diff)
	}

	// absent or mistyped options come back as zero values
	if got := r.String("missing"); got != "" {
		t.Errorf("String(missing) = %q, want empty", got)
	}
	if got := r.Int("index_name"); got != 0 {
		t.Errorf("Int(index_name) = %d, want 0", got)
	}
	if got := r.Opts("genotype"); got != nil {
		t.Errorf("Opts(genotype) = %v, want nil", got)
	}
}
