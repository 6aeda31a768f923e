package conf

import (
	"fmt"
	"strings"
)

// Kind classifies the runtime type of an option value.
type Kind int

const (
	// KindString is a plain string scalar.
	KindString Kind = iota
	// KindBool is a boolean toggle.
	KindBool
	// KindInt is an integer scalar.
	KindInt
	// KindSize is a quantity string with a unit suffix, e.g. "4G".
	KindSize
	// KindOpts is an ordered list of command-line tokens. On the command
	// line it is accepted as free text and normalized.
	KindOpts
	// KindOptsList is a list of KindOpts values, one per chained stage.
	KindOptsList
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "boolean"
	case KindInt:
		return "integer"
	case KindSize:
		return "size"
	case KindOpts:
		return "token list"
	case KindOptsList:
		return "list of token lists"
	}
	return "unknown"
}

// Option describes one recognized configuration option.
type Option struct {
	// Name is the canonical identifier, underscore separated.
	Name string
	Kind Kind
	// Desc is a one-line description, used as flag help text.
	Desc string
}

// MoreMpmapOpts names the command-line-only option carrying additional vg
// mpmap option lists, one per extra mapping run. It is not part of the
// document schema and is rejected in documents.
const MoreMpmapOpts = "more_mpmap_opts"

// deprecatedPruneOpts was removed when the chained pruning stages moved into
// prune_opts itself. Documents that still set it fail to load.
const deprecatedPruneOpts = "prune_opts_2"

// options is the closed schema: every option a document or the command line
// may set, in document order. Adding an option here is all that is needed to
// accept it in documents and generate its command-line flag.
var options = []Option{
	// resource tuning
	{Name: "misc_cores", Kind: KindInt, Desc: "cores for small helper jobs"},
	{Name: "misc_mem", Kind: KindSize, Desc: "memory for small helper jobs"},
	{Name: "misc_disk", Kind: KindSize, Desc: "disk for small helper jobs"},
	{Name: "construct_cores", Kind: KindInt, Desc: "cores for graph construction"},
	{Name: "construct_mem", Kind: KindSize, Desc: "memory for graph construction"},
	{Name: "construct_disk", Kind: KindSize, Desc: "disk for graph construction"},
	{Name: "xg_index_cores", Kind: KindInt, Desc: "cores for xg indexing"},
	{Name: "xg_index_mem", Kind: KindSize, Desc: "memory for xg indexing"},
	{Name: "xg_index_disk", Kind: KindSize, Desc: "disk for xg indexing"},
	{Name: "prune_cores", Kind: KindInt, Desc: "cores for gcsa pruning"},
	{Name: "prune_mem", Kind: KindSize, Desc: "memory for gcsa pruning"},
	{Name: "prune_disk", Kind: KindSize, Desc: "disk for gcsa pruning"},
	{Name: "kmers_cores", Kind: KindInt, Desc: "cores for gcsa kmers"},
	{Name: "kmers_mem", Kind: KindSize, Desc: "memory for gcsa kmers"},
	{Name: "kmers_disk", Kind: KindSize, Desc: "disk for gcsa kmers"},
	{Name: "gcsa_index_cores", Kind: KindInt, Desc: "cores for gcsa indexing"},
	{Name: "gcsa_index_mem", Kind: KindSize, Desc: "memory for gcsa indexing"},
	{Name: "gcsa_index_disk", Kind: KindSize, Desc: "disk for gcsa indexing"},
	{Name: "fq_split_cores", Kind: KindInt, Desc: "cores for fastq splitting and gam merging"},
	{Name: "fq_split_mem", Kind: KindSize, Desc: "memory for fastq splitting and gam merging"},
	{Name: "fq_split_disk", Kind: KindSize, Desc: "disk for fastq splitting and gam merging"},
	{Name: "gam_index_cores", Kind: KindInt, Desc: "threads for gam indexing"},
	{Name: "alignment_cores", Kind: KindInt, Desc: "cores for each mapping job"},
	{Name: "alignment_mem", Kind: KindSize, Desc: "memory for each mapping job"},
	{Name: "alignment_disk", Kind: KindSize, Desc: "disk for each mapping job"},
	{Name: "call_chunk_cores", Kind: KindInt, Desc: "cores for chunking graphs for calling"},
	{Name: "call_chunk_mem", Kind: KindSize, Desc: "memory for chunking graphs for calling"},
	{Name: "call_chunk_disk", Kind: KindSize, Desc: "disk for chunking graphs for calling"},
	{Name: "calling_cores", Kind: KindInt, Desc: "cores for calling each chunk"},
	{Name: "calling_mem", Kind: KindSize, Desc: "memory for calling each chunk"},
	{Name: "calling_disk", Kind: KindSize, Desc: "disk for calling each chunk"},
	{Name: "vcfeval_cores", Kind: KindInt, Desc: "cores for vcfeval"},
	{Name: "vcfeval_mem", Kind: KindSize, Desc: "memory for vcfeval"},
	{Name: "vcfeval_disk", Kind: KindSize, Desc: "disk for vcfeval"},
	{Name: "sim_cores", Kind: KindInt, Desc: "cores for read simulation"},
	{Name: "sim_mem", Kind: KindSize, Desc: "memory for read simulation"},
	{Name: "sim_disk", Kind: KindSize, Desc: "disk for read simulation"},

	// shared toggles
	{Name: "force_outstore", Kind: KindBool, Desc: "store intermediate files in the output store (debugging only)"},
	{Name: "container", Kind: KindString, Desc: "container engine to run tools with (Docker, Singularity or None)"},

	// tool container images
	{Name: "vg_docker", Kind: KindString, Desc: "container image for vg"},
	{Name: "bcftools_docker", Kind: KindString, Desc: "container image for bcftools"},
	{Name: "tabix_docker", Kind: KindString, Desc: "container image for tabix"},
	{Name: "samtools_docker", Kind: KindString, Desc: "container image for samtools"},
	{Name: "bwa_docker", Kind: KindString, Desc: "container image for bwa"},
	{Name: "jq_docker", Kind: KindString, Desc: "container image for jq"},
	{Name: "rtg_docker", Kind: KindString, Desc: "container image for rtg"},
	{Name: "pigz_docker", Kind: KindString, Desc: "container image for pigz"},
	{Name: "r_docker", Kind: KindString, Desc: "container image for R scripts"},
	{Name: "vcflib_docker", Kind: KindString, Desc: "container image for vcflib"},
	{Name: "freebayes_docker", Kind: KindString, Desc: "container image for freebayes"},

	// indexing
	{Name: "index_name", Kind: KindString, Desc: "name of the index output files"},
	{Name: "prune_opts", Kind: KindOptsList, Desc: "options for one vg mod pruning stage, repeat per stage"},
	{Name: "kmers_opts", Kind: KindOpts, Desc: "options for vg kmers"},
	{Name: "gcsa_opts", Kind: KindOpts, Desc: "options for vg gcsa indexing"},

	// mapping
	{Name: "single_reads_chunk", Kind: KindBool, Desc: "do not split reads into chunks for mapping"},
	{Name: "reads_per_chunk", Kind: KindInt, Desc: "reads per mapping chunk when splitting fastq"},
	{Name: "map_opts", Kind: KindOpts, Desc: "core options for vg map"},
	{Name: "mpmap_opts", Kind: KindOpts, Desc: "core options for vg mpmap"},

	// calling
	{Name: "overlap", Kind: KindInt, Desc: "overlap for chunking and calling"},
	{Name: "call_chunk_size", Kind: KindInt, Desc: "chunk size for calling"},
	{Name: "chunk_context", Kind: KindInt, Desc: "context expansion used for graph chunking"},
	{Name: "filter_opts", Kind: KindOpts, Desc: "options for vg filter before calling"},
	{Name: "augment_opts", Kind: KindOpts, Desc: "options for vg augment"},
	{Name: "call_opts", Kind: KindOpts, Desc: "options for vg call"},
	{Name: "genotype_opts", Kind: KindOpts, Desc: "options for vg genotype"},
	{Name: "genotype", Kind: KindBool, Desc: "use vg genotype instead of vg call"},

	// evaluation and simulation
	{Name: "vcfeval_opts", Kind: KindOpts, Desc: "options for rtg vcfeval"},
	{Name: "sim_opts", Kind: KindOpts, Desc: "options for vg sim"},
	{Name: "bwa_opts", Kind: KindOpts, Desc: "options for bwa"},
}

var byName = make(map[string]Option, len(options))

func init() {
	for _, opt := range options {
		byName[opt.Name] = opt
	}
}

// Options returns the schema in document order.
func Options() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

// DocumentKey converts a canonical option name to its document spelling.
func DocumentKey(name string) string {
	return strings.ReplaceAll(name, "_", "-")
}

// canonicalKey converts a document key to its canonical spelling.
func canonicalKey(key string) string {
	return strings.ReplaceAll(key, "-", "_")
}

// validateDocument checks every entry of doc against the schema: the option
// must be recognized and its value must have the declared type. Validation is
// eager so a bad document fails at load time, not mid-pipeline.
func validateDocument(doc Document) error {
	for name, value := range doc {
		opt, ok := byName[name]
		if !ok {
			return fmt.Errorf("unrecognized option %q: %w", DocumentKey(name), ErrSchemaType)
		}
		if err := checkKind(opt, value); err != nil {
			return err
		}
	}
	return nil
}

func checkKind(opt Option, value any) error {
	ok := false
	switch opt.Kind {
	case KindString, KindSize:
		_, ok = value.(string)
	case KindBool:
		_, ok = value.(bool)
	case KindInt:
		switch value.(type) {
		case int, int64:
			ok = true
		}
	case KindOpts:
		ok = isTokenList(value)
	case KindOptsList:
		ok = isStageList(value)
	}
	if !ok {
		return fmt.Errorf("option %q expects a %s: %w", DocumentKey(opt.Name), opt.Kind, ErrSchemaType)
	}
	return nil
}

// isToken accepts the scalars a document may use inside an option list;
// numeric tokens are stringified during normalization.
func isToken(value any) bool {
	switch value.(type) {
	case string, int, int64, float64, bool:
		return true
	}
	return false
}

// isTokenList accepts free text or a flat list of scalar tokens.
func isTokenList(value any) bool {
	switch t := value.(type) {
	case string:
		return true
	case []string:
		return true
	case []any:
		for _, tok := range t {
			if !isToken(tok) {
				return false
			}
		}
		return true
	}
	return false
}

// isStageList accepts only a list whose every element is itself a token
// list. A flat list of flags is rejected rather than guessed at.
func isStageList(value any) bool {
	switch t := value.(type) {
	case [][]string:
		return true
	case []any:
		for _, stage := range t {
			switch s := stage.(type) {
			case []string:
			case []any:
				for _, tok := range s {
					if !isToken(tok) {
						return false
					}
				}
			default:
				return false
			}
		}
		return true
	}
	return false
}
