package conf

import "errors"

// Configuration errors are operator input errors, not transient faults. The
// command layer reports them with a remediation hint where one exists and
// exits; nothing at this layer retries.
var (
	// ErrNotFound indicates the named configuration document does not exist
	// or cannot be read.
	ErrNotFound = errors.New("configuration document not found")

	// ErrConflictingSources indicates an explicit configuration document and
	// the whole-genome preset were requested at the same time.
	ErrConflictingSources = errors.New("--config and --whole-genome-config cannot be used together")

	// ErrDeprecatedOption indicates a document sets an option that was
	// removed. The message names the option.
	ErrDeprecatedOption = errors.New("no longer supported")

	// ErrSchemaType indicates a document sets an option the schema does not
	// recognize, or gives a value of the wrong type.
	ErrSchemaType = errors.New("schema mismatch")
)
