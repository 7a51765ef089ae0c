package metanetx

import "fmt"

// SourceError indicates that an entire source table failed to load or decode.
//
// Unlike per-row problems (malformed equations, unknown namespaces, dangling
// references), which are counted and dropped, a table-level failure aborts
// ingestion: the catalog would otherwise be silently incomplete.
//
// The original underlying error can be accessed via errors.Unwrap.
type SourceError struct {
	Table string
	cause error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("source table %s: %v", e.Table, e.cause)
}

func (e *SourceError) Unwrap() error { return e.cause }
