package core

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - centralized error definitions
var (
	// ErrUnsupportedFormat is raised by the table loader when a file
	// extension maps to no known table format.
	ErrUnsupportedFormat = errors.New("unsupported table format")

	// ErrEmptyTable means the input had no header row or no data rows.
	ErrEmptyTable = errors.New("table has no data rows")
)

// SchemaError reports required canonical columns that are still missing after
// alias resolution. It carries the full list of columns that were present so
// the caller can see what the input actually looked like.
type SchemaError struct {
	Table   string   // table kind: "financial", "roles", "employees"
	Missing []string // canonical names not resolvable from the input
	Present []string // columns seen after renaming, in header order
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("[%s] missing required columns: %s (present: %s)",
		e.Table, strings.Join(e.Missing, ", "), strings.Join(e.Present, ", "))
}

// NewSchemaError builds a SchemaError for a table kind.
func NewSchemaError(table string, missing, present []string) error {
	return &SchemaError{Table: table, Missing: missing, Present: present}
}

// NewUnsupportedFormatError wraps ErrUnsupportedFormat with the offending
// extension.
func NewUnsupportedFormatError(ext string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// IsSchemaError checks if an error is a SchemaError.
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}
