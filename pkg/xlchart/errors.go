package xlchart

import (
	"errors"
	"fmt"
	"strings"
)

// ErrColumnNotFound indicates a requested column is absent from the dataset.
var ErrColumnNotFound = errors.New("column not found")

// ErrNoValidNumericData indicates the value column has no numeric cells.
var ErrNoValidNumericData = errors.New("no valid numeric data")

// ErrUnknownKind indicates an unsupported chart kind.
var ErrUnknownKind = errors.New("unknown chart kind")

// Code classifies a BuildError.
type Code string

const (
	CodeColumnNotFound     Code = "COLUMN_NOT_FOUND"
	CodeNoValidNumericData Code = "NO_VALID_NUMERIC_DATA"
	CodeUnknownKind        Code = "UNKNOWN_CHART_KIND"
)

// BuildError represents a user-correctable failure to build a chart.
type BuildError struct {
	Code    Code
	Columns []string // offending column names
	Err     error
}

func (e *BuildError) Error() string {
	switch e.Code {
	case CodeColumnNotFound:
		return fmt.Sprintf("%v: %s", e.Err, quoteAll(e.Columns))
	case CodeNoValidNumericData:
		return fmt.Sprintf("%v in Y-axis column %s; pick a column with numbers", e.Err, quoteAll(e.Columns))
	default:
		return e.Err.Error()
	}
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// NewBuildError creates a new BuildError.
func NewBuildError(code Code, err error, columns ...string) *BuildError {
	return &BuildError{
		Code:    code,
		Columns: columns,
		Err:     err,
	}
}

// AsBuildError returns the BuildError in err's chain, if any.
func AsBuildError(err error) (*BuildError, bool) {
	var be *BuildError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = fmt.Sprintf("%q", n)
	}
	return strings.Join(quoted, ", ")
}
