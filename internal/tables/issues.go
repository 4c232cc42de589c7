package tables

import (
	"errors"
	"fmt"
)

// ErrTableMissing means a required table dump was not found.
var ErrTableMissing = errors.New("table missing")

const (
	SeverityWarning = "warning"
	SeverityError   = "error"
)

// Issue is a non-fatal problem found while reading a table.
type Issue struct {
	Table    string `json:"table"`
	Key      string `json:"key,omitempty"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// StageError names the load stage that failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
