package cli

import (
	"encoding/json"
	"errors"
)

const (
	ExitFailure = 1
	ExitUsage   = 2
)

// ExitError carries the process exit status for a failed command.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}

func usageError(err error) error {
	return &ExitError{Code: ExitUsage, Message: err.Error()}
}

func failure(err error) error {
	return &ExitError{Code: ExitFailure, Message: err.Error()}
}

func IsCorruptStateError(err error) bool {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return true
	}
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr)
}
