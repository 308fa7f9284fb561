package docstash

import (
	"errors"
	"fmt"
	"strings"
)

// InitError reports a start-up misconfiguration detected by New.
type InitError struct {
	message string
	cause   error
}

func (e *InitError) Error() string {
	var msg strings.Builder
	fmt.Fprint(&msg, e.message)
	if e.cause != nil {
		fmt.Fprint(&msg, ": ", e.cause)
	}
	return msg.String()
}

func (e *InitError) Unwrap() error {
	return e.cause
}

func newInitError(message string, cause error) *InitError {
	return &InitError{message: message, cause: cause}
}

var ErrInvalidName = errors.New("invalid document name")
