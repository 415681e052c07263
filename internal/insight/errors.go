package insight

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrorInvalidSubmission ErrorCode = "INVALID_SUBMISSION"
	ErrorRateLimited       ErrorCode = "RATE_LIMITED"
	ErrorGenerationFailed  ErrorCode = "GENERATION_FAILED"
	ErrorInternal          ErrorCode = "INTERNAL_ERROR"
)

// ErrConfigurationMissing means no credential is available for a backend.
var ErrConfigurationMissing = errors.New("insight: configuration missing")

type Error struct {
	Code   ErrorCode
	Reason string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("insight: %s (%s)", e.Code, e.Reason)
	}
	return fmt.Sprintf("insight: %s (%s): %v", e.Code, e.Reason, e.Err)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func newError(code ErrorCode, reason string, err error) *Error {
	return &Error{Code: code, Reason: reason, Err: err}
}

// CodeOf returns the code of the first *Error in err's chain, or
// ErrorInternal when there is none.
func CodeOf(err error) ErrorCode {
	var ie *Error
	if errors.As(err, &ie) {
		return ie.Code
	}
	return ErrorInternal
}
