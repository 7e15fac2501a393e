package analysis

import (
	"encoding/json"
	"fmt"
)

// ErrServiceUnavailable indicates the analysis backend is down or
// unreachable.
type ErrServiceUnavailable struct {
	Err error
}

func (e *ErrServiceUnavailable) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("analysis service unavailable: %v", e.Err)
	}
	return "analysis service unavailable"
}

func (e *ErrServiceUnavailable) Unwrap() error { return e.Err }

// ErrTimeout indicates the analysis did not finish before the context
// deadline or cancellation.
type ErrTimeout struct {
	Err error
}

func (e *ErrTimeout) Error() string {
	return fmt.Sprintf("analysis timed out: %v", e.Err)
}

func (e *ErrTimeout) Unwrap() error { return e.Err }

// ErrInvalidResult indicates the analyzer produced a result that does not
// conform to the result schema.
type ErrInvalidResult struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResult) Error() string {
	return fmt.Sprintf("invalid analysis result: %v", e.Err)
}

func (e *ErrInvalidResult) Unwrap() error { return e.Err }
