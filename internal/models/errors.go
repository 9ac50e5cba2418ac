// Package models defines data structures for the portfolio analyzer.
package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrZeroVolatility is returned when portfolio volatility computes to zero and
// a risk-adjusted ratio would be undefined.
var ErrZeroVolatility = errors.New("portfolio volatility is zero, risk-adjusted ratio is undefined")

// InputError indicates the user-supplied portfolio is invalid. Analysis is
// refused outright; there is no partial result.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// NewInputError creates an InputError with a formatted message.
func NewInputError(format string, args ...interface{}) *InputError {
	return &InputError{Message: fmt.Sprintf(format, args...)}
}

// IsInputError reports whether err is (or wraps) an InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// DataUnavailableError indicates market data could not be obtained or was
// degenerate. The aggregator recovers from it by returning a partial result.
type DataUnavailableError struct {
	Reason string
	Err    error
}

func (e *DataUnavailableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("market data unavailable: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("market data unavailable: %s", e.Reason)
}

func (e *DataUnavailableError) Unwrap() error {
	return e.Err
}

// NewDataUnavailableError wraps err with a reason.
func NewDataUnavailableError(reason string, err error) *DataUnavailableError {
	return &DataUnavailableError{Reason: reason, Err: err}
}

// IsDataUnavailable reports whether err is (or wraps) a DataUnavailableError.
func IsDataUnavailable(err error) bool {
	var de *DataUnavailableError
	return errors.As(err, &de)
}

// GenerativeOutputInvalidError indicates generated summary text failed keyword
// validation. The summary service recovers by substituting a template.
type GenerativeOutputInvalidError struct {
	MissingKeywords []string
}

func (e *GenerativeOutputInvalidError) Error() string {
	return fmt.Sprintf("generated summary missing required topics: %s", strings.Join(e.MissingKeywords, ", "))
}
