package isoglot

import "fmt"

// InvalidRangeError indicates a fusion request with out-of-bounds or
// inverted indices. The matrices are left untouched.
type InvalidRangeError struct {
	Start int
	End   int
	Len   int
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range [%d, %d] for matrix of length %d", e.Start, e.End, e.Len)
}

// IndexError indicates a repair operation on an out-of-range slot index.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for matrix of length %d", e.Index, e.Len)
}

// UnknownKeyError indicates an attempt to resolve a glossary key that was
// never registered. Callers must register before resolving.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown glossary key %q", e.Key)
}

// OracleError indicates the suggestion oracle failed or returned unusable
// data. The glossary is left unchanged when it occurs.
type OracleError struct {
	Message   string
	Cause     error
	Retryable bool // Whether the suggestion call can be retried
}

func (e *OracleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("oracle error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("oracle error: %s", e.Message)
}

func (e *OracleError) Unwrap() error {
	return e.Cause
}
