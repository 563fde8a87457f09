// core/seqio/errors.go
package seqio

import "fmt"

// OpenError reports an input that could not be opened or decoded at all.
// It is fatal for the run.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string { return fmt.Sprintf("open %s: %v", e.Path, e.Err) }
func (e *OpenError) Unwrap() error { return e.Err }

// ParseError reports one malformed record. Streaming continues after it.
type ParseError struct {
	Source string
	Line   int // 1-based line where the record started
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Reason)
}
