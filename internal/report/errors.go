package report

import "fmt"

// ConfigError reports a missing configuration prerequisite such as an unset
// property ID or absent credentials. It is surfaced immediately and never
// retried.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string { return e.Message }

// QueryError wraps a single upstream reporting failure. The upstream message
// is carried through to the caller; there is no retry and no partial result.
type QueryError struct {
	Err error
}

func (e *QueryError) Error() string { return fmt.Sprintf("analytics query failed: %v", e.Err) }

func (e *QueryError) Unwrap() error { return e.Err }
