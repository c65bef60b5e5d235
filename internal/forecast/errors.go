package forecast

import "fmt"

// ValidationError reports rejected input. It is always raised before any I/O
// and is never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

// ProviderError reports a failed or structurally invalid remote forecast
// response. Field names the offending part of the payload when the failure is
// structural.
type ProviderError struct {
	Provider string
	Reason   string
	Field    string
	Err      error
}

func (e *ProviderError) Error() string {
	msg := fmt.Sprintf("provider %s: %s", e.Provider, e.Reason)
	if e.Field != "" {
		msg += ": " + e.Field
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ProviderError) Unwrap() error { return e.Err }

// CacheError reports a failure inside the cache itself. It is propagated, not
// treated as a miss, so a failing cache backend is not masked as cache-cold.
type CacheError struct {
	Op  string
	Key string
	Err error
}

func (e *CacheError) Error() string {
	return fmt.Sprintf("cache %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *CacheError) Unwrap() error { return e.Err }
