package tpb

import "fmt"

// ExhaustedError reports that every mirror and category combination was
// tried without producing a result and at least one attempt failed along the
// way. Individual attempt failures are never surfaced on their own; a run
// where every mirror answered cleanly with zero rows is not an error.
type ExhaustedError struct {
	Fetcher string
	Last    error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("all %s endpoints and categories failed, last error: %v", e.Fetcher, e.Last)
}

func (e *ExhaustedError) Unwrap() error { return e.Last }
