// Package seed writes normalized records to the store and drives the
// fetch -> normalize -> upsert pipeline for each record kind.
package seed

import "fmt"

// Result tracks counts and errors from one pipeline run.
type Result struct {
	Kind       string
	Players    int
	Fetched    int
	Normalized int
	Upserted   int64
	Errors     []string
}

// Add merges another Result into this one.
func (r *Result) Add(other Result) {
	r.Players += other.Players
	r.Fetched += other.Fetched
	r.Normalized += other.Normalized
	r.Upserted += other.Upserted
	r.Errors = append(r.Errors, other.Errors...)
}

// AddErrorf records a formatted error message.
func (r *Result) AddErrorf(format string, args ...any) {
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// Summary returns a human-readable summary of the run.
func (r *Result) Summary() string {
	return fmt.Sprintf(
		"kind=%s players=%d fetched=%d normalized=%d upserted=%d errors=%d",
		r.Kind, r.Players, r.Fetched, r.Normalized, r.Upserted, len(r.Errors),
	)
}
