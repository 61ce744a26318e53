package checker

import "time"

// Status is the outcome class of a single connectivity check.
type Status string

const (
	StatusSuccess Status = "success"
	StatusTimeout Status = "timeout"
	StatusError   Status = "error"
)

// CheckResult is the outcome of a single connectivity check.
// Detail is the human-readable diagnostic for Status.
type CheckResult struct {
	Target       string
	Status       Status
	StatusCode   int
	Detail       string
	ResponseTime time.Duration
	CheckedAt    time.Time
}
