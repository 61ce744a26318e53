// Package checker probes internet connectivity with a single bounded-time
// HTTP GET and classifies the outcome.
package checker

import (
	"context"
	"time"
)

const (
	// DefaultTarget is probed when no site is configured.
	DefaultTarget = "https://google.com"
	// DefaultTimeout bounds a single request when none is configured.
	DefaultTimeout = time.Second
)

// Checker performs a single connectivity check.
type Checker interface {
	Check(ctx context.Context) CheckResult
}

// Check runs one HTTP GET against target and classifies the outcome.
func Check(ctx context.Context, target string, timeout time.Duration) CheckResult {
	return NewHTTP(target, timeout).Check(ctx)
}
