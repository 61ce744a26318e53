// Package monitor runs connectivity checks once or forever and reports each
// outcome to a journal.
package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/hazz-dev/netcheck/internal/checker"
)

// HeartbeatEvery is how many iterations pass between heartbeat messages.
const HeartbeatEvery = 10

// Journal is the subset of the journal the monitor writes to.
type Journal interface {
	Debug(msg string)
	Information(msg string)
	Warning(msg string)
	Error(msg string)
}

// Monitor checks connectivity with a Checker and logs every outcome.
type Monitor struct {
	checker   checker.Checker
	journal   Journal
	wait      time.Duration
	heartbeat bool
	counters  Counters
}

// New creates a Monitor that waits wait between checks in Run. When
// heartbeat is set, Run logs the iteration count every HeartbeatEvery checks.
func New(c checker.Checker, j Journal, wait time.Duration, heartbeat bool) *Monitor {
	return &Monitor{
		checker:   c,
		journal:   j,
		wait:      wait,
		heartbeat: heartbeat,
	}
}

// Counters returns the totals accumulated by Run so far.
func (m *Monitor) Counters() Counters {
	return m.counters
}

// RunOnce performs a single check and logs it without a summary. Like Run,
// it does not log a check cut short by cancellation.
func (m *Monitor) RunOnce(ctx context.Context) checker.CheckResult {
	result := m.checker.Check(ctx)
	if ctx.Err() != nil {
		return result
	}
	LogResult(m.journal, result, "")
	return result
}

// Run checks connectivity every wait until ctx is cancelled. A check cut
// short by cancellation is neither counted nor logged.
func (m *Monitor) Run(ctx context.Context) {
	timer := time.NewTimer(m.wait)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}

		result := m.checker.Check(ctx)
		if ctx.Err() != nil {
			return
		}

		m.counters.Record(result.Status)
		LogResult(m.journal, result, m.counters.Summary())

		if m.heartbeat && m.counters.Iterations%HeartbeatEvery == 0 {
			m.journal.Debug(fmt.Sprintf("Iteration %d", m.counters.Iterations))
		}

		timer.Reset(m.wait)
	}
}

// LogResult writes a check outcome to j at the level matching its status,
// followed by summary at information level when summary is non-empty.
func LogResult(j Journal, result checker.CheckResult, summary string) {
	switch result.Status {
	case checker.StatusSuccess:
		j.Information("HTTP request successful")
		j.Information(result.Detail)
	case checker.StatusError:
		j.Error("HTTP request failed")
		j.Error(result.Detail)
	case checker.StatusTimeout:
		j.Warning("Timeout occurred")
		j.Warning(result.Detail)
	default:
		j.Error("Unexpected return code")
		j.Error(fmt.Sprintf("RC = %s", result.Status))
	}
	if summary != "" {
		j.Information(summary)
	}
}
