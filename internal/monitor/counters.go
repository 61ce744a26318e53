package monitor

import (
	"fmt"

	"github.com/hazz-dev/netcheck/internal/checker"
)

// Counters tallies check outcomes for one iterate-mode run.
type Counters struct {
	Successes  int
	Timeouts   int
	Errors     int
	Iterations int
}

// Record counts one completed check.
func (c *Counters) Record(status checker.Status) {
	c.Iterations++
	switch status {
	case checker.StatusSuccess:
		c.Successes++
	case checker.StatusTimeout:
		c.Timeouts++
	default:
		c.Errors++
	}
}

// Summary renders the running totals logged after every iteration.
func (c Counters) Summary() string {
	return fmt.Sprintf("Successes: %d Timeouts: %d Errors: %d", c.Successes, c.Timeouts, c.Errors)
}
