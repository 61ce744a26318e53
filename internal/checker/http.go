package checker

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/hazz-dev/netcheck/internal/version"
)

// HTTPChecker probes a single URL. Any HTTP response counts as success;
// only transport failures are reported as timeout or error.
type HTTPChecker struct {
	target  string
	timeout time.Duration
	client  *http.Client
}

// NewHTTP returns a checker for target. A non-positive timeout falls back
// to DefaultTimeout.
func NewHTTP(target string, timeout time.Duration) *HTTPChecker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPChecker{
		target:  target,
		timeout: timeout,
		client:  &http.Client{Timeout: timeout},
	}
}

// Target returns the URL this checker probes.
func (c *HTTPChecker) Target() string {
	return c.target
}

// Timeout returns the per-request timeout.
func (c *HTTPChecker) Timeout() time.Duration {
	return c.timeout
}

func (c *HTTPChecker) Check(ctx context.Context) CheckResult {
	start := time.Now()
	result := CheckResult{
		Target:    c.target,
		CheckedAt: start,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.target, nil)
	if err != nil {
		result.Status = StatusError
		result.Detail = fmt.Sprintf("creating request: %v", err)
		return result
	}
	req.Header.Set("User-Agent", "netcheck/"+version.Version)

	resp, err := c.client.Do(req)
	result.ResponseTime = time.Since(start)
	if err != nil {
		// A deadline or cancellation on the caller's ctx is not the
		// request timeout.
		if ctx.Err() == nil && isTimeout(err) {
			result.Status = StatusTimeout
			result.Detail = TimeoutDetail(c.timeout)
			return result
		}
		result.Status = StatusError
		result.Detail = err.Error()
		return result
	}
	resp.Body.Close()

	result.Status = StatusSuccess
	result.StatusCode = resp.StatusCode
	result.Detail = fmt.Sprintf("HTTP return code=%d", resp.StatusCode)
	return result
}

// TimeoutDetail is the diagnostic reported when a request exceeds timeout.
func TimeoutDetail(timeout time.Duration) string {
	secs := strconv.FormatFloat(timeout.Seconds(), 'f', -1, 64)
	return fmt.Sprintf("Request timed out after %s seconds", secs)
}

// isTimeout reports whether err came from the request deadline rather than
// a connection failure or caller cancellation.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
