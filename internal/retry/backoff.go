package retry

import "time"

// maxBackoff bounds the delay so re-enqueued tasks never sleep unreasonably
// long regardless of attempt count.
const maxBackoff = 30 * time.Second

// ExponentialBackoff returns delay based on attempt number.
// The delay doubles with each attempt (base * 2^attempt), capped at maxBackoff.
func ExponentialBackoff(attempt int, base time.Duration) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	d := base * (1 << attempt)
	if d <= 0 || d > maxBackoff {
		return maxBackoff
	}
	return d
}
