package jitter

import (
	"math/rand"
	"time"
)

const DefaultMaxMs = 3500

// Jitter implements full jitter: sleep a random duration between 0 and
// min(maxMs, baseMs * 2 ** attempt).
// https://aws.amazon.com/blogs/architecture/exponential-backoff-and-jitter/
func Jitter(baseMs, maxMs, attempt int) time.Duration {
	if maxMs <= 0 {
		return 0
	}

	// Cap the exponent to avoid overflow; 2 ** 32 ms is already far past any max.
	upperBoundMs := min(int64(maxMs), int64(baseMs)<<min(attempt, 32))
	if upperBoundMs <= 0 {
		return 0
	}

	return time.Duration(rand.Int63n(upperBoundMs)) * time.Millisecond
}
