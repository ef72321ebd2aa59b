package calculator

import "time"

// DefaultRepeatInterval is the period at which a held button fires.
const DefaultRepeatInterval = 100 * time.Millisecond

const (
	fineHold   = 5 * time.Second
	coarseHold = 10 * time.Second
)

// HoldDelta returns the step magnitude for the n-th repeat of a held button
// firing every interval.
//
// For the first 5 seconds every repeat steps by 1. Up to 10 seconds every
// 3rd repeat steps by 10; after that every 5th repeat steps by 100. All other
// repeats return 0 so the cadence stays exact.
func HoldDelta(n int, interval time.Duration) int {
	held := time.Duration(n) * interval
	switch {
	case held <= fineHold:
		return 1
	case held <= coarseHold:
		if n%3 == 0 {
			return 10
		}
	default:
		if n%5 == 0 {
			return 100
		}
	}
	return 0
}
