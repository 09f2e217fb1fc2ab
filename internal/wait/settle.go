// Package wait holds the helpers a step uses to let asynchronous remote effects
// finish before the next step runs.
package wait

import "time"

// Settle blocks the calling step for d. It does not check whether the remote
// effect actually completed and it cannot be cancelled.
func Settle(d time.Duration) {
	if d <= 0 {
		return
	}
	time.Sleep(d)
}
