package explore

import "github.com/jonboulle/clockwork"

// clock stamps snapshots; tests freeze it via SetClock.
var clock = clockwork.NewRealClock()

// SetClock swaps the snapshot time source. Pass nil to reset to real time.
func SetClock(c clockwork.Clock) {
	if c == nil {
		clock = clockwork.NewRealClock()
		return
	}
	clock = c
}
