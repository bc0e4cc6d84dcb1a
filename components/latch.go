package components

// CueLatch gates a one-shot audio cue that is armed by an
// animation-timed callback. The callback may land on several
// consecutive frames while its condition holds; the latch guarantees
// the cue fires at most once until it is explicitly disarmed.
type CueLatch struct {
	armed bool
	fired bool
}

// Arm requests the cue. Idempotent; ignored until Disarm once the cue
// has fired this cycle.
func (l *CueLatch) Arm() {
	if l.fired {
		return
	}
	l.armed = true
}

// TryFire consumes an armed cue. Returns true exactly once per
// Arm/Disarm cycle.
func (l *CueLatch) TryFire() bool {
	if !l.armed {
		return false
	}
	l.armed = false
	l.fired = true
	return true
}

// Disarm resets the latch for the next animation cycle.
func (l *CueLatch) Disarm() {
	l.armed = false
	l.fired = false
}

// Armed reports whether the cue is waiting to fire.
func (l *CueLatch) Armed() bool {
	return l.armed
}
