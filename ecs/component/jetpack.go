package component

// HeatState is the jetpack lockout state machine.
//
//	Normal --thrust would empty the meter--> Overheated
//	Overheated --meter refilled to 1.0--> Normal
type HeatState uint8

const (
	HeatNormal HeatState = iota
	HeatOverheated
)

func (s HeatState) String() string {
	switch s {
	case HeatNormal:
		return "normal"
	case HeatOverheated:
		return "overheated"
	default:
		return "unknown"
	}
}

// Jetpack is the boost meter. Meter lives in [0, 1].
type Jetpack struct {
	Meter float64
	State HeatState

	// tripped is set on the update that entered Overheated so the lockout is
	// visible for at least one full frame even when the meter is still full.
	tripped bool
}

var JetpackComponent = NewComponent[Jetpack]()

func (j *Jetpack) Overheated() bool {
	return j.State == HeatOverheated
}

// Thrust tries to spend cost from the meter. fired reports whether the
// impulse should be applied; tripped reports whether this attempt entered
// the Overheated state. While overheated every attempt is a no-op.
func (j *Jetpack) Thrust(cost float64) (fired, tripped bool) {
	if j.Overheated() {
		return false, false
	}
	if j.Meter-cost > 0 {
		j.Meter -= cost
		return true, false
	}
	j.State = HeatOverheated
	j.tripped = true
	return false, true
}

// Regenerate refills the meter by dt*rate, or dt*overheatRate while
// overheated, capping at 1.0. It reports whether the lockout cleared. Only an
// update with dt > 0 can refill or release the lockout.
func (j *Jetpack) Regenerate(dt, rate, overheatRate float64) (cooled bool) {
	if dt <= 0 {
		return false
	}
	tripped := j.tripped
	j.tripped = false

	if j.Meter < 1 {
		r := rate
		if j.Overheated() {
			r = overheatRate
		}
		if r > 0 {
			j.Meter += dt * r
		}
		if j.Meter > 1 {
			j.Meter = 1
		}
	}

	if j.Overheated() && j.Meter >= 1 && !tripped {
		j.State = HeatNormal
		return true
	}
	return false
}
