package config

// StateID represents a character animation state
type StateID int

const (
	StateNone StateID = iota
	StateIdle
	StateRunning
	StateJumping
	StateFalling
	StateRolling
)

func (s StateID) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateJumping:
		return "jumping"
	case StateFalling:
		return "falling"
	case StateRolling:
		return "rolling"
	default:
		return "none"
	}
}

// TriggerID represents a one-shot animation trigger
type TriggerID int

const (
	TriggerNone TriggerID = iota
	TriggerJump
	TriggerRoll
)

func (t TriggerID) String() string {
	switch t {
	case TriggerJump:
		return "jump"
	case TriggerRoll:
		return "roll"
	default:
		return "none"
	}
}
