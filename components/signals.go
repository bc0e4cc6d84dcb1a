package components

import (
	"github.com/yohamta/donburi"

	cfg "github.com/automoto/strider/config"
)

// SignalData is the named parameter surface the presentation layer
// reads every frame: booleans and floats for blend trees plus a queue
// of one-shot triggers.
type SignalData struct {
	Grounded bool
	Moving   bool // raw move input non-zero this frame
	Running  bool
	Falling  bool

	MovementSpeed float64 // magnitude of the smoothed direction
	LocalX        float64 // smoothed direction on the character's right axis
	LocalY        float64 // smoothed direction on the character's forward axis

	State cfg.StateID

	Triggers []cfg.TriggerID
}

// PushTrigger queues a one-shot trigger for the presentation layer.
func (s *SignalData) PushTrigger(t cfg.TriggerID) {
	s.Triggers = append(s.Triggers, t)
}

// DrainTriggers hands the queued triggers to the caller and empties
// the queue. The presentation layer calls this once per frame.
func (s *SignalData) DrainTriggers() []cfg.TriggerID {
	out := s.Triggers
	s.Triggers = nil
	return out
}

var Signals = donburi.NewComponentType[SignalData]()
