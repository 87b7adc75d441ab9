package component

// Action names a deferred world event.
type Action string

const ActionSessionEnded Action = "session_ended"

// ScheduledAction fires Action once Elapsed reaches Delay. Elapsed only grows
// by the frame time handed to the scheduled action system. An action created
// during the physics step sets Deferred so its first frame is not counted.
type ScheduledAction struct {
	Action   Action
	Delay    float64
	Elapsed  float64
	Deferred bool
}

var ScheduledActionComponent = NewComponent[ScheduledAction]()
