package component

// Input stores per-frame input state for an entity.
type Input struct {
	// Held is true while the jump button or touch is down.
	Held bool
	// JustPressed is true only on the frame the press started.
	JustPressed bool
}

var InputComponent = NewComponent[Input]()
