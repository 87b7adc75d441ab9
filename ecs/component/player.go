package component

// Player holds the tuning for a controllable runner.
type Player struct {
	Speed          float64
	JumpImpulse    float64
	FallMultiplier float64
	StartX         float64
}

var PlayerComponent = NewComponent[Player]()

// PlayerState is the jump/alive state machine of a play session.
//
// Jumping doubles as the Airborne state; !Jumping is Grounded. Once Alive is
// false it never becomes true again for the same session.
type PlayerState struct {
	Alive    bool
	Jumping  bool
	MustJump bool

	// Jumps counts impulses applied during the session.
	Jumps int
}

var PlayerStateComponent = NewComponent[PlayerState]()

// NewPlayerState returns a grounded, living player.
func NewPlayerState() PlayerState {
	return PlayerState{Alive: true}
}

// Grounded reports whether the player is standing on a floor.
func (s *PlayerState) Grounded() bool {
	return !s.Jumping
}

// TryJump starts a jump if the player is alive and grounded. It returns true
// when the caller must apply the jump impulse.
func (s *PlayerState) TryJump() bool {
	if !s.Alive || s.Jumping {
		return false
	}
	s.Jumping = true
	s.Jumps++
	return true
}

// ConsumeMustJump clears a deferred jump request and attempts the jump.
func (s *PlayerState) ConsumeMustJump() bool {
	if !s.MustJump {
		return false
	}
	s.MustJump = false
	return s.TryJump()
}

// Land handles the player touching a floor. A held input queues a jump for
// the next tick because forces cannot be applied from inside the step.
func (s *PlayerState) Land(held bool) {
	s.Jumping = false
	if held {
		s.MustJump = true
	}
}

// LeaveFloor marks the player airborne. It returns true when a jump sound
// should play.
func (s *PlayerState) LeaveFloor() bool {
	s.Jumping = true
	return s.Alive
}

// Kill ends the session's life. Only the first call returns true.
func (s *PlayerState) Kill() bool {
	if !s.Alive {
		return false
	}
	s.Alive = false
	return true
}
