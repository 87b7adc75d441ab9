// Package session owns the top-level game mode. Screens never switch each
// other directly; they queue a request that the controller applies at the
// start of the next frame.
package session

import (
	"errors"
	"fmt"

	"github.com/milk9111/jumpdontdie/logging"
)

type Mode int

const (
	ModeNone Mode = iota
	ModeLoading
	ModeMenu
	ModePlaying
	ModeGameOver
	ModeCredits
	ModePhysicsDemo
)

func (m Mode) String() string {
	switch m {
	case ModeLoading:
		return "loading"
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	case ModeGameOver:
		return "game_over"
	case ModeCredits:
		return "credits"
	case ModePhysicsDemo:
		return "physics_demo"
	default:
		return "none"
	}
}

var ErrUnknownMode = errors.New("session: no screen registered for mode")

// Screen is one top-level mode. Show and Hide bracket its active lifetime.
type Screen interface {
	Show() error
	Hide()
	Update() error
}

// Result describes the run that just ended.
type Result struct {
	Level    string
	Distance int
	Jumps    int
	Best     int
}

type request struct {
	mode    Mode
	session uint64
	scoped  bool
}

// Controller owns the current screen and the queued transition.
type Controller struct {
	screens map[Mode]Screen
	current Mode
	active  Screen
	pending *request

	// session increases every time a play session starts.
	session uint64
	result  Result
}

func NewController() *Controller {
	return &Controller{screens: make(map[Mode]Screen)}
}

func (c *Controller) Register(mode Mode, screen Screen) {
	c.screens[mode] = screen
}

// Request queues a transition. A later request in the same frame replaces it.
func (c *Controller) Request(mode Mode) {
	c.pending = &request{mode: mode}
}

// RequestFrom queues a transition on behalf of a play session. It is dropped
// when that session is no longer the current one.
func (c *Controller) RequestFrom(session uint64, mode Mode) {
	c.pending = &request{mode: mode, session: session, scoped: true}
}

// Apply performs the queued transition, if any. It reports whether the
// active screen changed.
func (c *Controller) Apply() (bool, error) {
	req := c.pending
	c.pending = nil
	if req == nil {
		return false, nil
	}
	if req.scoped && req.session != c.session {
		logging.Log.Debugw("dropping stale transition", "mode", req.mode.String(), "session", req.session, "current", c.session)
		return false, nil
	}

	next, ok := c.screens[req.mode]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownMode, req.mode)
	}

	if c.active != nil {
		c.active.Hide()
	}
	if req.mode == ModePlaying || req.mode == ModePhysicsDemo {
		c.session++
	}
	prev := c.current
	c.current = req.mode
	c.active = next
	logging.Log.Infow("screen changed", "from", prev.String(), "to", req.mode.String(), "session", c.session)

	if err := next.Show(); err != nil {
		return true, fmt.Errorf("session: show %s: %w", req.mode, err)
	}
	return true, nil
}

// Update applies a pending transition and updates the active screen.
func (c *Controller) Update() error {
	if _, err := c.Apply(); err != nil {
		return err
	}
	if c.active == nil {
		return nil
	}
	return c.active.Update()
}

// Close hides the active screen.
func (c *Controller) Close() {
	if c.active != nil {
		c.active.Hide()
		c.active = nil
	}
	c.current = ModeNone
}

func (c *Controller) Current() Mode  { return c.current }
func (c *Controller) Active() Screen { return c.active }
func (c *Controller) Session() uint64 {
	return c.session
}

func (c *Controller) SetResult(r Result) { c.result = r }
func (c *Controller) Result() Result     { return c.result }
