package system

import (
	"github.com/milk9111/jumpdontdie/ecs"
	"github.com/milk9111/jumpdontdie/ecs/component"
)

// InputSource is polled once per frame.
type InputSource interface {
	Pressed() bool
	JustPressed() bool
}

type InputSystem struct {
	source InputSource
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.source == nil {
		return
	}
	held := i.source.Pressed()
	justPressed := i.source.JustPressed()

	ecs.ForEach(w, component.InputComponent, func(_ ecs.Entity, input *component.Input) {
		input.Held = held
		input.JustPressed = justPressed
	})
}
