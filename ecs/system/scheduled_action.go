package system

import (
	"github.com/milk9111/jumpdontdie/ecs"
	"github.com/milk9111/jumpdontdie/ecs/component"
)

// ScheduledActionSystem advances delayed actions by the fixed frame time and
// turns expired ones into world events.
type ScheduledActionSystem struct {
	dt float64
}

func NewScheduledActionSystem(dt float64) *ScheduledActionSystem {
	return &ScheduledActionSystem{dt: dt}
}

func (s *ScheduledActionSystem) Update(w *ecs.World) {
	var fired []ecs.Entity
	ecs.ForEach(w, component.ScheduledActionComponent, func(e ecs.Entity, action *component.ScheduledAction) {
		if action.Deferred {
			action.Deferred = false
			return
		}
		action.Elapsed += s.dt
		if action.Elapsed+1e-9 < action.Delay {
			return
		}
		w.Events().Push(ecs.Event{Type: ecs.EventType(action.Action), Entity: e})
		fired = append(fired, e)
	})
	for _, e := range fired {
		w.DestroyEntity(e)
	}
}
