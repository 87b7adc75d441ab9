package scene

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/jumpdontdie/assets"
	"github.com/milk9111/jumpdontdie/levels"
	"github.com/milk9111/jumpdontdie/logging"
	"github.com/milk9111/jumpdontdie/session"
)

type loadStep struct {
	name string
	run  func() error
}

// Loading prepares assets one step per frame, then moves on to Next.
type Loading struct {
	deps  *Deps
	next  session.Mode
	steps []loadStep
	done  int
}

func NewLoading(deps *Deps, next session.Mode) *Loading {
	l := &Loading{deps: deps, next: next}
	for _, name := range assets.SoundNames {
		name := name
		l.steps = append(l.steps, loadStep{name: "sound " + name, run: func() error {
			return deps.Sounds.Load(name)
		}})
	}
	level := deps.Config.Game.Level
	l.steps = append(l.steps, loadStep{name: "level " + level, run: func() error {
		_, err := levels.Load(level)
		return err
	}})
	return l
}

func (l *Loading) Show() error {
	l.done = 0
	return nil
}

func (l *Loading) Hide() {}

func (l *Loading) Update() error {
	if l.done >= len(l.steps) {
		l.deps.Session.Request(l.next)
		return nil
	}
	step := l.steps[l.done]
	if err := step.run(); err != nil {
		return fmt.Errorf("loading %s: %w", step.name, err)
	}
	logging.Log.Debugw("loaded", "step", step.name)
	l.done++
	return nil
}

// Progress is the completed share of the load steps in [0, 1].
func (l *Loading) Progress() float64 {
	if len(l.steps) == 0 {
		return 1
	}
	return float64(l.done) / float64(len(l.steps))
}

func (l *Loading) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	drawCenteredText(screen, fmt.Sprintf("Loading... %d%%", int(l.Progress()*100)), float64(screen.Bounds().Dy())/2, textColor)
}
