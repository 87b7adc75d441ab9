package render

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/jumpdontdie/common"
	"github.com/milk9111/jumpdontdie/ecs"
	"github.com/milk9111/jumpdontdie/ecs/component"
)

// Camera returns the center of the world's camera in stage pixels, or the
// stage center when there is none.
func Camera(w *ecs.World, units common.Units) (float64, float64) {
	if e, ok := w.First(component.CameraComponent.Kind()); ok {
		if cam, ok := ecs.Get(w, e, component.CameraComponent); ok {
			return cam.X, cam.Y
		}
	}
	return units.ScreenWidth / 2, units.ScreenHeight / 2
}

// DrawSprites draws every visible sprite. Floors go first so the player and
// spikes stay on top.
func DrawSprites(w *ecs.World, screen *ebiten.Image, units common.Units) {
	if w == nil || screen == nil {
		return
	}
	camX, camY := Camera(w, units)

	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		si, _ := ecs.Get(w, entities[i], component.SpriteComponent)
		sj, _ := ecs.Get(w, entities[j], component.SpriteComponent)
		if layer(si.Kind) != layer(sj.Kind) {
			return layer(si.Kind) < layer(sj.Kind)
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		s, _ := ecs.Get(w, e, component.SpriteComponent)
		if s.Hidden {
			continue
		}
		// top-left corner in screen space
		x, y := units.ToScreen(t.X-s.Width/2, t.Y+s.Height/2, camX, camY)
		wPx, hPx := units.Pixels(s.Width), units.Pixels(s.Height)
		if x+wPx < 0 || x > units.ScreenWidth {
			continue
		}

		switch s.Kind {
		case component.SpriteSpike:
			drawTriangle(screen, float32(x), float32(y), float32(wPx), float32(hPx), s.Color)
		default:
			vector.DrawFilledRect(screen, float32(x), float32(y), float32(wPx), float32(hPx), s.Color, false)
			if s.Kind == component.SpriteFloor {
				vector.StrokeLine(screen, float32(x), float32(y), float32(x+wPx), float32(y), 2, color.White, false)
			}
		}
	}
}

func layer(kind component.SpriteKind) int {
	if kind == component.SpriteFloor {
		return 0
	}
	return 1
}

func drawTriangle(screen *ebiten.Image, x, y, w, h float32, clr color.Color) {
	var path vector.Path
	path.MoveTo(x, y+h)
	path.LineTo(x+w, y+h)
	path.LineTo(x+w/2, y)
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{})
}
