package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var jumpKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyUp, ebiten.KeyW}

// Device reads the jump button from the keyboard, the left mouse button,
// touches and the first gamepad's bottom face button.
type Device struct {
	touches []ebiten.TouchID
}

func NewDevice() *Device {
	return &Device{}
}

// Pressed reports whether any jump input is down.
func (d *Device) Pressed() bool {
	for _, k := range jumpKeys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return true
	}
	d.touches = ebiten.AppendTouchIDs(d.touches[:0])
	if len(d.touches) > 0 {
		return true
	}
	if id, ok := d.gamepad(); ok {
		return ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}
	return false
}

// JustPressed reports a fresh press edge on this frame.
func (d *Device) JustPressed() bool {
	for _, k := range jumpKeys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	d.touches = inpututil.AppendJustPressedTouchIDs(d.touches[:0])
	if len(d.touches) > 0 {
		return true
	}
	if id, ok := d.gamepad(); ok {
		return inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom)
	}
	return false
}

// BackPressed reports Escape or the gamepad's right face button.
func (d *Device) BackPressed() bool {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return true
	}
	if id, ok := d.gamepad(); ok {
		return inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight)
	}
	return false
}

// DebugToggled reports F3.
func (d *Device) DebugToggled() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyF3)
}

func (d *Device) gamepad() (ebiten.GamepadID, bool) {
	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		return gamepads[0], true
	}
	return 0, false
}
