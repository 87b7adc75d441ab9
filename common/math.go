package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Units converts world meters (y up) to stage pixels (y up) and to screen
// pixels (y down) through a camera centered at (CamX, CamY) stage pixels.
type Units struct {
	PixelsInMeter float64
	ScreenWidth   float64
	ScreenHeight  float64
}

func (u Units) Pixels(meters float64) float64 {
	return meters * u.PixelsInMeter
}

func (u Units) ToScreen(x, y, camX, camY float64) (float64, float64) {
	sx := u.Pixels(x) - (camX - u.ScreenWidth/2)
	sy := u.ScreenHeight - (u.Pixels(y) - (camY - u.ScreenHeight/2))
	return sx, sy
}
