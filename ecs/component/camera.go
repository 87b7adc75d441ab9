package component

// Camera is the visible window in screen pixels. X and Y are the center.
type Camera struct {
	X      float64
	Y      float64
	Width  float64
	Height float64

	// FollowAfter is the player pixel x past which the camera scrolls.
	FollowAfter float64
}

var CameraComponent = NewComponent[Camera]()
