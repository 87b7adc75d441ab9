package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

var images = map[string]*ebiten.Image{}

// RegisterImage stores an image by key.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	images[key] = img
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	return images[key]
}

const whiteKey = "white"

// whitePixel is the 1x1 source image used to fill triangle paths.
func whitePixel() *ebiten.Image {
	if img := GetImage(whiteKey); img != nil {
		return img
	}
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	sub := img.SubImage(img.Bounds().Inset(1)).(*ebiten.Image)
	RegisterImage(whiteKey, sub)
	return sub
}
