package scene

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

var (
	textColor    = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	panelColor   = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	buttonColor  = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	hoverColor   = color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 255}
	pressedColor = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 255}

	backgroundColor = colornames.Cornflowerblue
)

// uiFace is the built-in basic font, so no font files need to ship.
var uiFace ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

// menu is a centered panel of labels and buttons.
type menu struct {
	ui    *ebitenui.UI
	panel *widget.Container
}

func newMenu(width, height int) *menu {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(width/2, height/2),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{HorizontalPosition: widget.AnchorLayoutPositionCenter, VerticalPosition: widget.AnchorLayoutPositionCenter}),
		),
	)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	return &menu{ui: &ebitenui.UI{Container: root}, panel: panel}
}

func (m *menu) label(s string) *widget.Text {
	t := widget.NewText(
		widget.TextOpts.Text(s, uiFace, textColor),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
	m.panel.AddChild(t)
	return t
}

func (m *menu) button(s string, onClick func()) *widget.Button {
	btn := widget.NewButton(
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    imageui.NewNineSliceColor(buttonColor),
			Hover:   imageui.NewNineSliceColor(hoverColor),
			Pressed: imageui.NewNineSliceColor(pressedColor),
		}),
		widget.ButtonOpts.Text(s, uiFace, &widget.ButtonTextColor{Idle: textColor}),
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(160, 28),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter, Stretch: true}),
		),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
	m.panel.AddChild(btn)
	return btn
}

func (m *menu) Update() {
	m.ui.Update()
}

func (m *menu) Draw(screen *ebiten.Image) {
	m.ui.Draw(screen)
}

// drawText prints s with its top-left corner at (x, y).
func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &ebtext.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.LineSpacing = 16
	ebtext.Draw(screen, s, uiFace, op)
}

// drawCenteredText prints s centered horizontally on the screen at height y.
func drawCenteredText(screen *ebiten.Image, s string, y float64, clr color.Color) {
	w, _ := ebtext.Measure(s, uiFace, 16)
	drawText(screen, s, (float64(screen.Bounds().Dx())-w)/2, y, clr)
}
