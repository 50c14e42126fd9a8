package scene

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

var hudFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// drawText draws s with its top edge at y. When centred, x is the middle of
// the line.
func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color, centred bool) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	if centred {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(screen, s, hudFace, op)
}

// centredPanel returns a root container holding a translucent panel anchored
// in the middle of the screen. Children are stacked vertically.
func centredPanel(minW, minH int) (root, panel *widget.Container) {
	panel = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(color.NRGBA{A: 0xa0})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 16, Bottom: 16, Left: 24, Right: 24}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(minW, minH),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	root = widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return root, panel
}

func newLabel(s string, clr color.Color) *widget.Text {
	face := hudFace
	return widget.NewText(
		widget.TextOpts.Text(s, &face, clr),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})),
	)
}

// outcomeBanner is the overlay shown between an outcome and the restart.
type outcomeBanner struct {
	ui    *ebitenui.UI
	title *widget.Text
}

func newOutcomeBanner(s string, clr color.Color) *outcomeBanner {
	root, panel := centredPanel(160, 0)
	title := newLabel(s, clr)
	panel.AddChild(title)
	return &outcomeBanner{ui: &ebitenui.UI{Container: root}, title: title}
}

// loadingPanel is the "Loading" label above a progress bar.
type loadingPanel struct {
	ui  *ebitenui.UI
	bar *widget.ProgressBar
}

func newLoadingPanel(steps int) *loadingPanel {
	root, panel := centredPanel(progressWidth+48, 0)
	panel.AddChild(newLabel("Loading", color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}))

	bar := widget.NewProgressBar(
		widget.ProgressBarOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(progressWidth, progressHeight),
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter}),
		),
		widget.ProgressBarOpts.Images(
			&widget.ProgressBarImage{Idle: imageui.NewNineSliceColor(color.NRGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff})},
			&widget.ProgressBarImage{Idle: imageui.NewNineSliceColor(color.NRGBA{R: 0x9a, G: 0xd9, B: 0x8d, A: 0xff})},
		),
		widget.ProgressBarOpts.Values(0, max(steps, 1), 0),
	)
	panel.AddChild(bar)
	return &loadingPanel{ui: &ebitenui.UI{Container: root}, bar: bar}
}
