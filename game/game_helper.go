package game

import (
	"cmp"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/meghashyamc/dreamgolf/geometry"
	"github.com/meghashyamc/dreamgolf/physics"
)

const screenMargin = 30

// Rect is a screen-space rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

func clampValue[T cmp.Ordered](value T, min T, max T) T {
	if value > max {
		value = max
		return value
	}

	if value < min {
		value = min
	}

	return value
}

// newProjection fits the course bounds into the window, leaving a margin.
func newProjection(bounds physics.Bounds, width, height int) geometry.Projection {
	courseW := bounds.MaxX - bounds.MinX
	courseH := bounds.MaxZ - bounds.MinZ
	scaleX := (float64(width) - 2*screenMargin) / courseW
	scaleY := (float64(height) - 2*screenMargin) / courseH
	scale := min(scaleX, scaleY)

	return geometry.Projection{
		OriginX:     (float64(width)-courseW*scale)/2 - bounds.MinX*scale,
		OriginY:     (float64(height)-courseH*scale)/2 - bounds.MinZ*scale,
		Scale:       scale,
		HeightScale: scale * 0.6,
	}
}

func drawRectangleOutline(screen *ebiten.Image, rect Rect, col color.Color) {
	vector.StrokeRect(screen, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height), 2, col, false)
}

func drawPanel(screen *ebiten.Image, rect Rect) {
	vector.DrawFilledRect(screen, float32(rect.X), float32(rect.Y), float32(rect.Width), float32(rect.Height), colorPanel, false)
	drawRectangleOutline(screen, rect, colorPanelEdge)
}

func drawText(screen *ebiten.Image, msg string, face *text.GoTextFace, x, y float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, msg, face, op)
}

func drawCentered(screen *ebiten.Image, msg string, face *text.GoTextFace, cx, y float64, col color.Color) {
	w, _ := text.Measure(msg, face, 0)
	drawText(screen, msg, face, cx-w/2, y, col)
}

func drawSprite(screen *ebiten.Image, sprite *ebiten.Image, x, y float64) {
	b := sprite.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x-float64(b.Dx())/2, y-float64(b.Dy())/2)
	screen.DrawImage(sprite, op)
}
