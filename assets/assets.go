package assets

import (
	"bytes"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	BallSprite   *ebiten.Image
	ShadowSprite *ebiten.Image
	CupSprite    *ebiten.Image
	ScoreFont    *text.GoTextFace
	SmallFont    *text.GoTextFace
	TitleFont    *text.GoTextFace
)

func init() {
	BallSprite = disc(7, color.RGBA{250, 245, 235, 255}, color.RGBA{255, 120, 170, 255})
	ShadowSprite = disc(6, color.RGBA{0, 0, 0, 90}, nil)
	CupSprite = disc(9, color.RGBA{20, 30, 20, 255}, color.RGBA{240, 240, 240, 255})

	regular := loadFace(goregular.TTF)
	bold := loadFace(gobold.TTF)
	ScoreFont = &text.GoTextFace{
		Source: regular,
		Size:   24,
	}
	SmallFont = &text.GoTextFace{
		Source: regular,
		Size:   16,
	}
	TitleFont = &text.GoTextFace{
		Source: bold,
		Size:   40,
	}
}

func loadFace(ttf []byte) *text.GoTextFaceSource {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(ttf))
	if err != nil {
		panic(err)
	}
	return fontSource
}

// disc draws a filled circle with an optional rim into a fresh image.
func disc(radius float32, fill color.Color, rim color.Color) *ebiten.Image {
	size := int(radius*2) + 2
	img := ebiten.NewImage(size, size)
	c := float32(size) / 2
	vector.DrawFilledCircle(img, c, c, radius, fill, true)
	if rim != nil {
		vector.StrokeCircle(img, c, c, radius-0.5, 1.5, rim, true)
	}
	return img
}
