package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/meghashyamc/dreamgolf/assets"
	"github.com/meghashyamc/dreamgolf/geometry"
	"github.com/meghashyamc/dreamgolf/shot"
	"github.com/meghashyamc/dreamgolf/trajectory"
	"github.com/meghashyamc/dreamgolf/turn"
)

var (
	colorBackground = color.RGBA{34, 82, 44, 255}
	colorGrass      = color.RGBA{86, 170, 84, 255}
	colorFringe     = color.RGBA{60, 130, 60, 255}
	colorText       = color.White
	colorDim        = color.RGBA{210, 220, 210, 255}
	colorHighlight  = color.RGBA{255, 214, 64, 255}
	colorGuide      = color.RGBA{255, 255, 255, 200}
	colorBounce     = color.RGBA{255, 150, 60, 255}
	colorLanding    = color.RGBA{255, 80, 80, 255}
	colorAim        = color.RGBA{255, 240, 120, 255}
	colorFlag       = color.RGBA{230, 40, 40, 255}
	colorPanel      = color.RGBA{20, 30, 40, 210}
	colorPanelEdge  = color.RGBA{200, 220, 255, 255}
	colorPowerLow   = color.RGBA{80, 200, 90, 255}
	colorPowerHigh  = color.RGBA{240, 70, 60, 255}
	colorOverlay    = color.RGBA{0, 0, 0, 150}
)

const (
	panelWidth  = 260
	panelHeight = 110
	aimLength   = 60

	arrowHeadAngle = 2.6
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	g.drawCourse(screen)
	if g.session.State().IsShotSetup() && g.session.State() != turn.SelectingType {
		g.drawGuide(screen, g.session.Preview())
	}
	g.drawBall(screen)
	g.drawPanels(screen)
	g.drawHUD(screen)
	g.drawOverlays(screen)
}

func (g *Game) drawCourse(screen *ebiten.Image) {
	b := g.bounds
	x0, y0 := g.projection.ToScreen(mgl64.Vec3{b.MinX, 0, b.MinZ})
	x1, y1 := g.projection.ToScreen(mgl64.Vec3{b.MaxX, 0, b.MaxZ})
	vector.DrawFilledRect(screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), colorGrass, false)
	drawRectangleOutline(screen, Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}, colorFringe)

	hole := g.session.Hole()
	cx, cy := g.projection.ToScreen(hole.CupPosition())
	r := float32(hole.CupRadius * g.projection.Scale)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), r, colorFringe, true)
	drawSprite(screen, assets.CupSprite, cx, cy)

	// flag
	vector.StrokeLine(screen, float32(cx), float32(cy), float32(cx), float32(cy-40), 2, colorText, true)
	vector.DrawFilledRect(screen, float32(cx), float32(cy-40), 18, 11, colorFlag, false)

	tx, ty := g.projection.ToScreen(mgl64.Vec3{hole.Tee.X, 0, hole.Tee.Z})
	vector.StrokeRect(screen, float32(tx-6), float32(ty-6), 12, 12, 1, colorDim, true)
}

func (g *Game) drawGuide(screen *ebiten.Image, path trajectory.Result) {
	for i := 1; i < len(path.Points); i++ {
		// dashed: draw every other segment
		if i%2 == 0 {
			continue
		}
		ax, ay := g.projection.ToScreen(path.Points[i-1])
		bx, by := g.projection.ToScreen(path.Points[i])
		vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), 2, colorGuide, true)
	}
	for _, p := range path.BouncePoints {
		x, y := g.projection.ToScreen(p)
		vector.StrokeCircle(screen, float32(x), float32(y), 4, 1.5, colorBounce, true)
	}
	if path.Landing != nil {
		x, y := g.projection.ToScreen(*path.Landing)
		vector.DrawFilledCircle(screen, float32(x), float32(y), 3, colorLanding, true)
	}
}

func (g *Game) drawBall(screen *ebiten.Image) {
	pos := g.session.Ball().Position()
	sx, sy := g.projection.GroundToScreen(pos)
	drawSprite(screen, assets.ShadowSprite, sx, sy+2)
	bx, by := g.projection.ToScreen(pos)
	drawSprite(screen, assets.BallSprite, bx, by)

	if g.session.State() == turn.Aiming {
		dir := g.session.Parameters().Direction()
		ex, ey := bx+dir.X()*aimLength, by+dir.Z()*aimLength
		vector.StrokeLine(screen, float32(bx), float32(by), float32(ex), float32(ey), 3, colorAim, true)
		left := geometry.RotateY(dir, arrowHeadAngle)
		right := geometry.RotateY(dir, -arrowHeadAngle)
		vector.StrokeLine(screen, float32(ex), float32(ey), float32(ex+left.X()*12), float32(ey+left.Z()*12), 3, colorAim, true)
		vector.StrokeLine(screen, float32(ex), float32(ey), float32(ex+right.X()*12), float32(ey+right.Z()*12), 3, colorAim, true)
	}
}

func (g *Game) panelRect() Rect {
	return Rect{
		X:      float64(g.width) - panelWidth - screenMargin,
		Y:      float64(g.height) - panelHeight - screenMargin,
		Width:  panelWidth,
		Height: panelHeight,
	}
}

func (g *Game) drawPanels(screen *ebiten.Image) {
	s := g.session
	params := s.Parameters()
	rect := g.panelRect()

	switch {
	case s.ShotTypeSelector().Panel.Visible():
		drawPanel(screen, rect)
		drawText(screen, "Shot type", assets.SmallFont, rect.X+12, rect.Y+10, colorDim)
		for i, t := range []shot.ShotType{shot.Grounder, shot.Fly} {
			col := colorDim
			label := "  " + t.String()
			if t == params.ShotType {
				col = colorHighlight
				label = "> " + t.String()
			}
			drawText(screen, label, assets.ScoreFont, rect.X+12, rect.Y+34+float64(i)*30, col)
		}
	case s.Aim().Panel.Visible():
		drawPanel(screen, rect)
		drawText(screen, "Aim  < >", assets.SmallFont, rect.X+12, rect.Y+10, colorDim)
		drawText(screen, fmt.Sprintf("%.0f°", params.Angle*180/math.Pi), assets.ScoreFont, rect.X+12, rect.Y+40, colorText)
	case s.Guide().Panel.Visible():
		drawPanel(screen, rect)
		drawText(screen, "Guide", assets.SmallFont, rect.X+12, rect.Y+10, colorDim)
		drawText(screen, params.GuideLength.String(), assets.ScoreFont, rect.X+12, rect.Y+40, colorHighlight)
		drawText(screen, fmt.Sprintf("%.0f units", s.ShotTuning().GuideDistance(params.GuideLength)), assets.SmallFont, rect.X+12, rect.Y+74, colorDim)
	case s.PowerSpin().Panel.Visible():
		g.drawPowerPanel(screen, rect)
	}

	if s.Boost().Panel.Visible() {
		cx := float64(g.width) / 2
		drawCentered(screen, "BOOST!", assets.TitleFont, cx, screenMargin+40, colorHighlight)
	}
	if g.flash.Active() {
		drawCentered(screen, g.flashText, assets.ScoreFont, float64(g.width)/2, screenMargin+90, colorHighlight)
	}
}

func (g *Game) drawPowerPanel(screen *ebiten.Image, rect Rect) {
	s := g.session
	params := s.Parameters()
	tuning := s.ShotTuning()

	drawPanel(screen, rect)
	drawText(screen, "Power", assets.SmallFont, rect.X+12, rect.Y+10, colorDim)

	bar := Rect{X: rect.X + 12, Y: rect.Y + 36, Width: rect.Width - 24, Height: 18}
	fill := colorPowerLow
	if s.PowerSpin().IsSuperShot() {
		fill = colorPowerHigh
	}
	vector.DrawFilledRect(screen, float32(bar.X), float32(bar.Y), float32(bar.Width*params.Power), float32(bar.Height), fill, false)
	drawRectangleOutline(screen, bar, colorPanelEdge)
	mark := bar.X + bar.Width*tuning.SuperShotThreshold
	vector.StrokeLine(screen, float32(mark), float32(bar.Y-4), float32(mark), float32(bar.Y+bar.Height+4), 2, colorHighlight, false)

	spin := params.SpinType.String()
	if params.SpinType != shot.SpinNone {
		spin = fmt.Sprintf("%s %.0f%%", spin, params.SpinIntensity*100)
	}
	drawText(screen, "Spin: "+spin, assets.SmallFont, rect.X+12, rect.Y+66, colorText)
	if !s.PowerSpin().Charging() {
		drawText(screen, "Enter to charge", assets.SmallFont, rect.X+12, rect.Y+86, colorDim)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	s := g.session
	hole := s.Hole()
	header := fmt.Sprintf("Hole %d/%d  %s  Par %d", s.HoleIndex()+1, len(s.Course().Holes), hole.Name, hole.Par)
	drawText(screen, header, assets.ScoreFont, screenMargin, 8, colorText)

	status := fmt.Sprintf("Strokes: %d  Total: %d  %s", s.Strokes(), s.TotalStrokes(), g.scoreBook.GetBestText(s.HoleIndex()+1))
	drawText(screen, status, assets.SmallFont, screenMargin, float64(g.height)-screenMargin+6, colorDim)
	drawText(screen, s.State().String(), assets.SmallFont, screenMargin, 40, colorDim)

	if g.messageTimer.Active() {
		msg := g.message
		if g.newBest && s.HoleComplete() {
			msg += "  New best!"
		}
		drawCentered(screen, msg, assets.TitleFont, float64(g.width)/2, float64(g.height)/2-60, colorHighlight)
	}
}

func (g *Game) drawOverlays(screen *ebiten.Image) {
	s := g.session
	cx, cy := float64(g.width)/2, float64(g.height)/2
	switch {
	case s.Paused():
		vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height), colorOverlay, false)
		drawCentered(screen, "PAUSED", assets.TitleFont, cx, cy-30, colorText)
		drawCentered(screen, "Press P to resume", assets.SmallFont, cx, cy+20, colorDim)
	case s.Finished():
		vector.DrawFilledRect(screen, 0, 0, float32(g.width), float32(g.height), colorOverlay, false)
		total, par := s.TotalStrokes(), s.Course().TotalPar()
		drawCentered(screen, "Course complete!", assets.TitleFont, cx, cy-80, colorHighlight)
		drawCentered(screen, fmt.Sprintf("%d strokes (par %d)", total, par), assets.ScoreFont, cx, cy-20, colorText)
		if best := g.scoreBook.Card().BestRound; best != nil {
			drawCentered(screen, fmt.Sprintf("Best round: %d", best.Strokes), assets.SmallFont, cx, cy+20, colorDim)
		}
		drawCentered(screen, "Press R to restart", assets.SmallFont, cx, cy+50, colorDim)
	case s.State() == turn.Idle && !s.HoleComplete():
		drawCentered(screen, "Press Enter to take your shot", assets.SmallFont, cx, float64(g.height)-screenMargin-24, colorDim)
	}
}
