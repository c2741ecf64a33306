package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// GroundDepth is the draw order of the ground strip. Actors with a lower
// depth are drawn behind it.
const GroundDepth = 100

// Visual characters for rendering
const (
	ActorChar     = '●'
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
)

var (
	groundPattern = []rune("▚▞═")
	wingFrames    = []rune{'^', '-', 'v'}
)

// viewport maps world coordinates onto screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(snap Snapshot, dst *core.Screen) viewport {
	if snap.WorldWidth <= 0 || snap.WorldHeight <= 0 {
		return viewport{sx: 1, sy: 1}
	}
	return viewport{
		sx: float64(dst.Width()) / snap.WorldWidth,
		sy: float64(dst.Height()) / snap.WorldHeight,
	}
}

// rect converts a world box to the cells it covers, at least one cell each way.
func (v viewport) rect(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

func (v viewport) row(y float64) int {
	return int(math.Floor(y * v.sy))
}

// Render draws a snapshot scaled to fill dst. Obstacles go first, then the
// actor and the ground in depth order, then the HUD and phase banners.
func Render(snap Snapshot, dst *core.Screen) {
	vp := newViewport(snap, dst)

	for _, o := range snap.Obstacles {
		drawObstacle(dst, vp, o)
	}

	if snap.Actor.Depth < GroundDepth {
		drawActor(dst, vp, snap.Actor)
		drawGround(dst, vp, snap)
	} else {
		drawGround(dst, vp, snap)
		drawActor(dst, vp, snap.Actor)
	}

	if snap.Phase != PhaseTitle && snap.Phase != PhaseBoot {
		dst.DrawTextCentered(1, fmt.Sprintf(" %d ", snap.Score), core.ColorScore)
	}

	switch snap.Phase {
	case PhaseTitle:
		if !snap.Starting {
			DrawMessage(dst, "FLAPPY", "Press SPACE to start")
		}
	case PhaseGameOver:
		DrawMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  SPACE to restart", snap.Score))
	}
}

func drawObstacle(dst *core.Screen, vp viewport, o ObstacleView) {
	r := vp.rect(o.Box)
	dst.FillRect(r, PipeChar, core.ColorPipe)
	if o.Orientation == Upper {
		dst.DrawHLine(r.X, r.Bottom()-1, r.W, PipeCapTop, core.ColorPipeCap)
	} else {
		dst.DrawHLine(r.X, r.Y, r.W, PipeCapBottom, core.ColorPipeCap)
	}
}

func drawGround(dst *core.Screen, vp viewport, snap Snapshot) {
	top := vp.row(snap.GroundY)
	shift := int(snap.GroundOffset * vp.sx)
	for y := top; y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			i := (x + shift) % len(groundPattern)
			if y > top {
				i = len(groundPattern) - 1
			}
			dst.SetColored(x, y, groundPattern[i], core.ColorGround)
		}
	}
}

func drawActor(dst *core.Screen, vp viewport, a ActorView) {
	color := core.ColorBird
	if a.Tag != TagAlive {
		color = core.ColorBirdDead
	}

	r := vp.rect(a.Box())
	dst.FillRect(r, ActorChar, color)
	dst.SetColored(r.X, r.Y, wingFrames[a.Frame%len(wingFrames)], color)
	dst.SetColored(r.Right()-1, r.Y+r.H/2, noseFor(a.Angle), color)
}

// noseFor picks a glyph for the leading cell from the display tilt.
func noseFor(angle float64) rune {
	switch {
	case angle < -10:
		return '↗'
	case angle > 20:
		return '↘'
	default:
		return '→'
	}
}

// DrawMessage draws a boxed two-line message in the middle of the screen.
func DrawMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBanner)

	dst.DrawTextColored(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title, core.ColorBanner)
	dst.DrawTextColored(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle, core.ColorMuted)
}
