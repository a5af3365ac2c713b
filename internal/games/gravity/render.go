package gravity

import (
	"fmt"
	"math"

	"github.com/vovakirdan/gravity-switch/internal/core"
	"github.com/vovakirdan/gravity-switch/internal/games/gravity/engine"
)

// Visual characters for rendering
const (
	SurfaceChar     = '░'
	FloorEdgeChar   = '▀'
	CeilingEdgeChar = '▄'
	GridChar        = '·'
	PlayerChar      = '█'
	SpinChar        = '▓'
	TrailChar       = '░'
	SpikeUpChar     = '▲'
	SpikeDownChar   = '▼'
	BlockChar       = '█'
)

// gridSpacing is the distance between background grid lines.
const gridSpacing = 50

// edge absorbs float error when converting a right or bottom edge to a cell.
const edge = 1e-6

// layout converts playfield units to screen cells.
type layout struct {
	cfg engine.Config

	ceilingRow int // last row fully above the ceiling
	floorRow   int // first row fully below the floor
}

func newLayout(cfg engine.Config) layout {
	return layout{
		cfg:        cfg,
		ceilingRow: int(math.Floor(cfg.CeilingY/CellH)) - 1,
		floorRow:   int(math.Ceil(cfg.FloorY / CellH)),
	}
}

func col(x float64) int { return int(math.Floor(x / CellW)) }
func row(y float64) int { return int(math.Floor(y / CellH)) }

// Render draws a snapshot of the game into dst.
func Render(dst *core.Screen, d engine.GameData, paused bool) {
	dst.Clear()
	l := newLayout(d.Config)

	l.drawBackground(dst, d.Distance)
	l.drawTrail(dst, d.Trail)
	for _, o := range d.Obstacles {
		l.drawObstacle(dst, o)
	}
	if d.State != engine.PhaseGameOver {
		l.drawPlayer(dst, d.Player)
	}
	l.drawParticles(dst, d.Particles)
	drawHUD(dst, d, paused)
}

func (l layout) drawBackground(dst *core.Screen, distance float64) {
	w := dst.Width()

	for y := 0; y <= l.ceilingRow; y++ {
		dst.DrawHLine(0, y, w, SurfaceChar, core.ColorSlate)
	}
	dst.DrawHLine(0, l.ceilingRow, w, CeilingEdgeChar, core.ColorBrightCyan)

	for y := l.floorRow; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, w, SurfaceChar, core.ColorSlate)
	}
	dst.DrawHLine(0, l.floorRow, w, FloorEdgeChar, core.ColorBrightCyan)

	// Vertical grid lines scroll with the distance travelled.
	offset := math.Mod(distance, gridSpacing)
	for x := -offset; x < l.cfg.Width+gridSpacing; x += gridSpacing {
		c := col(x)
		for y := l.ceilingRow + 1; y < l.floorRow; y += 2 {
			dst.SetColor(c, y, GridChar, core.ColorDarkGray)
		}
	}
}

func (l layout) drawTrail(dst *core.Screen, trail []engine.TrailPoint) {
	// Oldest first so newer points overwrite.
	for i := len(trail) - 1; i >= 1; i-- {
		p := trail[i]
		color := core.ColorDarkGray
		if p.Alpha > 0.5 {
			color = core.ColorGreen
		}
		dst.SetColor(col(p.X), row(p.Y), TrailChar, color)
	}
}

func (l layout) drawObstacle(dst *core.Screen, o engine.Obstacle) {
	left, right := col(o.Left()), col(o.Right()-edge)
	floor, ceiling := o.Bands(l.cfg)

	glyphUp, glyphDown, color := SpikeUpChar, SpikeDownChar, core.ColorBrightRed
	if o.Type.IsBlock() {
		glyphUp, glyphDown, color = BlockChar, BlockChar, core.ColorBlue
	}

	if floor > 0 {
		top := min(row(l.cfg.FloorY-floor), l.floorRow-1)
		for y := top; y < l.floorRow; y++ {
			for x := left; x <= right; x++ {
				dst.SetColor(x, y, glyphUp, color)
			}
		}
	}
	if ceiling > 0 {
		bottom := max(row(l.cfg.CeilingY+ceiling-edge), l.ceilingRow+1)
		for y := l.ceilingRow + 1; y <= bottom; y++ {
			for x := left; x <= right; x++ {
				dst.SetColor(x, y, glyphDown, color)
			}
		}
	}
}

func (l layout) drawPlayer(dst *core.Screen, p engine.Player) {
	box := engine.PlayerBox(p, l.cfg)

	glyph := PlayerChar
	if math.Abs(p.TargetRotation-p.Rotation) > 0.3 {
		glyph = SpinChar
	}
	for y := row(box.Top); y <= row(box.Bottom-edge); y++ {
		for x := col(box.Left); x <= col(box.Right-edge); x++ {
			dst.SetColor(x, y, glyph, engine.PlayerColor)
		}
	}
}

func (l layout) drawParticles(dst *core.Screen, particles []engine.Particle) {
	for _, p := range particles {
		glyph := '.'
		switch {
		case p.Alpha > 0.66:
			glyph = '*'
		case p.Alpha > 0.33:
			glyph = '+'
		}
		dst.SetColor(col(p.X), row(p.Y), glyph, p.Color)
	}
}

func drawHUD(dst *core.Screen, d engine.GameData, paused bool) {
	dst.DrawTextCentered(1, fmt.Sprintf(" %d ", d.Score), core.ColorBrightWhite)
	if d.HighScore > 0 {
		dst.DrawTextCentered(2, fmt.Sprintf(" BEST: %d ", d.HighScore), core.ColorGray)
	}

	mid := dst.Height() / 2
	switch {
	case paused:
		drawPanel(dst, []panelLine{
			{"PAUSED", core.ColorBrightWhite},
			{"Press P to resume", core.ColorGray},
		})
	case d.State == engine.PhaseIdle:
		dst.DrawTextCentered(mid, "TAP TO FLIP GRAVITY", core.ColorBrightWhite)
		dst.DrawTextCentered(mid+2, "Avoid the obstacles!", core.ColorGray)
	case d.State == engine.PhaseGameOver:
		drawPanel(dst, []panelLine{
			{"GAME OVER", core.ColorBrightRed},
			{fmt.Sprintf("SCORE: %d", d.Score), engine.PlayerColor},
			{"TAP TO RESTART", core.ColorWhite},
		})
	}
}

type panelLine struct {
	text  string
	color core.Color
}

// drawPanel draws a bordered message box in the center of the screen,
// with a blank line between entries.
func drawPanel(dst *core.Screen, lines []panelLine) {
	width := 0
	for _, ln := range lines {
		width = max(width, len([]rune(ln.text)))
	}

	boxW := width + 6
	boxH := len(lines)*2 + 1
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorGray)
	for i, ln := range lines {
		dst.DrawTextCentered(box.Y+1+i*2, ln.text, ln.color)
	}
}
