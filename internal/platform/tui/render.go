package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/bio-runner/internal/config"
	"github.com/vovakirdan/bio-runner/internal/core"
	"github.com/vovakirdan/bio-runner/internal/runner"
)

// Card glyphs
const (
	RunnerChar   = '█'
	RunnerLegA   = '▞'
	RunnerLegB   = '▚'
	CactusChar   = '▓'
	FlyerUpChar  = '▀'
	FlyerDnChar  = '▄'
	GroundChar   = '═'
	GroundPebble = '·'
)

// cardLayout maps world units onto the cells of the card.
// World x grows right from the card's inner left edge; world y grows up
// from the ground line.
type cardLayout struct {
	width, height int
	hudRow        int
	fieldTop      int
	groundRow     int
	innerX        int
	innerW        int
	unitsPerCol   float64
	unitsPerRow   float64
}

func newCardLayout(screenW int, r config.Render) cardLayout {
	fieldRows := int(math.Ceil(r.CardHeight / r.UnitsPerRow))
	l := cardLayout{
		width:       screenW,
		height:      fieldRows + 4, // Borders, HUD, ground
		hudRow:      1,
		fieldTop:    2,
		innerX:      1,
		innerW:      max(screenW-2, 0),
		unitsPerCol: r.UnitsPerCol,
		unitsPerRow: r.UnitsPerRow,
	}
	l.groundRow = l.fieldTop + fieldRows
	return l
}

// viewport returns the visible width in world units.
func (l cardLayout) viewport() float64 {
	return float64(l.innerW) * l.unitsPerCol
}

func (l cardLayout) col(x float64) int {
	return l.innerX + int(math.Floor(x/l.unitsPerCol))
}

func (l cardLayout) row(y float64) int {
	return l.groundRow - 1 - int(math.Floor(y/l.unitsPerRow))
}

// fill paints the world-space box [x, x+w) × [y, y+h), clipped to the field.
func (l cardLayout) fill(dst *core.Screen, x, y, w, h float64, r rune, c core.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	c0 := max(l.col(x), l.innerX)
	c1 := min(l.innerX+int(math.Ceil((x+w)/l.unitsPerCol))-1, l.innerX+l.innerW-1)
	r0 := max(l.groundRow-int(math.Ceil((y+h)/l.unitsPerRow)), l.fieldTop)
	r1 := min(l.row(y), l.groundRow-1)

	if c1 < c0 || r1 < r0 {
		return
	}
	dst.FillRect(c0, r0, c1-c0+1, r1-r0+1, r, c)
}

// drawCard renders one frame of the runner card.
func drawCard(dst *core.Screen, l cardLayout, snap runner.Snapshot, cfg config.RunnerConfig, frame int) {
	dst.Clear()
	if l.innerW <= 0 {
		return
	}

	dst.DrawBox(0, 0, l.width, l.height, core.ColorMuted)
	drawGround(dst, l, snap.Tick, snap.Speed)

	for _, o := range snap.Obstacles {
		switch o.Kind {
		case runner.KindFlying:
			wing := FlyerUpChar
			if frame%2 == 1 {
				wing = FlyerDnChar
			}
			l.fill(dst, o.X, o.Y, o.W, o.H, wing, core.ColorFlyer)
		default:
			l.fill(dst, o.X, o.Y, o.W, o.H, CactusChar, core.ColorObstacle)
		}
	}

	drawRunner(dst, l, snap, cfg, frame)
	drawHUD(dst, l, snap)

	switch {
	case snap.IsGameOver:
		mid := l.fieldTop + (l.groundRow-l.fieldTop)/2
		dst.DrawTextCentered(mid-1, " Game Over ", core.ColorAccent)
		dst.DrawTextCentered(mid, fmt.Sprintf(" Score: %d. Click to retry. ", snap.Score), core.ColorHUD)
	case !snap.IsPlaying:
		mid := l.fieldTop + (l.groundRow-l.fieldTop)/2
		dst.DrawTextCentered(mid, " Press Space to play ", core.ColorAccent)
	}
}

// drawGround draws the ground line with pebbles scrolling at the
// current speed.
func drawGround(dst *core.Screen, l cardLayout, tick uint64, speed float64) {
	dst.DrawHLine(l.innerX, l.groundRow, l.innerW, GroundChar, core.ColorGround)

	const spacing = 11
	shift := int(float64(tick)*speed/l.unitsPerCol) % spacing
	for x := spacing - shift; x < l.innerW; x += spacing {
		dst.SetColored(l.innerX+x, l.groundRow, GroundPebble, core.ColorGround)
	}
}

func drawRunner(dst *core.Screen, l cardLayout, snap runner.Snapshot, cfg config.RunnerConfig, frame int) {
	sp := cfg.Runner.Sprite
	y := snap.RunnerOffset + sp.Y
	l.fill(dst, sp.X, y, sp.Width, sp.Height, RunnerChar, core.ColorRunner)

	// Legs alternate while running on the ground
	legs := l.row(y)
	if legs < l.fieldTop || legs >= l.groundRow {
		return
	}
	c0 := max(l.col(sp.X), l.innerX)
	c1 := l.innerX + int(math.Ceil((sp.X+sp.Width)/l.unitsPerCol)) - 1
	grounded := snap.RunnerOffset <= cfg.Physics.Ground+cfg.Physics.JumpTolerance
	for col := c0; col <= c1; col++ {
		r := RunnerLegA
		if grounded && snap.IsPlaying && (col+frame)%2 == 1 {
			r = RunnerLegB
		}
		dst.SetColored(col, legs, r, core.ColorRunner)
	}
}

func drawHUD(dst *core.Screen, l cardLayout, snap runner.Snapshot) {
	score := fmt.Sprintf("%05d", snap.Score)
	if snap.HighScore > 0 {
		hi := fmt.Sprintf("HI %05d  ", snap.HighScore)
		dst.DrawTextColored(l.innerX+l.innerW-len(hi)-len(score)-1, l.hudRow, hi, core.ColorMuted)
	}
	dst.DrawTextColored(l.innerX+l.innerW-len(score)-1, l.hudRow, score, core.ColorHUD)

	if snap.IsPlaying {
		dst.DrawTextColored(l.innerX+1, l.hudRow, fmt.Sprintf("%.1fx", snap.Speed), core.ColorMuted)
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(theme.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
