// Package hud renders the sidebar panels next to the play field: current
// challenge, session stats, and the command reference card.
package hud

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/codeventure/session"
)

const (
	lineHeight = 16
	padding    = 10
)

var (
	colorPanelBG     = color.RGBA{20, 22, 35, 230}
	colorPanelBorder = color.RGBA{60, 65, 90, 255}
	colorAccent      = color.RGBA{251, 191, 36, 255}
)

// HUD draws the informational panels for one session.
type HUD struct {
	sess *session.Session

	x, y  int
	width int
}

// New creates a HUD anchored at the given top-left corner.
func New(sess *session.Session, x, y, width int) *HUD {
	return &HUD{sess: sess, x: x, y: y, width: width}
}

// Draw renders the challenge panel and the stats panel, stacked vertically.
func (h *HUD) Draw(screen *ebiten.Image) {
	y := h.drawChallengePanel(screen, h.y)
	h.drawStatsPanel(screen, y+padding)
}

func (h *HUD) drawChallengePanel(screen *ebiten.Image, y int) int {
	height := 8 + lineHeight*3 + 8
	h.drawPanel(screen, h.x, y, h.width, height)

	cy := y + 8
	if ch, idx, ok := h.sess.CurrentChallenge(); ok {
		header := fmt.Sprintf("Challenge %d/%d", idx+1, len(h.sess.Challenges()))
		h.drawText(screen, header, h.x+8, cy)
		cy += lineHeight
		h.drawText(screen, ch.Title, h.x+8, cy)
		cy += lineHeight
		h.drawText(screen, ch.Description, h.x+8, cy)
	} else {
		h.drawText(screen, "All challenges complete!", h.x+8, cy)
		cy += lineHeight
		h.drawText(screen, "Collect the remaining gems.", h.x+8, cy)
	}
	return y + height
}

func (h *HUD) drawStatsPanel(screen *ebiten.Image, y int) int {
	height := 8 + lineHeight*4 + 8
	h.drawPanel(screen, h.x, y, h.width, height)

	col, row := h.sess.Hero().Position()
	lines := []string{
		fmt.Sprintf("Score:     %d", h.sess.Score()),
		fmt.Sprintf("Gems:      %d/%d", h.sess.GemsCollected(), h.sess.TotalGems()),
		fmt.Sprintf("Position:  %d, %d", col, row),
		fmt.Sprintf("Commands:  %d", h.sess.CommandsExecuted()),
	}

	cy := y + 8
	for _, line := range lines {
		h.drawText(screen, line, h.x+8, cy)
		cy += lineHeight
	}
	return y + height
}

// DrawReference renders the compact command reference strip, meant to sit
// under the play field.
func (h *HUD) DrawReference(screen *ebiten.Image, x, y, w int) {
	lines := []string{
		"hero.move_right()   hero.move_left()   hero.move_up()   hero.move_down()",
		"hero.spin()   hero.dance()   hero.say('text')   |   help / hint / clear   |   F5 reset",
	}

	height := 8 + lineHeight*len(lines) + 8
	h.drawPanel(screen, x, y, w, height)

	cy := y + 8
	for _, line := range lines {
		h.drawText(screen, line, x+8, cy)
		cy += lineHeight
	}
}

func (h *HUD) drawPanel(screen *ebiten.Image, x, y, w, hg int) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(hg), colorPanelBG, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(hg), 2, colorPanelBorder, false)
}

// drawText draws text with a one-pixel shadow for readability.
func (h *HUD) drawText(screen *ebiten.Image, text string, x, y int) {
	ebitenutil.DebugPrintAt(screen, text, x+1, y+1)
	ebitenutil.DebugPrintAt(screen, text, x, y)
}

// TargetRing describes the pulsing marker over the current challenge cell.
// The game layer draws it so the pulse phase stays with the frame counter.
type TargetRing struct {
	CenterX, CenterY float64
	Radius           float32
}

// CurrentTarget returns the marker for the active challenge target, or
// ok=false when all challenges are done.
func (h *HUD) CurrentTarget(frame int) (ring TargetRing, clr color.RGBA, ok bool) {
	ch, _, ok := h.sess.CurrentChallenge()
	if !ok {
		return TargetRing{}, color.RGBA{}, false
	}
	cx, cy := h.sess.Layout().CellCenter(ch.Target.Col, ch.Target.Row)

	// Pulse between radius 18 and 26 over a 60-tick cycle.
	phase := frame % 60
	if phase > 30 {
		phase = 60 - phase
	}
	radius := 18 + float32(phase)*8/30

	return TargetRing{CenterX: cx, CenterY: cy, Radius: radius}, colorAccent, true
}
