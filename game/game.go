// Package game wires everything together into the ebiten run loop: input
// goes to the console, submitted lines to the interpreter, and the session
// drives scoring while this package draws the results.
package game

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"chosenoffset.com/codeventure/command"
	"chosenoffset.com/codeventure/config"
	"chosenoffset.com/codeventure/console"
	"chosenoffset.com/codeventure/grid"
	"chosenoffset.com/codeventure/hero"
	"chosenoffset.com/codeventure/hud"
	"chosenoffset.com/codeventure/level"
	"chosenoffset.com/codeventure/particles"
	"chosenoffset.com/codeventure/session"
)

// Board placement on screen.
const (
	tileSize     = 64
	boardOriginX = 40
	boardOriginY = 40
	panelGap     = 20
)

var gemColors = map[level.GemKind]color.RGBA{
	level.GemRuby:     {239, 68, 68, 255},
	level.GemEmerald:  {52, 211, 153, 255},
	level.GemSapphire: {59, 130, 246, 255},
	level.GemGold:     {251, 191, 36, 255},
	level.GemDiamond:  {165, 243, 252, 255},
}

func gemColor(k level.GemKind) color.RGBA {
	if c, ok := gemColors[k]; ok {
		return c
	}
	return gemColors[level.GemRuby]
}

// Game is the ebiten.Game for one play session.
type Game struct {
	width  int
	height int
	layout grid.Layout

	sess   *session.Session
	interp *command.Interpreter
	cons   *console.Console
	hud    *hud.HUD
	fx     *particles.System
	floats []*particles.FloatingText

	frame         int
	wasPerforming bool

	heroImg *ebiten.Image
}

// New assembles a game from config and level content.
func New(cfg config.Config, lvl *level.Level) *Game {
	layout := grid.Layout{TileSize: tileSize, OriginX: boardOriginX, OriginY: boardOriginY}
	sess := session.New(lvl, layout)

	boardRight := boardOriginX + lvl.Cols*tileSize
	rightX := boardRight + panelGap
	rightW := cfg.WindowWidth - rightX - boardOriginX

	g := &Game{
		width:  cfg.WindowWidth,
		height: cfg.WindowHeight,
		layout: layout,
		sess:   sess,
		interp: command.New(sess),
		cons:   console.New(),
		hud:    hud.New(sess, rightX, boardOriginY, rightW),
		fx:     particles.NewSystem(rand.New(rand.NewSource(time.Now().UnixNano()))),
	}

	sess.OnCollected = g.onCollected
	sess.OnChallengeComplete = g.onChallengeComplete
	sess.OnChallengeStart = g.onChallengeStart
	sess.OnAllComplete = g.onAllComplete

	if ch, _, ok := sess.CurrentChallenge(); ok {
		g.cons.AddInfo(fmt.Sprintf("Challenge: %s - %s", ch.Title, ch.Description))
	}

	return g
}

func (g *Game) onCollected(c *session.Collectible) {
	cx, cy := g.layout.CellCenter(c.Pos.Col, c.Pos.Row)
	g.fx.EmitCollect(cx, cy, gemColor(c.Kind))
	g.floats = append(g.floats, particles.NewFloatingText(fmt.Sprintf("+%d", c.Value), cx, cy-20))
	g.cons.AddSuccess(fmt.Sprintf("Collected a %s! +%d points", c.Kind, c.Value))
}

func (g *Game) onChallengeComplete(ch *session.Challenge) {
	x, y := g.sess.Hero().PixelPosition()
	g.fx.EmitBurst(x, y, color.RGBA{251, 191, 36, 255}, 24)
	g.floats = append(g.floats, particles.NewFloatingText(fmt.Sprintf("+%d", ch.Reward), x, y-30))
	g.cons.AddSuccess(fmt.Sprintf("Challenge complete: %s! +%d points", ch.Title, ch.Reward))
}

func (g *Game) onChallengeStart(ch *session.Challenge) {
	g.cons.AddInfo(fmt.Sprintf("New challenge: %s - %s", ch.Title, ch.Description))
}

func (g *Game) onAllComplete() {
	x, y := g.sess.Hero().PixelPosition()
	g.fx.EmitBurst(x, y, color.RGBA{139, 92, 246, 255}, 40)
	g.cons.AddInfo("All challenges complete! You are a true Code Warrior!")
}

// Update advances the whole game by one tick.
func (g *Game) Update() error {
	g.frame++
	g.cons.Tick()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		g.sess.Reset()
		g.fx.Clear()
		g.floats = nil
		g.cons.AddInfo("Level reset!")
		if ch, _, ok := g.sess.CurrentChallenge(); ok {
			g.cons.AddInfo(fmt.Sprintf("Challenge: %s - %s", ch.Title, ch.Description))
		}
	}

	if cmd, ok := g.cons.HandleInput(); ok {
		if res, has := g.interp.Execute(cmd); has {
			g.cons.Report(res)
		}
	}

	h := g.sess.Hero()

	// Spin particles fire once, when the performance begins.
	if h.State() == hero.StatePerforming && !g.wasPerforming {
		if kind, _ := h.PerformState(); kind == hero.PerformSpin {
			x, y := h.PixelPosition()
			g.fx.EmitSpin(x, y)
		}
	}

	h.Update()

	if h.State() == hero.StateMoving && g.frame%2 == 0 {
		x, y := h.PixelPosition()
		g.fx.EmitTrail(x, y, color.RGBA{99, 102, 241, 180}, h.Direction())
	}

	g.sess.OnTick()
	g.fx.Update()

	alive := g.floats[:0]
	for _, f := range g.floats {
		if f.Update() {
			alive = append(alive, f)
		}
	}
	g.floats = alive

	g.wasPerforming = h.State() == hero.StatePerforming
	return nil
}

// Layout reports the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
