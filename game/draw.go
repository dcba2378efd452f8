package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/codeventure/grid"
	"chosenoffset.com/codeventure/hero"
)

var (
	colorBackground = color.RGBA{15, 17, 26, 255}
	colorTileLight  = color.RGBA{34, 39, 54, 255}
	colorTileDark   = color.RGBA{28, 32, 45, 255}
	colorGridLine   = color.RGBA{45, 50, 70, 255}
	colorHero       = color.RGBA{99, 102, 241, 255}
	colorHeroEdge   = color.RGBA{165, 180, 252, 255}
	colorRock       = color.RGBA{120, 113, 108, 255}
	colorRockDark   = color.RGBA{87, 83, 78, 255}
	colorCrate      = color.RGBA{180, 120, 60, 255}
	colorCrateEdge  = color.RGBA{120, 75, 35, 255}
	colorBush       = color.RGBA{34, 160, 94, 255}
	colorBushDark   = color.RGBA{22, 110, 65, 255}
)

// Draw renders one frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	g.drawBoard(screen)
	g.drawTargetRing(screen)
	g.drawGems(screen)
	g.drawObstacles(screen)
	g.drawHero(screen)

	g.fx.Draw(screen)
	for _, f := range g.floats {
		f.Draw(screen)
	}

	lvl := g.sess.Level()
	boardW := lvl.Cols * tileSize
	boardBottom := boardOriginY + lvl.Rows*tileSize
	g.hud.DrawReference(screen, boardOriginX, boardBottom+10, boardW)

	rightX := boardOriginX + boardW + panelGap
	rightW := g.width - rightX - boardOriginX
	consoleY := boardOriginY + 64 + 10 + 80 + 10
	g.cons.Draw(screen, rightX, consoleY, rightW, g.height-consoleY-boardOriginY)
	g.hud.Draw(screen)
}

// drawBoard paints the checkerboard tiles and cell borders.
func (g *Game) drawBoard(screen *ebiten.Image) {
	lvl := g.sess.Level()
	for row := 0; row < lvl.Rows; row++ {
		for col := 0; col < lvl.Cols; col++ {
			x, y := g.layout.CellOrigin(col, row)
			clr := colorTileLight
			if (col+row)%2 == 1 {
				clr = colorTileDark
			}
			vector.DrawFilledRect(screen, float32(x), float32(y), tileSize, tileSize, clr, false)
			vector.StrokeRect(screen, float32(x), float32(y), tileSize, tileSize, 1, colorGridLine, false)
		}
	}
}

func (g *Game) drawTargetRing(screen *ebiten.Image) {
	ring, clr, ok := g.hud.CurrentTarget(g.frame)
	if !ok {
		return
	}
	vector.StrokeCircle(screen, float32(ring.CenterX), float32(ring.CenterY), ring.Radius, 3, clr, true)
}

// drawGems renders each uncollected gem as a bobbing diamond.
func (g *Game) drawGems(screen *ebiten.Image) {
	for i, c := range g.sess.Collectibles() {
		if c.Collected {
			continue
		}
		cx, cy := g.layout.CellCenter(c.Pos.Col, c.Pos.Row)
		bob := math.Sin(float64(g.frame)*0.1+float64(i)) * 4
		cy += bob

		clr := gemColor(c.Kind)
		const w, h = 14.0, 18.0
		g.fillPolygon(screen, []vertex{
			{cx, cy - h},
			{cx + w, cy},
			{cx, cy + h},
			{cx - w, cy},
		}, clr)

		// Specular glint in the upper-left facet.
		vector.DrawFilledCircle(screen, float32(cx-4), float32(cy-6), 3, color.RGBA{255, 255, 255, 180}, true)
	}
}

func (g *Game) drawObstacles(screen *ebiten.Image) {
	for _, o := range g.sess.World().Obstacles() {
		cx, cy := g.layout.CellCenter(o.Pos.Col, o.Pos.Row)
		switch o.Kind {
		case grid.ObstacleCrate:
			x, y := g.layout.CellOrigin(o.Pos.Col, o.Pos.Row)
			vector.DrawFilledRect(screen, float32(x)+8, float32(y)+8, tileSize-16, tileSize-16, colorCrate, false)
			vector.StrokeRect(screen, float32(x)+8, float32(y)+8, tileSize-16, tileSize-16, 3, colorCrateEdge, false)
			// Cross braces
			vector.StrokeLine(screen, float32(x)+8, float32(y)+8, float32(x+tileSize)-8, float32(y+tileSize)-8, 2, colorCrateEdge, false)
			vector.StrokeLine(screen, float32(x+tileSize)-8, float32(y)+8, float32(x)+8, float32(y+tileSize)-8, 2, colorCrateEdge, false)

		case grid.ObstacleBush:
			vector.DrawFilledCircle(screen, float32(cx-10), float32(cy+6), 13, colorBushDark, true)
			vector.DrawFilledCircle(screen, float32(cx+10), float32(cy+6), 13, colorBushDark, true)
			vector.DrawFilledCircle(screen, float32(cx), float32(cy-6), 15, colorBush, true)

		default: // rock
			vector.DrawFilledCircle(screen, float32(cx), float32(cy+4), 22, colorRockDark, true)
			vector.DrawFilledCircle(screen, float32(cx-4), float32(cy-2), 18, colorRock, true)
		}
	}
}

// drawHero renders the player square, rotating during a spin and swaying
// during a dance.
func (g *Game) drawHero(screen *ebiten.Image) {
	h := g.sess.Hero()
	x, y := h.PixelPosition()

	const size = 44.0
	angle := 0.0
	offsetX := 0.0

	if h.State() == hero.StatePerforming {
		kind, elapsed := h.PerformState()
		switch kind {
		case hero.PerformSpin:
			angle = float64(elapsed) / hero.SpinTicks * 2 * math.Pi
		case hero.PerformDance:
			offsetX = math.Sin(float64(elapsed)*0.4) * 6
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-size/2, -size/2)
	op.GeoM.Rotate(angle)
	op.GeoM.Translate(x+offsetX, y)
	screen.DrawImage(g.heroImage(), op)

	// Facing indicator, skipped mid-spin.
	if angle == 0 {
		dc, dr := h.Facing().Delta()
		ex := x + offsetX + float64(dc)*12
		ey := y + float64(dr)*12
		vector.DrawFilledCircle(screen, float32(ex), float32(ey), 4, color.RGBA{255, 255, 255, 255}, true)
	}
}

// heroImage lazily builds the hero sprite. Built once; rotation happens at
// draw time through GeoM.
func (g *Game) heroImage() *ebiten.Image {
	if g.heroImg != nil {
		return g.heroImg
	}
	const size = 44
	img := ebiten.NewImage(size, size)
	img.Fill(colorHero)
	for i := 0; i < size; i++ {
		for t := 0; t < 3; t++ {
			img.Set(i, t, colorHeroEdge)
			img.Set(i, size-1-t, colorHeroEdge)
			img.Set(t, i, colorHeroEdge)
			img.Set(size-1-t, i, colorHeroEdge)
		}
	}
	g.heroImg = img
	return img
}

type vertex struct {
	x, y float64
}

var whiteImg *ebiten.Image

// fillPolygon fills a convex polygon with a solid color.
func (g *Game) fillPolygon(dst *ebiten.Image, points []vertex, c color.RGBA) {
	if len(points) < 3 {
		return
	}

	path := vector.Path{}
	path.MoveTo(float32(points[0].x), float32(points[0].y))
	for i := 1; i < len(points); i++ {
		path.LineTo(float32(points[i].x), float32(points[i].y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)

	if whiteImg == nil {
		whiteImg = ebiten.NewImage(1, 1)
		whiteImg.Fill(color.White)
	}

	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}

	dst.DrawTriangles(vs, is, whiteImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
