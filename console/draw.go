package console

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Debug font cell size used for cursor placement.
const (
	charWidth  = 6
	lineHeight = 16
	padding    = 12
)

var (
	colorPanelBG     = color.RGBA{20, 22, 35, 230}
	colorPanelBorder = color.RGBA{60, 65, 90, 255}
	colorInputBG     = color.RGBA{30, 35, 50, 255}
	colorCursor      = color.RGBA{99, 102, 241, 255}
)

// HandleInput polls the keyboard and applies edits to the console. Returns
// the submitted command when Enter was pressed on a non-empty line.
func (c *Console) HandleInput() (cmd string, submitted bool) {
	for _, r := range ebiten.AppendInputChars(nil) {
		if r >= 0x20 && r != 0x7f {
			c.InsertRune(r)
		}
	}

	if repeated(ebiten.KeyBackspace) {
		c.Backspace()
	}
	if repeated(ebiten.KeyDelete) {
		c.Delete()
	}
	if repeated(ebiten.KeyArrowLeft) {
		c.CursorLeft()
	}
	if repeated(ebiten.KeyArrowRight) {
		c.CursorRight()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		c.HistoryUp()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		c.HistoryDown()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
		c.CursorHome()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnd) {
		c.CursorEnd()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		return c.Submit()
	}

	return "", false
}

// repeated reports a key press with typewriter-style auto repeat.
func repeated(key ebiten.Key) bool {
	const delay, interval = 25, 3
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

// Draw renders the console panel at the given screen rectangle.
func (c *Console) Draw(screen *ebiten.Image, x, y, w, h int) {
	fx, fy, fw, fh := float32(x), float32(y), float32(w), float32(h)

	vector.DrawFilledRect(screen, fx, fy, fw, fh, colorPanelBG, false)
	vector.StrokeRect(screen, fx, fy, fw, fh, 2, colorPanelBorder, false)

	// Title bar
	vector.DrawFilledRect(screen, fx, fy, fw, 26, colorPanelBorder, false)
	title := "Console"
	titleX := x + (w-len(title)*charWidth)/2
	ebitenutil.DebugPrintAt(screen, title, titleX, y+6)

	// Output log, newest lines pinned above the input box.
	inputTop := y + h - 36 - padding
	maxLines := (inputTop - (y + 32)) / lineHeight
	lines := c.lines
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	maxChars := (w - padding*2) / charWidth
	for i, line := range lines {
		text := line.Text
		if len(text) > maxChars && maxChars > 3 {
			text = text[:maxChars-3] + "..."
		}
		ebitenutil.DebugPrintAt(screen, text, x+padding, y+32+i*lineHeight)
	}

	// Input box
	vector.DrawFilledRect(screen, fx+padding, float32(inputTop), fw-padding*2, 36, colorInputBG, false)
	vector.StrokeRect(screen, fx+padding, float32(inputTop), fw-padding*2, 36, 1, colorPanelBorder, false)

	prompt := ">>> "
	textY := inputTop + 11
	ebitenutil.DebugPrintAt(screen, prompt+string(c.input), x+padding+8, textY)

	if c.cursorVisible {
		cursorX := x + padding + 8 + (len(prompt)+c.cursorPos)*charWidth
		vector.DrawFilledRect(screen, float32(cursorX), float32(textY), 2, 13, colorCursor, false)
	}
}
