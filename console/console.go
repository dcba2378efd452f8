// Package console implements the in-game teaching console: an input line
// with history, an output log with colored message levels, and the
// educational rendering of interpreter results. Input editing and the log
// are plain state machines; only drawing and keyboard polling touch ebiten.
package console

import (
	"fmt"

	"chosenoffset.com/codeventure/command"
)

// Limits carried over from the original console behavior.
const (
	maxHistory     = 50
	maxOutputLines = 35
)

// cursorBlinkTicks is the half-period of the cursor blink at 60 Hz.
const cursorBlinkTicks = 30

// LineLevel selects the display color of an output line.
type LineLevel int

const (
	LineNormal LineLevel = iota
	LineCommand
	LineSuccess
	LineError
	LineInfo
	LineWarn
	LineMuted
)

// Line is one entry in the output log.
type Line struct {
	Text  string
	Level LineLevel
}

// Console holds the input line, command history, and output log.
type Console struct {
	input     []rune
	cursorPos int

	history      []string
	historyIndex int // -1 = not browsing
	stash        string

	lines []Line

	cursorVisible bool
	cursorTimer   int
}

// New creates a console showing the welcome banner.
func New() *Console {
	c := &Console{historyIndex: -1, cursorVisible: true}
	c.addWelcome()
	return c
}

func (c *Console) addWelcome() {
	c.Add("Welcome to the CodeVenture Console!", LineInfo)
	c.Add("", LineMuted)
	c.Add("Control the hero with commands:", LineNormal)
	c.Add("  hero.move_right()", LineSuccess)
	c.Add("  hero.move_left()", LineSuccess)
	c.Add("  hero.move_up()", LineSuccess)
	c.Add("  hero.move_down()", LineSuccess)
	c.Add("", LineMuted)
	c.Add("Press Up/Down to browse command history", LineMuted)
	c.Add("----------------------------------------", LineMuted)
}

// Input returns the current input line.
func (c *Console) Input() string {
	return string(c.input)
}

// CursorPos returns the cursor position within the input line.
func (c *Console) CursorPos() int {
	return c.cursorPos
}

// CursorVisible reports whether the blinking cursor is currently shown.
func (c *Console) CursorVisible() bool {
	return c.cursorVisible
}

// Lines returns the output log, oldest first.
func (c *Console) Lines() []Line {
	return c.lines
}

// History returns the submitted-command history, oldest first.
func (c *Console) History() []string {
	return c.history
}

// Tick advances the cursor blink animation by one tick.
func (c *Console) Tick() {
	c.cursorTimer++
	if c.cursorTimer >= cursorBlinkTicks {
		c.cursorTimer = 0
		c.cursorVisible = !c.cursorVisible
	}
}

// wake makes the cursor visible immediately, as after any keypress.
func (c *Console) wake() {
	c.cursorVisible = true
	c.cursorTimer = 0
}

// InsertRune inserts a character at the cursor.
func (c *Console) InsertRune(r rune) {
	c.wake()
	c.input = append(c.input[:c.cursorPos], append([]rune{r}, c.input[c.cursorPos:]...)...)
	c.cursorPos++
}

// Backspace deletes the character before the cursor.
func (c *Console) Backspace() {
	c.wake()
	if c.cursorPos == 0 {
		return
	}
	c.input = append(c.input[:c.cursorPos-1], c.input[c.cursorPos:]...)
	c.cursorPos--
}

// Delete deletes the character under the cursor.
func (c *Console) Delete() {
	c.wake()
	if c.cursorPos >= len(c.input) {
		return
	}
	c.input = append(c.input[:c.cursorPos], c.input[c.cursorPos+1:]...)
}

// CursorLeft moves the cursor one position left.
func (c *Console) CursorLeft() {
	c.wake()
	if c.cursorPos > 0 {
		c.cursorPos--
	}
}

// CursorRight moves the cursor one position right.
func (c *Console) CursorRight() {
	c.wake()
	if c.cursorPos < len(c.input) {
		c.cursorPos++
	}
}

// CursorHome moves the cursor to the start of the line.
func (c *Console) CursorHome() {
	c.wake()
	c.cursorPos = 0
}

// CursorEnd moves the cursor past the last character.
func (c *Console) CursorEnd() {
	c.wake()
	c.cursorPos = len(c.input)
}

// HistoryUp recalls the previous command. The in-progress line is stashed
// the first time and restored when browsing returns past the newest entry.
func (c *Console) HistoryUp() {
	c.wake()
	if len(c.history) == 0 {
		return
	}
	if c.historyIndex == -1 {
		c.stash = string(c.input)
	}
	if c.historyIndex < len(c.history)-1 {
		c.historyIndex++
		c.setInput(c.history[len(c.history)-1-c.historyIndex])
	}
}

// HistoryDown moves toward the newest command, then back to the stash.
func (c *Console) HistoryDown() {
	c.wake()
	if c.historyIndex > 0 {
		c.historyIndex--
		c.setInput(c.history[len(c.history)-1-c.historyIndex])
	} else if c.historyIndex == 0 {
		c.historyIndex = -1
		c.setInput(c.stash)
	}
}

func (c *Console) setInput(s string) {
	c.input = []rune(s)
	c.cursorPos = len(c.input)
}

// Submit takes the current line, echoes it to the log, appends it to
// history, and resets the input. Returns ok=false for an empty line.
func (c *Console) Submit() (cmd string, ok bool) {
	cmd = string(c.input)
	if cmd == "" {
		return "", false
	}

	c.Add("> "+cmd, LineCommand)

	// Skip consecutive duplicates in history.
	if len(c.history) == 0 || c.history[len(c.history)-1] != cmd {
		c.history = append(c.history, cmd)
		if len(c.history) > maxHistory {
			c.history = c.history[1:]
		}
	}

	c.input = nil
	c.cursorPos = 0
	c.historyIndex = -1
	c.stash = ""
	return cmd, true
}

// Add appends a line to the output log, dropping the oldest past the cap.
func (c *Console) Add(text string, level LineLevel) {
	c.lines = append(c.lines, Line{Text: text, Level: level})
	if len(c.lines) > maxOutputLines {
		c.lines = c.lines[len(c.lines)-maxOutputLines:]
	}
}

// AddSuccess appends a success line.
func (c *Console) AddSuccess(text string) {
	c.Add("+ "+text, LineSuccess)
}

// AddError appends an error line.
func (c *Console) AddError(text string) {
	c.Add("x "+text, LineError)
}

// AddInfo appends an info line.
func (c *Console) AddInfo(text string) {
	c.Add("i "+text, LineInfo)
}

// Clear wipes the log and restores the welcome banner.
func (c *Console) Clear() {
	c.lines = nil
	c.addWelcome()
}

// Report renders an interpreter result as teaching output. Every
// classification gets its own wording; parse errors come with a concrete
// example of what correct input looks like.
func (c *Console) Report(res command.Result) {
	switch res.Kind {
	case command.KindSuccess:
		c.AddSuccess(res.Message)

	case command.KindRejected:
		c.Add("! "+res.Message, LineWarn)

	case command.KindSystem:
		switch res.System {
		case command.SystemClear:
			c.Clear()
		default:
			c.Add("", LineMuted)
			for _, l := range res.Lines {
				c.AddInfo(l)
			}
			c.Add("", LineMuted)
		}

	case command.KindParseError:
		c.Add("", LineMuted)
		switch {
		case res.Suggestion != "":
			c.AddError("Oops! That's not quite right.")
			c.Add(fmt.Sprintf("  Did you mean: %s.%s() ?", command.Namespace, res.Suggestion), LineWarn)
			c.Add("  Tip: the console is picky about spelling!", LineMuted)

		case res.ParseError == command.ParseSyntax:
			c.AddError("Syntax Error!")
			c.Add("  Check your parentheses () and dots .", LineWarn)
			c.Add("  Example: hero.move_right()", LineSuccess)

		case res.ParseError == command.ParseUnknownMethod:
			c.AddError("Unknown command!")
			c.Add("  The hero doesn't know how to do that.", LineWarn)
			c.Add("  Try: move_right, move_left, move_up, move_down", LineMuted)

		case res.ParseError == command.ParseMissingNamespace:
			c.AddError("Name not recognized!")
			c.Add(fmt.Sprintf("  Did you forget '%s.' at the start?", command.Namespace), LineWarn)
			c.Add(fmt.Sprintf("  Commands must start with '%s.'", command.Namespace), LineMuted)

		case res.ParseError == command.ParseBadArgument:
			c.AddError("Invalid argument!")
			c.Add("  Arguments can be quoted text, numbers, or true/false.", LineWarn)
			c.Add("  Example: hero.say('Hi!')", LineSuccess)
		}
		c.Add("", LineMuted)
	}
}
