// Package command interprets the text a learner types into the console.
// Input follows a restricted method-call grammar, hero.<method>(<arg?>),
// validated against a closed table of supported actions. Every outcome is
// classified so the console can answer with a targeted teaching hint;
// malformed input is never executed and never crashes the game.
package command

import (
	"fmt"
	"regexp"
	"strings"

	"chosenoffset.com/codeventure/hero"
	"chosenoffset.com/codeventure/session"
)

// Namespace is the required call prefix identifying the controllable actor.
const Namespace = "hero"

var (
	callPattern     = regexp.MustCompile(`^` + Namespace + `\.(\w+)\((.*)\)$`)
	bareCallPattern = regexp.MustCompile(`^(\w+)\((.*)\)$`)
)

// handler executes one vocabulary entry. arg is nil when no argument was
// supplied.
type handler func(in *Interpreter, arg *Literal) Result

// Interpreter turns raw console text into classified results and side
// effects on the session's hero.
type Interpreter struct {
	session *session.Session
	actions map[string]handler
}

// New creates an interpreter bound to a session. The action vocabulary is
// fixed: adding a method means extending the table here, never runtime
// lookup.
func New(s *session.Session) *Interpreter {
	in := &Interpreter{session: s}
	in.actions = map[string]handler{
		"move_right": func(in *Interpreter, _ *Literal) Result { return in.move(hero.DirRight) },
		"move_left":  func(in *Interpreter, _ *Literal) Result { return in.move(hero.DirLeft) },
		"move_up":    func(in *Interpreter, _ *Literal) Result { return in.move(hero.DirUp) },
		"move_down":  func(in *Interpreter, _ *Literal) Result { return in.move(hero.DirDown) },
		"spin":       func(in *Interpreter, _ *Literal) Result { return in.perform(hero.PerformSpin) },
		"dance":      func(in *Interpreter, _ *Literal) Result { return in.perform(hero.PerformDance) },
		"say":        (*Interpreter).say,
		"jump":       flavor("Jump! (Visual coming soon...)"),
		"attack":     flavor("Attack! (Combat coming soon...)"),
		"defend":     flavor("Defend! (Combat coming soon...)"),
		"collect":    flavor("Looking for items... (Gems are collected by walking onto them!)"),
	}
	return in
}

// Methods returns the supported action vocabulary in display order.
func (in *Interpreter) Methods() []string {
	return []string{
		"move_right", "move_left", "move_up", "move_down",
		"spin", "dance", "say",
		"jump", "attack", "defend", "collect",
	}
}

// Execute interprets one line of input. ok is false only for empty or
// whitespace-only input, which produces no result at all.
func (in *Interpreter) Execute(raw string) (res Result, ok bool) {
	cmd := strings.TrimSpace(raw)
	if cmd == "" {
		return Result{}, false
	}

	in.session.RecordCommand()

	// Reserved directives short-circuit before any grammar parsing.
	switch strings.ToLower(cmd) {
	case "help":
		return Result{Kind: KindSystem, System: SystemHelp, Lines: in.helpLines()}, true
	case "hint":
		return Result{Kind: KindSystem, System: SystemHint, Lines: in.hintLines()}, true
	case "clear":
		return Result{Kind: KindSystem, System: SystemClear}, true
	}

	m := callPattern.FindStringSubmatch(cmd)
	if m == nil {
		// A bare call like move_right() gets its own classification: the
		// fix is a different lesson than general syntax repair.
		if bareCallPattern.MatchString(cmd) {
			return parseError(ParseMissingNamespace,
				fmt.Sprintf("Commands must start with '%s.'", Namespace)), true
		}
		return parseError(ParseSyntax, "Invalid command syntax"), true
	}

	method := m[1]
	argText := strings.TrimSpace(m[2])

	h, known := in.actions[method]
	if !known {
		if canonical, found := suggest(method); found {
			res := parseError(ParseUnknownMethod,
				fmt.Sprintf("Did you mean: %s.%s() ?", Namespace, canonical))
			res.Suggestion = canonical
			return res, true
		}
		return parseError(ParseUnknownMethod,
			fmt.Sprintf("Unknown method: %s", method)), true
	}

	var arg *Literal
	if argText != "" {
		lit, err := parseLiteral(argText)
		if err != nil {
			return parseError(ParseBadArgument, "Invalid argument"), true
		}
		arg = &lit
	}

	return h(in, arg), true
}

// move dispatches a directional step and classifies the outcome.
func (in *Interpreter) move(dir hero.Direction) Result {
	h := in.session.Hero()
	switch err := h.Step(dir); err {
	case nil:
		in.session.RecordMove()
		return success(fmt.Sprintf("Moving %s!", dir))
	case hero.ErrBusy:
		if h.State() == hero.StateMoving {
			return rejected(RejectBusy, "Wait! Still moving...")
		}
		return rejected(RejectBusy, "Wait! Hero is busy performing...")
	case hero.ErrBlocked:
		return rejected(RejectBlocked, fmt.Sprintf("Can't move %s - blocked!", dir))
	case hero.ErrOutOfBounds:
		return rejected(RejectOutOfBounds, fmt.Sprintf("Can't move %s - edge of the board!", dir))
	default:
		return rejected(RejectBlocked, fmt.Sprintf("Can't move %s!", dir))
	}
}

// perform dispatches a spin or dance.
func (in *Interpreter) perform(kind hero.PerformKind) Result {
	name := "spin"
	msg := "Wheeeee!"
	if kind == hero.PerformDance {
		name = "dance"
		msg = "Dancing!"
	}
	if err := in.session.Hero().StartPerform(kind); err != nil {
		return rejected(RejectBusy, fmt.Sprintf("Can't %s right now!", name))
	}
	return success(msg)
}

// say echoes the argument back. Defaults to a greeting with no argument.
func (in *Interpreter) say(arg *Literal) Result {
	msg := "Hello!"
	if arg != nil {
		msg = arg.Display()
	}
	return success(fmt.Sprintf("Hero says: %q", msg))
}

// flavor builds a handler that always succeeds with fixed text.
func flavor(msg string) handler {
	return func(*Interpreter, *Literal) Result {
		return success(msg)
	}
}

func (in *Interpreter) helpLines() []string {
	return []string{
		"Available Commands:",
		"  hero.move_right()  - Move right",
		"  hero.move_left()   - Move left",
		"  hero.move_up()     - Move up",
		"  hero.move_down()   - Move down",
		"  hero.spin()        - Spin around",
		"  hero.dance()       - Do a dance",
		"  hero.say('text')   - Speak",
		"",
		"Special Commands:",
		"  help  - Show this help",
		"  hint  - Get a hint",
		"  clear - Clear console",
	}
}

// hintLines builds movement directions toward the current challenge target.
func (in *Interpreter) hintLines() []string {
	ch, _, ok := in.session.CurrentChallenge()
	if !ok {
		return []string{"All challenges complete! Try collecting all gems."}
	}

	col, row := in.session.Hero().Position()
	dx := ch.Target.Col - col
	dy := ch.Target.Row - row

	lines := []string{"Hint:"}
	switch {
	case dx > 0:
		lines = append(lines, fmt.Sprintf("   Move right %d times", dx))
	case dx < 0:
		lines = append(lines, fmt.Sprintf("   Move left %d times", -dx))
	}
	switch {
	case dy > 0:
		lines = append(lines, fmt.Sprintf("   Move down %d times", dy))
	case dy < 0:
		lines = append(lines, fmt.Sprintf("   Move up %d times", -dy))
	}
	lines = append(lines, "   (Watch out for obstacles!)")
	return lines
}
