package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/codeventure/grid"
	"chosenoffset.com/codeventure/hero"
	"chosenoffset.com/codeventure/level"
	"chosenoffset.com/codeventure/session"
)

var testLayout = grid.Layout{TileSize: 64, OriginX: 40, OriginY: 40}

// newInterpreter builds a session on the default level: hero at (5, 4),
// obstacle at (6, 4), open cell at (5, 3).
func newInterpreter(t *testing.T) (*Interpreter, *session.Session) {
	t.Helper()
	lvl := level.Default()
	s := session.New(lvl, testLayout)
	return New(s), s
}

func TestMoveCommandSucceeds(t *testing.T) {
	in, s := newInterpreter(t)

	res, ok := in.Execute("hero.move_up()")
	require.True(t, ok)
	assert.Equal(t, KindSuccess, res.Kind)
	assert.Equal(t, "Moving up!", res.Message)

	col, row := s.Hero().Position()
	assert.Equal(t, 5, col)
	assert.Equal(t, 3, row)
	assert.Equal(t, 1, s.SuccessfulMoves())
}

func TestMoveIntoObstacleRejectedBlocked(t *testing.T) {
	in, s := newInterpreter(t)

	// The default level has a crate at (6, 4), right of spawn.
	res, ok := in.Execute("hero.move_right()")
	require.True(t, ok)
	assert.Equal(t, KindRejected, res.Kind)
	assert.Equal(t, RejectBlocked, res.Reject)

	col, row := s.Hero().Position()
	assert.Equal(t, 5, col)
	assert.Equal(t, 4, row)
	assert.Equal(t, 0, s.SuccessfulMoves())
}

func TestMoveOffBoardRejectedOutOfBounds(t *testing.T) {
	lvl := level.Default()
	lvl.Spawn = grid.Position{Col: 0, Row: 0}
	s := session.New(lvl, testLayout)
	in := New(s)

	res, _ := in.Execute("hero.move_left()")
	assert.Equal(t, KindRejected, res.Kind)
	assert.Equal(t, RejectOutOfBounds, res.Reject)
}

func TestMoveWhileMovingRejectedBusy(t *testing.T) {
	in, s := newInterpreter(t)

	_, _ = in.Execute("hero.move_up()")
	require.Equal(t, hero.StateMoving, s.Hero().State())

	res, _ := in.Execute("hero.move_down()")
	assert.Equal(t, KindRejected, res.Kind)
	assert.Equal(t, RejectBusy, res.Reject)
	assert.Equal(t, "Wait! Still moving...", res.Message)

	// The rejected request must not change the logical position.
	col, row := s.Hero().Position()
	assert.Equal(t, 5, col)
	assert.Equal(t, 3, row)
}

func TestMoveWhilePerformingRejectedBusy(t *testing.T) {
	in, _ := newInterpreter(t)

	res, _ := in.Execute("hero.spin()")
	require.Equal(t, KindSuccess, res.Kind)

	res, _ = in.Execute("hero.move_up()")
	assert.Equal(t, KindRejected, res.Kind)
	assert.Equal(t, RejectBusy, res.Reject)
	assert.Equal(t, "Wait! Hero is busy performing...", res.Message)

	res, _ = in.Execute("hero.dance()")
	assert.Equal(t, KindRejected, res.Kind)
	assert.Equal(t, RejectBusy, res.Reject)
}

func TestKnownTypoGetsSuggestion(t *testing.T) {
	in, _ := newInterpreter(t)

	res, ok := in.Execute("hero.moveright()")
	require.True(t, ok)
	assert.Equal(t, KindParseError, res.Kind)
	assert.Equal(t, ParseUnknownMethod, res.ParseError)
	assert.Equal(t, "move_right", res.Suggestion)
	assert.Contains(t, res.Message, "move_right")
}

func TestUnknownMethodNoSuggestion(t *testing.T) {
	in, _ := newInterpreter(t)

	res, _ := in.Execute("hero.fly()")
	assert.Equal(t, KindParseError, res.Kind)
	assert.Equal(t, ParseUnknownMethod, res.ParseError)
	assert.Empty(t, res.Suggestion)
}

func TestMissingNamespace(t *testing.T) {
	in, _ := newInterpreter(t)

	res, _ := in.Execute("move_right()")
	assert.Equal(t, KindParseError, res.Kind)
	assert.Equal(t, ParseMissingNamespace, res.ParseError)
}

func TestSyntaxErrors(t *testing.T) {
	in, _ := newInterpreter(t)

	for _, cmd := range []string{
		"hero.move_right",   // no parens
		"hero.move_right(",  // unclosed
		"hero..move_right()", // double dot
		"just some words",
		"hero.move right()",
	} {
		res, ok := in.Execute(cmd)
		require.True(t, ok, "input %q", cmd)
		assert.Equal(t, KindParseError, res.Kind, "input %q", cmd)
		assert.Equal(t, ParseSyntax, res.ParseError, "input %q", cmd)
	}
}

func TestEmptyInputProducesNoResult(t *testing.T) {
	in, s := newInterpreter(t)

	_, ok := in.Execute("")
	assert.False(t, ok)
	_, ok = in.Execute("   \t ")
	assert.False(t, ok)
	assert.Equal(t, 0, s.CommandsExecuted())
}

func TestReservedDirectives(t *testing.T) {
	in, _ := newInterpreter(t)

	for _, cmd := range []string{"help", "HELP", "Help"} {
		res, ok := in.Execute(cmd)
		require.True(t, ok)
		assert.Equal(t, KindSystem, res.Kind)
		assert.Equal(t, SystemHelp, res.System)
		assert.NotEmpty(t, res.Lines)
	}

	res, _ := in.Execute("hint")
	assert.Equal(t, SystemHint, res.System)

	res, _ = in.Execute("CLEAR")
	assert.Equal(t, SystemClear, res.System)
}

func TestHintPointsTowardCurrentChallenge(t *testing.T) {
	in, _ := newInterpreter(t)

	// Spawn (5, 4), first challenge target (1, 1): left 4, up 3.
	res, _ := in.Execute("hint")
	require.Equal(t, KindSystem, res.Kind)
	joined := ""
	for _, l := range res.Lines {
		joined += l + "\n"
	}
	assert.Contains(t, joined, "left 4")
	assert.Contains(t, joined, "up 3")
}

func TestSayCommand(t *testing.T) {
	in, _ := newInterpreter(t)

	res, _ := in.Execute(`hero.say("Hi there")`)
	assert.Equal(t, KindSuccess, res.Kind)
	assert.Equal(t, `Hero says: "Hi there"`, res.Message)

	res, _ = in.Execute(`hero.say('single')`)
	assert.Equal(t, `Hero says: "single"`, res.Message)

	res, _ = in.Execute("hero.say()")
	assert.Equal(t, `Hero says: "Hello!"`, res.Message)

	res, _ = in.Execute("hero.say(42)")
	assert.Equal(t, `Hero says: "42"`, res.Message)
}

func TestBadArgument(t *testing.T) {
	in, _ := newInterpreter(t)

	for _, cmd := range []string{
		`hero.say(hello)`,        // bare identifier
		`hero.say("unclosed)`,    // unbalanced quote
		`hero.say(1 + 2)`,        // expressions are not evaluated
		`hero.say(os.exit())`,    // definitely not evaluated
	} {
		res, _ := in.Execute(cmd)
		assert.Equal(t, KindParseError, res.Kind, "input %q", cmd)
		assert.Equal(t, ParseBadArgument, res.ParseError, "input %q", cmd)
	}
}

func TestFlavorActions(t *testing.T) {
	in, _ := newInterpreter(t)

	for _, cmd := range []string{"hero.jump()", "hero.attack()", "hero.defend()", "hero.collect()"} {
		res, ok := in.Execute(cmd)
		require.True(t, ok)
		assert.Equal(t, KindSuccess, res.Kind, "input %q", cmd)
		assert.NotEmpty(t, res.Message)
	}
}

func TestCommandCounting(t *testing.T) {
	in, s := newInterpreter(t)

	_, _ = in.Execute("help")
	_, _ = in.Execute("hero.move_up()")
	_, _ = in.Execute("hero.fly()")
	assert.Equal(t, 3, s.CommandsExecuted())
	assert.Equal(t, 1, s.SuccessfulMoves())
}
