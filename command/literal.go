package command

import (
	"fmt"
	"strconv"
	"strings"
)

// LiteralKind identifies the type of a parsed argument.
type LiteralKind int

const (
	LiteralString LiteralKind = iota
	LiteralInt
	LiteralBool
)

// Literal is a single parsed command argument. Arguments are restricted to
// quoted strings, integers, and booleans; the console never evaluates
// learner input as code.
type Literal struct {
	Kind LiteralKind
	Str  string
	Int  int
	Bool bool
}

// Display renders the literal as learner-facing text.
func (l Literal) Display() string {
	switch l.Kind {
	case LiteralInt:
		return strconv.Itoa(l.Int)
	case LiteralBool:
		return strconv.FormatBool(l.Bool)
	default:
		return l.Str
	}
}

// parseLiteral parses one argument token. The grammar accepts:
//   - a single- or double-quoted string, quotes matching
//   - an integer
//   - a boolean (true/false, plus the Python spellings True/False that
//     learners reach for)
func parseLiteral(s string) (Literal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Literal{}, fmt.Errorf("empty argument")
	}

	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			inner := s[1 : len(s)-1]
			if strings.ContainsRune(inner, rune(first)) {
				return Literal{}, fmt.Errorf("unbalanced quotes in %q", s)
			}
			return Literal{Kind: LiteralString, Str: inner}, nil
		}
		if first == '"' || first == '\'' || last == '"' || last == '\'' {
			return Literal{}, fmt.Errorf("unbalanced quotes in %q", s)
		}
	}

	switch s {
	case "true", "True":
		return Literal{Kind: LiteralBool, Bool: true}, nil
	case "false", "False":
		return Literal{Kind: LiteralBool, Bool: false}, nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		return Literal{Kind: LiteralInt, Int: n}, nil
	}

	return Literal{}, fmt.Errorf("not a string, number, or boolean: %q", s)
}
