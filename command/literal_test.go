package command

import "testing"

func TestParseLiteralAccepts(t *testing.T) {
	cases := []struct {
		in   string
		kind LiteralKind
		disp string
	}{
		{`"hello"`, LiteralString, "hello"},
		{`'hello'`, LiteralString, "hello"},
		{`"it's fine"`, LiteralString, "it's fine"},
		{`""`, LiteralString, ""},
		{`42`, LiteralInt, "42"},
		{`-7`, LiteralInt, "-7"},
		{`true`, LiteralBool, "true"},
		{`false`, LiteralBool, "false"},
		{`True`, LiteralBool, "true"},
		{`False`, LiteralBool, "false"},
		{`  "padded"  `, LiteralString, "padded"},
	}

	for _, c := range cases {
		lit, err := parseLiteral(c.in)
		if err != nil {
			t.Errorf("parseLiteral(%q) failed: %v", c.in, err)
			continue
		}
		if lit.Kind != c.kind {
			t.Errorf("parseLiteral(%q) kind = %v, want %v", c.in, lit.Kind, c.kind)
		}
		if lit.Display() != c.disp {
			t.Errorf("parseLiteral(%q).Display() = %q, want %q", c.in, lit.Display(), c.disp)
		}
	}
}

func TestParseLiteralRejects(t *testing.T) {
	cases := []string{
		``,
		`   `,
		`hello`,        // bare identifier
		`"mismatched'`, // mixed quotes
		`"unclosed`,
		`unopened"`,
		`"inner"quote"`, // quote inside the quoted body
		`1.5.2`,
		`1 + 2`,
		`[1, 2]`,
		`exec("rm -rf /")`,
	}

	for _, c := range cases {
		if _, err := parseLiteral(c); err == nil {
			t.Errorf("parseLiteral(%q) should have failed", c)
		}
	}
}
