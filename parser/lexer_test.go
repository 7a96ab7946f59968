package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func tokenStrings(ts []token) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.String()
	}
	return out
}

func TestLexer(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		segments  []string
		wantToks  []string
		wantState lexState
	}{
		{
			"full reference",
			[]string{"scheme://user@host.example:80/a/b?x=1#f"},
			[]string{
				`"scheme"`, "[schemeEnd]",
				`"user"`, "[@]", `"host"`, "[.]", `"example"`, "[:]", `"80"`, "[authorityEnd]",
				"[/]", `"a"`, "[/]", `"b"`,
				"[?]", `"x"`, "[=]", `"1"`,
				"[#]", `"f"`,
			},
			stateFragment,
		},
		{
			"authority end appended at end of input",
			[]string{"scheme://host"},
			[]string{`"scheme"`, "[schemeEnd]", `"host"`, "[authorityEnd]"},
			stateAuthority,
		},
		{
			"bare scheme-shaped text stays buffered",
			[]string{"example.com"},
			[]string{`"example.com"`},
			stateScheme,
		},
		{
			"absolute path without scheme",
			[]string{"/a/b"},
			[]string{"[pathStart]", `""`, "[/]", `"a"`, "[/]", `"b"`},
			statePath,
		},
		{
			"relative path",
			[]string{"a/b"},
			[]string{"[pathStart]", `"a"`, "[/]", `"b"`},
			statePath,
		},
		{
			"ipv6 brackets stripped and separators skipped",
			[]string{"s://[2001:db8::1]:80/"},
			[]string{`"s"`, "[schemeEnd]", `"2001:db8::1"`, "[:]", `"80"`, "[authorityEnd]", "[/]", `""`},
			statePath,
		},
		{
			"query and fragment",
			[]string{"?a=1&b#frag"},
			[]string{"[?]", `"a"`, "[=]", `"1"`, "[&]", `"b"`, "[#]", `"frag"`},
			stateFragment,
		},
		{
			"empty scheme segment leaves placeholder",
			[]string{""},
			[]string{`""`},
			stateScheme,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			lx := newLexer()
			for _, seg := range c.segments {
				lx.feed(seg)
			}
			toks := lx.finish()
			if diff := cmp.Diff(tokenStrings(toks), c.wantToks); diff != "" {
				t.Errorf("tokens mismatch (-got +want):\n%v", diff)
			}
			if lx.st != c.wantState {
				t.Errorf("lexer state = %v, want %v", lx.st, c.wantState)
			}
		})
	}
}

func TestLexer_SchemeAcrossValue(t *testing.T) {
	t.Parallel()

	lx := newLexer()
	lx.feed("a")
	lx.seenValue = true
	lx.emit(val(&embedded{raw: "bc", shape: shapeScalar, rendered: "bc"}))
	lx.feed("://host")

	want := []string{`"a"`, `value("bc")`, "[schemeEnd]", `"host"`, "[authorityEnd]"}
	if diff := cmp.Diff(tokenStrings(lx.finish()), want); diff != "" {
		t.Errorf("tokens mismatch (-got +want):\n%v", diff)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	v := val(&embedded{raw: "x", shape: shapeScalar, rendered: "x"})

	cases := []struct {
		name string
		toks []token
		want []string
	}{
		{
			"empty literals dropped around values",
			[]token{lit(""), v, lit(""), lit("a")},
			[]string{"[pathStart]", `value("x")`, `"a"`},
		},
		{
			"path start inserted after authority end",
			[]token{lit("s"), mark(tokenSchemeEnd), lit("h"), mark(tokenAuthorityEnd), mark(tokenSlashInPath), lit("a")},
			[]string{`"s"`, "[schemeEnd]", `"h"`, "[authorityEnd]", "[pathStart]", "[/]", `"a"`},
		},
		{
			"path start inserted after scheme end",
			[]token{lit("s"), mark(tokenSchemeEnd), lit("a")},
			[]string{`"s"`, "[schemeEnd]", "[pathStart]", `"a"`},
		},
		{
			"path start inserted at front of bare reference",
			[]token{lit("example.com")},
			[]string{"[pathStart]", `"example.com"`},
		},
		{
			"no insert before query start",
			[]token{lit("s"), mark(tokenSchemeEnd), lit("h"), mark(tokenAuthorityEnd), mark(tokenQueryStart), lit("a")},
			[]string{`"s"`, "[schemeEnd]", `"h"`, "[authorityEnd]", "[?]", `"a"`},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(tokenStrings(normalize(c.toks)), c.want); diff != "" {
				t.Errorf("normalize() mismatch (-got +want):\n%v", diff)
			}
		})
	}
}

func TestDecodeConcat(t *testing.T) {
	t.Parallel()

	v := val(&embedded{raw: "a%20b", shape: shapeScalar, rendered: "a%20b"})

	cases := []struct {
		name        string
		toks        []token
		plusAsSpace bool
		want        string
	}{
		{"literal decoded once", []token{lit("a%20b")}, false, "a b"},
		{"value text verbatim", []token{v}, false, "a%20b"},
		{"separator markers decode to chars", []token{lit("a"), mark(tokenDotInAuthority), lit("b"), mark(tokenEqInQuery), lit("c")}, false, "a.b=c"},
		{"plus as space", []token{lit("a+b")}, true, "a b"},
		{"plus kept", []token{lit("a+b")}, false, "a+b"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := decodeConcat(c.toks, c.plusAsSpace); got != c.want {
				t.Errorf("decodeConcat(%v, %v) = %q, want %q", c.toks, c.plusAsSpace, got, c.want)
			}
		})
	}
}
