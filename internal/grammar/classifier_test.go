package grammar_test

import (
	"testing"

	"github.com/ghettovoice/uritmpl/internal/grammar"
)

func TestCharSet(t *testing.T) {
	t.Parallel()

	cs := grammar.NewCharSet(":@.")

	cases := []struct {
		c    byte
		want bool
	}{
		{':', true},
		{'@', true},
		{'.', true},
		{'a', false},
		{0, false},
		{255, false},
	}

	for _, c := range cases {
		if got := cs.Contains(c.c); got != c.want {
			t.Errorf("cs.Contains(%q) = %v, want %v", c.c, got, c.want)
		}
	}

	if got, want := cs.IndexIn("ab@cd"), 2; got != want {
		t.Errorf("cs.IndexIn(%q) = %d, want %d", "ab@cd", got, want)
	}
	if got, want := cs.IndexIn("abcd"), -1; got != want {
		t.Errorf("cs.IndexIn(%q) = %d, want %d", "abcd", got, want)
	}
}

func TestIsScheme(t *testing.T) {
	t.Parallel()

	cases := []struct {
		str  string
		want bool
	}{
		{"", false},
		{"http", true},
		{"HTTP", true},
		{"h2+tls-1.3", true},
		{"1http", false},
		{"ht tp", false},
	}

	for _, c := range cases {
		if got := grammar.IsScheme(c.str); got != c.want {
			t.Errorf("grammar.IsScheme(%q) = %v, want %v", c.str, got, c.want)
		}
	}
}

func TestSchemePrefixLen(t *testing.T) {
	t.Parallel()

	cases := []struct {
		str  string
		want int
	}{
		{"", 0},
		{"http://x", 4},
		{"http", 4},
		{"1http", 0},
		{"a b", 1},
	}

	for _, c := range cases {
		if got := grammar.SchemePrefixLen(c.str); got != c.want {
			t.Errorf("grammar.SchemePrefixLen(%q) = %d, want %d", c.str, got, c.want)
		}
	}
}

func TestIsHost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		str  string
		want bool
	}{
		{"", true},
		{"example.com", true},
		{"2001:db8::1", true},
		{"ex ample", false},
		{"ex/ample", false},
		{"ex@ample", false},
		{"ex?ample", false},
	}

	for _, c := range cases {
		if got := grammar.IsHost(c.str); got != c.want {
			t.Errorf("grammar.IsHost(%q) = %v, want %v", c.str, got, c.want)
		}
	}
}
