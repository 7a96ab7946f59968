package uri_test

import (
	"testing"

	"github.com/ghettovoice/uritmpl/uri"
)

func TestPath_String(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		path uri.Path
		want string
	}{
		{"zero", uri.Path{}, ""},
		{"empty absolute", uri.AbsolutePath(), ""},
		{"absolute", uri.AbsolutePath("a", "b"), "/a/b"},
		{"relative", uri.RelativePath("a", "b"), "a/b"},
		{"trailing slash", uri.AbsolutePath("a", ""), "/a/"},
		{"empty inner segment", uri.AbsolutePath("a", "", "b"), "/a//b"},
		{"escaped segment", uri.AbsolutePath("a b", "c?d"), "/a%20b/c%3Fd"},
		{"root", uri.AbsolutePath(""), "/"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.path.String(); got != c.want {
				t.Errorf("path.String() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestPath_Equal(t *testing.T) {
	t.Parallel()

	if !uri.AbsolutePath("a").Equal(uri.AbsolutePath("a")) {
		t.Error("equal absolute paths compare false")
	}
	if uri.AbsolutePath("a").Equal(uri.RelativePath("a")) {
		t.Error("absolute and relative paths compare true")
	}
	if uri.RelativePath().Equal(uri.AbsolutePath()) {
		t.Error("empty relative and empty absolute paths compare true")
	}
}
