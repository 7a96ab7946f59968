package uritmpl

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uritmpl/parser"
	"github.com/ghettovoice/uritmpl/uri"
)

// Interpolate assembles a URI reference from interleaved literal segments and
// embedded values: segments[0], values[0], segments[1], and so on. There must
// be exactly one more segment than values.
func Interpolate(segments []string, values []any, opts ...Option) (*uri.URI, error) {
	return errtrace.Wrap2(parser.Parse(segments, values, opts...))
}

// Expand splits the template on "{}" placeholders and interpolates the given
// values into them. The number of values must match the number of
// placeholders.
func Expand(template string, values ...any) (*uri.URI, error) {
	return errtrace.Wrap2(ExpandWith(template, values))
}

// ExpandWith is Expand with explicit values and extra options.
func ExpandWith(template string, values []any, opts ...Option) (*uri.URI, error) {
	return errtrace.Wrap2(parser.Parse(strings.Split(template, "{}"), values, opts...))
}
