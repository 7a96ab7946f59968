package uri

import (
	"io"
	"slices"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uritmpl/internal/grammar"
	"github.com/ghettovoice/uritmpl/internal/ioutil"
	"github.com/ghettovoice/uritmpl/internal/util"
)

// Path is an ordered list of path segments, absolute or relative.
// An absolute path renders with a leading "/".
type Path struct {
	absolute bool
	segments []string
}

// RelativePath returns a relative Path with the given segments.
func RelativePath(segments ...string) Path {
	return Path{segments: segments}
}

// AbsolutePath returns an absolute Path with the given segments.
func AbsolutePath(segments ...string) Path {
	return Path{absolute: true, segments: segments}
}

// IsAbsolute reports whether the path is absolute.
func (p Path) IsAbsolute() bool { return p.absolute }

// IsEmpty reports whether the path has no segments.
func (p Path) IsEmpty() bool { return len(p.segments) == 0 }

// Segments returns the path segments in order.
func (p Path) Segments() []string { return p.segments }

func (p Path) renderTo(w io.Writer) (num int, err error) {
	if len(p.segments) == 0 {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	for i, seg := range p.segments {
		if p.absolute || i > 0 {
			cw.Fprint("/")
		}
		cw.Fprint(grammar.Escape(seg, shouldEscapePathChar))
	}
	return errtrace.Wrap2(cw.Result())
}

// String returns the string representation of the path with segments escaped.
func (p Path) String() string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	p.renderTo(sb) //nolint:errcheck
	return sb.String()
}

// Clone returns a copy of the path.
func (p Path) Clone() Path {
	p.segments = slices.Clone(p.segments)
	return p
}

// Equal compares this path with another for equality.
func (p Path) Equal(val any) bool {
	var other Path
	switch v := val.(type) {
	case Path:
		other = v
	case *Path:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return p.absolute == other.absolute && slices.Equal(p.segments, other.segments)
}
