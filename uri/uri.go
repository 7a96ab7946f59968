package uri

//go:generate go tool errtrace -w .

import (
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uritmpl/internal/errorutil"
	"github.com/ghettovoice/uritmpl/internal/grammar"
	"github.com/ghettovoice/uritmpl/internal/ioutil"
	"github.com/ghettovoice/uritmpl/internal/types"
	"github.com/ghettovoice/uritmpl/internal/util"
)

// Addr represents a network address consisting of a host and optional port.
type Addr = types.Addr

// Host creates an Addr from a hostname without a port.
func Host(host string) Addr { return types.Host(host) }

// HostPort creates an Addr from a hostname and port.
func HostPort(host string, port uint16) Addr { return types.HostPort(host, port) }

// QuerySegment represents a single query component: a bare value or a key-value pair.
type QuerySegment = types.QuerySegment

// KeyValue creates a key-value query segment.
func KeyValue(key, value string) QuerySegment { return types.KeyValue(key, value) }

// ValueOnly creates a bare-value query segment.
func ValueOnly(value string) QuerySegment { return types.ValueOnly(value) }

// Query is an ordered list of query segments.
type Query = types.Query

// Values is an ordered, repeat-key-permitting multi-value map of query parameters.
type Values = types.Values

// RenderOptions contains options for rendering URIs and their components.
type RenderOptions = types.RenderOptions

var (
	_ types.Renderer        = (*URI)(nil)
	_ types.Equalable       = (*URI)(nil)
	_ types.ValidFlag       = (*URI)(nil)
	_ types.Cloneable[*URI] = (*URI)(nil)
)

// URI is a structured URI value: optional scheme, optional authority
// (userinfo, host, port), path, query and optional fragment.
//
// The zero value is an empty relative reference ready for use.
type URI struct {
	scheme  string
	user    UserInfo
	hasUser bool
	addr    Addr
	hasAuth bool
	path    Path
	query   Query
	frag    string
	hasFrag bool
}

// Scheme returns the URI scheme, or an empty string when absent.
func (u *URI) Scheme() string {
	if u == nil {
		return ""
	}
	return u.scheme
}

// SetScheme sets the URI scheme. The scheme must match
// ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ) and is stored lower-cased.
func (u *URI) SetScheme(scheme string) error {
	if !grammar.IsScheme(scheme) {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("malformed scheme %q", scheme))
	}
	u.scheme = util.LCase(scheme)
	return nil
}

// ClearScheme removes the scheme.
func (u *URI) ClearScheme() { u.scheme = "" }

// User returns the userinfo component and a bool flag indicating whether it is set.
func (u *URI) User() (UserInfo, bool) {
	if u == nil {
		return UserInfo{}, false
	}
	return u.user, u.hasUser
}

// SetUser sets the userinfo component and marks the authority as present.
func (u *URI) SetUser(user UserInfo) {
	u.user = user
	u.hasUser = true
	u.hasAuth = true
}

// ClearUser removes the userinfo component.
func (u *URI) ClearUser() {
	u.user = UserInfo{}
	u.hasUser = false
}

// Addr returns the host/port component and a bool flag indicating whether
// the authority is present.
func (u *URI) Addr() (Addr, bool) {
	if u == nil {
		return Addr{}, false
	}
	return u.addr, u.hasAuth
}

// SetAddr sets the host/port component and marks the authority as present.
func (u *URI) SetAddr(addr Addr) {
	u.addr = addr
	u.hasAuth = true
}

// Host returns the host, or an empty string when the authority is absent.
func (u *URI) Host() string {
	if u == nil {
		return ""
	}
	return u.addr.Host()
}

// SetHost sets the host, preserving the port, and marks the authority as present.
// Surrounding IPv6 brackets are stripped. The host must not contain URI
// structure characters; validation is otherwise deliberately partial.
func (u *URI) SetHost(host string) error {
	addr := Host(host)
	if !addr.IsValid() {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("malformed host %q", host))
	}
	if port, ok := u.addr.Port(); ok {
		addr = HostPort(addr.Host(), port)
	}
	u.addr = addr
	u.hasAuth = true
	return nil
}

// Port returns the port and a bool flag indicating whether it is set.
func (u *URI) Port() (uint16, bool) {
	if u == nil {
		return 0, false
	}
	return u.addr.Port()
}

// SetPort sets the port, preserving the host, and marks the authority as present.
func (u *URI) SetPort(port uint16) {
	u.addr = HostPort(u.addr.Host(), port)
	u.hasAuth = true
}

// ClearPort removes the port, preserving the host.
func (u *URI) ClearPort() { u.addr = Host(u.addr.Host()) }

// Path returns the path component.
func (u *URI) Path() Path {
	if u == nil {
		return Path{}
	}
	return u.path
}

// SetPath sets the path component.
func (u *URI) SetPath(path Path) { u.path = path }

// Query returns the query component.
func (u *URI) Query() Query {
	if u == nil {
		return nil
	}
	return u.query
}

// SetQuery sets the query component.
func (u *URI) SetQuery(query Query) { u.query = query }

// AddQuery appends query segments to the query component.
func (u *URI) AddQuery(segments ...QuerySegment) { u.query = append(u.query, segments...) }

// Fragment returns the fragment and a bool flag indicating whether it is set.
// A present fragment may be empty ("...#").
func (u *URI) Fragment() (string, bool) {
	if u == nil {
		return "", false
	}
	return u.frag, u.hasFrag
}

// SetFragment sets the fragment.
func (u *URI) SetFragment(frag string) {
	u.frag = frag
	u.hasFrag = true
}

// ClearFragment removes the fragment.
func (u *URI) ClearFragment() {
	u.frag = ""
	u.hasFrag = false
}

// RenderTo writes the URI to the provided writer.
func (u *URI) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if u == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if u.scheme != "" {
		cw.Fprint(u.scheme, ":")
	}
	if u.hasAuth {
		cw.Fprint("//")
		if u.hasUser {
			cw.Fprint(u.user, "@")
		}
		cw.Fprint(u.addr)
	}
	cw.Call(u.path.renderTo)
	cw.Call(u.renderQuery)
	if u.hasFrag {
		cw.Fprint("#", grammar.Escape(u.frag, shouldEscapeFragmentChar))
	}
	return errtrace.Wrap2(cw.Result())
}

func (u *URI) renderQuery(w io.Writer) (num int, err error) {
	if len(u.query) == 0 {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint("?")
	for i, qs := range u.query {
		if i > 0 {
			cw.Fprint("&")
		}
		if k, ok := qs.Key(); ok {
			cw.Fprint(grammar.Escape(k, shouldEscapeQueryChar), "=")
		}
		cw.Fprint(grammar.Escape(qs.Value(), shouldEscapeQueryChar))
	}
	return errtrace.Wrap2(cw.Result())
}

// Render returns the string representation of the URI.
func (u *URI) Render(opts *RenderOptions) string {
	if u == nil {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	u.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

// String returns the string representation of the URI.
func (u *URI) String() string {
	if u == nil {
		return ""
	}
	return u.Render(nil)
}

// Format implements fmt.Formatter for custom formatting of the URI.
func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			u.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, u.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
		return
	default:
		type hideMethods URI
		type URI hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*URI)(u))
		return
	}
}

// Clone returns a deep copy of the URI.
func (u *URI) Clone() *URI {
	if u == nil {
		return nil
	}
	u2 := *u
	u2.addr = u.addr.Clone()
	u2.path = u.path.Clone()
	u2.query = u.query.Clone()
	return &u2
}

// Equal compares this URI with another for equality. Scheme and host compare
// case-insensitively, all other components compare verbatim.
func (u *URI) Equal(val any) bool {
	var other *URI
	switch v := val.(type) {
	case URI:
		other = &v
	case *URI:
		other = v
	default:
		return false
	}

	if u == other {
		return true
	} else if u == nil || other == nil {
		return false
	}

	return util.EqFold(u.scheme, other.scheme) &&
		u.hasUser == other.hasUser && u.user.Equal(other.user) &&
		u.hasAuth == other.hasAuth && u.addr.Equal(other.addr) &&
		u.path.Equal(other.path) &&
		u.query.Equal(other.query) &&
		u.hasFrag == other.hasFrag && u.frag == other.frag
}

// IsValid checks whether the URI is syntactically acceptable: the scheme, when
// present, matches the scheme shape and the host, when present, contains no
// URI structure characters. Validation is deliberately partial.
func (u *URI) IsValid() bool {
	return u != nil &&
		(u.scheme == "" || grammar.IsScheme(u.scheme)) &&
		(!u.hasAuth || u.addr.IsValid()) &&
		(!u.hasUser || u.user.IsZero() || u.user.IsValid())
}

// MarshalText implements [encoding.TextMarshaler].
func (u *URI) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}
