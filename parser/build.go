package parser

import (
	"regexp"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uritmpl/internal/errorutil"
	"github.com/ghettovoice/uritmpl/uri"
)

// buildStage consumes its own token prefix, fills the matching URI component
// and returns the remaining tokens. A stage whose component is absent returns
// the tokens untouched.
type buildStage func(u *uri.URI, ts []token) ([]token, error)

var buildStages = []buildStage{
	buildScheme,
	buildUserInfo,
	buildHostPort,
	buildPath,
	buildQuery,
	buildFragment,
}

func build(toks []token) (*uri.URI, error) {
	u := new(uri.URI)
	rest := toks
	var err error
	for _, stage := range buildStages {
		if rest, err = stage(u, rest); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	if len(rest) > 0 {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrStructuralLeftover,
			"tokens %v left after building %q", rest, u))
	}
	return u, nil
}

func buildScheme(u *uri.URI, ts []token) ([]token, error) {
	before, after, found := splitFirst(ts, tokenSchemeEnd)
	if !found {
		return ts, nil
	}
	if scheme := decodeConcat(before, false); scheme != "" {
		if err := u.SetScheme(scheme); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	return after, nil
}

func buildUserInfo(u *uri.URI, ts []token) ([]token, error) {
	idxAuth := indexOfKind(ts, tokenAuthorityEnd)
	if idxAuth < 0 {
		return ts, nil
	}
	idxAt := indexOfKind(ts[:idxAuth], tokenAtInAuthority)
	if idxAt < 0 {
		return ts, nil
	}
	usrToks, pwdToks, hasPwd := splitFirst(ts[:idxAt], tokenColonInAuthority)
	if hasPwd && spanAbsent(pwdToks) {
		hasPwd = false
	}
	usrname := decodeConcat(usrToks, false)
	switch {
	case hasPwd:
		u.SetUser(uri.UserPassword(usrname, decodeConcat(pwdToks, false)))
	case usrname != "":
		u.SetUser(uri.User(usrname))
	}
	return ts[idxAt+1:], nil
}

// hostPortRx recognizes a "host:port" shape inside a single embedded value.
// The greedy host group keeps IPv6 colons on the host side.
var hostPortRx = regexp.MustCompile(`^(.*):([0-9]+)$`)

func buildHostPort(u *uri.URI, ts []token) ([]token, error) {
	idxAuth := indexOfKind(ts, tokenAuthorityEnd)
	if idxAuth < 0 {
		return ts, nil
	}
	span := splitHostPortValues(ts[:idxAuth])
	rest := ts[idxAuth+1:]

	if countKind(span, tokenColonInAuthority) > 1 {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrMultiplePorts,
			"more than one port in %v", span))
	}
	hostToks, portToks, hasPort := splitFirst(span, tokenColonInAuthority)
	host, err := hostFromTokens(hostToks)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	addr := uri.Host(host)
	if hasPort {
		if port, perr := strconv.ParseUint(decodeConcat(portToks, false), 10, 16); perr == nil {
			addr = uri.HostPort(host, uint16(port))
		}
	}
	u.SetAddr(addr)
	return rest, nil
}

// splitHostPortValues rewrites every embedded value rendering as "host:port"
// into separate host and port tokens around an explicit ":" separator, so a
// single value can carry both. The parts stay value tokens to keep their text
// out of percent-decoding.
func splitHostPortValues(span []token) []token {
	out := make([]token, 0, len(span))
	for _, t := range span {
		if t.is(tokenValue) && t.val.shape == shapeScalar {
			if m := hostPortRx.FindStringSubmatch(t.val.render()); m != nil {
				out = append(out,
					val(&embedded{raw: m[1], shape: shapeScalar, rendered: m[1]}),
					mark(tokenColonInAuthority),
					val(&embedded{raw: m[2], shape: shapeScalar, rendered: m[2]}),
				)
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// hostFromTokens joins host label groups back with "." and rejects a host
// whose first label collapsed to nothing, i.e. the rendered host would start
// with a bare dot.
func hostFromTokens(ts []token) (string, error) {
	groups := splitAll(ts, tokenDotInAuthority)
	labels := make([]string, len(groups))
	for i, g := range groups {
		labels[i] = decodeConcat(g, false)
	}
	if len(labels) > 1 && labels[0] == "" {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidHost,
			"host in %v starts with '.'", ts))
	}
	return strings.Join(labels, "."), nil
}

func buildPath(u *uri.URI, ts []token) ([]token, error) {
	idxEnd := len(ts)
	for i, t := range ts {
		if t.is(tokenQueryStart) || t.is(tokenFragmentStart) {
			idxEnd = i
			break
		}
	}
	span, rest := ts[:idxEnd], ts[idxEnd:]
	_, hasAuth := u.Addr()
	if len(span) == 0 {
		if hasAuth {
			u.SetPath(uri.AbsolutePath())
		}
		return rest, nil
	}
	if !span[0].is(tokenPathStart) {
		return ts, nil
	}

	segToks := span[1:]
	if len(segToks) == 0 {
		if hasAuth {
			u.SetPath(uri.AbsolutePath())
		}
		return rest, nil
	}

	groups := splitAll(segToks, tokenSlashInPath)
	absolute := hasAuth
	if len(groups) > 1 && !hasValueToken(groups[0]) && decodeConcat(groups[0], false) == "" {
		// A leading empty group is the "/" that opened the path.
		absolute = true
		groups = groups[1:]
	}
	segments := make([]string, 0, len(groups))
	for _, g := range groups {
		if len(g) == 0 || spanAbsent(g) {
			continue
		}
		if len(g) == 1 && g[0].is(tokenValue) && g[0].val.shape == shapeSequence {
			for _, it := range g[0].val.items() {
				segments = append(segments, renderScalar(it))
			}
			continue
		}
		segments = append(segments, decodeConcat(g, false))
	}
	if absolute {
		u.SetPath(uri.AbsolutePath(segments...))
	} else {
		u.SetPath(uri.RelativePath(segments...))
	}
	return rest, nil
}

func buildQuery(u *uri.URI, ts []token) ([]token, error) {
	if len(ts) == 0 || !ts[0].is(tokenQueryStart) {
		return ts, nil
	}
	span := ts[1:]
	var rest []token
	if i := indexOfKind(span, tokenFragmentStart); i >= 0 {
		span, rest = span[:i], span[i:]
	}

	var q uri.Query
	for _, g := range splitAll(span, tokenAmpInQuery) {
		if len(g) == 0 {
			continue
		}
		if len(g) == 1 && g[0].is(tokenValue) {
			if seg, expanded := expandQueryValue(g[0].val); expanded {
				q = append(q, seg...)
				continue
			}
		}
		keyToks, valToks, hasEq := splitFirst(g, tokenEqInQuery)
		if !hasEq {
			if spanAbsent(g) {
				continue
			}
			if txt := decodeConcat(g, true); txt != "" {
				q = append(q, uri.ValueOnly(txt))
			}
			continue
		}
		// An absent value side removes the whole parameter, an absent key
		// side degrades the parameter to a bare value.
		if spanAbsent(valToks) {
			continue
		}
		if len(keyToks) == 0 || spanAbsent(keyToks) {
			q = append(q, uri.ValueOnly(decodeConcat(valToks, true)))
			continue
		}
		q = append(q, uri.KeyValue(decodeConcat(keyToks, true), decodeConcat(valToks, true)))
	}
	u.SetQuery(q)
	return rest, nil
}

// expandQueryValue expands a multi-element value occupying a whole query
// group into parameter segments. Scalars are not expanded here, they go
// through the regular textual path.
func expandQueryValue(e *embedded) (uri.Query, bool) {
	switch e.shape {
	case shapeParams:
		return e.params(), true
	case shapeMapping:
		entries := e.entries()
		q := make(uri.Query, 0, len(entries))
		for _, kv := range entries {
			q = append(q, uri.KeyValue(kv[0], kv[1]))
		}
		return q, true
	case shapeSequence:
		items := e.items()
		q := make(uri.Query, 0, len(items))
		for _, it := range items {
			q = append(q, querySegmentOf(it))
		}
		return q, true
	default:
		return nil, false
	}
}

func buildFragment(u *uri.URI, ts []token) ([]token, error) {
	if len(ts) == 0 || !ts[0].is(tokenFragmentStart) {
		return ts, nil
	}
	if !spanAbsent(ts[1:]) {
		u.SetFragment(decodeConcat(ts[1:], false))
	}
	return nil, nil
}
