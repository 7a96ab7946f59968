package parser

import (
	"context"
	"strings"

	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/uritmpl/internal/grammar"
	"github.com/ghettovoice/uritmpl/internal/util"
)

// lexState is a lexer position within the reference being assembled.
// The state persists across segment boundaries so an embedded value never
// resets tokenization.
type lexState uint8

const (
	stateScheme lexState = iota
	stateAfterScheme
	stateAuthority
	statePath
	stateQuery
	stateFragment
)

var lexStateNames = [...]string{
	stateScheme:      "scheme",
	stateAfterScheme: "after-scheme",
	stateAuthority:   "authority",
	statePath:        "path",
	stateQuery:       "query",
	stateFragment:    "fragment",
}

func (s lexState) String() string { return lexStateNames[s] }

type lexTrigger string

const (
	trigAfterScheme lexTrigger = "after-scheme"
	trigAuthority   lexTrigger = "authority"
	trigPath        lexTrigger = "path"
	trigQuery       lexTrigger = "query"
	trigFragment    lexTrigger = "fragment"
)

var (
	authorityEndChars = grammar.NewCharSet("/?#")
)

// lexer scans literal segments into tokens. Transitions between reference
// components are forward-only and guarded by the state machine: once the
// lexer reaches the query it can move to the fragment but never back to
// the path.
type lexer struct {
	st        lexState
	sm        *stateless.StateMachine
	toks      []token
	seenValue bool // an embedded value was emitted while still resolving the scheme
}

func newLexer() *lexer {
	lx := &lexer{st: stateScheme}
	sm := stateless.NewStateMachineWithExternalStorage(
		func(_ context.Context) (stateless.State, error) { return lx.st, nil },
		func(_ context.Context, st stateless.State) error {
			lx.st = st.(lexState) //nolint:forcetypeassert
			return nil
		},
		stateless.FiringImmediate,
	)
	sm.Configure(stateScheme).
		Permit(trigAfterScheme, stateAfterScheme)
	sm.Configure(stateAfterScheme).
		Permit(trigAuthority, stateAuthority).
		Permit(trigPath, statePath).
		Permit(trigQuery, stateQuery).
		Permit(trigFragment, stateFragment)
	sm.Configure(stateAuthority).
		Permit(trigPath, statePath).
		Permit(trigQuery, stateQuery).
		Permit(trigFragment, stateFragment)
	sm.Configure(statePath).
		Permit(trigQuery, stateQuery).
		Permit(trigFragment, stateFragment)
	sm.Configure(stateQuery).
		Permit(trigFragment, stateFragment)
	sm.Configure(stateFragment)
	lx.sm = sm
	return lx
}

func (lx *lexer) to(t lexTrigger) { util.Must(lx.sm.Fire(t)) }

func (lx *lexer) emit(ts ...token) { lx.toks = append(lx.toks, ts...) }

// feed scans one literal segment starting from the current state.
func (lx *lexer) feed(seg string) {
	switch lx.st {
	case stateScheme:
		lx.scanScheme(seg)
	case stateAfterScheme:
		lx.scanAfterScheme(seg)
	case stateAuthority:
		lx.scanAuthority(seg)
	case statePath:
		lx.scanPath(seg)
	case stateQuery:
		lx.scanQuery(seg)
	case stateFragment:
		lx.scanFragment(seg)
	}
}

// finish closes the token stream. The authority is the only component whose
// extent must be delimited explicitly, so reaching end of input there appends
// its end marker.
func (lx *lexer) finish() []token {
	if lx.st == stateAuthority {
		lx.emit(mark(tokenAuthorityEnd))
	}
	return lx.toks
}

// scanScheme resolves whether the reference opens with a scheme. A scheme
// prefix terminated by ":" within the segment resolves immediately. A segment
// the prefix pattern consumes entirely leaves resolution open: the matched
// text is buffered and the decision moves to the next segment, where a
// leading ":" after any buffered token acts as the scheme terminator.
func (lx *lexer) scanScheme(s string) {
	if s == "" {
		lx.emit(lit(""))
		return
	}
	if s[0] == ':' && (lx.seenValue || len(lx.toks) > 0) {
		lx.emit(mark(tokenSchemeEnd))
		lx.to(trigAfterScheme)
		lx.scanAfterScheme(s[1:])
		return
	}
	n := grammar.SchemePrefixLen(s)
	switch {
	case n == len(s):
		lx.emit(lit(s))
	case n > 0 && s[n] == ':':
		lx.emit(lit(s[:n]), mark(tokenSchemeEnd))
		lx.to(trigAfterScheme)
		lx.scanAfterScheme(s[n+1:])
	default:
		// No scheme here, reinterpret the whole text as a relative reference.
		lx.to(trigAfterScheme)
		lx.scanAfterScheme(s)
	}
}

// scanAfterScheme dispatches the text right after "scheme:" (or the start of
// a relative reference) into authority, path, query or fragment.
func (lx *lexer) scanAfterScheme(s string) {
	switch {
	case s == "":
		lx.emit(lit(""))
	case strings.HasPrefix(s, "//"):
		lx.to(trigAuthority)
		lx.scanAuthority(s[2:])
	case s[0] == '/':
		// A single slash opens an absolute path without authority.
		lx.emit(mark(tokenPathStart), lit(""))
		lx.to(trigPath)
		lx.scanPath(s)
	case s[0] == '?':
		lx.emit(mark(tokenQueryStart))
		lx.to(trigQuery)
		lx.scanQuery(s[1:])
	case s[0] == '#':
		lx.emit(mark(tokenFragmentStart))
		lx.to(trigFragment)
		lx.scanFragment(s[1:])
	default:
		lx.emit(mark(tokenPathStart))
		lx.to(trigPath)
		lx.scanPath(s)
	}
}

// scanAuthority splits the authority on ":", "@" and "." separators until one
// of "/?#" terminates it. Bracketed IPv6 hosts are opaque: separators inside
// "[...]" are skipped and the surrounding brackets are stripped from the
// resulting chunk.
func (lx *lexer) scanAuthority(s string) {
	first := true
	start := 0
	flush := func(end int) {
		chunk := s[start:end]
		if first {
			first = false
			if chunk == "" {
				return
			}
		}
		lx.emit(lit(stripIPv6Brackets(chunk)))
	}

	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == '[':
			if j := strings.IndexByte(s[i:], ']'); j >= 0 {
				i += j + 1
			} else {
				i = len(s)
			}
		case authorityEndChars.Contains(c):
			flush(i)
			lx.emit(mark(tokenAuthorityEnd))
			switch c {
			case '/':
				lx.to(trigPath)
				lx.scanPath(s[i:])
			case '?':
				lx.emit(mark(tokenQueryStart))
				lx.to(trigQuery)
				lx.scanQuery(s[i+1:])
			case '#':
				lx.emit(mark(tokenFragmentStart))
				lx.to(trigFragment)
				lx.scanFragment(s[i+1:])
			}
			return
		case c == ':':
			flush(i)
			lx.emit(mark(tokenColonInAuthority))
			start = i + 1
			i++
		case c == '@':
			flush(i)
			lx.emit(mark(tokenAtInAuthority))
			start = i + 1
			i++
		case c == '.':
			flush(i)
			lx.emit(mark(tokenDotInAuthority))
			start = i + 1
			i++
		default:
			i++
		}
	}
	flush(len(s))
}

// scanPath splits path text on "/" until "?" or "#" terminates it.
func (lx *lexer) scanPath(s string) {
	first := true
	start := 0
	flush := func(end int) {
		chunk := s[start:end]
		if first {
			first = false
			if chunk == "" {
				return
			}
		}
		lx.emit(lit(chunk))
	}

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '?', '#':
			flush(i)
			if c == '?' {
				lx.emit(mark(tokenQueryStart))
				lx.to(trigQuery)
				lx.scanQuery(s[i+1:])
			} else {
				lx.emit(mark(tokenFragmentStart))
				lx.to(trigFragment)
				lx.scanFragment(s[i+1:])
			}
			return
		case '/':
			flush(i)
			lx.emit(mark(tokenSlashInPath))
			start = i + 1
		}
	}
	flush(len(s))
}

// scanQuery splits query text on "&" and "=" until "#" terminates it.
func (lx *lexer) scanQuery(s string) {
	first := true
	start := 0
	flush := func(end int) {
		chunk := s[start:end]
		if first {
			first = false
			if chunk == "" {
				return
			}
		}
		lx.emit(lit(chunk))
	}

	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '#':
			flush(i)
			lx.emit(mark(tokenFragmentStart))
			lx.to(trigFragment)
			lx.scanFragment(s[i+1:])
			return
		case '&':
			flush(i)
			lx.emit(mark(tokenAmpInQuery))
			start = i + 1
		case '=':
			flush(i)
			lx.emit(mark(tokenEqInQuery))
			start = i + 1
		}
	}
	flush(len(s))
}

// scanFragment consumes the rest of the input verbatim.
func (lx *lexer) scanFragment(s string) {
	lx.emit(lit(s))
}

// dropTrailingEmptyLiteral removes a trailing placeholder before splicing
// an embedded base reference into the stream.
func (lx *lexer) dropTrailingEmptyLiteral() {
	if n := len(lx.toks); n > 0 && lx.toks[n-1].isEmptyLiteral() {
		lx.toks = lx.toks[:n-1]
	}
}

// collapseDupSlash drops the duplicate separator produced when a spliced
// base reference ends with "/" and the following literal segment starts
// with "/". The mark argument is the token index where the following
// segment's tokens begin.
func (lx *lexer) collapseDupSlash(markIdx int) {
	if markIdx >= 2 && markIdx < len(lx.toks) &&
		lx.toks[markIdx].is(tokenSlashInPath) &&
		lx.toks[markIdx-1].isEmptyLiteral() &&
		lx.toks[markIdx-2].is(tokenSlashInPath) {
		lx.toks = append(lx.toks[:markIdx-2], lx.toks[markIdx:]...)
	}
}

// stripIPv6Brackets removes the surrounding brackets from a chunk that is
// exactly a bracketed IPv6 form.
func stripIPv6Brackets(chunk string) string {
	if len(chunk) < 3 || chunk[0] != '[' || chunk[len(chunk)-1] != ']' {
		return chunk
	}
	inner := chunk[1 : len(chunk)-1]
	for i := 0; i < len(inner); i++ {
		c := inner[i]
		if !grammar.IsAlphanumChar(c) && c != ':' && c != '.' && c != '%' {
			return chunk
		}
	}
	return inner
}
