package parser

import "strconv"

// tokenKind enumerates literal, embedded-value and structural marker tokens.
// Structural markers carry no payload and compare by kind only.
type tokenKind uint8

const (
	tokenLiteral tokenKind = iota
	tokenValue
	tokenSchemeEnd
	tokenColonInAuthority
	tokenAtInAuthority
	tokenDotInAuthority
	tokenAuthorityEnd
	tokenPathStart
	tokenSlashInPath
	tokenQueryStart
	tokenAmpInQuery
	tokenEqInQuery
	tokenFragmentStart
)

var tokenKindNames = [...]string{
	tokenLiteral:          "literal",
	tokenValue:            "value",
	tokenSchemeEnd:        "[schemeEnd]",
	tokenColonInAuthority: "[:]",
	tokenAtInAuthority:    "[@]",
	tokenDotInAuthority:   "[.]",
	tokenAuthorityEnd:     "[authorityEnd]",
	tokenPathStart:        "[pathStart]",
	tokenSlashInPath:      "[/]",
	tokenQueryStart:       "[?]",
	tokenAmpInQuery:       "[&]",
	tokenEqInQuery:        "[=]",
	tokenFragmentStart:    "[#]",
}

func (k tokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "unknown(" + strconv.Itoa(int(k)) + ")"
}

// sepChar returns the source character a separator marker replaced.
// It is used in spans where a marker decodes back to a literal character,
// e.g. a "." within userinfo or a "=" within a query value.
func (k tokenKind) sepChar() string {
	switch k {
	case tokenColonInAuthority:
		return ":"
	case tokenAtInAuthority:
		return "@"
	case tokenDotInAuthority:
		return "."
	case tokenSlashInPath:
		return "/"
	case tokenAmpInQuery:
		return "&"
	case tokenEqInQuery:
		return "="
	default:
		return ""
	}
}

// token is a tagged union: a literal text chunk, an embedded value reference
// or a payload-free structural marker.
type token struct {
	kind tokenKind
	text string    // literal text, meaningful for tokenLiteral only
	val  *embedded // embedded value, meaningful for tokenValue only
}

func lit(text string) token { return token{kind: tokenLiteral, text: text} }

func mark(k tokenKind) token { return token{kind: k} }

func val(e *embedded) token { return token{kind: tokenValue, val: e} }

func (t token) is(k tokenKind) bool { return t.kind == k }

func (t token) isEmptyLiteral() bool { return t.kind == tokenLiteral && t.text == "" }

func (t token) String() string {
	switch t.kind {
	case tokenLiteral:
		return strconv.Quote(t.text)
	case tokenValue:
		return "value(" + strconv.Quote(t.val.render()) + ")"
	default:
		return t.kind.String()
	}
}
