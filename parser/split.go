package parser

import (
	"github.com/ghettovoice/uritmpl/internal/grammar"
	"github.com/ghettovoice/uritmpl/internal/util"
)

func indexOfKind(ts []token, k tokenKind) int {
	for i, t := range ts {
		if t.is(k) {
			return i
		}
	}
	return -1
}

func countKind(ts []token, k tokenKind) int {
	var n int
	for _, t := range ts {
		if t.is(k) {
			n++
		}
	}
	return n
}

// splitFirst splits ts at the first token of the given kind. The separator
// itself belongs to neither part.
func splitFirst(ts []token, k tokenKind) (before, after []token, found bool) {
	i := indexOfKind(ts, k)
	if i < 0 {
		return ts, nil, false
	}
	return ts[:i], ts[i+1:], true
}

// splitAll splits ts into groups on every token of the given kind. The result
// always has at least one group; empty groups are kept.
func splitAll(ts []token, k tokenKind) [][]token {
	groups := make([][]token, 0, countKind(ts, k)+1)
	start := 0
	for i, t := range ts {
		if t.is(k) {
			groups = append(groups, ts[start:i])
			start = i + 1
		}
	}
	return append(groups, ts[start:])
}

// hasValueToken reports whether any token in ts is an embedded value.
func hasValueToken(ts []token) bool {
	return indexOfKind(ts, tokenValue) >= 0
}

// spanAbsent reports whether ts consists solely of absent embedded values.
// Such a span removes its surrounding optional component instead of
// contributing empty text.
func spanAbsent(ts []token) bool {
	if len(ts) == 0 {
		return false
	}
	for _, t := range ts {
		if !t.is(tokenValue) || t.val.shape != shapeAbsent {
			return false
		}
	}
	return true
}

// decodeConcat renders a token span to text: literal text is percent-decoded
// exactly once, embedded-value text is taken verbatim, separator markers
// decode back to their source character and other markers contribute nothing.
// plusAsSpace additionally decodes "+" to a space in literal text, which is a
// query-only convention.
func decodeConcat(ts []token, plusAsSpace bool) string {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for _, t := range ts {
		switch t.kind {
		case tokenLiteral:
			sb.WriteString(grammar.Unescape(t.text, plusAsSpace))
		case tokenValue:
			sb.WriteString(t.val.render())
		default:
			sb.WriteString(t.kind.sepChar())
		}
	}
	return sb.String()
}
