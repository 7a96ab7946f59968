// Package grammar provides the percent codec and character classification
// tables shared by the URI value and the template parser.
package grammar

import "github.com/ghettovoice/uritmpl/internal/constraints"

// CharSet is an immutable O(1) membership table over a byte alphabet.
// The table is dense: it is indexed by the offset from the smallest byte
// present in the alphabet. Sets are built once at process start and never
// mutated afterwards, so lookups are safe for concurrent use.
type CharSet struct {
	min     byte
	members []bool
}

// NewCharSet builds a CharSet from the fixed alphabet.
func NewCharSet(alphabet string) *CharSet {
	cs := &CharSet{}
	if len(alphabet) == 0 {
		return cs
	}

	minc, maxc := alphabet[0], alphabet[0]
	for i := 1; i < len(alphabet); i++ {
		if alphabet[i] < minc {
			minc = alphabet[i]
		}
		if alphabet[i] > maxc {
			maxc = alphabet[i]
		}
	}
	cs.min = minc
	cs.members = make([]bool, int(maxc)-int(minc)+1)
	for i := 0; i < len(alphabet); i++ {
		cs.members[alphabet[i]-minc] = true
	}
	return cs
}

// Contains reports whether c belongs to the set.
func (cs *CharSet) Contains(c byte) bool {
	if c < cs.min || int(c-cs.min) >= len(cs.members) {
		return false
	}
	return cs.members[c-cs.min]
}

// IndexIn returns the index of the first byte of s belonging to the set, or -1.
func (cs *CharSet) IndexIn(s string) int {
	for i := 0; i < len(s); i++ {
		if cs.Contains(s[i]) {
			return i
		}
	}
	return -1
}

// IsAlphaChar checks the ALPHA rule.
func IsAlphaChar(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// IsDigitChar checks the DIGIT rule.
func IsDigitChar(c byte) bool { return '0' <= c && c <= '9' }

// IsAlphanumChar checks the alphanum rule.
func IsAlphanumChar(c byte) bool { return IsAlphaChar(c) || IsDigitChar(c) }

var schemeChars = NewCharSet("+-.")

// IsSchemeChar checks a non-leading scheme character.
func IsSchemeChar(c byte) bool { return IsAlphanumChar(c) || schemeChars.Contains(c) }

// IsScheme checks whether s matches the scheme shape ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func IsScheme[T constraints.Byteseq](s T) bool {
	if len(s) == 0 || !IsAlphaChar(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !IsSchemeChar(s[i]) {
			return false
		}
	}
	return true
}

// SchemePrefixLen returns the length of the longest prefix of s matching the
// scheme shape, or 0 when s does not start with an ALPHA char.
func SchemePrefixLen(s string) int {
	if len(s) == 0 || !IsAlphaChar(s[0]) {
		return 0
	}
	i := 1
	for i < len(s) && IsSchemeChar(s[i]) {
		i++
	}
	return i
}

// hostForbiddenChars are bytes that cannot appear in a host component.
// Validation is deliberately partial: anything else is accepted.
var hostForbiddenChars = NewCharSet("/?#@ \t\r\n")

// IsHost checks whether s is acceptable as a host. An empty host is accepted.
func IsHost[T constraints.Byteseq](s T) bool {
	for i := 0; i < len(s); i++ {
		if hostForbiddenChars.Contains(s[i]) {
			return false
		}
	}
	return true
}

var (
	unreservedChars   = NewCharSet("-._~")
	subDelimChars     = NewCharSet("!$&'()*+,;=")
	userExtraChars    = NewCharSet(":")
	pathExtraChars    = NewCharSet(":@")
	queryKeptChars    = NewCharSet("-._~!$'()*,;:@/?")
	fragmentKeptChars = NewCharSet("/?:@")
)

// IsCharUnreserved checks on the unreserved rule.
func IsCharUnreserved(c byte) bool {
	return IsAlphanumChar(c) || unreservedChars.Contains(c)
}

// IsUserChar checks a userinfo character that may stay unescaped.
// The ":" separator is escaped within the username but kept in the password.
func IsUserChar(c byte) bool {
	return IsCharUnreserved(c) || subDelimChars.Contains(c)
}

// IsPasswdChar checks a password character that may stay unescaped.
func IsPasswdChar(c byte) bool {
	return IsUserChar(c) || userExtraChars.Contains(c)
}

// IsPathChar checks a path segment character that may stay unescaped.
func IsPathChar(c byte) bool {
	return IsCharUnreserved(c) || subDelimChars.Contains(c) || pathExtraChars.Contains(c)
}

// IsQueryChar checks a query key or value character that may stay unescaped.
// The "&", "=" and "+" chars are always escaped so that the query section
// round-trips through the plus-as-space decoding rule.
func IsQueryChar(c byte) bool {
	return IsAlphanumChar(c) || queryKeptChars.Contains(c)
}

// IsFragmentChar checks a fragment character that may stay unescaped.
func IsFragmentChar(c byte) bool {
	return IsCharUnreserved(c) || subDelimChars.Contains(c) || fragmentKeptChars.Contains(c)
}
