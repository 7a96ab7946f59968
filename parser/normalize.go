package parser

import "slices"

// normalize applies the two post-lexing passes: empty literals adjacent to
// embedded values are noise from segment boundaries and are removed, then a
// path start marker is guaranteed so the path builder always has an anchor.
func normalize(toks []token) []token {
	return insertPathStart(removeEmptyAroundValues(toks))
}

// removeEmptyAroundValues drops every empty literal that directly precedes
// or follows an embedded value token.
func removeEmptyAroundValues(toks []token) []token {
	out := make([]token, 0, len(toks))
	for i, t := range toks {
		if t.isEmptyLiteral() {
			if i > 0 && toks[i-1].is(tokenValue) {
				continue
			}
			if i+1 < len(toks) && toks[i+1].is(tokenValue) {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// insertPathStart inserts a path start marker right after the authority end,
// or after the scheme end when there is no authority, or at the very front of
// a bare relative reference, unless a path, query or fragment marker is
// already there.
func insertPathStart(toks []token) []token {
	pos := 0
	if i := indexOfKind(toks, tokenAuthorityEnd); i >= 0 {
		pos = i + 1
	} else if i := indexOfKind(toks, tokenSchemeEnd); i >= 0 {
		pos = i + 1
	}
	if pos < len(toks) {
		switch toks[pos].kind {
		case tokenPathStart, tokenQueryStart, tokenFragmentStart:
			return toks
		}
	}
	return slices.Insert(toks, pos, mark(tokenPathStart))
}
