package parser

import (
	"context"
	"log/slog"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/uritmpl/internal/errorutil"
	"github.com/ghettovoice/uritmpl/internal/log"
	"github.com/ghettovoice/uritmpl/uri"
)

// Parse assembles a URI reference from interleaved literal segments and
// embedded values: segments[0], values[0], segments[1], ..., values[n-1],
// segments[n]. There must be exactly one more segment than values.
//
// Literal text is percent-decoded exactly once on its way into URI
// components; embedded-value text is taken verbatim and escaped on
// rendering, so a value can never inject URI structure.
func Parse(segments []string, values []any, opts ...Option) (*uri.URI, error) {
	o := newOptions(opts...)
	if len(segments) != len(values)+1 {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError(
			"want %d values for %d segments, got %d", len(segments)-1, len(segments), len(values)))
	}

	embs := make([]*embedded, len(values))
	for i, v := range values {
		embs[i] = newEmbedded(v)
	}
	if emptyInput(segments, embs) {
		return nil, errtrace.Wrap(errorutil.NewWrapperError(ErrEmptyInput, "nothing to parse"))
	}

	toks := normalize(tokenize(segments, embs))
	o.Logger.LogAttrs(context.Background(), slog.LevelDebug, "tokens ready",
		slog.Any("tokens", log.FmtValue(toks, false)))

	u, err := build(toks)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	o.Logger.LogAttrs(context.Background(), slog.LevelDebug, "reference built",
		slog.Any("uri", u))
	return u, nil
}

// emptyInput reports whether the whole template renders to no text at all.
func emptyInput(segments []string, embs []*embedded) bool {
	for _, s := range segments {
		if s != "" {
			return false
		}
	}
	for _, e := range embs {
		if e.shape != shapeAbsent && e.render() != "" {
			return false
		}
	}
	return true
}

// tokenize feeds segments and values through the lexer in template order.
// A scalar embedded right after a leading empty segment is spliced, i.e.
// its rendered text is tokenized as if it were literal text, so a prebuilt
// base reference can be composed with literal suffixes. Splicing is skipped
// when the following literal segment itself carries "://", in which case the
// value is plain scheme text.
func tokenize(segments []string, embs []*embedded) []token {
	lx := newLexer()
	justSpliced := false
	for i, seg := range segments {
		segStart := len(lx.toks)
		lx.feed(seg)
		if justSpliced {
			lx.collapseDupSlash(segStart)
			justSpliced = false
		}
		if i >= len(embs) {
			continue
		}
		emb := embs[i]
		rendered := emb.render()
		if i == 0 && seg == "" && emb.shape == shapeScalar &&
			(strings.Contains(rendered, "://") || !strings.Contains(segments[1], "://")) {
			lx.dropTrailingEmptyLiteral()
			if rendered != "" {
				lx.feed(rendered)
				justSpliced = true
			}
			continue
		}
		if lx.st == stateScheme {
			lx.seenValue = true
		}
		lx.emit(val(emb))
	}
	return lx.finish()
}
