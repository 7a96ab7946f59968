// Package uritmpl builds structured URI references from templates with
// embedded values.
//
// A template is a literal string with "{}" placeholders, or equivalently an
// ordered list of literal segments interleaved with values. Literal text
// supplies the URI structure and is percent-decoded exactly once; embedded
// values are data, taken verbatim and escaped on rendering, so a value can
// never inject separators or structure into the reference:
//
//	u, err := uritmpl.Expand("https://{}/search?q={}", "example.com", "a b&c")
//	// u.String() == "https://example.com/search?q=a%20b%26c"
//
// Values may be scalars, sequences (expanding into multiple path segments or
// query parameters), maps and query types (expanding into key-value
// parameters) or nil (vanishing from the reference together with the
// separators around them).
package uritmpl
