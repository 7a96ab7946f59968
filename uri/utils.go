package uri

import "github.com/ghettovoice/uritmpl/internal/grammar"

// shouldEscapeUserChar reports whether the given username byte needs escaping.
func shouldEscapeUserChar(c byte) bool { return !grammar.IsUserChar(c) }

// shouldEscapePasswdChar reports whether the given password byte needs escaping.
func shouldEscapePasswdChar(c byte) bool { return !grammar.IsPasswdChar(c) }

// shouldEscapePathChar reports whether the given path segment byte needs escaping.
func shouldEscapePathChar(c byte) bool { return !grammar.IsPathChar(c) }

// shouldEscapeQueryChar reports whether the given query key/value byte needs escaping.
func shouldEscapeQueryChar(c byte) bool { return !grammar.IsQueryChar(c) }

// shouldEscapeFragmentChar reports whether the given fragment byte needs escaping.
func shouldEscapeFragmentChar(c byte) bool { return !grammar.IsFragmentChar(c) }
