package parser

import "github.com/ghettovoice/uritmpl/internal/errorutil"

const (
	// ErrEmptyInput is returned when the whole template renders to no content at all.
	ErrEmptyInput errorutil.Error = "empty input"
	// ErrInvalidHost is returned when the host begins with a bare "."
	// following an empty host placeholder.
	ErrInvalidHost errorutil.Error = "invalid host"
	// ErrMultiplePorts is returned when more than one ":" separator survives
	// in a single host/port span.
	ErrMultiplePorts errorutil.Error = "multiple ports"
	// ErrStructuralLeftover is returned when tokens remain unconsumed after
	// the last builder stage.
	ErrStructuralLeftover errorutil.Error = "superfluous tokens"
)
