package uritmpl

import "github.com/ghettovoice/uritmpl/parser"

// Parse failure sentinels, matchable with errors.Is.
const (
	ErrEmptyInput         = parser.ErrEmptyInput
	ErrInvalidHost        = parser.ErrInvalidHost
	ErrMultiplePorts      = parser.ErrMultiplePorts
	ErrStructuralLeftover = parser.ErrStructuralLeftover
)
