package uritmpl

import (
	"log/slog"

	"github.com/ghettovoice/uritmpl/parser"
)

// Option configures template expansion.
type Option = parser.Option

// WithLogger makes expansion log tokenization and build steps to the given
// logger at debug level.
func WithLogger(logger *slog.Logger) Option { return parser.WithLogger(logger) }
