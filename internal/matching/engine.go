package matching

import "log"

// Engine evaluates pairwise roommate compatibility against a static
// configuration. Safe for concurrent use; it carries no mutable state.
type Engine struct {
	cfg    Config
	logger *log.Logger
}

// NewEngine builds an engine from configuration. The logger records skipped
// malformed records and may be nil.
func NewEngine(cfg Config, logger *log.Logger) *Engine {
	return &Engine{cfg: cfg, logger: logger}
}

func (e *Engine) logf(format string, args ...any) {
	if e.logger != nil {
		e.logger.Printf(format, args...)
	}
}
