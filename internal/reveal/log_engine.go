package reveal

import "log/slog"

// LogEngine is an Engine for hosts without animation support; it only logs.
type LogEngine struct {
	logger *slog.Logger
}

// NewLogEngine creates a LogEngine. A nil logger uses slog.Default().
func NewLogEngine(logger *slog.Logger) *LogEngine {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogEngine{logger: logger}
}

func (e *LogEngine) Reveal(selector string, opts Options) {
	e.logger.Debug("reveal registered",
		"selector", selector,
		"origin", string(opts.Origin),
		"delay_ms", opts.Delay.Milliseconds(),
		"duration_ms", opts.Duration.Milliseconds(),
		"distance", opts.Distance,
	)
}

func (e *LogEngine) Clean(selector string) {
	e.logger.Debug("reveal cleaned", "selector", selector)
}
