package logger

import "go.uber.org/fx"

// Module wires slog logger for dependency injection.
var Module = fx.Options(
	fx.Provide(fromConfig),
	fx.WithLogger(FxEventLogger),
)
