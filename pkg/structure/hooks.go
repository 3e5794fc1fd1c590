package structure

import (
	"log/slog"

	"github.com/dmitrymomot/fieldkit/pkg/logger"
)

// LogDefinitions returns a hook that logs each type as it is created.
func LogDefinitions(log *slog.Logger) DefineHook {
	return func(d Definition) {
		log.Info("creating type",
			logger.Type(d.Name),
			slog.Any("bases", d.Bases),
			slog.Any("attributes", d.Fields),
		)
	}
}
