// Package log provides the structured logger used by pcbuild.
//
// Loggers are configured once and specialised through immutable clones:
//
//	logger := log.NewWithConfig(log.Config{
//		Level:  log.LevelDebug,
//		Format: log.FormatText,
//		Name:   "pcbuild",
//	})
//	buildLog := logger.WithField("build_id", id)
//	buildLog.Debug("part added", log.Fields{"category": "ram"})
//
// Two formats exist: FormatJSON writes one object per line and FormatText a
// compact human readable line. Both write fields in a stable order.
//
// LogError maps the severity of a foundation error to a level, so bad user
// input surfaces at info while wiring mistakes surface at error.
package log
