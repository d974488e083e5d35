// Package logger provides structured logging helpers built on log/slog.
//
// New builds a text or JSON logger:
//
//	log := logger.New(
//		logger.WithLevel(slog.LevelDebug),
//		logger.WithAttrs(logger.Component("multipartgen")),
//	)
//
// Attribute helpers return an empty slog.Attr for nil or empty input, so they
// can be passed unconditionally:
//
//	log.Debug("multipart decode failed",
//		logger.Field(decErr.Field),
//		logger.Stage(convErr.Stage),
//		logger.Error(err),
//	)
package logger
