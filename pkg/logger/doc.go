// Package logger builds configured slog.Logger instances and provides
// attribute helpers shared across the module.
//
// The factory defaults to production-safe settings (JSON to stdout at INFO)
// and is tuned through functional options:
//
//	log := logger.New(
//	    logger.WithDevelopment("authkit"),
//	    logger.WithAttr(slog.String("version", version)),
//	)
//
// Attribute helpers keep field names consistent wherever the module logs:
//
//	log.Error("session save failed", logger.Error(err), logger.UserID(id))
package logger
