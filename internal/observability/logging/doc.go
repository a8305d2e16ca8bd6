// Package logging provides structured logging helpers on top of log/slog.
//
// Loggers are built once at startup from the LOG_LEVEL and LOG_FORMAT settings
// and installed with slog.SetDefault. Request-scoped loggers carry the
// request_id assigned by the requestid middleware.
//
// Example usage:
//
//	logger := logging.NewLogger(logging.Options{Level: slog.LevelInfo})
//	slog.SetDefault(logger)
//
//	func handle(ctx context.Context) {
//	    logging.WithRequestID(ctx, slog.Default()).Info("processing request")
//	}
package logging
