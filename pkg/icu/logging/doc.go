// Package logging provides a minimal logging facade for the ICU wrapper.
//
// This package defines a Logger interface that wraps a subset of the standard
// library's log/slog functionality. The interface is intentionally small to
// allow applications to provide custom implementations for testing or
// integration with existing logging systems.
//
// The default implementation binds to slog:
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	customLogger := logging.New(slog.New(handler))
//
// Loggers are accepted by operations with ambient observability, such as the
// data bundle loader:
//
//	logger := logging.New(nil)
//	logger.Info(ctx, "loading ICU data", "path", path)
package logging
