// Package logger builds *slog.Logger instances with consistent defaults,
// context-driven attributes, and shared attribute constructors.
//
// New applies Option values, selects a text or JSON handler, and wraps it with
// LogHandlerDecorator, which adds attributes pulled from the context (for
// example a request id) on every record.
//
//	log := logger.New(
//	    logger.WithEnvironment("development", "formdemo"),
//	    logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.DebugContext(ctx, "cascade started",
//	    logger.Property("Start"),
//	    logger.Dependents([]string{"End"}),
//	)
//
// Helpers such as Error and FieldID return an empty slog.Attr for empty input,
// which slog drops, so callers need no nil checks.
package logger
