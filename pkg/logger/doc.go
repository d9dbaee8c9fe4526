// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers so keys stay consistent across the code base.
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "emailguess"),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "candidate checked",
//	    logger.Style(style),
//	    logger.Address(addr), // local part masked
//	    logger.Duration(time.Since(start)),
//	)
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result with LogHandlerDecorator, which runs every ContextExtractor when a
// record is handled. Output defaults to stderr.
//
// Config carries the environment variables (APP_ENV, LOG_LEVEL, LOG_FORMAT)
// and converts them to options.
//
// Error returns an empty attribute for a nil error, so
//
//	log.Info("done", logger.Error(err))
//
// needs no nil check.
package logger
