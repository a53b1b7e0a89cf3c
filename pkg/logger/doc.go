// Package logger builds *slog.Logger instances for the servicemail binaries.
//
// New applies functional options on top of production defaults (JSON, info
// level, stdout) and wraps the resulting handler in a LogHandlerDecorator that
// pulls request-scoped attributes, such as the request ID, out of the context
// on every record:
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Parse(cfg.AppEnv), cfg.ServiceName),
//	    logger.WithLevelString(cfg.LogLevel),
//	    logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "message composed", logger.Template("unit-return"))
//
// The attribute helpers (Error, RequestID, Component, Template, Field) keep
// key names consistent across packages. Helpers taking optional values return
// an empty slog.Attr for nil input, which slog drops.
package logger
