// Package logger builds the service's *slog.Logger and keeps attribute names
// consistent across packages.
//
// New creates a logger from functional options: output format (text or json),
// minimum level, default attributes, and ContextExtractor callbacks that pull
// request-scoped values (such as the request id) out of context.Context on
// every record.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, "statetools"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
//	log.InfoContext(ctx, "session created",
//		logger.Component("session_store"),
//		logger.SessionID(sess.ID),
//	)
//
// Libraries in this module accept a *slog.Logger through options and fall back
// to Discard when none is given.
package logger
