// Package requestid attaches a correlation id to every HTTP request.
//
// The middleware reuses a well-formed X-Request-ID header or generates a
// UUIDv4, stores it in the request context and echoes it back. The logger
// extractor copies it into every record logged with that context:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
//	r.Use(requestid.Middleware)
package requestid
