// Package requestid assigns every HTTP request an identifier.
//
// Middleware reuses a well-formed X-Request-ID header from the client or
// generates a UUIDv4, echoes it on the response and stores it in the request
// context. FromContext reads it back; LoggerExtractor feeds it to
// logger.WithContextExtractors so every record logged with the request
// context carries request_id.
package requestid
