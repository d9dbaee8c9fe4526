// Package requestid attaches correlation ids to requests and propagates them.
//
// Middleware reuses a valid incoming X-Request-ID header (alphanumerics,
// "-" and "_", at most 128 bytes) or generates a UUIDv7, stores it in the
// request context and echoes it back. Ensure does the same for contexts that
// do not come from HTTP, such as a CLI run.
//
// Transport copies the id from a request context onto outgoing HTTP calls,
// so a remote verification service sees the same id as our logs:
//
//	client := &http.Client{Transport: &requestid.Transport{}}
//
// LoggerExtractor plugs into logger.WithContextExtractors to add a
// request_id attribute to every record logged with that context.
package requestid
