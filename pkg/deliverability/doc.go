// Package deliverability provides emailguess.Checker strategies and
// decorators.
//
// Strategies:
//
//   - Syntax accepts well-formed addresses without any network access.
//   - MX accepts addresses whose domain publishes MX records (or A/AAAA
//     with implicit MX enabled).
//   - API asks a remote verification service, retrying 429 and 5xx
//     responses with exponential backoff.
//
// Decorators wrap any Checker:
//
//	var c emailguess.Checker = deliverability.NewMX()
//	c = deliverability.WithTimeout(c, 3*time.Second)
//	c = deliverability.Throttle(c, bucket)
//	c = deliverability.Cached(c, deliverability.NewLRUStore(10_000), time.Hour, log)
//	c = deliverability.Instrument(c, "mx", metrics)
//
// Inconclusive answers (timeouts, rate limits, transport failures) are
// errors wrapping emailguess.ErrCheckUnavailable; Fallback switches to a
// second checker on those, and the Finder's UnavailablePolicy decides what
// they mean otherwise.
package deliverability
