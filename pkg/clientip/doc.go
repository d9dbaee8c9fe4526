// Package clientip resolves the originating client address of an HTTP
// request.
//
// GetIP checks CF-Connecting-IP, then the first valid entry of
// X-Forwarded-For, then X-Real-IP, and finally the TCP peer in RemoteAddr.
// The port is always stripped and the result is the canonical form of a
// parsed IP, so one client maps to one string however many connections it
// opens. Invalid header values are skipped. An empty string means no valid
// address was found.
//
// Middleware resolves the address once and stores it in the request
// context for FromContext:
//
//	r.Use(clientip.Middleware)
//	key := "ip:" + clientip.FromContext(r.Context())
package clientip
