// Package clientip resolves the originating client address of a request
// served behind reverse proxies.
//
// Headers are checked in order and the first valid IP wins:
// CF-Connecting-IP, X-Forwarded-For (leftmost valid entry), X-Real-IP.
// RemoteAddr is the fallback. Middleware stores the result in the request
// context, and LoggerExtractor adds it to log records as "client_ip".
package clientip
