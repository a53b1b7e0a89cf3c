package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Header names consulted by FromRequest, highest priority first.
const (
	HeaderCFConnectingIP = "CF-Connecting-IP"
	HeaderXForwardedFor  = "X-Forwarded-For"
	HeaderXRealIP        = "X-Real-IP"
)

// FromRequest returns the normalized client IP, or "" when no source holds
// a valid address.
func FromRequest(r *http.Request) string {
	if ip := normalize(r.Header.Get(HeaderCFConnectingIP)); ip != "" {
		return ip
	}
	for part := range strings.SplitSeq(r.Header.Get(HeaderXForwardedFor), ",") {
		if ip := normalize(part); ip != "" {
			return ip
		}
	}
	if ip := normalize(r.Header.Get(HeaderXRealIP)); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return normalize(r.RemoteAddr)
	}
	return normalize(host)
}

func normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}
