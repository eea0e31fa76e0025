package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// DefaultProxyHeaders lists headers set by common reverse proxies, in lookup order.
var DefaultProxyHeaders = []string{
	"CF-Connecting-IP",
	"X-Forwarded-For",
	"X-Real-IP",
}

// Resolver determines the client address of a request.
type Resolver struct {
	headers []string
}

// New creates a Resolver. Without headers only RemoteAddr is consulted,
// which is the right choice when the server is not behind a proxy.
func New(trustedHeaders ...string) *Resolver {
	return &Resolver{headers: trustedHeaders}
}

// Resolve returns the normalized client IP, or an empty string when none
// of the sources holds a valid address.
func (res *Resolver) Resolve(r *http.Request) string {
	for _, h := range res.headers {
		v := r.Header.Get(h)
		if v == "" {
			continue
		}
		// X-Forwarded-For may list several hops; the first valid one is the client.
		for part := range strings.SplitSeq(v, ",") {
			if ip := parseIP(part); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
