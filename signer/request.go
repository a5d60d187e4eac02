package signer

import (
	"net"
	"net/http"
	"net/url"
	"strings"
)

// Request is everything the canonicalizer reads from an outbound call.
type Request struct {
	Method string
	URL    *url.URL

	// Host overrides URL.Host when set.
	Host string

	Header http.Header
	Body   []byte

	// PayloadHash, when set, is used instead of hashing Body.
	PayloadHash string
}

func (r Request) payloadHash() string {
	if r.PayloadHash != "" {
		return r.PayloadHash
	}
	return HashPayload(r.Body)
}

// NewRequestFromHTTP captures req together with the exact body bytes that
// will be sent.
func NewRequestFromHTTP(req *http.Request, body []byte) Request {
	return Request{
		Method: req.Method,
		URL:    req.URL,
		Host:   req.Host,
		Header: req.Header,
		Body:   body,
	}
}

// CanonicalHost returns the host the server sees, lowercased, with the
// scheme's default port removed.
func (r Request) CanonicalHost() string {
	host := r.Host
	scheme := ""
	if r.URL != nil {
		scheme = r.URL.Scheme
		if host == "" {
			host = r.URL.Host
		}
	}
	return SanitizeHost(scheme, host)
}

// SanitizeHostForHeader rewrites req.Host to the canonical host, so the
// Host header on the wire is the one that is signed.
func SanitizeHostForHeader(req *http.Request) {
	if host := NewRequestFromHTTP(req, nil).CanonicalHost(); host != "" {
		req.Host = host
	}
}

// SanitizeHost lowercases host and strips a default port for scheme.
func SanitizeHost(scheme, host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	h, port, err := net.SplitHostPort(host)
	if err != nil {
		return host
	}
	if IsDefaultPort(scheme, port) {
		if strings.Contains(h, ":") {
			return "[" + h + "]"
		}
		return h
	}
	return host
}

// IsDefaultPort checks if port is the default for the scheme.
func IsDefaultPort(scheme, port string) bool {
	if port == "" {
		return true
	}
	lowerScheme := strings.ToLower(scheme)
	return (lowerScheme == "http" && port == "80") ||
		(lowerScheme == "https" && port == "443")
}
