package signer

import (
	"net/url"
	"strings"
)

// GetURIPath returns the canonical URI of u: its escaped path, or "/" when
// the path is empty. Every API action is posted to "/".
func GetURIPath(u *url.URL) string {
	if u == nil {
		return "/"
	}

	var uriPath string
	if len(u.Opaque) > 0 {
		opaque := u.Opaque
		if idx := strings.Index(opaque, "?"); idx >= 0 {
			opaque = opaque[:idx]
		}
		opaque = strings.TrimPrefix(opaque, "//")
		if idx := strings.Index(opaque, "/"); idx >= 0 {
			uriPath = opaque[idx:]
		}
	} else {
		uriPath = u.EscapedPath()
	}

	if uriPath == "" {
		return "/"
	}
	return uriPath
}
