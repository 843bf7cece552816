package httphash

import (
	"net"
	"net/url"
	"strings"
)

// canonicalLocation returns the form of a URL used to decide whether a fetch
// was redirected. Scheme and host are lower-cased, default ports and the
// fragment are dropped and an empty path becomes "/". Path and query are kept
// as-is, so a redirect that only appends a slash still counts.
func canonicalLocation(u *url.URL) string {
	c := *u
	c.Scheme = strings.ToLower(c.Scheme)
	c.Fragment = ""
	c.RawFragment = ""
	if c.Path == "" && c.RawPath == "" {
		c.Path = "/"
	}

	host := strings.ToLower(c.Host)
	if h, port, err := net.SplitHostPort(host); err == nil {
		if (c.Scheme == "http" && port == "80") || (c.Scheme == "https" && port == "443") {
			host = h
			if strings.Contains(h, ":") {
				host = "[" + h + "]"
			}
		}
	}
	c.Host = host

	return c.String()
}

// sameLocation reports whether a and b address the same resource.
func sameLocation(a, b *url.URL) bool {
	return canonicalLocation(a) == canonicalLocation(b)
}
