package app

import (
	"net/url"
	"strings"
)

// originHost strips the scheme from an origin and returns its host[:port].
// Origins that fail to parse are matched verbatim.
func originHost(origin string) string {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return strings.TrimSuffix(origin, "/")
	}
	return u.Host
}

// originMatches reports whether host is covered by pattern. A "*." prefix
// allows any subdomain and a ":*" suffix allows any port on a fixed host.
func originMatches(pattern, host string) bool {
	switch {
	case pattern == host:
		return true
	case strings.HasPrefix(pattern, "*."):
		return strings.HasSuffix(host, pattern[1:])
	case strings.HasSuffix(pattern, ":*"):
		return strings.HasPrefix(host, strings.TrimSuffix(pattern, "*"))
	default:
		return false
	}
}
