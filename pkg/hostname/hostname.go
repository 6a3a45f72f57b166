// Package hostname extracts canonical host names from URLs and feed entries.
// All functions are pure and never fail: malformed input is returned as-is so
// callers can keep treating it as an opaque domain.
package hostname

import (
	"net"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"
)

const wwwPrefix = "www."

// Normalize returns the host of rawURL lowercased, converted to its ASCII
// (punycode) form and stripped of one leading "www." label. When rawURL
// cannot be parsed or has no host, it is returned unchanged.
func Normalize(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	host := u.Hostname()
	if host == "" {
		return rawURL
	}

	host = strings.TrimSuffix(strings.ToLower(host), ".")
	if ascii, err := idna.Lookup.ToASCII(host); err == nil && ascii != "" {
		host = ascii
	}

	return strings.TrimPrefix(host, wwwPrefix)
}

// Canonical accepts either a URL or a bare domain (as found in feeds, reports
// and allowlists) and returns its normalized host.
func Canonical(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}

	host := Normalize(s)
	if strings.Contains(host, "://") {
		// unparsable input, strip the scheme we added ourselves
		return strings.ToLower(strings.TrimPrefix(host, "http://"))
	}

	return host
}

// Registrable returns the registrable domain (eTLD+1) of domain. IP literals
// and names that are themselves a public suffix are returned unchanged.
func Registrable(domain string) string {
	if net.ParseIP(domain) != nil {
		return domain
	}

	registrable, err := publicsuffix.EffectiveTLDPlusOne(domain)
	if err != nil {
		return domain
	}

	return registrable
}

// Parents returns domain followed by each parent domain down to and
// including its registrable domain.
func Parents(domain string) []string {
	registrable := Registrable(domain)
	out := []string{domain}
	for d := domain; d != registrable; {
		idx := strings.IndexByte(d, '.')
		if idx < 0 {
			break
		}
		d = d[idx+1:]
		out = append(out, d)
	}

	return out
}

// IsSubdomain reports whether domain is a strict subdomain of parent.
func IsSubdomain(domain, parent string) bool {
	return len(domain) > len(parent) && strings.HasSuffix(domain, "."+parent)
}
