package blacklist

import (
	"bufio"
	"io"
	"net"
	"phishguard/pkg/hostname"
	"phishguard/pkg/serrors"
	"strings"
)

// maxLineBytes bounds a single feed line; phishing URLs can be long.
const maxLineBytes = 64 * 1024

// ParseResult is the outcome of parsing a feed.
type ParseResult struct {
	// Domains are the distinct normalized domains in feed order.
	Domains []string
	// Skipped counts non-blank lines that did not yield a domain.
	Skipped int
}

// Parse reads a newline-delimited feed of domains or URLs. Blank lines and
// lines starting with # are dropped. A feed that has content but yields no
// domain at all (an HTML error page, for instance) is an ErrParse.
func Parse(r io.Reader) (ParseResult, error) {
	var res ParseResult
	seen := make(domainSet)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		d := hostname.Canonical(line)
		if !validDomain(d) {
			res.Skipped++

			continue
		}
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		res.Domains = append(res.Domains, d)
	}
	if err := scanner.Err(); err != nil {
		return res, serrors.Wrap(serrors.ErrParse, err, "could not read feed")
	}
	if len(res.Domains) == 0 && res.Skipped > 0 {
		return res, serrors.With(serrors.ErrParse, "feed has %d lines but no valid domain", res.Skipped)
	}

	return res, nil
}

// validDomain accepts IP literals and dotted host names made of LDH labels.
func validDomain(d string) bool {
	if d == "" || len(d) > 253 {
		return false
	}
	if net.ParseIP(d) != nil {
		return true
	}
	if !strings.Contains(d, ".") {
		return false
	}
	for _, label := range strings.Split(d, ".") {
		if label == "" || len(label) > 63 {
			return false
		}
		for _, c := range label {
			switch {
			case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '-', c == '_':
			default:
				return false
			}
		}
	}

	return true
}
