package http

import (
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// TargetForm identifies which request-target form a target was parsed as
// (RFC 9112 §3.2).
type TargetForm int

const (
	TargetOrigin    TargetForm = iota // "/path?query"
	TargetAbsolute                    // "scheme://host/path?query"
	TargetAuthority                   // "host:port", CONNECT only
	TargetAsterisk                    // "*", OPTIONS only
)

// Target is a syntactically validated request-target.
type Target struct {
	Raw  string     // exact bytes from the request line
	Form TargetForm // which grammar form matched
	URL  *url.URL   // parsed form; nil for asterisk-form
}

// String returns the wire representation of the target.
func (t Target) String() string { return t.Raw }

// ParseTarget validates s as a request-target in origin-form, absolute-form,
// authority-form, or asterisk-form. The target must be non-empty and contain
// no whitespace or control octets. Absolute-form hosts with non-ASCII labels
// are normalized to punycode.
func ParseTarget(s string) (Target, error) {
	if s == "" {
		return Target{}, fmt.Errorf("empty request-target")
	}
	for i := 0; i < len(s); i++ {
		if b := s[i]; b <= 0x20 || b == 0x7F {
			return Target{}, fmt.Errorf("illegal octet %#x in request-target", b)
		}
	}

	if s == "*" {
		return Target{Raw: s, Form: TargetAsterisk}, nil
	}

	if s[0] == '/' {
		u, err := url.ParseRequestURI(s)
		if err != nil {
			return Target{}, fmt.Errorf("malformed origin-form target: %w", err)
		}
		return Target{Raw: s, Form: TargetOrigin, URL: u}, nil
	}

	if strings.Contains(s, "://") {
		u, err := url.Parse(s)
		if err != nil {
			return Target{}, fmt.Errorf("malformed absolute-form target: %w", err)
		}
		if u.Scheme == "" || u.Host == "" {
			return Target{}, fmt.Errorf("absolute-form target missing scheme or host")
		}
		host, err := idnaASCII(u.Hostname())
		if err != nil {
			return Target{}, fmt.Errorf("invalid host in target: %w", err)
		}
		if port := u.Port(); port != "" {
			u.Host = host + ":" + port
		} else {
			u.Host = host
		}
		return Target{Raw: s, Form: TargetAbsolute, URL: u}, nil
	}

	// Authority-form: host[:port] with no userinfo, path, or query.
	if strings.ContainsAny(s, "@/?#") {
		return Target{}, fmt.Errorf("malformed authority-form target %q", s)
	}
	hostEnd := strings.LastIndexByte(s, ']') // IPv6 literals carry colons inside brackets
	if i := strings.LastIndexByte(s, ':'); i > hostEnd {
		if i == 0 || i == len(s)-1 {
			return Target{}, fmt.Errorf("malformed authority-form target %q", s)
		}
		for _, b := range []byte(s[i+1:]) {
			if b < '0' || b > '9' {
				return Target{}, fmt.Errorf("malformed port in target %q", s)
			}
		}
	}
	return Target{Raw: s, Form: TargetAuthority, URL: &url.URL{Host: s}}, nil
}

// idnaASCII converts a host with non-ASCII labels to punycode. ASCII hosts
// pass through untouched, keeping the common case allocation-free.
func idnaASCII(v string) (string, error) {
	ascii := true
	for i := 0; i < len(v); i++ {
		if v[i] >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return v, nil
	}
	return idna.Lookup.ToASCII(v)
}
