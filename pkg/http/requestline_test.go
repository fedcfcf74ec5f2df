package http

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseRequestLine(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		method  Method
		target  string
		form    TargetForm
		version Version
	}{
		{"origin form", "GET /api/users?q=foo HTTP/1.1", MethodGet, "/api/users?q=foo", TargetOrigin, VersionHTTP11},
		{"root", "GET / HTTP/1.0", MethodGet, "/", TargetOrigin, VersionHTTP10},
		{"absolute form", "POST http://example.com/bar HTTP/1.1", MethodPost, "http://example.com/bar", TargetAbsolute, VersionHTTP11},
		{"asterisk form", "OPTIONS * HTTP/1.1", MethodOptions, "*", TargetAsterisk, VersionHTTP11},
		{"authority form", "CONNECT example.com:443 HTTP/1.1", MethodConnect, "example.com:443", TargetAuthority, VersionHTTP11},
		{"unregistered method", "PURGE /cache HTTP/1.1", Method("PURGE"), "/cache", TargetOrigin, VersionHTTP11},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rl, err := ParseRequestLine([]byte(tt.in))
			if err != nil {
				t.Fatalf("ParseRequestLine(%q) error = %v", tt.in, err)
			}
			if rl.Method != tt.method {
				t.Errorf("Method = %q, want %q", rl.Method, tt.method)
			}
			if rl.Target.Raw != tt.target {
				t.Errorf("Target = %q, want %q", rl.Target.Raw, tt.target)
			}
			if rl.Target.Form != tt.form {
				t.Errorf("Form = %v, want %v", rl.Target.Form, tt.form)
			}
			if rl.Version != tt.version {
				t.Errorf("Version = %v, want %v", rl.Version, tt.version)
			}
		})
	}
}

func TestParseRequestLine_RecognizedUnsupported(t *testing.T) {
	for _, in := range []string{"GET / HTTP/0.9", "GET / HTTP/2.0"} {
		rl, err := ParseRequestLine([]byte(in))
		if err != nil {
			t.Fatalf("ParseRequestLine(%q) error = %v", in, err)
		}
		if rl.Version.Supported() {
			t.Errorf("%q: Supported() = true, want false", in)
		}
	}
}

func TestParseRequestLine_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind RequestLineErrorKind
	}{
		{"no spaces", "GETHTTP/1.1", RequestLineMalformed},
		{"one space", "GET /api", RequestLineMalformed},
		{"double space after method", "GET  /api HTTP/1.1", RequestLineMalformed},
		{"double space before version", "GET /api  HTTP/1.1", RequestLineMalformed},
		{"trailing space", "GET /api HTTP/1.1 ", RequestLineMalformed},
		{"extra token", "GET /api HTTP/1.1 extra", RequestLineMalformed},
		{"leading space", " GET /api HTTP/1.1", RequestLineMalformed},
		{"empty line", "", RequestLineMalformed},
		{"method not a token", "GE{T /api HTTP/1.1", InvalidMethod},
		{"tab in target", "GET /a\tb HTTP/1.1", InvalidTarget},
		{"unknown literal", "GET /api HTTP/1.2", UnrecognizedVersion},
		{"lowercase version", "GET /api http/1.1", UnrecognizedVersion},
		{"missing minor", "GET /api HTTP/1", UnrecognizedVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRequestLine([]byte(tt.in))
			if err == nil {
				t.Fatalf("ParseRequestLine(%q) = nil error, want %v", tt.in, tt.kind)
			}
			var rle *RequestLineError
			if !errors.As(err, &rle) {
				t.Fatalf("error type = %T, want *RequestLineError", err)
			}
			if rle.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v (err: %v)", rle.Kind, tt.kind, err)
			}
		})
	}
}

func TestParseRequestLine_Idempotent(t *testing.T) {
	line := []byte("POST http://foo.example.com/bar?qux=19 HTTP/1.1")
	a, err := ParseRequestLine(line)
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseRequestLine(line)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("re-parse diverged:\n%+v\n%+v", a, b)
	}
}

func TestParseTarget_AbsoluteIDNA(t *testing.T) {
	target, err := ParseTarget("http://bücher.example/shelf")
	if err != nil {
		t.Fatalf("ParseTarget() error = %v", err)
	}
	if got := target.URL.Host; got != "xn--bcher-kva.example" {
		t.Errorf("Host = %q, want punycode form", got)
	}
}

func TestParseTarget_Errors(t *testing.T) {
	for _, in := range []string{"", "with space", "a\tb", "user@host:80", "host:port"} {
		if _, err := ParseTarget(in); err == nil {
			t.Errorf("ParseTarget(%q) = nil error, want reject", in)
		}
	}
}
