package http

import (
	"reflect"
	"testing"
)

func TestHeaders_GetValues(t *testing.T) {
	h := Headers{
		{Key: "Host", Value: "example.com"},
		{Key: "Accept", Value: "text/html"},
		{Key: "accept", Value: "application/json"},
	}

	if got := h.Get("HOST"); got != "example.com" {
		t.Errorf("Get(HOST) = %q, want example.com", got)
	}
	if got := h.Get("missing"); got != "" {
		t.Errorf("Get(missing) = %q, want empty", got)
	}
	want := []string{"text/html", "application/json"}
	if got := h.Values("Accept"); !reflect.DeepEqual(got, want) {
		t.Errorf("Values(Accept) = %v, want %v", got, want)
	}
	if !h.Has("accept") || h.Has("X-Nope") {
		t.Error("Has() gave wrong answers")
	}
}

func TestHeaders_AddPreservesDuplicates(t *testing.T) {
	var h Headers
	h.Add("Set-Cookie", "a=1")
	h.Add("Set-Cookie", "b=2")

	if len(h) != 2 {
		t.Fatalf("len = %d, want 2", len(h))
	}
	if got := h.Values("set-cookie"); len(got) != 2 {
		t.Errorf("Values = %v, want both cookies", got)
	}
}

func TestHeaders_SetReplacesAllDuplicates(t *testing.T) {
	h := Headers{
		{Key: "Accept", Value: "a"},
		{Key: "Host", Value: "example.com"},
		{Key: "accept", Value: "b"},
	}
	h.Set("ACCEPT", "c")

	if got := h.Values("accept"); !reflect.DeepEqual(got, []string{"c"}) {
		t.Errorf("Values(accept) = %v, want [c]", got)
	}
	if got := h.Get("Host"); got != "example.com" {
		t.Errorf("unrelated field disturbed: %q", got)
	}
}

func TestHeaders_Del(t *testing.T) {
	h := Headers{
		{Key: "A", Value: "1"},
		{Key: "b", Value: "2"},
		{Key: "a", Value: "3"},
	}
	h.Del("A")
	if len(h) != 1 || h[0].Key != "b" {
		t.Errorf("Del left %v", h)
	}
}

func TestHeaders_Clone(t *testing.T) {
	h := Headers{{Key: "A", Value: "1"}}
	c := h.Clone()
	c[0].Value = "2"
	if h[0].Value != "1" {
		t.Error("Clone aliases the original")
	}
	if Headers(nil).Clone() != nil {
		t.Error("Clone(nil) should be nil")
	}
}

func TestVersion(t *testing.T) {
	tests := []struct {
		literal   string
		version   Version
		supported bool
	}{
		{"HTTP/0.9", VersionHTTP09, false},
		{"HTTP/1.0", VersionHTTP10, true},
		{"HTTP/1.1", VersionHTTP11, true},
		{"HTTP/2.0", VersionHTTP20, false},
	}
	for _, tt := range tests {
		v, ok := ParseVersion(tt.literal)
		if !ok || v != tt.version {
			t.Errorf("ParseVersion(%q) = (%v, %v)", tt.literal, v, ok)
		}
		if v.String() != tt.literal {
			t.Errorf("String() = %q, want %q", v.String(), tt.literal)
		}
		if v.Supported() != tt.supported {
			t.Errorf("%s Supported() = %v", tt.literal, v.Supported())
		}
	}

	for _, bad := range []string{"HTTP/1.2", "http/1.1", "HTTP/11", "", "HTTP/1.1 "} {
		if _, ok := ParseVersion(bad); ok {
			t.Errorf("ParseVersion(%q) accepted", bad)
		}
	}
}

func TestInternMethod(t *testing.T) {
	if m := internMethod([]byte("GET")); m != MethodGet {
		t.Errorf("internMethod(GET) = %q", m)
	}
	if m := internMethod([]byte("PURGE")); m != Method("PURGE") {
		t.Errorf("internMethod(PURGE) = %q", m)
	}
}

func TestInternHeaderName(t *testing.T) {
	if s := internHeaderName([]byte("Content-Type")); s != "Content-Type" {
		t.Errorf("internHeaderName = %q", s)
	}
	if s := internHeaderName([]byte("X-Custom")); s != "X-Custom" {
		t.Errorf("internHeaderName = %q", s)
	}
}
