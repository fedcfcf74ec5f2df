package http

import (
	"bytes"
	"testing"
)

// Seed corpora shared by the fuzz targets.

var headerSeeds = [][]byte{
	[]byte("GET / HTTP/1.1\r\nHost: example.com\r\n\r\n"),
	[]byte("POST http://foo.example.com/bar?qux=19&qux=xyz HTTP/1.1\r\nHost: foo.example.com\r\nContent-Type: application/json\r\n\r\n"),
	[]byte("OPTIONS * HTTP/1.1\r\nHost: example.com\r\n\r\n"),
	[]byte("CONNECT example.com:443 HTTP/1.1\r\nHost: example.com\r\n\r\n"),
	[]byte("GET / HTTP/1.0\r\n\r\n"),
	[]byte("GET / HTTP/0.9\r\n\r\n"),
	[]byte("GET /path?q=hello+world&page=2 HTTP/1.1\r\nAccept: text/html,application/json\r\nAccept-Encoding: gzip, deflate\r\nConnection: keep-alive\r\n\r\n"),
	// Strict rejects
	[]byte("GET / HTTP/1.1\n\n"),
	[]byte("GET /  HTTP/1.1\r\n\r\n"),
	[]byte("GET / HTTP/1.1\r\nHost : example.com\r\n\r\n"),
	[]byte("GET / HTTP/1.1\r\nX-Empty:\r\n\r\n"),
	[]byte("GET / HTTP/1.1\r\nX-Fold: a\r\n b\r\n\r\n"),
}

var mediaTypeSeeds = [][]byte{
	[]byte("application/json"),
	[]byte("text/plain; charset=utf-8"),
	[]byte("text/plain ;charset=\"utf-8\""),
	[]byte("application/json; charset=\"\xAA\xBB\xCC\""),
	[]byte("multipart/form-data; boundary=xyz; charset=\"utf-8\""),
	[]byte("text/plain; note=\"a\\\"b\\\\c\""),
	[]byte("text/"),
	[]byte("text/plain x"),
	[]byte("text/plain; charset=\"unterminated"),
}

func FuzzUnmarshalHeader(f *testing.F) {
	for _, seed := range headerSeeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		h, err := UnmarshalHeader(data)
		if err != nil {
			return
		}
		// An accepted header must survive a marshal/unmarshal cycle.
		out, err := MarshalHeader(h)
		if err != nil {
			t.Fatalf("accepted header failed to marshal: %v", err)
		}
		h2, err := UnmarshalHeader(out)
		if err != nil {
			t.Fatalf("marshaled header failed to re-parse: %v\n%q", err, out)
		}
		if h.Method != h2.Method || h.Version != h2.Version || h.Target.Raw != h2.Target.Raw {
			t.Fatalf("request line diverged: %+v vs %+v", h, h2)
		}
		if len(h.Fields) != len(h2.Fields) {
			t.Fatalf("field count diverged: %d vs %d", len(h.Fields), len(h2.Fields))
		}
	})
}

func FuzzParseHeaderField(f *testing.F) {
	f.Add([]byte("Host: example.com"))
	f.Add([]byte("Content-Type : text/plain"))
	f.Add([]byte("X-Legacy: \xAA\xBB\xCC"))
	f.Fuzz(func(t *testing.T, line []byte) {
		hdr, err := ParseHeaderField(line)
		if err != nil {
			return
		}
		// Accepted fields must satisfy the container rules they claim.
		if !ValidName(hdr.Key) || !ValidValue(hdr.Value) {
			t.Fatalf("accepted field violates container rules: %q: %q", hdr.Key, hdr.Value)
		}
		if bytes.ContainsAny([]byte(hdr.Value), "\r\n") {
			t.Fatalf("CR/LF leaked into value: %q", hdr.Value)
		}
	})
}

func FuzzParseMediaType(f *testing.F) {
	for _, seed := range mediaTypeSeeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		m, err := ParseMediaType(data)
		if err != nil {
			return
		}
		if m.Type == "" || m.Subtype == "" {
			t.Fatalf("accepted media type with empty type/subtype: %+v", m)
		}
		for name := range m.Parameters {
			if name == "" {
				t.Fatal("accepted empty parameter name")
			}
		}
	})
}
