package http

import (
	"bytes"
	"testing"
)

var benchHeader = []byte("POST /api/users?q=foo HTTP/1.1\r\n" +
	"Host: api.example.com\r\n" +
	"Content-Type: application/json\r\n" +
	"Accept: application/json\r\n" +
	"Accept-Encoding: gzip, deflate\r\n" +
	"User-Agent: bench/1.0\r\n" +
	"\r\n")

func BenchmarkParseHeader(b *testing.B) {
	r := bytes.NewReader(benchHeader)
	b.ReportAllocs()
	b.SetBytes(int64(len(benchHeader)))
	for i := 0; i < b.N; i++ {
		r.Reset(benchHeader)
		if _, err := ParseHeader(r); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseHeaderField(b *testing.B) {
	line := []byte("Content-Type: application/json; charset=utf-8")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ParseHeaderField(line); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParseMediaType(b *testing.B) {
	value := []byte(`multipart/form-data; boundary=xyz; charset="utf-8"`)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ParseMediaType(value); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkMarshalHeader(b *testing.B) {
	h, err := UnmarshalHeader(benchHeader)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := MarshalHeader(h); err != nil {
			b.Fatal(err)
		}
	}
}
