package http

import (
	"bytes"

	"github.com/shapestone/strict-http/internal/grammar"
)

// RequestLine is the parsed first line of a request header block.
type RequestLine struct {
	Method  Method
	Target  Target
	Version Version
}

// ParseRequestLine parses "method SP request-target SP version", anchored
// start to end. The input must not include the trailing CRLF.
//
// The grammar is deliberately rigid: exactly one SP between tokens, no
// leading or trailing whitespace, no extra tokens. There is no OWS tolerance
// on the request line: a second consecutive space is a reject, since
// divergent handling of padding here is a classic smuggling vector.
func ParseRequestLine(line []byte) (RequestLine, error) {
	sp1 := bytes.IndexByte(line, ' ')
	if sp1 < 0 {
		return RequestLine{}, &RequestLineError{Kind: RequestLineMalformed, Detail: "missing method separator"}
	}
	methodBytes := line[:sp1]
	rest := line[sp1+1:]

	sp2 := bytes.IndexByte(rest, ' ')
	if sp2 < 0 {
		return RequestLine{}, &RequestLineError{Kind: RequestLineMalformed, Detail: "missing version separator"}
	}
	targetBytes := rest[:sp2]
	versionBytes := rest[sp2+1:]

	if len(methodBytes) == 0 {
		return RequestLine{}, &RequestLineError{Kind: RequestLineMalformed, Detail: "empty method"}
	}
	if len(targetBytes) == 0 {
		// Two consecutive spaces after the method.
		return RequestLine{}, &RequestLineError{Kind: RequestLineMalformed, Detail: "consecutive spaces in request line"}
	}
	if len(versionBytes) == 0 || bytes.IndexByte(versionBytes, ' ') >= 0 {
		return RequestLine{}, &RequestLineError{Kind: RequestLineMalformed, Detail: "extra token after version"}
	}

	if !grammar.IsToken(methodBytes) {
		return RequestLine{}, &RequestLineError{Kind: InvalidMethod, Detail: string(methodBytes)}
	}
	method := internMethod(methodBytes)

	target, err := ParseTarget(string(targetBytes))
	if err != nil {
		return RequestLine{}, &RequestLineError{Kind: InvalidTarget, Detail: string(targetBytes), Cause: err}
	}

	version, ok := ParseVersion(string(versionBytes))
	if !ok {
		return RequestLine{}, &RequestLineError{Kind: UnrecognizedVersion, Detail: string(versionBytes)}
	}

	return RequestLine{Method: method, Target: target, Version: version}, nil
}
