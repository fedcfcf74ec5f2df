package http

// String interning for common wire tokens.
//
// The Go compiler optimizes map lookups keyed by string([]byte) to avoid
// allocating the temporary string, so interning a known method or header
// name out of a line buffer is allocation-free.

var methods = map[string]Method{
	"GET": MethodGet, "HEAD": MethodHead, "POST": MethodPost,
	"PUT": MethodPut, "DELETE": MethodDelete, "CONNECT": MethodConnect,
	"OPTIONS": MethodOptions, "TRACE": MethodTrace, "PATCH": MethodPatch,
}

var headerNames = map[string]string{
	"Accept":              "Accept",
	"Accept-Charset":      "Accept-Charset",
	"Accept-Encoding":     "Accept-Encoding",
	"Accept-Language":     "Accept-Language",
	"Authorization":       "Authorization",
	"Cache-Control":       "Cache-Control",
	"Connection":          "Connection",
	"Content-Disposition": "Content-Disposition",
	"Content-Encoding":    "Content-Encoding",
	"Content-Language":    "Content-Language",
	"Content-Length":      "Content-Length",
	"Content-Type":        "Content-Type",
	"Cookie":              "Cookie",
	"Date":                "Date",
	"Expect":              "Expect",
	"From":                "From",
	"Host":                "Host",
	"If-Match":            "If-Match",
	"If-Modified-Since":   "If-Modified-Since",
	"If-None-Match":       "If-None-Match",
	"If-Range":            "If-Range",
	"If-Unmodified-Since": "If-Unmodified-Since",
	"Max-Forwards":        "Max-Forwards",
	"Origin":              "Origin",
	"Pragma":              "Pragma",
	"Proxy-Authorization": "Proxy-Authorization",
	"Range":               "Range",
	"Referer":             "Referer",
	"TE":                  "TE",
	"Trailer":             "Trailer",
	"Transfer-Encoding":   "Transfer-Encoding",
	"Upgrade":             "Upgrade",
	"User-Agent":          "User-Agent",
	"Via":                 "Via",
	"X-Forwarded-For":     "X-Forwarded-For",
	"X-Forwarded-Host":    "X-Forwarded-Host",
	"X-Forwarded-Proto":   "X-Forwarded-Proto",
	"X-Request-ID":        "X-Request-ID",
	"X-Real-IP":           "X-Real-IP",
}

// internMethod returns an interned Method for known methods, avoiding
// allocation on the hot path.
func internMethod(b []byte) Method {
	if m, ok := methods[string(b)]; ok {
		return m
	}
	return Method(b)
}

// internHeaderName returns an interned string for known header names.
func internHeaderName(b []byte) string {
	if s, ok := headerNames[string(b)]; ok {
		return s
	}
	return string(b)
}
