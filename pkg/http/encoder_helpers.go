package http

import "strconv"

// appendCRLF appends \r\n to buf.
func appendCRLF(buf []byte) []byte {
	return append(buf, '\r', '\n')
}

// appendRequestLine appends "METHOD TARGET VERSION\r\n" to buf.
func appendRequestLine(buf []byte, method Method, target string, version Version) []byte {
	buf = append(buf, method...)
	buf = append(buf, ' ')
	buf = append(buf, target...)
	buf = append(buf, ' ')
	buf = append(buf, version.String()...)
	return appendCRLF(buf)
}

// appendHeaderField appends "Key: Value\r\n" to buf. The single SP after the
// colon is the canonical OWS; the strict parser strips it back out.
func appendHeaderField(buf []byte, key, value string) []byte {
	buf = append(buf, key...)
	buf = append(buf, ':', ' ')
	buf = append(buf, value...)
	return appendCRLF(buf)
}

// appendStatusLine appends "VERSION STATUS REASON\r\n" to buf.
func appendStatusLine(buf []byte, version Version, statusCode int, reason string) []byte {
	buf = append(buf, version.String()...)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(statusCode), 10)
	buf = append(buf, ' ')
	buf = append(buf, reason...)
	return appendCRLF(buf)
}
