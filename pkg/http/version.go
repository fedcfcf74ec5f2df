package http

// Version is a recognized HTTP protocol version literal.
//
// Recognized and supported are distinct: HTTP/0.9 and HTTP/2.0 parse into
// their own variants so a transport layer can reject them with a precise
// response instead of a generic syntax failure. HTTP/0.9 in particular must
// never be accepted silently (virtual-hosting servers have to disable it),
// so it is surfaced as a distinguishable value, not folded into a format
// error. Literals outside this set fail with UnrecognizedVersion.
type Version int

const (
	// VersionUnknown is the zero value; ParseVersion never returns it with ok.
	VersionUnknown Version = iota

	VersionHTTP09 // "HTTP/0.9": recognized, unsupported
	VersionHTTP10 // "HTTP/1.0"
	VersionHTTP11 // "HTTP/1.1"
	VersionHTTP20 // "HTTP/2.0": recognized, unsupported
)

var versionLiterals = map[string]Version{
	"HTTP/0.9": VersionHTTP09,
	"HTTP/1.0": VersionHTTP10,
	"HTTP/1.1": VersionHTTP11,
	"HTTP/2.0": VersionHTTP20,
}

// ParseVersion matches s against the recognized version literals exactly.
func ParseVersion(s string) (Version, bool) {
	v, ok := versionLiterals[s]
	return v, ok
}

// String returns the wire literal for v.
func (v Version) String() string {
	switch v {
	case VersionHTTP09:
		return "HTTP/0.9"
	case VersionHTTP10:
		return "HTTP/1.0"
	case VersionHTTP11:
		return "HTTP/1.1"
	case VersionHTTP20:
		return "HTTP/2.0"
	}
	return "HTTP/?"
}

// Supported reports whether this parser's grammar layer supports v.
// Recognized-but-unsupported versions (0.9, 2.0) return false; policy for
// them belongs to the transport layer above.
func (v Version) Supported() bool {
	return v == VersionHTTP10 || v == VersionHTTP11
}
