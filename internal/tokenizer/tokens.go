// Package tokenizer provides lexing of request-header wire format using
// Shape's tokenizer framework. It is a diagnostic surface: the strict
// parser scans bytes directly, but tooling (e.g. the dumpserver -tokens
// mode) can use the token stream to show exactly how a header splits.
package tokenizer

// Token type constants for the header wire format. The framing tokens are
// deliberately finer-grained than a lenient lexer would need: a bare LF or
// orphan CR gets its own kind so consumers can see precisely where strict
// framing would reject the input.
const (
	TokenToken   = "Token"   // run of RFC 9112 tchar octets (method, field name)
	TokenText    = "Text"    // any other non-structural run
	TokenVersion = "Version" // "HTTP/" followed by digits and dots

	TokenColon = "Colon" // field name/value separator
	TokenSP    = "SP"    // single space
	TokenOWS   = "OWS"   // run of SP/HTAB beyond the first

	TokenCRLF   = "CRLF"   // \r\n
	TokenBareLF = "BareLF" // \n without preceding \r (strict reject)
	TokenBareCR = "BareCR" // \r without following \n (strict reject)
)
