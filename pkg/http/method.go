package http

// Method is an HTTP request method token. Any token is syntactically legal;
// the constants below cover the registered methods and are interned so that
// parsed methods compare cheaply against them.
type Method string

// Registered request methods.
const (
	MethodGet     Method = "GET"
	MethodHead    Method = "HEAD"
	MethodPost    Method = "POST"
	MethodPut     Method = "PUT"
	MethodDelete  Method = "DELETE"
	MethodConnect Method = "CONNECT"
	MethodOptions Method = "OPTIONS"
	MethodTrace   Method = "TRACE"
	MethodPatch   Method = "PATCH"
)

func (m Method) String() string { return string(m) }
