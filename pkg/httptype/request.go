package httptype

// Request is an HTTP request envelope: method, target URI, protocol version,
// headers, and a body of a caller-chosen type. The envelope itself imposes no
// body semantics; B may be raw bytes, a decoded document, or struct{} for
// bodiless messages.
type Request[B any] struct {
	Method  Method
	URI     URI
	Version Version
	Header  Header
	Body    B
}

// Response is an HTTP response envelope: status, protocol version, headers,
// and a body of a caller-chosen type.
type Response[B any] struct {
	Status  StatusCode
	Version Version
	Header  Header
	Body    B
}
