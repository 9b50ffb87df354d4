package domain

// Application-level return codes carried in every response envelope.
// These travel as strings and are independent of the HTTP status code:
// "200" is the only success value, "300"/"301" signal that the stored
// credential is unusable and the session must end, and "405" is the
// client-side sentinel for a request that never reached the server.
const (
	CodeOK             = "200"
	CodeSessionInvalid = "300"
	CodeSessionExpired = "301"
	CodeUnavailable    = "405"
)

// Envelope is the application-level response wrapper shared by every
// endpoint. Message, when present, is a translation key such as
// "login.error_invalid" — clients localize it themselves.
type Envelope struct {
	Returncode string `json:"returncode"`
	Message    string `json:"message,omitempty"`
}

// OK reports whether the envelope carries the success code.
func (e Envelope) OK() bool { return e.Returncode == CodeOK }
