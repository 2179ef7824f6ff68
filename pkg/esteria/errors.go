package esteria

import "fmt"

// SendError means the gateway was reached and answered, but reported a
// failure code or an unparseable body. It is never produced for transport
// failures.
type SendError struct {
	Number  string
	Message string
}

func (e *SendError) Error() string {
	return fmt.Sprintf("sms sending failed to %s: %s", e.Number, e.Message)
}

// RequestError means the HTTP round trip itself could not be completed. The
// transport cause is preserved for diagnostics.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("sms request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}
