package gateway

import (
	"errors"
	"fmt"
)

// Kind sentinels. Every error returned by Client.Lookup matches exactly one
// of them with errors.Is.
var (
	ErrTransport = errors.New("lookup transport failure")
	ErrProtocol  = errors.New("lookup protocol failure")
	ErrDecode    = errors.New("lookup response decode failure")
)

// TransportError is a network failure or timeout before a response arrived.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("lookup: transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error        { return e.Err }
func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// ProtocolError is a non-2xx response.
type ProtocolError struct {
	StatusCode int
	Body       string
}

func (e *ProtocolError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("lookup: unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("lookup: unexpected status %d: %s", e.StatusCode, e.Body)
}

func (e *ProtocolError) Is(target error) bool { return target == ErrProtocol }

// DecodeError is a 2xx response whose body is not a valid sentence.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("lookup: decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error        { return e.Err }
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }
