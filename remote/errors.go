package remote

import "fmt"

// Error codes used when closing connections or resetting streams.
const (
	ErrorCodeNoError           uint64 = 0x00
	ErrorCodeInternal          uint64 = 0x01
	ErrorCodeProtocolViolation uint64 = 0x03
)

type ProtocolError struct {
	code    uint64
	message string
}

func (e *ProtocolError) String() string {
	return e.Error()
}

func (e ProtocolError) Error() string {
	return fmt.Sprintf("%v: %v", e.code, e.message)
}

func (e ProtocolError) Code() uint64 {
	return e.code
}

var (
	errUnexpectedMessage = ProtocolError{
		code:    ErrorCodeProtocolViolation,
		message: "unexpected message type",
	}
	errMalformedResponse = ProtocolError{
		code:    ErrorCodeProtocolViolation,
		message: "malformed response",
	}
)

// ApplicationError is returned by stream adapters when a stream was reset.
type ApplicationError struct {
	Code    uint64
	Message string
	Remote  bool
}

func (e ApplicationError) Error() string {
	if e.Remote {
		return fmt.Sprintf("stream reset by peer: %v: %v", e.Code, e.Message)
	}
	return fmt.Sprintf("stream reset: %v: %v", e.Code, e.Message)
}
