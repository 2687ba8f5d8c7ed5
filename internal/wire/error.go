package wire

import (
	"errors"
	"io"
)

var (
	errInvalidMessageType = errors.New("invalid message type")
	errInvalidStatus      = errors.New("invalid status")
	errMessageTooLarge    = errors.New("message too large")
	errTrailingBytes      = errors.New("trailing bytes after message")
)

// IsProtocolViolation reports whether err was caused by a malformed message
// rather than by the underlying stream.
func IsProtocolViolation(err error) bool {
	return errors.Is(err, errInvalidMessageType) ||
		errors.Is(err, errInvalidStatus) ||
		errors.Is(err, errMessageTooLarge) ||
		errors.Is(err, errTrailingBytes) ||
		errors.Is(err, io.ErrUnexpectedEOF)
}
