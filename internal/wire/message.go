package wire

import (
	"log/slog"

	"github.com/quic-go/quic-go/quicvarint"
)

// maxMessageLength bounds the payload of a single message.
const maxMessageLength = 1 << 24

type messageType uint64

// Message types
const (
	messageTypeGet           messageType = 0x01
	messageTypeInsert        messageType = 0x02
	messageTypeRemove        messageType = 0x03
	messageTypeStartsWith    messageType = 0x04
	messageTypePrefixMatches messageType = 0x05
	messageTypeRemovePrefix  messageType = 0x06
	messageTypeLen           messageType = 0x07

	messageTypeResponse messageType = 0x40
)

func (mt messageType) String() string {
	switch mt {
	case messageTypeGet:
		return "GetMessage"
	case messageTypeInsert:
		return "InsertMessage"
	case messageTypeRemove:
		return "RemoveMessage"
	case messageTypeStartsWith:
		return "StartsWithMessage"
	case messageTypePrefixMatches:
		return "PrefixMatchesMessage"
	case messageTypeRemovePrefix:
		return "RemovePrefixMessage"
	case messageTypeLen:
		return "LenMessage"
	case messageTypeResponse:
		return "ResponseMessage"
	}
	return "unknown message type"
}

// Message is a request or a response. Append writes the payload only; use
// AppendMessage to frame it.
type Message interface {
	slog.LogValuer
	Type() messageType
	Append([]byte) []byte
	parse([]byte) error
}

// AppendMessage appends m to buf framed as type, payload length, payload.
func AppendMessage(buf []byte, m Message) []byte {
	payload := m.Append(nil)
	buf = quicvarint.Append(buf, uint64(m.Type()))
	buf = quicvarint.Append(buf, uint64(len(payload)))
	return append(buf, payload...)
}

// parseKey parses one varint-prefixed byte string that must make up all of
// data.
func parseKey(data []byte) ([]byte, error) {
	key, n, err := parseVarIntBytes(data)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, errTrailingBytes
	}
	return key, nil
}
