package wire

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/quic-go/quic-go/quicvarint"
)

// MessageParser reads framed messages from a stream.
type MessageParser struct {
	reader *bufio.Reader
}

func NewMessageParser(r io.Reader) *MessageParser {
	return &MessageParser{
		reader: bufio.NewReader(r),
	}
}

// Parse reads the next message. It returns io.EOF if the stream ends
// cleanly before a new message starts.
func (p *MessageParser) Parse() (Message, error) {
	mt, err := quicvarint.Read(p.reader)
	if err != nil {
		return nil, err
	}
	length, err := quicvarint.Read(p.reader)
	if err != nil {
		return nil, unexpectedEOF(err)
	}
	if length > maxMessageLength {
		return nil, fmt.Errorf("%w: %v bytes", errMessageTooLarge, length)
	}

	msg := make([]byte, length)
	if _, err = io.ReadFull(p.reader, msg); err != nil {
		return nil, unexpectedEOF(err)
	}

	var m Message
	switch messageType(mt) {
	case messageTypeGet:
		m = &GetMessage{}
	case messageTypeInsert:
		m = &InsertMessage{}
	case messageTypeRemove:
		m = &RemoveMessage{}
	case messageTypeStartsWith:
		m = &StartsWithMessage{}
	case messageTypePrefixMatches:
		m = &PrefixMatchesMessage{}
	case messageTypeRemovePrefix:
		m = &RemovePrefixMessage{}
	case messageTypeLen:
		m = &LenMessage{}
	case messageTypeResponse:
		m = &ResponseMessage{}
	default:
		return nil, fmt.Errorf("%w: %v", errInvalidMessageType, mt)
	}
	err = m.parse(msg)
	return m, err
}

func unexpectedEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return io.ErrUnexpectedEOF
	}
	return err
}
