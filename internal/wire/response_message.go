package wire

import (
	"fmt"
	"log/slog"

	"github.com/quic-go/quic-go/quicvarint"
)

var _ slog.LogValuer = (*ResponseMessage)(nil)

type Status uint64

const (
	StatusOK Status = iota
	StatusNotFound
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not found"
	case StatusError:
		return "error"
	}
	return fmt.Sprintf("unknown status %d", uint64(s))
}

type KeyValue struct {
	Key   []byte
	Value []byte
}

// ResponseMessage answers any request. Entries carries values returned by
// the request, Count carries numeric results such as the number of keys.
type ResponseMessage struct {
	Status  Status
	Reason  string
	Entries []KeyValue
	Count   uint64
}

func (m *ResponseMessage) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", "response"),
		slog.String("status", m.Status.String()),
		slog.Int("entries", len(m.Entries)),
		slog.Uint64("count", m.Count),
	}
	if len(m.Reason) > 0 {
		attrs = append(attrs, slog.String("reason", m.Reason))
	}
	return slog.GroupValue(attrs...)
}

func (m ResponseMessage) Type() messageType {
	return messageTypeResponse
}

func (m *ResponseMessage) Append(buf []byte) []byte {
	buf = quicvarint.Append(buf, uint64(m.Status))
	buf = appendVarIntBytes(buf, []byte(m.Reason))
	buf = quicvarint.Append(buf, uint64(len(m.Entries)))
	for _, e := range m.Entries {
		buf = appendVarIntBytes(buf, e.Key)
		buf = appendVarIntBytes(buf, e.Value)
	}
	return quicvarint.Append(buf, m.Count)
}

func (m *ResponseMessage) parse(data []byte) error {
	status, n, err := parseVarInt(data)
	if err != nil {
		return err
	}
	if status > uint64(StatusError) {
		return fmt.Errorf("%w: %v", errInvalidStatus, status)
	}
	m.Status = Status(status)
	data = data[n:]

	reason, n, err := parseVarIntBytes(data)
	if err != nil {
		return err
	}
	m.Reason = string(reason)
	data = data[n:]

	count, n, err := parseVarInt(data)
	if err != nil {
		return err
	}
	data = data[n:]
	// Every entry takes at least two bytes.
	if count > uint64(len(data))/2 {
		return fmt.Errorf("%w: %v entries", errMessageTooLarge, count)
	}
	if count > 0 {
		m.Entries = make([]KeyValue, 0, count)
	}
	for i := uint64(0); i < count; i++ {
		var e KeyValue
		e.Key, n, err = parseVarIntBytes(data)
		if err != nil {
			return err
		}
		data = data[n:]
		e.Value, n, err = parseVarIntBytes(data)
		if err != nil {
			return err
		}
		data = data[n:]
		m.Entries = append(m.Entries, e)
	}

	m.Count, n, err = parseVarInt(data)
	if err != nil {
		return err
	}
	if n != len(data) {
		return errTrailingBytes
	}
	return nil
}
