package wire

import "log/slog"

var _ slog.LogValuer = (*InsertMessage)(nil)

type InsertMessage struct {
	Key   []byte
	Value []byte
}

func (m *InsertMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "insert"),
		slog.String("key", string(m.Key)),
		slog.Int("value_length", len(m.Value)),
	)
}

func (m InsertMessage) Type() messageType {
	return messageTypeInsert
}

func (m *InsertMessage) Append(buf []byte) []byte {
	buf = appendVarIntBytes(buf, m.Key)
	return appendVarIntBytes(buf, m.Value)
}

func (m *InsertMessage) parse(data []byte) error {
	key, n, err := parseVarIntBytes(data)
	if err != nil {
		return err
	}
	m.Key = key
	m.Value, err = parseKey(data[n:])
	return err
}
