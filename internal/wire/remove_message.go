package wire

import "log/slog"

var _ slog.LogValuer = (*RemoveMessage)(nil)

type RemoveMessage struct {
	Key []byte
}

func (m *RemoveMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "remove"),
		slog.String("key", string(m.Key)),
	)
}

func (m RemoveMessage) Type() messageType {
	return messageTypeRemove
}

func (m *RemoveMessage) Append(buf []byte) []byte {
	return appendVarIntBytes(buf, m.Key)
}

func (m *RemoveMessage) parse(data []byte) (err error) {
	m.Key, err = parseKey(data)
	return err
}
