package wire

import "log/slog"

var _ slog.LogValuer = (*GetMessage)(nil)

type GetMessage struct {
	Key []byte
}

func (m *GetMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "get"),
		slog.String("key", string(m.Key)),
	)
}

func (m GetMessage) Type() messageType {
	return messageTypeGet
}

func (m *GetMessage) Append(buf []byte) []byte {
	return appendVarIntBytes(buf, m.Key)
}

func (m *GetMessage) parse(data []byte) (err error) {
	m.Key, err = parseKey(data)
	return err
}
