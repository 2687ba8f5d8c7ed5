package wire

import "log/slog"

var _ slog.LogValuer = (*LenMessage)(nil)

type LenMessage struct{}

func (m *LenMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "len"),
	)
}

func (m LenMessage) Type() messageType {
	return messageTypeLen
}

func (m *LenMessage) Append(buf []byte) []byte {
	return buf
}

func (m *LenMessage) parse(data []byte) error {
	if len(data) > 0 {
		return errTrailingBytes
	}
	return nil
}
