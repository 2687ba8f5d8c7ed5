package wire

import "log/slog"

var (
	_ slog.LogValuer = (*StartsWithMessage)(nil)
	_ slog.LogValuer = (*PrefixMatchesMessage)(nil)
	_ slog.LogValuer = (*RemovePrefixMessage)(nil)
)

// StartsWithMessage asks whether any key starts with Prefix.
type StartsWithMessage struct {
	Prefix []byte
}

func (m *StartsWithMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "starts_with"),
		slog.String("prefix", string(m.Prefix)),
	)
}

func (m StartsWithMessage) Type() messageType {
	return messageTypeStartsWith
}

func (m *StartsWithMessage) Append(buf []byte) []byte {
	return appendVarIntBytes(buf, m.Prefix)
}

func (m *StartsWithMessage) parse(data []byte) (err error) {
	m.Prefix, err = parseKey(data)
	return err
}

// PrefixMatchesMessage asks for every entry whose key starts with Prefix.
type PrefixMatchesMessage struct {
	Prefix []byte
}

func (m *PrefixMatchesMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "prefix_matches"),
		slog.String("prefix", string(m.Prefix)),
	)
}

func (m PrefixMatchesMessage) Type() messageType {
	return messageTypePrefixMatches
}

func (m *PrefixMatchesMessage) Append(buf []byte) []byte {
	return appendVarIntBytes(buf, m.Prefix)
}

func (m *PrefixMatchesMessage) parse(data []byte) (err error) {
	m.Prefix, err = parseKey(data)
	return err
}

// RemovePrefixMessage removes every entry whose key starts with Prefix.
type RemovePrefixMessage struct {
	Prefix []byte
}

func (m *RemovePrefixMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "remove_prefix"),
		slog.String("prefix", string(m.Prefix)),
	)
}

func (m RemovePrefixMessage) Type() messageType {
	return messageTypeRemovePrefix
}

func (m *RemovePrefixMessage) Append(buf []byte) []byte {
	return appendVarIntBytes(buf, m.Prefix)
}

func (m *RemovePrefixMessage) parse(data []byte) (err error) {
	m.Prefix, err = parseKey(data)
	return err
}
