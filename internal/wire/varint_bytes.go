package wire

import (
	"bytes"
	"errors"
	"io"

	"github.com/quic-go/quic-go/quicvarint"
)

func appendVarIntBytes(buf []byte, data []byte) []byte {
	buf = quicvarint.Append(buf, uint64(len(data)))
	buf = append(buf, data...)
	return buf
}

// parseVarInt reads a varint from a message payload. The payload has been
// read completely, so running out of data is always io.ErrUnexpectedEOF.
func parseVarInt(data []byte) (uint64, int, error) {
	r := bytes.NewReader(data)
	v, err := quicvarint.Read(r)
	if errors.Is(err, io.EOF) {
		err = io.ErrUnexpectedEOF
	}
	return v, len(data) - r.Len(), err
}

func parseVarIntBytes(data []byte) ([]byte, int, error) {
	l, n, err := parseVarInt(data)
	if err != nil {
		return []byte{}, n, err
	}

	if l == 0 {
		return []byte{}, n, nil
	}
	data = data[n:]

	if uint64(len(data)) < l {
		return []byte{}, n + len(data), io.ErrUnexpectedEOF
	}
	return data[:l], n + int(l), nil
}
