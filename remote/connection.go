package remote

import (
	"context"
	"io"
)

// Stream is a bidirectional stream carrying one request and its response.
type Stream interface {
	io.ReadWriteCloser
	CancelRead(uint64)
	CancelWrite(uint64)
}

type Connection interface {
	AcceptStream(context.Context) (Stream, error)
	OpenStreamSync(context.Context) (Stream, error)

	CloseWithError(uint64, string) error
	Context() context.Context
}
