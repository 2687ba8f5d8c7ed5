package quictrie

import (
	"context"

	"github.com/mengelbart/triemap/remote"
	"github.com/quic-go/quic-go"
)

// NextProto is the ALPN token of the triemap protocol over raw QUIC.
const NextProto = "triemap-00"

type connection struct {
	connection quic.Connection
}

func New(conn quic.Connection) remote.Connection {
	return &connection{
		connection: conn,
	}
}

func (c *connection) AcceptStream(ctx context.Context) (remote.Stream, error) {
	s, err := c.connection.AcceptStream(ctx)
	if err != nil {
		return nil, err
	}
	return &stream{qs: s}, nil
}

func (c *connection) OpenStreamSync(ctx context.Context) (remote.Stream, error) {
	s, err := c.connection.OpenStreamSync(ctx)
	if err != nil {
		return nil, err
	}
	return &stream{qs: s}, nil
}

func (c *connection) CloseWithError(e uint64, msg string) error {
	return c.connection.CloseWithError(quic.ApplicationErrorCode(e), msg)
}

func (c *connection) Context() context.Context {
	return c.connection.Context()
}
