package xnetquic

import (
	"context"

	"github.com/mengelbart/triemap/remote"
	"golang.org/x/net/quic"
)

type connection struct {
	ctx       context.Context
	cancelCtx context.CancelFunc
	conn      *quic.Conn
}

// New wraps a connection of the golang.org/x/net/quic implementation.
func New(conn *quic.Conn) remote.Connection {
	ctx, cancel := context.WithCancel(context.Background())
	return &connection{
		ctx:       ctx,
		cancelCtx: cancel,
		conn:      conn,
	}
}

// AcceptStream implements remote.Connection. Unidirectional streams are not
// part of the protocol and get stopped.
func (c *connection) AcceptStream(ctx context.Context) (remote.Stream, error) {
	for {
		s, err := c.conn.AcceptStream(ctx)
		if err != nil {
			c.cancelCtx()
			return nil, err
		}
		if s.IsReadOnly() {
			s.CloseRead()
			continue
		}
		return &Stream{
			stream: s,
		}, nil
	}
}

// OpenStreamSync implements remote.Connection.
func (c *connection) OpenStreamSync(ctx context.Context) (remote.Stream, error) {
	s, err := c.conn.NewStream(ctx)
	if err != nil {
		return nil, err
	}
	return &Stream{
		stream: s,
	}, nil
}

// CloseWithError implements remote.Connection.
func (c *connection) CloseWithError(code uint64, reason string) error {
	defer c.cancelCtx()
	c.conn.Abort(&quic.ApplicationError{
		Code:   code,
		Reason: reason,
	})
	return nil
}

func (c *connection) Context() context.Context {
	return c.ctx
}
