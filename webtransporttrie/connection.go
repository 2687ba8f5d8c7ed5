package webtransporttrie

import (
	"context"

	"github.com/mengelbart/triemap/remote"
	"github.com/quic-go/webtransport-go"
)

type webTransportConn struct {
	session *webtransport.Session
}

func New(session *webtransport.Session) remote.Connection {
	return &webTransportConn{session}
}

func (c *webTransportConn) OpenStreamSync(ctx context.Context) (remote.Stream, error) {
	s, err := c.session.OpenStreamSync(ctx)
	if err != nil {
		return nil, err
	}
	return &stream{qs: s}, nil
}

func (c *webTransportConn) AcceptStream(ctx context.Context) (remote.Stream, error) {
	s, err := c.session.AcceptStream(ctx)
	if err != nil {
		return nil, err
	}
	return &stream{qs: s}, nil
}

func (c *webTransportConn) CloseWithError(e uint64, msg string) error {
	return c.session.CloseWithError(webtransport.SessionErrorCode(e), msg)
}

func (c *webTransportConn) Context() context.Context {
	return c.session.Context()
}
