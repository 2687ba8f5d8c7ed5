package xnetquic

import (
	"github.com/mengelbart/triemap/remote"
	"golang.org/x/net/quic"
)

var _ remote.Stream = (*Stream)(nil)

type Stream struct {
	stream *quic.Stream
}

func (s *Stream) Read(p []byte) (n int, err error) {
	return s.stream.Read(p)
}

func (s *Stream) Write(p []byte) (int, error) {
	n, err := s.stream.Write(p)
	if err != nil {
		return n, err
	}
	s.stream.Flush()
	return n, nil
}

// Close closes the send side only.
func (s *Stream) Close() error {
	s.stream.CloseWrite()
	return nil
}

// CancelRead stops the receive side. The implementation always sends
// STOP_SENDING with code zero.
func (s *Stream) CancelRead(uint64) {
	s.stream.CloseRead()
}

func (s *Stream) CancelWrite(code uint64) {
	s.stream.Reset(code)
}
