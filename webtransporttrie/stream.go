package webtransporttrie

import (
	"errors"

	"github.com/mengelbart/triemap/remote"
	"github.com/quic-go/webtransport-go"
)

var _ remote.Stream = (*stream)(nil)

type stream struct {
	qs webtransport.Stream
}

func (s *stream) Read(p []byte) (int, error) {
	n, err := s.qs.Read(p)
	if err != nil {
		var streamErr *webtransport.StreamError
		if errors.As(err, &streamErr) {
			return n, remote.ApplicationError{
				Code:    uint64(streamErr.ErrorCode),
				Message: "read canceled",
				Remote:  streamErr.Remote,
			}
		}
		return n, err
	}
	return n, nil
}

func (s *stream) Write(p []byte) (int, error) {
	return s.qs.Write(p)
}

func (s *stream) Close() error {
	return s.qs.Close()
}

func (s *stream) CancelRead(code uint64) {
	s.qs.CancelRead(webtransport.StreamErrorCode(code))
}

func (s *stream) CancelWrite(code uint64) {
	s.qs.CancelWrite(webtransport.StreamErrorCode(code))
}
