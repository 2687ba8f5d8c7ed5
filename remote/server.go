package remote

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/armon/go-metrics"
	"github.com/mengelbart/triemap"
	"github.com/mengelbart/triemap/internal/slices"
	"github.com/mengelbart/triemap/internal/wire"
)

// Map is the map type served to remote peers.
type Map = triemap.SyncMap[string, []byte]

// Server answers requests arriving on the streams of a Connection.
type Server struct {
	Map    *Map
	Logger *slog.Logger
}

func (s *Server) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return defaultLogger.With(componentKey, "TRIEMAP_SERVER")
}

// Serve accepts streams on conn and handles each on its own goroutine. It
// returns when ctx is done or conn stops accepting streams, after all
// in-flight requests have finished.
func (s *Server) Serve(ctx context.Context, conn Connection) error {
	logger := s.logger()
	var wg sync.WaitGroup
	defer wg.Wait()
	for {
		str, err := conn.AcceptStream(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.Info("stopped accepting streams", "error", err)
			return err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.handleStream(logger, str)
		}()
	}
}

func (s *Server) handleStream(logger *slog.Logger, str Stream) {
	defer metrics.MeasureSince([]string{"triemap", "server", "request"}, time.Now())

	msg, err := wire.NewMessageParser(str).Parse()
	if err != nil {
		metrics.IncrCounter([]string{"triemap", "server", "error"}, 1)
		if !wire.IsProtocolViolation(err) {
			logger.Warn("failed to read request", "error", err)
			str.CancelWrite(ErrorCodeInternal)
			return
		}
		logger.Warn("malformed request", "error", err)
		str.CancelRead(ErrorCodeProtocolViolation)
		s.respond(logger, str, &wire.ResponseMessage{
			Status: wire.StatusError,
			Reason: err.Error(),
		})
		return
	}
	logger.Debug("received request", "msg", msg)
	metrics.IncrCounter([]string{"triemap", "server", msg.Type().String()}, 1)
	s.respond(logger, str, s.handle(msg))
}

func (s *Server) respond(logger *slog.Logger, str Stream, res *wire.ResponseMessage) {
	logger.Debug("sending response", "msg", res)
	if _, err := str.Write(wire.AppendMessage(nil, res)); err != nil {
		logger.Warn("failed to write response", "error", err)
		str.CancelWrite(ErrorCodeInternal)
		return
	}
	if err := str.Close(); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("failed to close stream", "error", err)
	}
}

func (s *Server) handle(msg wire.Message) *wire.ResponseMessage {
	switch m := msg.(type) {
	case *wire.GetMessage:
		v, ok := s.Map.Get(string(m.Key))
		if !ok {
			return &wire.ResponseMessage{Status: wire.StatusNotFound}
		}
		return single(m.Key, v)

	case *wire.InsertMessage:
		old, replaced := s.Map.Insert(string(m.Key), m.Value)
		if !replaced {
			return &wire.ResponseMessage{Status: wire.StatusOK}
		}
		return single(m.Key, old)

	case *wire.RemoveMessage:
		v, ok := s.Map.Remove(string(m.Key))
		if !ok {
			return &wire.ResponseMessage{Status: wire.StatusNotFound}
		}
		return single(m.Key, v)

	case *wire.StartsWithMessage:
		if !s.Map.StartsWith(string(m.Prefix)) {
			return &wire.ResponseMessage{Status: wire.StatusNotFound}
		}
		return &wire.ResponseMessage{Status: wire.StatusOK}

	case *wire.PrefixMatchesMessage:
		return entries(s.Map.GetPrefixMatches(string(m.Prefix)))

	case *wire.RemovePrefixMessage:
		return entries(s.Map.RemovePrefixMatches(string(m.Prefix)))

	case *wire.LenMessage:
		return &wire.ResponseMessage{
			Status: wire.StatusOK,
			Count:  uint64(s.Map.Len()),
		}
	}
	return &wire.ResponseMessage{
		Status: wire.StatusError,
		Reason: errUnexpectedMessage.message,
	}
}

func single(key, value []byte) *wire.ResponseMessage {
	return &wire.ResponseMessage{
		Status:  wire.StatusOK,
		Entries: []wire.KeyValue{{Key: key, Value: value}},
		Count:   1,
	}
}

func entries(kvs []triemap.KeyValue[string, []byte]) *wire.ResponseMessage {
	return &wire.ResponseMessage{
		Status:  wire.StatusOK,
		Entries: slices.Collect(slices.Map(kvs, func(kv triemap.KeyValue[string, []byte]) wire.KeyValue {
			return wire.KeyValue{
				Key:   []byte(kv.Key),
				Value: kv.Value,
			}
		})),
		Count: uint64(len(kvs)),
	}
}
