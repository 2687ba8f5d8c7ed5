package remote

import (
	"context"
	"log/slog"

	"github.com/mengelbart/triemap"
	"github.com/mengelbart/triemap/internal/slices"
	"github.com/mengelbart/triemap/internal/wire"
)

// Client sends requests to a Server. Each request uses a new stream, so a
// Client may be used from several goroutines.
type Client struct {
	conn   Connection
	logger *slog.Logger
}

func NewClient(conn Connection) *Client {
	return &Client{
		conn:   conn,
		logger: defaultLogger.With(componentKey, "TRIEMAP_CLIENT"),
	}
}

func (c *Client) roundTrip(ctx context.Context, req wire.Message) (*wire.ResponseMessage, error) {
	str, err := c.conn.OpenStreamSync(ctx)
	if err != nil {
		return nil, err
	}
	stop := context.AfterFunc(ctx, func() {
		str.CancelRead(ErrorCodeNoError)
		str.CancelWrite(ErrorCodeNoError)
	})
	defer stop()

	c.logger.Debug("sending request", "msg", req)
	if _, err = str.Write(wire.AppendMessage(nil, req)); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, err
	}
	if err = str.Close(); err != nil {
		return nil, err
	}
	msg, err := wire.NewMessageParser(str).Parse()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if wire.IsProtocolViolation(err) {
			str.CancelRead(ErrorCodeProtocolViolation)
			return nil, errMalformedResponse
		}
		return nil, err
	}
	res, ok := msg.(*wire.ResponseMessage)
	if !ok {
		str.CancelRead(ErrorCodeProtocolViolation)
		return nil, errUnexpectedMessage
	}
	c.logger.Debug("received response", "msg", res)
	if res.Status == wire.StatusError {
		return nil, ProtocolError{
			code:    ErrorCodeInternal,
			message: res.Reason,
		}
	}
	return res, nil
}

// value extracts the single entry of a lookup response.
func value(res *wire.ResponseMessage) ([]byte, bool, error) {
	if res.Status == wire.StatusNotFound || len(res.Entries) == 0 {
		return nil, false, nil
	}
	if len(res.Entries) != 1 {
		return nil, false, errMalformedResponse
	}
	return res.Entries[0].Value, true, nil
}

// Get returns the value stored under key.
func (c *Client) Get(ctx context.Context, key string) ([]byte, bool, error) {
	res, err := c.roundTrip(ctx, &wire.GetMessage{Key: []byte(key)})
	if err != nil {
		return nil, false, err
	}
	return value(res)
}

// Insert stores value under key and returns the previous value, if any.
func (c *Client) Insert(ctx context.Context, key string, v []byte) ([]byte, bool, error) {
	res, err := c.roundTrip(ctx, &wire.InsertMessage{Key: []byte(key), Value: v})
	if err != nil {
		return nil, false, err
	}
	return value(res)
}

// Remove deletes key and returns its value, if any.
func (c *Client) Remove(ctx context.Context, key string) ([]byte, bool, error) {
	res, err := c.roundTrip(ctx, &wire.RemoveMessage{Key: []byte(key)})
	if err != nil {
		return nil, false, err
	}
	return value(res)
}

func (c *Client) StartsWith(ctx context.Context, prefix string) (bool, error) {
	res, err := c.roundTrip(ctx, &wire.StartsWithMessage{Prefix: []byte(prefix)})
	if err != nil {
		return false, err
	}
	return res.Status == wire.StatusOK, nil
}

func (c *Client) PrefixMatches(ctx context.Context, prefix string) ([]triemap.KeyValue[string, []byte], error) {
	res, err := c.roundTrip(ctx, &wire.PrefixMatchesMessage{Prefix: []byte(prefix)})
	if err != nil {
		return nil, err
	}
	return keyValues(res), nil
}

func (c *Client) RemovePrefix(ctx context.Context, prefix string) ([]triemap.KeyValue[string, []byte], error) {
	res, err := c.roundTrip(ctx, &wire.RemovePrefixMessage{Prefix: []byte(prefix)})
	if err != nil {
		return nil, err
	}
	return keyValues(res), nil
}

func (c *Client) Len(ctx context.Context) (int, error) {
	res, err := c.roundTrip(ctx, &wire.LenMessage{})
	if err != nil {
		return 0, err
	}
	return int(res.Count), nil
}

func keyValues(res *wire.ResponseMessage) []triemap.KeyValue[string, []byte] {
	return slices.Collect(slices.Map(res.Entries, func(e wire.KeyValue) triemap.KeyValue[string, []byte] {
		return triemap.KeyValue[string, []byte]{
			Key:   string(e.Key),
			Value: e.Value,
		}
	}))
}
