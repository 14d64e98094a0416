package control

import (
	"context"
	"log/slog"

	"scenedeck/internal/logging"
)

// Caller is the transport primitive the façade is built on. *obsws.Session
// satisfies it.
type Caller interface {
	Call(ctx context.Context, requestType string, params any, out any) error
	Connected() bool
}

// Client exposes the remote operation catalog over one session.
type Client struct {
	caller Caller
	logger *slog.Logger
}

// NewClient wraps a transport session in the typed operation catalog.
func NewClient(caller Caller, logger *slog.Logger) *Client {
	return &Client{
		caller: caller,
		logger: logging.NewComponentLogger(logger, "control"),
	}
}

// Connected reports whether the underlying session is usable.
func (c *Client) Connected() bool {
	return c.caller.Connected()
}
