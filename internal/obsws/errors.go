package obsws

import (
	"errors"
	"fmt"
)

// ErrNotConnected reports a call attempted without an identified session.
var ErrNotConnected = errors.New("obsws: not connected")

// ErrClosed reports a call abandoned because the session closed underneath it.
var ErrClosed = errors.New("obsws: session closed")

// ConnError reports a failure to establish a session: socket open, handshake,
// or authentication. It is fatal to the session being opened.
type ConnError struct {
	Stage string
	Err   error
}

func (e *ConnError) Error() string {
	return fmt.Sprintf("obsws connect: %s: %v", e.Stage, e.Err)
}

func (e *ConnError) Unwrap() error { return e.Err }

// RequestError reports the remote rejecting a specific request. It is local
// to the call site; the session remains usable.
type RequestError struct {
	RequestType string
	Code        int
	Comment     string
}

func (e *RequestError) Error() string {
	if e.Comment == "" {
		return fmt.Sprintf("obsws request %s: code %d", e.RequestType, e.Code)
	}
	return fmt.Sprintf("obsws request %s: code %d: %s", e.RequestType, e.Code, e.Comment)
}

// IsRequestError reports whether err carries a remote request rejection.
func IsRequestError(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr)
}
