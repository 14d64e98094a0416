// Package obsws implements the client side of the obs-websocket v5 control
// protocol.
//
// A Session owns one WebSocket connection. Connect performs the
// Hello/Identify handshake, including the SHA-256 challenge/response
// authentication derived from the shared password, and starts a read loop
// that routes correlated request responses and dispatches subscribed events.
// Sessions never reconnect on their own; a failed or closed session is
// discarded and replaced by the caller.
package obsws
