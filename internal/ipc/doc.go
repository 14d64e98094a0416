// Package ipc exposes daemon control over JSON-RPC on a Unix domain socket.
// The CLI is the only intended client; every request maps onto one daemon
// intent or read. Responses carry plain data so the CLI renders without
// touching the session.
package ipc
