// Package daemon coordinates the control session with the remote studio and
// enforces single-instance execution.
//
// The daemon owns the session lifecycle: it connects, builds the command
// façade and reconciler over the new session, and tears everything down on
// disconnect. Reconnection always produces a fresh session; nothing here
// retries automatically. Intent methods are the write half of the UI
// boundary: they issue commands through the façade and leave snapshot
// convergence to the reconciler.
package daemon
