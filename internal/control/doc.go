// Package control is the typed catalog of remote studio operations.
//
// Every method maps 1:1 to a named obs-websocket request with a fixed,
// typed parameter shape, built on the transport's Call primitive. Errors
// from the remote propagate unchanged so callers decide recovery, with two
// deliberate exceptions: the replay-buffer family degrades to inactive/no-op
// because the capability is absent on some studio configurations, and
// screenshot retrieval yields an empty result on any failure so preview
// rendering can fall back to a placeholder.
package control
