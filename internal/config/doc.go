// Package config loads and validates the scenedeck configuration file.
//
// Configuration is TOML with four sections: [obs] for the remote studio
// endpoint, [workflow] for reconciler timing, [director] for the chat
// completion service backing the AI director, and [logging]/[paths] for
// ambient plumbing. Load applies defaults, expands paths, and validates the
// result so the daemon can rely on every field being usable.
package config
