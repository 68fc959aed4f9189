package assets

// Package assets ships the default DAW logos and themes inside the binary,
// copies them to a per-user directory on first run, and resolves logos with the
// user's copy taking precedence over the bundled one.
