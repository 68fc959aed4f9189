package model

// Package model defines domain data structures used across the app: discovered
// DAW projects, DAW kinds, playback states and engine events. Records are shared
// read-only with the UI; only the controller flips the transient playing flag.
