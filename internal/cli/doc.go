package cli

// Package cli implements the dawscan command: scanning folders for DAW
// projects from a terminal, auditioning demo clips through the playback
// engine, opening projects, and preparing the user's asset folder.
