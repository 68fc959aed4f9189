package scanner

// Package scanner walks a root folder for DAW project files, pairs each project
// with the newest audio clip in its directory, and watches the tree so the
// project list can be refreshed when files change on disk.
