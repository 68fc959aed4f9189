package platform

// Package platform contains OS integration glue: per-user application
// directories, opening files with their registered handler, and revealing
// project folders in the system file manager.
