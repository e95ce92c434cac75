package main

var (
	// Version is set during build via ldflags
	Version = "v0.1.0"
	// Commit is set during build via ldflags.
	Commit = "none"
	// Date is set during build via ldflags.
	Date = "unknown"
)
