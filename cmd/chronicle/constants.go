package main

// Default limits for CLI commands.
const (
	DefaultSearchLimit = 10
	DefaultListLimit   = 50
)

// Valid graph output formats.
var validFormats = []string{"json", "dot"}
