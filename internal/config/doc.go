// Package config loads runtime settings for the admin CLI from, in order of
// increasing precedence: built-in defaults, an optional JSON file (-c/-config),
// and command-line flags.
package config
