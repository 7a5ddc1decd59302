// Package cli provides the interactive BRI-Finder admin command-line client.
//
// It wires configuration, the API gateway, the session, and an interactive
// REPL with two screens: the ATM location directory and the comment
// moderation list. Typical flow: prompt for credentials, land on the
// locations screen, and execute commands (search, add, edit, delete, ...).
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
