// Package cli provides the interactive file explorer command-line client.
//
// It wires configuration, the HTTP API client, and an interactive REPL that
// walks the server's directory tree. Typical flow: start at the tree root,
// navigate with cd/back/forward/up, open or download files, and log in when
// an edit is needed.
//
// Key features:
//   - Browse directories with browser-style history
//   - View text files and file metadata
//   - Download raw files
//   - Register / Login / Logout against the server's JWT auth
//   - Edit and save text files when logged in
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
