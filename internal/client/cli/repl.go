package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	List(ctx context.Context) error
	Cd(ctx context.Context, name string) error
	Back(ctx context.Context) error
	Forward(ctx context.Context) error
	Up(ctx context.Context) error
	Open(ctx context.Context, name string) error
	Edit(ctx context.Context, name string) error
	Get(ctx context.Context, name, dest string) error
	Types(ctx context.Context) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the file explorer CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Browsing (always available):
//	  - help           — show available commands
//	  - ls | list      — list the current directory
//	  - cd <name>      — enter a child folder
//	  - back | forward — move through visit history
//	  - up             — go to the parent folder
//	  - open <name>    — view a text file or file metadata
//	  - get <name> [dest] — download a file
//	  - types          — show the server's file type table
//	  - status         — show authentication state
//	  - register       — create an account
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in additionally:
//	  - edit <name>    — replace a text file's content
//	  - logout         — log out
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fx> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: ls, cd, back, forward, up, open, edit, get, types, status, logout, exit")
			} else {
				printlnFn("Available commands: ls, cd, back, forward, up, open, get, types, status, register, login, exit")
			}

		case "l", "ls", "list":
			_ = a.List(ctx)

		case "cd":
			if len(args) == 0 {
				printlnFn("Usage: cd <name>")
				continue
			}
			_ = a.Cd(ctx, strings.Join(args, " "))

		case "back":
			_ = a.Back(ctx)

		case "forward":
			_ = a.Forward(ctx)

		case "up":
			_ = a.Up(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <name>")
				continue
			}
			_ = a.Open(ctx, strings.Join(args, " "))

		case "edit":
			if len(args) == 0 {
				printlnFn("Usage: edit <name>")
				continue
			}
			_ = a.Edit(ctx, strings.Join(args, " "))

		case "get":
			if len(args) == 0 {
				printlnFn("Usage: get <name> [dest]")
				continue
			}
			dest := ""
			if len(args) > 1 {
				dest = args[len(args)-1]
				args = args[:len(args)-1]
			}
			_ = a.Get(ctx, strings.Join(args, " "), dest)

		case "types":
			_ = a.Types(ctx)

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
