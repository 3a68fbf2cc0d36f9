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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	List(ctx context.Context) error
	Add(ctx context.Context) error
	Show(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

// runREPL starts a simple read-eval-print loop for the Taskkeeper CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Task commands take an optional
// task ID as their second token and prompt for it when absent. The loop exits
// on scanner EOF or when the user types "exit" or "quit".
//
//	Not logged in:
//	  - help           show available commands
//	  - register       create an account
//	  - login          authenticate
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - help           show available commands
//	  - profile        show the current account
//	  - editprofile    change name, email or password
//	  - (l)ist         list tasks, newest first
//	  - add            create a task
//	  - show [id]      show a single task
//	  - status [id]    change the status of a task
//	  - delete [id]    delete a task
//	  - logout         forget the saved session
//	  - exit | quit    leave the program
//
// Commands that need a session are refused while logged out. Errors returned
// by command handlers are ignored here; handlers report them to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("tk> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := ""
		if len(parts) > 1 {
			arg = parts[1]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: (l)ist, add, show, status, delete, profile, editprofile, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}
			continue

		case "register":
			_ = a.Register(ctx)
			continue

		case "login":
			_ = a.Login(ctx)
			continue

		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		if !a.isLoggedIn() {
			if isSessionCommand(cmd) {
				printlnFn("Please log in first")
			} else {
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "profile":
			_ = a.Profile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "add":
			_ = a.Add(ctx)

		case "show":
			_ = a.Show(ctx, arg)

		case "status":
			_ = a.SetStatus(ctx, arg)

		case "delete":
			_ = a.Delete(ctx, arg)

		case "logout":
			_ = a.Logout(ctx)

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func isSessionCommand(cmd string) bool {
	switch cmd {
	case "profile", "editprofile", "l", "list", "add", "show", "status", "delete", "logout":
		return true
	}
	return false
}
