package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/notekeeper/internal/client/api"
	"github.com/dmitrijs2005/notekeeper/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	SignUp(ctx context.Context) error
	SignIn(ctx context.Context) error
	SignOut(ctx context.Context) error
	Verify(ctx context.Context, args []string) error
	Resend(ctx context.Context) error
	Forgot(ctx context.Context) error
	Reset(ctx context.Context) error

	Folders(ctx context.Context) error
	MakeFolder(ctx context.Context, args []string) error
	RenameFolder(ctx context.Context, args []string) error
	RemoveFolder(ctx context.Context, args []string) error

	Notes(ctx context.Context, args []string) error
	NewNote(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Edit(ctx context.Context, args []string) error
	RemoveNote(ctx context.Context, args []string) error

	Profile(ctx context.Context) error
	Status(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: signup, login, verify, resend, forgot, reset, status, exit"
	helpSignedIn  = "Available commands: folders, mkfolder, renamefolder, rmfolder, notes, newnote, show, edit, rmnote, profile, status, logout, exit"

	msgLoginFirst = "Please log in first"
)

// sessionCommands need a signed-in user.
var sessionCommands = map[string]bool{
	"logout":       true,
	"folders":      true,
	"mkfolder":     true,
	"renamefolder": true,
	"rmfolder":     true,
	"notes":        true,
	"newnote":      true,
	"show":         true,
	"edit":         true,
	"rmnote":       true,
	"profile":      true,
}

// runREPL reads a line, takes the first token as the command and the rest
// as its arguments, and dispatches to a. Command errors are printed and
// the loop keeps going. It returns on EOF, "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("nk %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if sessionCommands[cmd] && !a.isLoggedIn() {
			printlnFn(msgLoginFirst)
			continue
		}

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}

		case "signup":
			cmdErr = a.SignUp(ctx)
		case "login":
			cmdErr = a.SignIn(ctx)
		case "logout":
			cmdErr = a.SignOut(ctx)
		case "verify":
			cmdErr = a.Verify(ctx, args)
		case "resend":
			cmdErr = a.Resend(ctx)
		case "forgot":
			cmdErr = a.Forgot(ctx)
		case "reset":
			cmdErr = a.Reset(ctx)

		case "folders":
			cmdErr = a.Folders(ctx)
		case "mkfolder":
			cmdErr = a.MakeFolder(ctx, args)
		case "renamefolder":
			cmdErr = a.RenameFolder(ctx, args)
		case "rmfolder":
			cmdErr = a.RemoveFolder(ctx, args)

		case "notes":
			cmdErr = a.Notes(ctx, args)
		case "newnote":
			cmdErr = a.NewNote(ctx, args)
		case "show":
			cmdErr = a.Show(ctx, args)
		case "edit":
			cmdErr = a.Edit(ctx, args)
		case "rmnote":
			cmdErr = a.RemoveNote(ctx, args)

		case "profile":
			cmdErr = a.Profile(ctx)
		case "status":
			cmdErr = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn(describe(cmdErr))
		}
	}
}

// describe turns a command error into the line shown to the user.
func describe(err error) string {
	var (
		apiErr *api.Error
		msg    messageError
	)
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		return "Session expired, please log in again"
	case errors.Is(err, services.ErrUnavailable):
		return "Server unavailable, check your connection"
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.As(err, &msg):
		return string(msg)
	default:
		return "Error: " + err.Error()
	}
}

// messageError is a failure whose text is already fit for the user.
type messageError string

func (e messageError) Error() string { return string(e) }
