package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to. The real
// App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	ResetPassword(ctx context.Context) error

	Feed(ctx context.Context) error
	More(ctx context.Context) error
	Search(ctx context.Context, query string) error
	Filter(ctx context.Context) error
	ShowOpportunity(ctx context.Context, arg string) error

	Matches(ctx context.Context, status string) error
	ShowMatch(ctx context.Context, arg string) error

	Prefs(ctx context.Context) error

	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	UploadCV(ctx context.Context, path string) error
	ApplyCV(ctx context.Context, arg string) error

	Letters(ctx context.Context) error
	Letter(ctx context.Context, arg string) error
	Gaps(ctx context.Context) error
	Gap(ctx context.Context, arg string) error

	Notifications(ctx context.Context) error
	ReadNotification(ctx context.Context, arg string) error
	ReadAllNotifications(ctx context.Context) error

	Subscription(ctx context.Context) error
	Upgrade(ctx context.Context) error

	ChangePassword(ctx context.Context) error
	Whoami(ctx context.Context) error
	Logout(ctx context.Context) error
	LogoutAll(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
}

const helpLoggedOut = "Available commands: register, login, resetpw, exit"

const helpLoggedIn = `Browse:        feed, more, search <text>, filter, show <id>
Matches:       matches [active|notified|ignored|expired], match <id>
Preferences:   prefs
Profile:       profile, editprofile, cv <path>, apply <session id>
AI tools:      letters, letter <opportunity id>, gaps, gap <opportunity id>
Notifications: notifications, read <id>, readall
Account:       subscription, upgrade, whoami, passwd, logout, logoutall, deleteaccount
Other:         help, exit`

// runREPL reads lines from the scanner, parses the first token as the
// command and dispatches to a. Unknown commands are reported back. The
// loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("findra %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		arg := ""
		if len(args) > 0 {
			arg = args[0]
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "resetpw":
			_ = a.ResetPassword(ctx)

		case "feed":
			_ = a.Feed(ctx)
		case "more":
			_ = a.More(ctx)
		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))
		case "filter":
			_ = a.Filter(ctx)
		case "show":
			_ = a.ShowOpportunity(ctx, arg)

		case "matches":
			_ = a.Matches(ctx, arg)
		case "match":
			_ = a.ShowMatch(ctx, arg)

		case "prefs":
			_ = a.Prefs(ctx)

		case "profile":
			_ = a.Profile(ctx)
		case "editprofile":
			_ = a.EditProfile(ctx)
		case "cv":
			_ = a.UploadCV(ctx, arg)
		case "apply":
			_ = a.ApplyCV(ctx, arg)

		case "letters":
			_ = a.Letters(ctx)
		case "letter":
			_ = a.Letter(ctx, arg)
		case "gaps":
			_ = a.Gaps(ctx)
		case "gap":
			_ = a.Gap(ctx, arg)

		case "notifications":
			_ = a.Notifications(ctx)
		case "read":
			_ = a.ReadNotification(ctx, arg)
		case "readall":
			_ = a.ReadAllNotifications(ctx)

		case "subscription":
			_ = a.Subscription(ctx)
		case "upgrade":
			_ = a.Upgrade(ctx)

		case "passwd":
			_ = a.ChangePassword(ctx)
		case "whoami":
			_ = a.Whoami(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "logoutall":
			_ = a.LogoutAll(ctx)
		case "deleteaccount":
			_ = a.DeleteAccount(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
