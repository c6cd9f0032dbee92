package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Register(ctx context.Context) error { return f.record("register") }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) ResetPassword(ctx context.Context) error { return f.record("resetpw") }

func (f *fakeExec) Feed(ctx context.Context) error { return f.record("feed") }
func (f *fakeExec) More(ctx context.Context) error { return f.record("more") }
func (f *fakeExec) Search(ctx context.Context, query string) error {
	return f.record("search:" + query)
}
func (f *fakeExec) Filter(ctx context.Context) error { return f.record("filter") }
func (f *fakeExec) ShowOpportunity(ctx context.Context, arg string) error {
	return f.record("show:" + arg)
}

func (f *fakeExec) Matches(ctx context.Context, status string) error {
	return f.record("matches:" + status)
}
func (f *fakeExec) ShowMatch(ctx context.Context, arg string) error {
	return f.record("match:" + arg)
}

func (f *fakeExec) Prefs(ctx context.Context) error { return f.record("prefs") }

func (f *fakeExec) Profile(ctx context.Context) error     { return f.record("profile") }
func (f *fakeExec) EditProfile(ctx context.Context) error { return f.record("editprofile") }
func (f *fakeExec) UploadCV(ctx context.Context, path string) error {
	return f.record("cv:" + path)
}
func (f *fakeExec) ApplyCV(ctx context.Context, arg string) error {
	return f.record("apply:" + arg)
}

func (f *fakeExec) Letters(ctx context.Context) error { return f.record("letters") }
func (f *fakeExec) Letter(ctx context.Context, arg string) error {
	return f.record("letter:" + arg)
}
func (f *fakeExec) Gaps(ctx context.Context) error { return f.record("gaps") }
func (f *fakeExec) Gap(ctx context.Context, arg string) error {
	return f.record("gap:" + arg)
}

func (f *fakeExec) Notifications(ctx context.Context) error { return f.record("notifications") }
func (f *fakeExec) ReadNotification(ctx context.Context, arg string) error {
	return f.record("read:" + arg)
}
func (f *fakeExec) ReadAllNotifications(ctx context.Context) error { return f.record("readall") }

func (f *fakeExec) Subscription(ctx context.Context) error { return f.record("subscription") }
func (f *fakeExec) Upgrade(ctx context.Context) error      { return f.record("upgrade") }

func (f *fakeExec) ChangePassword(ctx context.Context) error { return f.record("passwd") }
func (f *fakeExec) Whoami(ctx context.Context) error         { return f.record("whoami") }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) LogoutAll(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logoutall")
}
func (f *fakeExec) DeleteAccount(ctx context.Context) error { return f.record("deleteaccount") }

func muteOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, strings.TrimSpace(fmt.Sprintln(args...)))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesWithArgs(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"feed",
		"more",
		"search robotics addis",
		"show 12",
		"matches active",
		"match 3",
		"read 9",
		"bogus",
		"logoutall",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	require.Equal(t, []string{
		"login",
		"feed",
		"more",
		"search:robotics addis",
		"show:12",
		"matches:active",
		"match:3",
		"read:9",
		"logoutall",
		"logout",
	}, exec.calls)
}

func TestRunREPL_EmptyLinesAndEOF(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader("\n\n   \nfeed\n")
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	require.Equal(t, []string{"feed"}, exec.calls)
}

func TestRunREPL_HelpDependsOnLoginState(t *testing.T) {
	lines := muteOutput(t)

	input := strings.NewReader("help\nexit\n")
	exec := &fakeExec{loggedIn: false}
	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewScanner(input))

	joined := strings.Join(*lines, "\n")
	require.Contains(t, joined, "register")
	require.NotContains(t, joined, "deleteaccount")
}
