package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// capturePrintln redirects printlnFn into a slice for the test's lifetime.
func capturePrintln(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimRight(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) record(call string) error {
	f.calls = append(f.calls, call)
	return nil
}

func (f *fakeExec) isLoggedIn() bool                            { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error          { return f.record("register") }
func (f *fakeExec) Login(ctx context.Context) error             { return f.record("login") }
func (f *fakeExec) Logout(ctx context.Context) error            { return f.record("logout") }
func (f *fakeExec) Whoami(ctx context.Context) error            { return f.record("whoami") }
func (f *fakeExec) ShowLocations(ctx context.Context) error     { return f.record("locations") }
func (f *fakeExec) ShowComments(ctx context.Context) error      { return f.record("comments") }
func (f *fakeExec) Search(ctx context.Context, q string) error  { return f.record("search " + q) }
func (f *fakeExec) Add(ctx context.Context) error               { return f.record("add") }
func (f *fakeExec) Edit(ctx context.Context, id string) error   { return f.record("edit " + id) }
func (f *fakeExec) Delete(ctx context.Context, id string) error { return f.record("delete " + id) }
func (f *fakeExec) Show(ctx context.Context, id string) error   { return f.record("show " + id) }

func runScript(t *testing.T, exec *fakeExec, script string) *[]string {
	t.Helper()
	lines := capturePrintln(t)
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), exec, func() string { return "" }, scanner)
	return lines
}

func TestREPLDispatch(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	runScript(t, exec, "locations\ncomments\nsearch bri jakarta\nclear\nadd\nedit 7\ndelete 9\nshow 3\nwhoami\nlogout\nexit\n")

	assert.Equal(t, []string{
		"locations",
		"comments",
		"search bri jakarta",
		"search ",
		"add",
		"edit 7",
		"delete 9",
		"show 3",
		"whoami",
		"logout",
	}, exec.calls)
}

func TestREPLAliases(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	runScript(t, exec, "ls\nquit\n")

	assert.Equal(t, []string{"locations"}, exec.calls)
}

func TestREPLUnknownCommand(t *testing.T) {
	exec := &fakeExec{}
	lines := runScript(t, exec, "frobnicate\nexit\n")

	assert.Contains(t, strings.Join(*lines, "\n"), "Unknown command: frobnicate")
	assert.Empty(t, exec.calls)
}

func TestREPLUsageHints(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	lines := runScript(t, exec, "search\nedit\ndelete\nshow\nexit\n")

	out := strings.Join(*lines, "\n")
	assert.Contains(t, out, "Usage: search <text>")
	assert.Contains(t, out, "Usage: edit <id>")
	assert.Contains(t, out, "Usage: delete <id>")
	assert.Contains(t, out, "Usage: show <id>")
	assert.Empty(t, exec.calls)
}

func TestREPLHelpDependsOnLoginState(t *testing.T) {
	exec := &fakeExec{}
	lines := runScript(t, exec, "help\nexit\n")
	assert.Contains(t, strings.Join(*lines, "\n"), "register, login, exit")

	exec = &fakeExec{loggedIn: true}
	lines = runScript(t, exec, "help\nexit\n")
	assert.Contains(t, strings.Join(*lines, "\n"), "delete <id>")
}

func TestREPLExitsOnEOF(t *testing.T) {
	exec := &fakeExec{}
	runScript(t, exec, "")
	assert.Empty(t, exec.calls)
}
