package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saikaranam22/VA-Demo/internal/common"
)

type fakeExec struct {
	calls   []string
	setArgs []string
	failOn  string
	fail    error
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	if name == f.failOn {
		return f.fail
	}
	return nil
}

func (f *fakeExec) help() string                      { return "HELP TEXT" }
func (f *fakeExec) Start(ctx context.Context) error   { return f.record("start") }
func (f *fakeExec) Show(ctx context.Context) error    { return f.record("show") }
func (f *fakeExec) Options(ctx context.Context) error { return f.record("options") }
func (f *fakeExec) Set(ctx context.Context, args []string) error {
	f.setArgs = args
	return f.record("set")
}
func (f *fakeExec) Ask(ctx context.Context) error     { return f.record("ask") }
func (f *fakeExec) Next(ctx context.Context) error    { return f.record("next") }
func (f *fakeExec) Back(ctx context.Context) error    { return f.record("back") }
func (f *fakeExec) Summary(ctx context.Context) error { return f.record("summary") }
func (f *fakeExec) JSON(ctx context.Context) error    { return f.record("json") }
func (f *fakeExec) Restart(ctx context.Context) error { return f.record("restart") }

func script(lines ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(lines, "\n")))
}

func noPrompt() string { return "" }

func TestRunREPL_DispatchesCommands(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer

	err := runREPL(context.Background(), exec, noPrompt, script(
		"help",
		"start",
		"set branch Air Force",
		"ask",
		"continue",
		"b",
		"n",
		"show",
		"options",
		"summary",
		"json",
		"start-over",
		"",
		"foobar",
		"exit",
		"next",
	), &out)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"start", "set", "ask", "next", "back", "next", "show", "options", "summary", "json", "restart",
	}, exec.calls)
	assert.Equal(t, []string{"branch", "Air", "Force"}, exec.setArgs)
	assert.Contains(t, out.String(), "HELP TEXT")
	assert.Contains(t, out.String(), "Unknown command: foobar")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRunREPL_CommandsAreCaseInsensitive(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer

	require.NoError(t, runREPL(context.Background(), exec, noPrompt, script("NEXT", "Back", "QUIT"), &out))
	assert.Equal(t, []string{"next", "back"}, exec.calls)
}

func TestRunREPL_EOFEndsLoop(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer

	require.NoError(t, runREPL(context.Background(), exec, noPrompt, script("next"), &out))
	assert.Equal(t, []string{"next"}, exec.calls)
	assert.NotContains(t, out.String(), "Bye!")
}

func TestRunREPL_PrintsPrompt(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer

	require.NoError(t, runREPL(context.Background(), exec, func() string { return "va> " }, script("exit"), &out))
	assert.True(t, strings.HasPrefix(out.String(), "va> "))
}

func TestRunREPL_UserErrorContinues(t *testing.T) {
	exec := &fakeExec{failOn: "next", fail: errors.New("branch is required")}
	var out bytes.Buffer

	require.NoError(t, runREPL(context.Background(), exec, noPrompt, script("next", "show"), &out))
	assert.Equal(t, []string{"next", "show"}, exec.calls)
	assert.Contains(t, out.String(), "Error: branch is required")
}

func TestRunREPL_ContractViolationStops(t *testing.T) {
	exec := &fakeExec{
		failOn: "next",
		fail:   common.ContractViolation(common.ErrNoSession, "next"),
	}
	var out bytes.Buffer

	err := runREPL(context.Background(), exec, noPrompt, script("next", "show"), &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrNoSession)
	assert.Equal(t, []string{"next"}, exec.calls)
}
