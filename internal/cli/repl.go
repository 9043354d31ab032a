package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/saikaranam22/VA-Demo/internal/common"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	help() string
	Start(ctx context.Context) error
	Show(ctx context.Context) error
	Options(ctx context.Context) error
	Set(ctx context.Context, args []string) error
	Ask(ctx context.Context) error
	Next(ctx context.Context) error
	Back(ctx context.Context) error
	Summary(ctx context.Context) error
	JSON(ctx context.Context) error
	Restart(ctx context.Context) error
}

// runREPL reads commands from reader until EOF, "exit" or "quit".
//
// The first token of each line is the command, the rest are its arguments.
// Command errors are printed and the loop goes on, except for contract
// violations, which stop the loop and are returned to the caller.
//
// promptFn is printed before each line; an empty prompt prints nothing,
// which keeps scripted (piped) sessions free of prompt noise.
func runREPL(ctx context.Context, a execIface, promptFn func() string, reader *bufio.Reader, w io.Writer) error {
	for {
		if p := promptFn(); p != "" {
			fmt.Fprint(w, p)
		}
		line, err := readLine(reader)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help", "?":
			fmt.Fprintln(w, a.help())
			continue
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return nil
		}

		var cmdErr error
		switch cmd {
		case "start":
			cmdErr = a.Start(ctx)
		case "show":
			cmdErr = a.Show(ctx)
		case "options":
			cmdErr = a.Options(ctx)
		case "set":
			cmdErr = a.Set(ctx, args)
		case "ask":
			cmdErr = a.Ask(ctx)
		case "next", "continue", "n":
			cmdErr = a.Next(ctx)
		case "back", "b":
			cmdErr = a.Back(ctx)
		case "summary":
			cmdErr = a.Summary(ctx)
		case "json":
			cmdErr = a.JSON(ctx)
		case "restart", "start-over":
			cmdErr = a.Restart(ctx)
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
			continue
		}

		if cmdErr == nil {
			continue
		}
		if common.IsContractViolation(cmdErr) {
			return cmdErr
		}
		fmt.Fprintln(w, "Error:", cmdErr)
	}
}
