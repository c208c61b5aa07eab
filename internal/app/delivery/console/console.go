// Package console is the interactive front end of the scheduling board. It
// reads one command per line, drives the board and the studio API client,
// and renders the results as plain text tables.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"pilates-vision-service/internal/app/config"
	"pilates-vision-service/internal/app/contracts"
	"pilates-vision-service/internal/app/services/console/board"
	"pilates-vision-service/internal/pkg/constvars"
	"pilates-vision-service/internal/pkg/dto/responses"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var errQuit = errors.New("quit")

type command func(ctx context.Context, args []string) error

type Console struct {
	Log *logrus.Logger

	board           *board.Board
	client          contracts.StudioClient
	notifier        *ToastNotifier
	lines           *Lines
	out             io.Writer
	timeout         time.Duration
	preferences     config.Preferences
	savePreferences func(config.Preferences) error
	commands        map[string]command
	listed          []responses.Student
}

func NewConsole(
	lines *Lines,
	out io.Writer,
	scheduleBoard *board.Board,
	client contracts.StudioClient,
	notifier *ToastNotifier,
	preferences config.Preferences,
	savePreferences func(config.Preferences) error,
	timeout time.Duration,
	logger *logrus.Logger,
) *Console {
	c := &Console{
		Log:             logger,
		board:           scheduleBoard,
		client:          client,
		notifier:        notifier,
		lines:           lines,
		out:             out,
		timeout:         timeout,
		preferences:     preferences,
		savePreferences: savePreferences,
	}
	scheduleBoard.SetCallTimeout(timeout)
	c.commands = map[string]command{
		"help":        c.help,
		"board":       c.showBoard,
		"reload":      c.reload,
		"open":        c.open,
		"search":      c.search,
		"student":     c.selectStudent,
		"instructor":  c.selectInstructor,
		"book":        c.book,
		"edit":        c.edit,
		"date":        c.setDate,
		"time":        c.setTime,
		"status":      c.setStatus,
		"save":        c.save,
		"delete":      c.remove,
		"close":       c.close,
		"students":    c.listStudents,
		"instructors": c.listInstructors,
		"analyze":     c.analyze,
		"plan":        c.plan,
		"lang":        c.setLanguage,
		"theme":       c.setTheme,
		"prefs":       c.showPreferences,
		"health":      c.health,
		"quit":        c.quit,
		"exit":        c.quit,
	}
	return c
}

// Run loads the board and serves commands until quit, end of input or ctx
// cancellation.
func (c *Console) Run(ctx context.Context) error {
	c.Log.Info("console started")
	defer c.Log.Info("console stopped")

	c.board.Reload(ctx)
	c.renderGrid()

	for {
		fmt.Fprintf(c.out, "pilates[%s]> ", c.board.State().Mode())
		line, err := c.lines.Next(ctx)
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			fmt.Fprintln(c.out)
			return nil
		}
		if err != nil {
			return err
		}

		if c.Execute(ctx, line) == errQuit {
			return nil
		}
	}
}

// Execute runs a single command line. Command failures are reported to the
// operator and never end the session; only quit returns an error.
func (c *Console) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name, args := strings.ToLower(fields[0]), fields[1:]

	cmd, found := c.commands[name]
	if !found {
		fmt.Fprintf(c.out, "unknown command %q, type help\n", name)
		return nil
	}

	c.Log.WithFields(logrus.Fields{
		constvars.LoggingCommandKey: name,
		constvars.LoggingModeKey:    c.board.State().Mode().String(),
	}).Debug("console.Execute called")

	err := cmd(ctx, args)
	if err == errQuit {
		return err
	}
	if err != nil {
		c.report(err)
	}
	return nil
}

// remoteContext bounds a single studio API call. Prompts keep the
// unbounded session context.
func (c *Console) remoteContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}

// report shows errors that were not already turned into a toast.
func (c *Console) report(err error) {
	var remoteErr *board.RemoteError
	if errors.As(err, &remoteErr) {
		return
	}
	if errors.Is(err, board.ErrInvalidTransition) {
		fmt.Fprintf(c.out, "not available while %s\n", c.board.State().Mode())
		return
	}
	var validationErr *board.ValidationError
	if errors.As(err, &validationErr) {
		return
	}
	fmt.Fprintln(c.out, err.Error())
}

func (c *Console) quit(ctx context.Context, args []string) error {
	return errQuit
}

func usage(format string) error {
	return fmt.Errorf("usage: %s", format)
}
