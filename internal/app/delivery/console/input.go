package console

import (
	"bufio"
	"context"
	"io"
	"strings"
)

// Lines reads the operator's input on one background goroutine, so the
// command loop and confirmation prompts share it and both stop on ctx.
type Lines struct {
	ch  chan string
	err error
}

func NewLines(in io.Reader) *Lines {
	lines := &Lines{ch: make(chan string)}
	go func() {
		defer close(lines.ch)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines.ch <- strings.TrimSpace(scanner.Text())
		}
		lines.err = scanner.Err()
	}()
	return lines
}

// Next blocks for the next line. It returns io.EOF once input is exhausted.
func (l *Lines) Next(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-l.ch:
		if !ok {
			if l.err != nil {
				return "", l.err
			}
			return "", io.EOF
		}
		return line, nil
	}
}

// PromptConfirmer asks yes/no questions on the console.
type PromptConfirmer struct {
	lines *Lines
	out   io.Writer
}

func NewPromptConfirmer(lines *Lines, out io.Writer) *PromptConfirmer {
	return &PromptConfirmer{lines: lines, out: out}
}

// Confirm accepts y, yes, s or sim. Anything else, including end of input,
// declines.
func (c *PromptConfirmer) Confirm(ctx context.Context, prompt string) bool {
	io.WriteString(c.out, prompt+" [y/N]: ")
	answer, err := c.lines.Next(ctx)
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "y", "yes", "s", "sim":
		return true
	default:
		return false
	}
}
