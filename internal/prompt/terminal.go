// Package prompt reads secrets interactively from a terminal.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrNotInteractive is returned when the input is not attached to a
// terminal, e.g. when the server runs under a service manager.
var ErrNotInteractive = errors.New("input is not a terminal")

// Terminal prompts on out and reads the answer from in without echo.
type Terminal struct {
	in  *os.File
	out io.Writer

	isTerminal   func(fd int) bool
	readPassword func(fd int) ([]byte, error)
}

// NewTerminal returns a Terminal reading from in and writing prompts to out.
func NewTerminal(in *os.File, out io.Writer) *Terminal {
	return &Terminal{
		in:           in,
		out:          out,
		isTerminal:   term.IsTerminal,
		readPassword: term.ReadPassword,
	}
}

// Password writes label to the output and reads a line from the terminal
// with echo disabled.
func (t *Terminal) Password(label string) (string, error) {
	fd := int(t.in.Fd())
	if !t.isTerminal(fd) {
		return "", ErrNotInteractive
	}

	fmt.Fprint(t.out, label)
	secret, err := t.readPassword(fd)
	fmt.Fprintln(t.out)
	if err != nil {
		return "", fmt.Errorf("error reading password: %w", err)
	}

	return string(secret), nil
}
