// Package prompt reads answers from a console and prints styled messages.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/mitchellh/go-homedir"
	"github.com/muesli/termenv"
)

// ErrBadPath is returned for a typed filename that cannot be turned into a path.
var ErrBadPath = errors.New("prompt: bad path")

// Prompter asks questions on Out and reads one line per answer from In.
type Prompter struct {
	in  *bufio.Reader
	out *termenv.Output
}

// New returns a prompter reading from in and writing to out. Colors are
// only emitted when out is a terminal.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: termenv.NewOutput(out),
	}
}

// Ask prints question and returns the answer with surrounding space removed.
// Input that ends without a newline is returned as the final answer; io.EOF
// is only returned when nothing was read.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, p.out.String(question).Bold().String())
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskPath asks for a filename and runs it through ParsePath. An empty
// answer returns "". Errors wrapping ErrBadPath are about the answer, not
// the console.
func (p *Prompter) AskPath(question string) (string, error) {
	answer, err := p.Ask(question)
	if err != nil || answer == "" {
		return "", err
	}
	return ParsePath(answer)
}

// ParsePath turns one typed filename into a path. An answer that is a
// single quoted word loses its quotes; anything else is taken literally, so
// apostrophes and backslashes survive. A leading ~ is expanded.
func ParsePath(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if quoted(s) {
		if words, err := shellwords.Parse(s); err == nil && len(words) == 1 && !strings.ContainsRune(s, '\\') {
			s = words[0]
		} else {
			s = s[1 : len(s)-1]
		}
	}
	path, err := homedir.Expand(s)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrBadPath, s, err)
	}
	return path, nil
}

// quoted reports whether s is wrapped in one pair of matching quotes.
func quoted(s string) bool {
	if len(s) < 2 || (s[0] != '"' && s[0] != '\'') || s[len(s)-1] != s[0] {
		return false
	}
	return !strings.ContainsRune(s[1:len(s)-1], rune(s[0]))
}

// Println prints a plain line.
func (p *Prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

// Printf prints a plain formatted message.
func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Errorf prints a formatted message in red, followed by a newline.
func (p *Prompter) Errorf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	fmt.Fprintln(p.out, p.out.String(msg).Foreground(p.out.Color("1")).String())
}

// Successf prints a formatted message in green, followed by a newline.
func (p *Prompter) Successf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	fmt.Fprintln(p.out, p.out.String(msg).Foreground(p.out.Color("2")).String())
}
