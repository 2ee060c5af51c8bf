package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/Tourelou/mdp/internal/util"
)

// LineReader reads visible answers, such as a selection number, in canonical
// mode.
type LineReader struct {
	r   *bufio.Reader
	out io.Writer
}

// NewLineReader reads from in and writes prompts to out.
func NewLineReader(in io.Reader, out io.Writer) *LineReader {
	return &LineReader{r: bufio.NewReader(in), out: out}
}

// Ask writes message and returns the next line without its line ending. A
// final line without newline is returned as is; io.EOF is only reported when
// nothing was read.
func (l *LineReader) Ask(message string) (string, error) {
	fmt.Fprint(l.out, message)
	line, err := l.r.ReadBytes('\n')
	if err != nil && !(errors.Is(err, io.EOF) && len(line) > 0) {
		return "", err
	}
	return string(util.TrimLineEnding(line)), nil
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
