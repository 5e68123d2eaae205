package repl

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"

	"github.com/peterh/liner"
)

// Prompt is written before reading each line.
const Prompt = "> "

var errLineAborted = errors.New("line aborted")

type lineReader interface {
	ReadLine() (string, error)
	Close() error
}

// plainReader reads lines from a non-interactive source.
type plainReader struct {
	in  *bufio.Reader
	out *bufio.Writer
}

func newPlainReader(in io.Reader, out *bufio.Writer) *plainReader {
	return &plainReader{
		in:  bufio.NewReader(in),
		out: out,
	}
}

func (r *plainReader) ReadLine() (string, error) {
	if _, err := r.out.WriteString(Prompt); err != nil {
		return "", err
	}
	if err := r.out.Flush(); err != nil {
		return "", err
	}

	line, err := r.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return line, nil
		}
		return "", err
	}
	return line, nil
}

func (r *plainReader) Close() error {
	return nil
}

// linerReader reads lines from a terminal with line editing, history and
// completion of known names.
type linerReader struct {
	st *liner.State
}

func newLinerReader(names func() []string) *linerReader {
	st := liner.NewLiner()

	st.SetCtrlCAborts(true)
	st.SetTabCompletionStyle(liner.TabPrints)
	st.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		return completeWord(names(), line, pos)
	})

	return &linerReader{st: st}
}

func (r *linerReader) ReadLine() (string, error) {
	line, err := r.st.Prompt(Prompt)
	if err != nil {
		if err == liner.ErrPromptAborted {
			return "", errLineAborted
		}
		return "", err
	}
	if strings.TrimSpace(line) != "" {
		r.st.AppendHistory(line)
	}
	return line, nil
}

func (r *linerReader) Close() error {
	return r.st.Close()
}

func isWordBreak(r rune) bool {
	return unicode.IsSpace(r) || r == '(' || r == ')'
}

// completeWord splits line at the cursor (a rune offset) and returns the
// names that extend the partial word right before it.
func completeWord(names []string, line string, pos int) (string, []string, string) {
	runes := []rune(line)
	if pos > len(runes) {
		pos = len(runes)
	}

	start := pos
	for start > 0 && !isWordBreak(runes[start-1]) {
		start--
	}

	head, word, tail := string(runes[:start]), string(runes[start:pos]), string(runes[pos:])

	completions := []string{}
	for _, name := range names {
		if strings.HasPrefix(name, word) {
			completions = append(completions, name)
		}
	}
	return head, completions, tail
}
