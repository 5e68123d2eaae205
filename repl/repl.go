package repl

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/xiam/lispy"
)

// Config describes where a REPL reads from and writes to.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Interactive enables line editing on a terminal. Stdin and Stdout are
	// then expected to be the process terminal.
	Interactive bool

	// Logger traces evaluation. Nothing is logged when nil.
	Logger *log.Logger
}

// Run reads one line per turn, evaluates it and prints the result, until the
// input is exhausted. Evaluation errors are reported on Stderr and do not
// stop the loop; only I/O errors are returned.
func Run(cfg Config) error {
	if cfg.Stdin == nil {
		cfg.Stdin = os.Stdin
	}
	if cfg.Stdout == nil {
		cfg.Stdout = os.Stdout
	}
	if cfg.Stderr == nil {
		cfg.Stderr = os.Stderr
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}

	out := bufio.NewWriter(cfg.Stdout)
	env := lispy.NewEnvironment(
		lispy.WithOutput(out),
		lispy.WithLogger(cfg.Logger),
	)

	var lr lineReader
	if cfg.Interactive {
		lr = newLinerReader(env.Names)
	} else {
		lr = newPlainReader(cfg.Stdin, out)
	}
	defer lr.Close()

	for {
		line, err := lr.ReadLine()
		if err != nil {
			if err == errLineAborted {
				continue
			}
			if err == io.EOF {
				return out.Flush()
			}
			return err
		}

		res, err := env.EvalString(line)
		if err != nil {
			if err := out.Flush(); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(cfg.Stderr, "Error: %v\n", err); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintln(out, res); err != nil {
			return err
		}
		if err := out.Flush(); err != nil {
			return err
		}
	}
}
