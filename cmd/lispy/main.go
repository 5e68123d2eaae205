package main

import (
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/xiam/lispy/repl"
)

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("lispy: ")

	err := repl.Run(repl.Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,

		Interactive: isTerminal(os.Stdin) && isTerminal(os.Stdout),
	})
	if err != nil {
		log.Fatal(err)
	}
}
