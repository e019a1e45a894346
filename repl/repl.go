/*
File    : easylang/repl/repl.go
Package : repl

Package repl implements EasyLang's interactive Read-Eval-Print Loop: a
banner, a chzyer/readline session for line editing and history, and colored
fatih/color output. One *eval.Evaluator persists across the whole session —
its Global scope and function table outlive each individual line, since
every statement typed at the prompt runs as its own tiny "program" against
that one Evaluator.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"easylang/eval"
	"easylang/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session: banner
// text, version line, and prompt string.
type Repl struct {
	Banner  string
	Version string
	Prompt  string
	Line    string
}

// New creates a Repl with the given banner, version string, and prompt.
func New(banner, version, prompt string) *Repl {
	return &Repl{
		Banner:  banner,
		Version: version,
		Prompt:  prompt,
		Line:    strings.Repeat("-", 66),
	}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintln(w, r.Line)
	greenColor.Fprintln(w, r.Banner)
	blueColor.Fprintln(w, r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version)
	blueColor.Fprintln(w, r.Line)
	cyanColor.Fprintln(w, "Type EasyLang statements and press enter.")
	cyanColor.Fprintln(w, "Type '.exit' to quit.")
	blueColor.Fprintln(w, r.Line)
}

// Start runs the REPL loop, reading from in and writing to out until the
// user exits or the input stream closes. in and out may be a terminal's
// stdin/stdout or a net.Conn, which is what lets the same Start method
// back both the interactive CLI mode and the TCP server mode.
func (r *Repl) Start(in io.Reader, out io.Writer) {
	r.printBanner(out)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(in),
		Stdout: out,
	})
	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}
	defer rl.Close()

	ev := eval.New(out, &lineReaderAdapter{rl: rl})

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(out, "Good bye!")
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			fmt.Fprintln(out, "Good bye!")
			return
		}
		rl.SaveHistory(line)
		r.evalLine(out, line, ev)
	}
}

func (r *Repl) evalLine(out io.Writer, line string, ev *eval.Evaluator) {
	program, err := parser.Parse(line)
	if err != nil {
		redColor.Fprintln(out, err)
		return
	}
	if err := ev.Run(program); err != nil {
		redColor.Fprintln(out, err)
	}
}

// lineReaderAdapter lets a `read` statement pull its input from the same
// readline session the REPL prompt itself uses, so interactive programs can
// prompt the user mid-session without a second input channel.
type lineReaderAdapter struct {
	rl *readline.Instance
}

func (a *lineReaderAdapter) ReadLine() (string, error) {
	return a.rl.Readline()
}
