/*
File    : easylang/main/main.go

Package main is the entry point for the EasyLang interpreter. It supports
three modes of operation:

	easylang <file>        - run a source file and exit
	easylang               - start an interactive REPL on stdin/stdout
	easylang serve <port>  - start a REPL server, one session per TCP connection
*/
package main

import (
	"bufio"
	"fmt"
	"net"
	"os"
	"strings"

	"github.com/fatih/color"

	"easylang/eval"
	"easylang/parser"
	"easylang/repl"
)

var (
	redColor  = color.New(color.FgRed)
	cyanColor = color.New(color.FgCyan)
)

const version = "v1.0.0"

const banner = `
  ___             _
 | __|__ _ ____  _| |   __ _ _ _  __ _
 | _|/ _` + "`" + ` (_-< || | |__ / _` + "`" + ` | ' \/ _` + "`" + ` |
 |___\__,_/__/\_, |_|/__\__,_|_||_\__, |
              |__/                |___/
`

func main() {
	switch {
	case len(os.Args) == 1:
		repl.New(banner, version, "easylang> ").Start(os.Stdin, os.Stdout)
	case os.Args[1] == "--help" || os.Args[1] == "-h":
		printHelp()
	case os.Args[1] == "--version" || os.Args[1] == "-v":
		cyanColor.Println("easylang " + version)
	case os.Args[1] == "serve":
		if len(os.Args) < 3 {
			redColor.Fprintln(os.Stderr, "usage: easylang serve <port>")
			os.Exit(1)
		}
		serve(os.Args[2])
	default:
		runFile(os.Args[1])
	}
}

func printHelp() {
	cyanColor.Println("EasyLang - a small imperative scripting language")
	fmt.Println("usage:")
	fmt.Println("  easylang <file>        run a source file")
	fmt.Println("  easylang               start an interactive REPL")
	fmt.Println("  easylang serve <port>  start a REPL server")
}

// runFile reads and executes a source file, exiting with status 1 on any
// failure: unreadable file, parse error, or runtime error.
func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Error: could not read %s: %v\n", path, err)
		os.Exit(1)
	}

	program, err := parser.Parse(string(src))
	if err != nil {
		redColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ev := eval.New(os.Stdout, &stdinLineReader{r: bufio.NewReader(os.Stdin)})
	if err := ev.Run(program); err != nil {
		redColor.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// serve listens on port and hands each accepted connection its own
// interactive REPL session, with its own Evaluator (own scope and function
// table) so clients can't see each other's state.
func serve(port string) {
	ln, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Error: could not listen on :%s: %v\n", port, err)
		os.Exit(1)
	}
	defer ln.Close()
	cyanColor.Printf("easylang REPL server listening on :%s\n", port)

	for {
		conn, err := ln.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "Error: accept failed: %v\n", err)
			continue
		}
		go func(c net.Conn) {
			defer c.Close()
			repl.New(banner, version, "easylang> ").Start(c, c)
		}(conn)
	}
}

// stdinLineReader adapts a buffered stdin to eval.LineReader for batch file
// runs, where `read` statements have no readline session to share.
type stdinLineReader struct {
	r *bufio.Reader
}

func (s *stdinLineReader) ReadLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
