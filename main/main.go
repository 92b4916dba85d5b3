/*
File    : oxymix/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the interpreter. It provides three
modes of operation:
 1. REPL Mode (default): interactive Read-Eval-Print Loop
 2. File Mode: execute a source file from disk
 3. Server Mode: accept TCP connections, each running its own REPL
    session with its own evaluator
*/
package main

import (
	"net"
	"os"

	"github.com/akashmaji946/oxymix/eval"
	"github.com/akashmaji946/oxymix/parser"
	"github.com/akashmaji946/oxymix/repl"
	"github.com/akashmaji946/oxymix/source"
	"github.com/fatih/color"
)

var VERSION = "v1.0.0"
var AUTHOR = "akashmaji(@iisc.ac.in)"
var LICENCE = "MIT"
var PROMPT = "oxymix >>> "

var BANNER = `
   ▄▄▄  ▄▄ ▄▄  ▄▄   ▄▄  ▄▄▄▄▄  ▄▄▄  ▄▄   ▄▄
  ██ ██  ▀█▀   ▀█ █▀  ██ ▄ ██ ██ ██  ▀█ █▀
  ██ ██   █     █▄█   ██   ██ ██ ██   ▄█▄
   ▀▀▀   ▄█▄     █     ▀▀▀▀▀   ▀▀▀   █▀ ▀█
`

var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// argMode classifies os.Args[1] into a dispatch mode. Split out of main
// so the dispatch decision itself - which flag maps to which mode - can
// be exercised by a test without going through os.Exit.
func argMode(arg string) string {
	switch {
	case arg == "--help" || arg == "-h":
		return "help"
	case arg == "--version" || arg == "-v":
		return "version"
	case arg == "--test":
		return "test"
	case arg == "server":
		return "server"
	default:
		return "file"
	}
}

func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		switch argMode(arg) {
		case "help":
			showHelp()
			os.Exit(0)
		case "version":
			showVersion()
			os.Exit(0)
		case "test":
			// Harness hook: exit cleanly without reading or evaluating anything.
			os.Exit(0)
		case "server":
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] missing port for server mode. Usage: oxymix server <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		default:
			runFile(arg)
			return
		}
	}

	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("oxymix - an interpreted, statically-typed toy language")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  oxymix                    Start interactive REPL mode")
	yellowColor.Println("  oxymix <path-to-file>     Execute a source file")
	yellowColor.Println("  oxymix server <port>      Start a REPL server on the given port")
	yellowColor.Println("  oxymix --help             Display this help message")
	yellowColor.Println("  oxymix --version          Display version information")
	yellowColor.Println("  oxymix --test             Exit cleanly (harness hook)")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  /exit                     Exit the REPL")
	yellowColor.Println("  /scope                    Show current variable bindings")
}

func showVersion() {
	cyanColor.Println("oxymix - an interpreted, statically-typed toy language")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads, strips comments from, and executes a source file.
func runFile(fileName string) {
	content, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file %q: %v\n", fileName, err)
		os.Exit(1)
	}
	executeFileWithRecovery(source.StripComments(string(content)))
}

// startServer listens on port, handing each accepted connection its
// own goroutine and its own REPL session (and so its own evaluator -
// no state is shared between clients).
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to listen on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("oxymix REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}

// executeFileWithRecovery parses and evaluates cleaned source text,
// exiting nonzero on a parse failure or a panic escaping evaluation.
func executeFileWithRecovery(cleaned string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	if len(cleaned) == 0 {
		return
	}

	par := parser.NewParser(cleaned)
	program := par.Parse()

	if par.HasErrors() {
		for _, msg := range par.GetErrors() {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", msg)
		}
		os.Exit(1)
	}

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(os.Stdout)
	evaluator.SetErrWriter(os.Stderr)
	evaluator.Eval(program)
}
