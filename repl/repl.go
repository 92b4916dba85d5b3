/*
File    : oxymix/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the interpreter.
The REPL accumulates input across multiple lines until every opening
brace has a matching close, so a multi-line function or class
definition can be typed one line at a time, then evaluates the whole
chunk against a single evaluator instance that persists across turns.
*/
package repl

import (
	"bufio"
	"io"
	"strings"

	"github.com/akashmaji946/oxymix/eval"
	"github.com/akashmaji946/oxymix/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is a configured, reusable Read-Eval-Print Loop session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl builds a Repl with the given display configuration.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type your code; blank lines (or a matched brace) submit it.")
	cyanColor.Fprintf(writer, "%s\n", "/exit to quit, /scope to dump the current environment.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop against reader/writer until the user exits
// or the input stream ends. A single evaluator instance is reused
// across turns so variable and function state persists.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	evaluator := eval.NewEvaluator()
	evaluator.SetWriter(writer)
	evaluator.SetErrWriter(writer)

	rl, err := readline.NewEx(&readline.Config{
		Prompt: r.Prompt,
		Stdin:  io.NopCloser(reader),
		Stdout: writer,
	})
	if err != nil {
		r.runPlain(reader, writer, evaluator)
		return
	}
	defer rl.Close()

	for {
		chunk, ok := r.readMultiLineInput(rl)
		if !ok {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		trimmed := strings.TrimSpace(chunk)
		if trimmed == "" {
			continue
		}
		if trimmed == "/exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		if trimmed == "/scope" {
			r.printScope(writer, evaluator)
			continue
		}
		rl.SaveHistory(trimmed)
		r.executeWithRecovery(writer, chunk, evaluator)
	}
}

// readMultiLineInput accumulates lines from rl until brace_count returns
// to zero and a non-empty line has been seen, or two consecutive blank
// lines are typed while no brace is open - mirroring the reference
// REPL's accumulation heuristic (input that starts with `if` and
// contains no `else` keeps prompting for more lines until an `else`
// arrives or two consecutive blank lines end it, since the language has
// no trailing-else lookahead at the statement level).
func (r *Repl) readMultiLineInput(rl *readline.Instance) (string, bool) {
	var input strings.Builder
	braceCount := 0
	consecutiveEmpty := 0
	rl.SetPrompt(r.Prompt)

	for {
		line, err := rl.Readline()
		if err != nil {
			if input.Len() == 0 {
				return "", false
			}
			return input.String(), true
		}

		trimmedLine := strings.TrimSpace(line)
		for _, ch := range line {
			switch ch {
			case '{':
				braceCount++
			case '}':
				braceCount--
			}
		}
		input.WriteString(line)
		input.WriteByte('\n')

		if trimmedLine == "" {
			consecutiveEmpty++
			if braceCount == 0 && consecutiveEmpty >= 2 {
				return input.String(), true
			}
			rl.SetPrompt(".. ")
			continue
		}
		consecutiveEmpty = 0

		if braceCount > 0 {
			rl.SetPrompt(".. ")
			continue
		}
		if braceCount < 0 {
			return input.String(), true
		}

		full := strings.TrimSpace(input.String())
		if strings.HasPrefix(full, "if") && !strings.Contains(full, "else") {
			rl.SetPrompt(".. ")
			continue
		}
		return input.String(), true
	}
}

// runPlain is a readline-free fallback (used when terminal setup fails,
// e.g. a non-interactive pipe) driven by a bare bufio.Scanner.
func (r *Repl) runPlain(reader io.Reader, writer io.Writer, evaluator *eval.Evaluator) {
	scanner := bufio.NewScanner(reader)
	var input strings.Builder
	braceCount := 0
	for scanner.Scan() {
		line := scanner.Text()
		for _, ch := range line {
			switch ch {
			case '{':
				braceCount++
			case '}':
				braceCount--
			}
		}
		input.WriteString(line)
		input.WriteByte('\n')
		if braceCount > 0 {
			continue
		}
		chunk := input.String()
		input.Reset()
		braceCount = 0
		trimmed := strings.TrimSpace(chunk)
		if trimmed == "" {
			continue
		}
		if trimmed == "/exit" {
			break
		}
		if trimmed == "/scope" {
			r.printScope(writer, evaluator)
			continue
		}
		r.executeWithRecovery(writer, chunk, evaluator)
	}
	writer.Write([]byte("Good Bye!\n"))
}

// printScope dumps the evaluator's current variable bindings as YAML -
// a debugging aid, not a language feature.
func (r *Repl) printScope(writer io.Writer, evaluator *eval.Evaluator) {
	snapshot := make(map[string]string)
	for name, value := range evaluator.Environment.All() {
		snapshot[name] = value.String()
	}
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		redColor.Fprintf(writer, "[REPL ERROR] could not render scope: %v\n", err)
		return
	}
	cyanColor.Fprintf(writer, "%s", string(out))
}

// executeWithRecovery parses and evaluates one chunk, recovering from
// any panic so a single bad line never kills the session.
func (r *Repl) executeWithRecovery(writer io.Writer, chunk string, evaluator *eval.Evaluator) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	par := parser.NewParser(chunk)
	program := par.Parse()

	if par.HasErrors() {
		for _, msg := range par.GetErrors() {
			redColor.Fprintf(writer, "[PARSE ERROR] %s\n", msg)
		}
		return
	}

	result := evaluator.Eval(program)
	if result != nil {
		yellowColor.Fprintf(writer, "%s\n", result.String())
	}
}
