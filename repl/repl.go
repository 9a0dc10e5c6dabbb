/*
File    : golox/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop: a readline session,
banner, and colorized output, with per-line execution wired onto a
single interp.Interpreter so a REPL session keeps one persistent
Evaluator across lines, the way file-mode wiring keeps one per process.
*/
package repl

import (
	"bufio"
	"io"
	"strings"

	"github.com/akashmaji946/golox/interp"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// New creates a Repl with the given banner/version/author/line/license/prompt.
func New(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage instructions to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to golox!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop over writer until '.exit' or EOF.
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	session := interp.New(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		rl.SaveHistory(line)

		r.executeWithRecovery(writer, line, session)
	}
}

// StartSession runs the REPL loop over an arbitrary reader/writer pair
// (e.g. a TCP connection) using plain line buffering rather than
// readline, since line-editing escape sequences don't make sense over a
// raw socket. Used by the server mode's per-connection goroutine.
func (r *Repl) StartSession(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)
	io.WriteString(writer, r.Prompt)

	session := interp.New(writer)
	sc := bufio.NewScanner(reader)
	for sc.Scan() {
		line := strings.Trim(sc.Text(), " \n\t\r")
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return
		}
		if line != "" {
			r.executeWithRecovery(writer, line, session)
		}
		io.WriteString(writer, r.Prompt)
	}
	writer.Write([]byte("Good Bye!\n"))
}

// executeWithRecovery runs one line through the session's Interpreter,
// recovering from panics (environment invariant violations) so a single
// bad line doesn't kill the REPL, unlike file mode which exits on error.
func (r *Repl) executeWithRecovery(writer io.Writer, line string, session *interp.Interpreter) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	result, err := session.Run(line)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}
	if result != nil {
		yellowColor.Fprintf(writer, "%s\n", result.String())
	}
}
