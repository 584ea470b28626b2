// Package repl implements the interactive question shell.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"gemini-qa/internal/qa"
)

var (
	banner       = color.New(color.FgCyan, color.Bold)
	answerHeader = color.New(color.FgGreen, color.Bold)
	noteColor    = color.New(color.Faint)
)

// REPL reads questions one line at a time, runs the pipeline and prints
// answers until EOF or a quit word.
type REPL struct {
	qa  *qa.Service
	in  io.Reader
	out io.Writer
}

// New builds a shell over the given streams.
func New(svc *qa.Service, in io.Reader, out io.Writer) *REPL {
	return &REPL{qa: svc, in: in, out: out}
}

// Run blocks until the user quits, input ends or reading fails.
func (r *REPL) Run(ctx context.Context) error {
	banner.Fprintln(r.out, "LLM Question & Answering System")
	banner.Fprintln(r.out, "Powered by Google Gemini")
	fmt.Fprintln(r.out, "\nWelcome! Ask me anything, or type 'quit' to exit.")

	scanner := bufio.NewScanner(r.in)
	for {
		fmt.Fprint(r.out, "\nYour question: ")
		if !scanner.Scan() {
			break
		}
		question := strings.TrimSpace(scanner.Text())

		if question == "" {
			fmt.Fprintln(r.out, "Please enter a question.")
			continue
		}
		switch strings.ToLower(question) {
		case "quit", "exit", "q":
			fmt.Fprintln(r.out, "\nThank you for using the Q&A system. Goodbye!")
			return nil
		}

		res := r.qa.Ask(ctx, question)
		noteColor.Fprintf(r.out, "\n[Preprocessed Question]: %s\n", res.Processed)
		answerHeader.Fprintln(r.out, "\nAnswer:")
		fmt.Fprintln(r.out, res.Answer)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
