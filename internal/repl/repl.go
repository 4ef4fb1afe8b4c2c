// Package repl implements the interactive shell: it owns line editing,
// prompting, and result formatting, and delegates every semantic decision
// to internal/driver.
package repl

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/lambdapi/lambdapi/internal/context"
	"github.com/lambdapi/lambdapi/internal/driver"
	"github.com/lambdapi/lambdapi/internal/lexer"
	"github.com/lambdapi/lambdapi/internal/parser"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	dim   = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

// REPL is the read-eval-print loop over a single persistent Context, the
// only long-lived mutable state in the interpreter.
type REPL struct {
	cfg     *Config
	ctx     *context.Context
	history []string
	version string
}

// New creates a REPL with default configuration, loading .lambdapirc.yaml
// from the user's home directory if present (from the working directory
// when the home directory cannot be determined; see Config/LoadConfig).
func New(version string) *REPL {
	cfg, err := LoadConfig(defaultConfigPath())
	if err != nil {
		cfg = DefaultConfig()
	}
	return &REPL{cfg: cfg, ctx: context.New(), version: version}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".lambdapirc.yaml"
	}
	return filepath.Join(home, ".lambdapirc.yaml")
}

// Start runs the REPL loop, reading from the terminal and writing to out,
// until the user quits or the input stream hits EOF. Any other read error is
// fatal: the history is saved and the process exits with status 1.
func (r *REPL) Start(out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(true)

	historyFile := r.cfg.HistoryPath
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	line.SetCompleter(func(input string) (c []string) {
		for _, cmd := range []string{"def", "let", "eval", "show", "exit", ":help", ":show", ":history"} {
			if strings.HasPrefix(cmd, input) {
				c = append(c, cmd)
			}
		}
		return
	})

	fmt.Fprintf(out, "%s %s\n", bold("lambdapi"), bold(r.version))
	fmt.Fprintln(out, dim("Type :help for help, exit to quit"))
	fmt.Fprintln(out)

	prompt := r.cfg.Prompt
	fatal := false
loop:
	for {
		input, err := line.Prompt(prompt)
		if err == io.EOF {
			fmt.Fprintln(out, green("\nGoodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
			fatal = true
			break
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if input == "exit" || input == ":quit" || input == ":q" {
			fmt.Fprintln(out, green("Goodbye!"))
			break
		}
		if input == ":help" {
			r.printHelp(out)
			continue
		}
		if input == ":history" {
			r.printHistory(out)
			continue
		}
		if input == ":show" {
			r.evalStatement("show;", out)
			continue
		}

		// Statements may span multiple liner prompts; keep reading until the
		// buffered text contains a terminating ';'.
		for !strings.Contains(input, ";") {
			cont, err := line.Prompt(r.cfg.ContinuationPrompt)
			if err == io.EOF {
				fmt.Fprintln(out, red("\nIncomplete statement"))
				input = ""
				break
			}
			if err != nil {
				fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
				fatal = true
				break loop
			}
			input = input + "\n" + cont
		}
		if input == "" {
			continue
		}

		line.AppendHistory(input)
		r.history = append(r.history, input)
		r.evalStatement(input, out)
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
	if fatal {
		line.Close()
		os.Exit(1)
	}
}

func (r *REPL) evalStatement(input string, out io.Writer) {
	p := parser.New(lexer.New(lexer.Normalize([]byte(input))), "<repl>")
	stmt, err := p.ParseStatement()
	if err != nil {
		fmt.Fprintf(out, "%s\n", red(renderErr(err)))
		return
	}
	if stmt == nil {
		return
	}

	res, err := driver.Run(r.ctx, stmt)
	if err != nil {
		fmt.Fprintf(out, "%s\n", red(renderErr(err)))
		return
	}
	fmt.Fprintln(out, res.Display)
}

func renderErr(err error) string {
	type renderer interface{ Render() string }
	if rr, ok := err.(renderer); ok {
		return rr.Render()
	}
	return err.Error()
}

func (r *REPL) printHelp(out io.Writer) {
	fmt.Fprintln(out, bold("Commands:"))
	fmt.Fprintln(out, "  def <id> :: <expr>;   declare id of type expr")
	fmt.Fprintln(out, "  let <id> := <expr>;   bind id to expr, inferring its type")
	fmt.Fprintln(out, "  eval <expr>;          evaluate expr, printing its normal form")
	fmt.Fprintln(out, "  show;                 print the current context")
	fmt.Fprintln(out, "  :history              show input history")
	fmt.Fprintln(out, "  exit / :quit          quit")
}

func (r *REPL) printHistory(out io.Writer) {
	for i, h := range r.history {
		fmt.Fprintf(out, "%3d  %s\n", i+1, h)
	}
}

// RunSource parses and runs every statement in src in sequence against a
// fresh context, used by the `run` and `check` CLI subcommands. It returns
// the Display string of every statement executed, in order.
func RunSource(src []byte, file string) ([]string, error) {
	ctx := context.New()
	p := parser.New(lexer.New(lexer.Normalize(src)), file)
	var results []string
	for {
		stmt, err := p.ParseStatement()
		if err != nil {
			return nil, err
		}
		if stmt == nil {
			return results, nil
		}
		res, err := driver.Run(ctx, stmt)
		if err != nil {
			return nil, err
		}
		results = append(results, res.Display)
	}
}
