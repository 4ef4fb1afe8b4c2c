// Command lambdapi is the CLI entry point for the interpreter: it starts
// the REPL by default, or runs/checks a source file given as an argument.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/lambdapi/lambdapi/internal/repl"
)

// Version is set by ldflags during build.
var Version = "dev"

var (
	red  = color.New(color.FgRed).SprintFunc()
	bold = color.New(color.Bold).SprintFunc()
)

func main() {
	versionFlag := flag.Bool("version", false, "print version information")
	helpFlag := flag.Bool("help", false, "show help")
	flag.Parse()

	if *versionFlag {
		fmt.Printf("lambdapi %s\n", bold(Version))
		return
	}
	if *helpFlag {
		printHelp()
		return
	}

	command := "repl"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	switch command {
	case "repl":
		repl.New(Version).Start(os.Stdout)

	case "run":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing file argument\n", red("Error"))
			fmt.Println("Usage: lambdapi run <file>")
			os.Exit(1)
		}
		runFile(flag.Arg(1), true)

	case "check":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing file argument\n", red("Error"))
			fmt.Println("Usage: lambdapi check <file>")
			os.Exit(1)
		}
		runFile(flag.Arg(1), false)

	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("Error"), command)
		printHelp()
		os.Exit(1)
	}
}

func runFile(filename string, printResults bool) {
	content, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read file %q: %v\n", red("Error"), filename, err)
		os.Exit(1)
	}

	results, err := repl.RunSource(content, filename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", red(renderErr(err)))
		os.Exit(1)
	}
	if printResults {
		for _, r := range results {
			fmt.Println(r)
		}
	}
}

func renderErr(err error) string {
	type renderer interface{ Render() string }
	if rr, ok := err.(renderer); ok {
		return rr.Render()
	}
	return err.Error()
}

func printHelp() {
	fmt.Println(bold("lambdapi — a dependently-typed lambda calculus interpreter"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  lambdapi [command] [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  repl          Start the interactive REPL (default)")
	fmt.Println("  run <file>    Execute every statement in a file")
	fmt.Println("  check <file>  Type-check a file without printing intermediate results")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --version     Print version information")
	fmt.Println("  --help        Show this help message")
}
