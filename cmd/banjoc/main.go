// Command banjoc is the compiler CLI: a semantic-analysis front end
// (compile), a minimal LSP completion demo (lsp), and an interactive
// symbol/SIR inspector (inspect).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
)

var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	var (
		versionFlag = flag.Bool("version", false, "print version information")
		helpFlag    = flag.Bool("help", false, "show help")
		configFlag  = flag.String("config", "", "path to a YAML workspace config")
		targetFlag  = flag.String("target", "", "target triple, e.g. x86_64-linux-gnu")
		optFlag     = flag.String("opt", "default", "optimization level: none|default|aggressive")
		emitFlag    = flag.String("emit", "report", "compile output: report|object|executable")
	)
	flag.Parse()

	if *versionFlag {
		printVersion()
		return
	}
	if *helpFlag || flag.NArg() == 0 {
		printHelp()
		return
	}

	command := flag.Arg(0)
	switch command {
	case "compile":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing file argument\n", red("Error"))
			fmt.Println("Usage: banjoc [--target T] [--opt LEVEL] [--emit report|object|executable] compile <files...>")
			os.Exit(1)
		}
		os.Exit(runCompile(flag.Args()[1:], *configFlag, *targetFlag, *optFlag, *emitFlag))

	case "lsp":
		os.Exit(runLSP(*configFlag))

	case "inspect":
		if flag.NArg() < 2 {
			fmt.Fprintf(os.Stderr, "%s: missing file argument\n", red("Error"))
			fmt.Println("Usage: banjoc inspect <file>")
			os.Exit(1)
		}
		os.Exit(runInspect(flag.Arg(1), *configFlag))

	default:
		fmt.Fprintf(os.Stderr, "%s: unknown command %q\n", red("Error"), command)
		printHelp()
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("banjoc %s\n", bold(Version))
	if Commit != "unknown" {
		fmt.Printf("commit: %s\n", Commit)
	}
}

func printHelp() {
	fmt.Println(bold("banjoc - the banjo compiler"))
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  banjoc <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Printf("  %s <files...>   Run semantic analysis and report diagnostics\n", cyan("compile"))
	fmt.Printf("  %s                Serve textDocument/completion over stdin/stdout\n", cyan("lsp"))
	fmt.Printf("  %s <file>       Open an interactive symbol/SIR inspector\n", cyan("inspect"))
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --version        Print version information")
	fmt.Println("  --help           Show this help message")
	fmt.Println("  --config <path>  Load a YAML workspace config")
	fmt.Println("  --target <t>     Target triple (compile only)")
	fmt.Println("  --opt <level>    none|default|aggressive (compile only)")
	fmt.Println("  --emit <kind>    report|object|executable (compile only)")
}
