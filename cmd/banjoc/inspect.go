package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/banjo-lang/banjoc/internal/sir"
	"github.com/banjo-lang/banjoc/internal/workspace"
)

var inspectCommands = []string{":help", ":module", ":symbols", ":complete", ":quit"}

// runInspect loads file into a Workspace and opens a liner-backed REPL for
// poking at its symbol table and completion engine: :module prints the
// resolved module path, :symbols dumps the module's top-level bindings,
// :complete <offset> runs a completion request at that byte offset.
func runInspect(file, configPath string) int {
	cfg, err := loadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		return 1
	}

	entryPoints, err := addSearchPathsAndEntryPoints(cfg, []string{file})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		return 1
	}

	ws := workspace.New(cfg, stubParse)
	defer ws.Close()
	if err := ws.Initialize(entryPoints); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
		return 1
	}
	printReports(ws.Mgr.Reports.Reports())

	f, ok := ws.FindFile(absPathOrSelf(file))
	if !ok {
		fmt.Fprintf(os.Stderr, "%s: %s did not load into the workspace\n", red("Error"), file)
		return 1
	}

	line := liner.NewLiner()
	defer line.Close()
	line.SetCompleter(func(s string) (c []string) {
		for _, cmd := range inspectCommands {
			if strings.HasPrefix(cmd, s) {
				c = append(c, cmd)
			}
		}
		return c
	})

	fmt.Printf("%s %s\n", bold("banjoc inspect"), f.ModulePath.String())
	fmt.Println("Type :help for commands, :quit to exit")

	for {
		input, err := line.Prompt("banjoc> ")
		if err == io.EOF {
			fmt.Println()
			break
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", red("Error"), err)
			continue
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if input == ":quit" || input == ":q" {
			break
		}
		handleInspectCommand(ws, f, input)
	}
	return 0
}

func handleInspectCommand(ws *workspace.Workspace, f *workspace.File, input string) {
	switch {
	case input == ":help":
		fmt.Println("Commands:")
		fmt.Println("  :module          print the resolved module path")
		fmt.Println("  :symbols         list the module's top-level bindings")
		fmt.Println("  :complete <n>    run completion at byte offset n")
		fmt.Println("  :quit            exit")

	case input == ":module":
		fmt.Println(f.ModulePath.String())

	case input == ":symbols":
		dumpSymbols(ws, f)

	case strings.HasPrefix(input, ":complete"):
		parts := strings.Fields(input)
		if len(parts) < 2 {
			fmt.Println("Usage: :complete <offset>")
			return
		}
		offset, err := strconv.Atoi(parts[1])
		if err != nil {
			fmt.Printf("%s: offset must be an integer\n", red("Error"))
			return
		}
		dumpCompletion(ws, f, offset)

	default:
		fmt.Printf("Unknown command: %s\n", input)
	}
}

func dumpSymbols(ws *workspace.Workspace, f *workspace.File) {
	mod, ok := ws.Mgr.Unit.Get(f.ModulePath)
	if !ok {
		fmt.Printf("%s: module no longer loaded\n", red("Error"))
		return
	}
	mod.Root.Table.Each(func(name string, sym sir.Symbol) {
		fmt.Printf("  %s %s\n", cyan(name), sym.Kind())
	})
}

func dumpCompletion(ws *workspace.Workspace, f *workspace.File, offset int) {
	items, err := ws.Complete(f.Path, offset)
	if err != nil {
		fmt.Printf("%s: %v\n", red("Error"), err)
		return
	}
	for _, it := range items {
		detail := ""
		if it.LabelDetails != nil {
			detail = it.LabelDetails.Detail
		}
		fmt.Printf("  %s %s\n", cyan(it.Label), yellow(detail))
	}
}

func absPathOrSelf(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}
