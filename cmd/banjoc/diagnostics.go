package main

import (
	"fmt"
	"os"

	"github.com/banjo-lang/banjoc/internal/report"
)

// printReports renders every accumulated report to stderr, colorized by
// severity, following the compiler CLI's red/yellow diagnostic convention.
func printReports(reports []*report.Report) {
	for _, r := range reports {
		label := red("error")
		if r.Type == report.Warning {
			label = yellow("warning")
		}
		if r.Span != nil {
			fmt.Fprintf(os.Stderr, "%s[%s]: %s\n  --> %s\n", label, r.Code, r.Message, r.Span.Start.String())
		} else {
			fmt.Fprintf(os.Stderr, "%s[%s]: %s\n", label, r.Code, r.Message)
		}
		for _, n := range r.Notes {
			if n.Span != nil {
				fmt.Fprintf(os.Stderr, "  %s %s (%s)\n", cyan("note:"), n.Message, n.Span.Start.String())
			} else {
				fmt.Fprintf(os.Stderr, "  %s %s\n", cyan("note:"), n.Message)
			}
		}
	}
}
