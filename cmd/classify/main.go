// Command classify は業種分類コードの説明を表示します。
//
// 使い方:
//
//	classify <sic|naics|gics> <code>
//	classify -children <sic|naics|gics> <code>
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"market_backend/internal/feature/classification/schemes"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("classify", flag.ContinueOnError)
	fs.SetOutput(stderr)
	children := fs.Bool("children", false, "list the direct children of the code")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(stderr, "usage: classify [-children] <sic|naics|gics> <code>")
		return 2
	}

	catalog, err := schemes.NewCatalog()
	if err != nil {
		fmt.Fprintln(stderr, "load schemes:", err)
		return 1
	}
	s, err := catalog.Scheme(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "%v (available: %s)\n", err, strings.Join(catalog.Names(), ", "))
		return 2
	}

	if *children {
		entries, ok, err := s.Children(fs.Arg(1))
		return report(stdout, stderr, ok, err, func() {
			for _, e := range entries {
				fmt.Fprintf(stdout, "%s\t%s\n", e.Code, e.Description)
			}
		})
	}

	entry, ok, err := s.Describe(fs.Arg(1))
	return report(stdout, stderr, ok, err, func() {
		fmt.Fprintln(stdout, entry.Description)
	})
}

func report(stdout, stderr io.Writer, ok bool, err error, print func()) int {
	switch {
	case errors.Is(err, schemes.ErrInvalidCode):
		fmt.Fprintln(stderr, err)
		return 2
	case err != nil:
		fmt.Fprintln(stderr, err)
		return 1
	case !ok:
		fmt.Fprintln(stdout, "not found")
		return 1
	}
	print()
	return 0
}
