package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"curmap/internal/presentation/tui"
)

// confirm asks the user to approve a destructive action. Only an explicit
// "y"/"yes" proceeds; anything else (including plain Enter) declines.
// A declined confirmation is a normal no-op, not an error.
func confirm(in io.Reader, prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)
	reader := bufio.NewReader(in)
	text, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "y", "yes":
		return true
	}
	return false
}

// printMarkdown writes markdown to stdout, glamour-rendered when stdout is a
// terminal (or when forced), raw otherwise so redirection stays clean.
func printMarkdown(markdown string, forceRender bool) {
	if forceRender || term.IsTerminal(int(os.Stdout.Fd())) {
		render := tui.NewRenderer()
		if out, err := render(markdown); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(markdown)
}
