package ui

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

// PagerOptions configures paging for one command.
type PagerOptions struct {
	// NoPager disables the pager (--no-pager).
	NoPager bool
}

// shouldUsePager pages only when writing to an interactive stdout.
func shouldUsePager(w io.Writer, opts PagerOptions) bool {
	if opts.NoPager || os.Getenv("CZ_NO_PAGER") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok || f != os.Stdout {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// pagerCommand checks CZ_PAGER, then PAGER, then falls back to less.
func pagerCommand() string {
	if p := os.Getenv("CZ_PAGER"); p != "" {
		return p
	}
	if p := os.Getenv("PAGER"); p != "" {
		return p
	}
	return "less"
}

func terminalHeight() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	_, height, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return height
}

func contentHeight(content string) int {
	if content == "" {
		return 0
	}
	return strings.Count(content, "\n") + 1
}

// ToPager writes content to w, through a pager when w is an interactive
// stdout and content is taller than the terminal.
func ToPager(w io.Writer, content string, opts PagerOptions) error {
	if !shouldUsePager(w, opts) {
		_, err := fmt.Fprint(w, content)
		return err
	}

	if h := terminalHeight(); h > 0 && contentHeight(content) <= h-1 {
		_, err := fmt.Fprint(w, content)
		return err
	}

	parts := strings.Fields(pagerCommand())
	if len(parts) == 0 {
		_, err := fmt.Fprint(w, content)
		return err
	}

	cmd := exec.Command(parts[0], parts[1:]...) //nolint:gosec // G204: pager is user-chosen
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	// -R keeps colours, -F exits when the content fits, -X keeps the screen
	if os.Getenv("LESS") == "" {
		cmd.Env = append(os.Environ(), "LESS=-RFX")
	}
	return cmd.Run()
}
