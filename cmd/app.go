// Package cmd implements the CLI application to manage a checkbook register.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	rcheckbook "github.com/bryceac/rcheckbook"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands lists every subcommand of the checkbook CLI.
// A main package will call Register on each, and Execute on the user-selected one.
var Commands = []subcommands.Command{
	&addCmd{},
	&listCmd{},
	&removeCmd{},
	&updateCmd{},
	&importCmd{},
	&exportCmd{},
	&summaryCmd{},
	&createCmd{},
}

// registerEnv overrides the default register location; main loads it from the
// environment or a .env file.
const registerEnv = "RCHECKBOOK_REGISTER"

const defaultRegister = "~/.checkbook/register.db"

func defaultRegisterPath() string {
	if p := os.Getenv(registerEnv); p != "" {
		return p
	}
	return defaultRegister
}

// expandPath resolves a leading tilde. Path resolution happens here at the
// process boundary only; the core never sees an unresolved path.
func expandPath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

// registerFlag declares the register path flag shared by every subcommand.
func registerFlag(f *flag.FlagSet, target *string) {
	f.StringVar(target, "f", defaultRegisterPath(), "Path to the register database")
}

func openStore(path string) (*rcheckbook.Store, error) {
	return rcheckbook.OpenStore(expandPath(path))
}

// printMarkdown renders a markdown document for the terminal, falling back to
// the raw text when the renderer is unavailable.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(120))
	if err == nil {
		if out, rerr := r.Render(doc); rerr == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Print(doc)
}
