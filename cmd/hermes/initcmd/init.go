// Package initcmd implements `hermes init`, which installs usage
// instructions for coding agents into a CLAUDE.md file so wrapped jj
// invocations become the default.
package initcmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

var flagGlobal bool

const (
	beginMarker = "<!-- hermes:begin -->"
	endMarker   = "<!-- hermes:end -->"
)

const instructions = beginMarker + `
## Version control

Use ` + "`hermes jj`" + ` instead of calling ` + "`jj`" + ` directly. It runs
the same command and compacts the output while keeping every change id,
commit hash, bookmark and operation id.

- ` + "`hermes jj status`" + `, ` + "`hermes jj log`" + `, ` + "`hermes jj diff`" + `,
  ` + "`hermes jj show`" + `, ` + "`hermes jj op log`" + ` and
  ` + "`hermes jj bookmark list`" + ` print compact structured views.
- Mutating commands such as ` + "`hermes jj new`" + ` or ` + "`hermes jj rebase`" + `
  print a one-line confirmation on success and the full error on failure.
- Pass ` + "`-v`" + ` for untruncated output and ` + "`-n N`" + ` to change the
  entry limit. Anything hermes cannot compact faithfully is printed raw.
` + endMarker + "\n"

// Cmd represents the `hermes init` command.
var Cmd = &cobra.Command{
	Use:           "init",
	Short:         "Install agent instructions into CLAUDE.md",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "CLAUDE.md"
		if flagGlobal {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to resolve home directory: %v", err)
			}
			path = filepath.Join(home, ".claude", "CLAUDE.md")
		}
		updated, err := install(path)
		if err != nil {
			return err
		}
		if updated {
			fmt.Fprintf(os.Stdout, "ok ✓ instructions written to %s\n", path)
		} else {
			fmt.Fprintf(os.Stdout, "ok instructions already present in %s\n", path)
		}
		return nil
	},
}

// install appends the instruction block to path, creating the file and its
// directory as needed. A file that already carries the block is left alone.
func install(path string) (bool, error) {
	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to read %s: %v", path, err)
	}
	if strings.Contains(string(existing), beginMarker) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create directory for %s: %v", path, err)
	}
	content := string(existing)
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if content != "" {
		content += "\n"
	}
	content += instructions
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("failed to write %s: %v", path, err)
	}
	return true, nil
}

func init() {
	Cmd.Flags().BoolVar(&flagGlobal, "global", false, "Write to ~/.claude/CLAUDE.md instead of ./CLAUDE.md")
}
