// Package diagnose implements `hermes diagnose`, a one-line JSON health
// report of the environment the wrapper depends on: backend binaries, the
// enclosing repository, and the configuration file.
package diagnose

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/spf13/cobra"

	"github.com/flarebyte/hermes-epitome/internal/config"
)

var flagConfig string

type report struct {
	JJBinary   string   `json:"jj_binary,omitempty"`
	GitBinary  string   `json:"git_binary,omitempty"`
	GitRepo    bool     `json:"git_repo"`
	GitHead    string   `json:"git_head,omitempty"`
	JJRepo     bool     `json:"jj_repo"`
	Colocated  bool     `json:"colocated"`
	ConfigPath string   `json:"config_path,omitempty"`
	ConfigOK   bool     `json:"config_ok"`
	Errors     []string `json:"errors,omitempty"`
}

// Cmd implements `hermes diagnose`.
var Cmd = &cobra.Command{
	Use:           "diagnose",
	Short:         "Check backend binaries, repository and configuration",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		r := buildReport(flagConfig)
		b, err := json.Marshal(r)
		if err != nil {
			return err
		}
		// Success output must be a single JSON line.
		if _, err := fmt.Fprintln(os.Stdout, string(b)); err != nil {
			return err
		}
		return nil
	},
}

func buildReport(cfgPath string) report {
	var r report
	if p, err := exec.LookPath("jj"); err == nil {
		r.JJBinary = p
	} else {
		r.Errors = append(r.Errors, "jj not found on PATH")
	}
	if p, err := exec.LookPath("git"); err == nil {
		r.GitBinary = p
	}

	r.GitRepo, r.GitHead, r.JJRepo, r.Colocated = detectRepos(".")

	if cfgPath != "" {
		r.ConfigPath = cfgPath
		if _, err := config.Load(cfgPath); err != nil {
			r.Errors = append(r.Errors, err.Error())
		} else {
			r.ConfigOK = true
		}
	} else {
		r.ConfigOK = true
	}
	return r
}

// detectRepos walks up from dir looking for a git repository and a jj store.
// Both present at the same root means a colocated checkout.
func detectRepos(dir string) (gitRepo bool, gitHead string, jjRepo, colocated bool) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	gitRoot := ""
	if err == nil {
		gitRepo = true
		if wt, werr := repo.Worktree(); werr == nil {
			gitRoot = wt.Filesystem.Root()
		}
		if head, herr := repo.Head(); herr == nil {
			gitHead = fmt.Sprintf("%s %s", head.Name().Short(), head.Hash().String()[:8])
		}
	}
	if root := findUp(dir, ".jj"); root != "" {
		jjRepo = true
		colocated = gitRepo && root == gitRoot
	}
	return gitRepo, gitHead, jjRepo, colocated
}

func findUp(dir, name string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		if fi, err := os.Stat(filepath.Join(abs, name)); err == nil && fi.IsDir() {
			return abs
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return ""
		}
		abs = parent
	}
}

func init() {
	Cmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Config path to validate (.cue or .yaml)")
}
