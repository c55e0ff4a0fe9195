// Package jj implements `hermes jj`, the wrapped jj invocation. Flag parsing
// is disabled so every jj flag travels through untouched; the few wrapper
// flags are peeled off by hand before forwarding.
package jj

import (
	"fmt"
	"os"
	"strconv"

	"github.com/flarebyte/hermes-epitome/internal/config"
	"github.com/flarebyte/hermes-epitome/internal/engine"
	"github.com/spf13/cobra"
)

// Cmd represents the `hermes jj` command.
var Cmd = &cobra.Command{
	Use:                "jj [subcommand] [args...]",
	Short:              "Run a jj subcommand and compact its output",
	DisableFlagParsing: true,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, rest, err := splitWrapperFlags(args)
		if err != nil {
			return err
		}
		if len(rest) == 0 {
			return fmt.Errorf("missing jj subcommand")
		}
		cfg, err := resolveConfig(opts.configPath)
		if err != nil {
			return err
		}
		return engine.Run(cmd.Context(), rest[0], rest[1:], engine.Options{
			Verbose: opts.verbose,
			Limit:   opts.limit,
			Config:  cfg,
		})
	},
}

type wrapperOpts struct {
	verbose    bool
	limit      int
	configPath string
}

// splitWrapperFlags separates wrapper-owned flags from the argument list
// forwarded to jj. Wrapper flags are recognized anywhere in the list so
// `hermes jj log -n 3` reads naturally; a leading "--" ends the scan and
// forwards everything after it untouched, for jj arguments that collide
// with a wrapper flag (`hermes jj -- describe -m -v`).
func splitWrapperFlags(args []string) (wrapperOpts, []string, error) {
	var opts wrapperOpts
	var rest []string
	i := 0
	for ; i < len(args); i++ {
		a := args[i]
		if a == "--" && len(rest) == 0 {
			rest = append(rest, args[i+1:]...)
			return opts, rest, nil
		}
		switch a {
		case "-v", "--verbose":
			opts.verbose = true
			continue
		case "--wrapper-config":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("missing value for %s", a)
			}
			i++
			opts.configPath = args[i]
			continue
		case "-n", "--limit":
			if i+1 >= len(args) {
				return opts, nil, fmt.Errorf("missing value for %s", a)
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil || n < 1 {
				return opts, nil, fmt.Errorf("invalid value for --limit: %s", args[i])
			}
			opts.limit = n
			continue
		}
		rest = append(rest, a)
	}
	return opts, rest, nil
}

// resolveConfig loads an explicit config path, or the first of hermes.cue,
// hermes.yaml, hermes.yml found in the working directory, or the defaults.
// A file that exists but fails to parse is an error, not a silent fallback.
func resolveConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	for _, candidate := range []string{"hermes.cue", "hermes.yaml", "hermes.yml"} {
		if _, err := os.Stat(candidate); err == nil {
			return config.Load(candidate)
		}
	}
	return config.Default(), nil
}
