// Command readwise is the process bootstrap (§1, out of scope for the
// core itself, but the thing that exercises it): it loads config, wires
// the four §6 collaborators to concrete adapters, registers the
// non-interactive "tool call" dispatcher, and either enters the
// full-screen core loop or leaves cobra's usual help/dispatch to run
// depending on whether stdout is a TTY.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/readwiseio/readwise-cli/internal/app"
	"github.com/readwiseio/readwise-cli/internal/auth"
	"github.com/readwiseio/readwise-cli/internal/catalog"
	"github.com/readwiseio/readwise-cli/internal/cli"
	"github.com/readwiseio/readwise-cli/internal/config"
	"github.com/readwiseio/readwise-cli/internal/debug"
	"github.com/readwiseio/readwise-cli/internal/mcp"
	"github.com/readwiseio/readwise-cli/internal/term"
)

var version = "dev"

func main() {
	configPath := flagValue("--config")
	debugMode := hasFlag("--debug")
	logLevel := flagValueOr("--log-level", "info")
	debug.InitializeLogging(logLevel, debugMode)

	cfg, err := config.Load(configPath)
	if err != nil {
		fail(err)
	}
	if err := cfg.Validate(); err != nil {
		fail(err)
	}

	svc := mcp.NewHTTPService(cfg.Endpoint, auth.StaticTokenSource{Token: cfg.ReadwiseToken}, "readwise-cli", version)
	cachedCatalog := catalog.New(svc, cfg.CachePath())

	ctx := context.Background()
	tools, err := cachedCatalog.ListCatalog(ctx)
	if err != nil {
		fail(err)
	}

	root := &cobra.Command{
		Use:     "readwise",
		Short:   "Interactive and scriptable client for the Readwise Reader tool catalog",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isInteractive() {
				return cmd.Help()
			}
			return app.New(term.New(), svc, tools, "connected to "+cfg.Endpoint).Run(cmd.Context())
		},
	}
	root.PersistentFlags().String("config", "", "path to a YAML config file")
	root.PersistentFlags().Bool("debug", false, "enable debug logging")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.AddCommand(cli.BuildRootCommand(tools, svc, cfg.RequestTimeout))

	if err := root.ExecuteContext(ctx); err != nil {
		fail(err)
	}
}

// isInteractive implements §6's "When stdout is not a TTY, the
// application falls back to its non-interactive sub-command dispatcher."
func isInteractive() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// flagValue/flagValueOr/hasFlag do a minimal pre-parse of a handful of
// global flags so config can be loaded before the heavier "tool call"
// subcommand tree (built from the live catalog) is constructed; cobra
// itself still validates and parses everything once Execute runs.
func flagValue(name string) string {
	return flagValueOr(name, "")
}

func flagValueOr(name, def string) string {
	for i, a := range os.Args {
		if a == name && i+1 < len(os.Args) {
			return os.Args[i+1]
		}
		if v, ok := cutPrefix(a, name+"="); ok {
			return v
		}
	}
	return def
}

func hasFlag(name string) bool {
	for _, a := range os.Args {
		if a == name {
			return true
		}
	}
	return false
}

func cutPrefix(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && s[:len(prefix)] == prefix {
		return s[len(prefix):], true
	}
	return "", false
}
