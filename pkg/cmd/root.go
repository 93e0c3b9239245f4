package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/IKAMTeam/sql-formatter-1/pkg/config"
	"github.com/IKAMTeam/sql-formatter-1/pkg/consts"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Loader     config.Loader
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run registers the sqlfmt CLI application with the fx lifecycle. The
// application runs when fx starts and shuts fx down with the command's exit
// code once it returns.
//
// Global Flags:
//   - --config, -c: Project config file (defaults to sqlfmt.yaml, env SQLFMT_CONFIG)
//   - --verbose: Enable debug logging on stderr
//
// Example usage:
//
//	sqlfmt fmt -w db/
//	sqlfmt --config ci/sqlfmt.yaml fmt -l .
//	cat query.sql | sqlfmt fmt -
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := newApp(p.Version.Version, p.Loader, p.Commands)

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

func newApp(version string, load config.Loader, commands []*cli.Command) *cli.Command {
	return &cli.Command{
		Name:  "sqlfmt",
		Usage: "A whitespace formatter for Oracle PL/SQL",
		Description: `sqlfmt rewrites the layout of PL/SQL statements: clause keywords are
right aligned, lists and conditions are broken onto separate lines and
brackets are indented under their opener. Identifiers, literals and comments
are never changed.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the sqlfmt config file",
				Sources: cli.EnvVars("SQLFMT_CONFIG"),
				Value:   consts.DefaultConfigFile,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log debug output to stderr",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			setupLogging(errWriter(cmd), cmd.Bool("verbose"))

			path := cmd.String("config")
			cfg, err := load(path)
			if err != nil {
				return ctx, errors.Wrapf(err, "failed to load config: %s", path)
			}

			slog.Debug("Loaded config", "path", path, "extensions", cfg.Extensions)
			return config.NewContext(ctx, cfg), nil
		},
		Commands: commands,
	}
}

func setupLogging(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

func errWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}

	return os.Stderr
}
