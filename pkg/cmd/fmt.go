package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"

	"github.com/IKAMTeam/sql-formatter-1/pkg/config"
	"github.com/IKAMTeam/sql-formatter-1/pkg/consts"
	"github.com/IKAMTeam/sql-formatter-1/pkg/format"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

var listColor = color.New(color.FgYellow)

type result struct {
	source
	original  string
	formatted string
}

func (r *result) changed() bool {
	return r.original != r.formatted
}

// fmtCmd creates a CLI command for formatting PL/SQL files. It works like
// gofmt: each path is either a file, a directory searched recursively for the
// configured extensions, or "-" for standard input.
//
// Output modes:
//   - Stdout mode (default): Formatted SQL is written to standard output
//   - Write mode (-w flag): Files are modified in-place when their layout changes
//   - List mode (-l flag): Paths whose layout would change are printed
//
// Statements the formatter cannot lay out safely are kept as written, so the
// command never fails because of the SQL it is given.
//
// Examples:
//
//	# Format single file to stdout
//	sqlfmt fmt pkg_body.pkb
//
//	# Format all configured files in a directory tree in-place
//	sqlfmt fmt -w db/
//
//	# Show which files need formatting
//	sqlfmt fmt -l db/
func fmtCmd() *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format PL/SQL files",
		ArgsUsage: "<path>...",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write result to source files instead of stdout",
			},
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "List files whose formatting differs",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return errors.New("at least one path argument is required")
			}

			cfg := config.FromContext(ctx)
			sources, err := collectSources(cfg, cmd.Args().Slice())
			if err != nil {
				return err
			}

			writeBack := cmd.Bool("write")
			if writeBack && hasStdin(sources) {
				return errors.New("cannot use -w with standard input")
			}

			formatter, err := cfg.GetFormatter(format.WithLogger(slog.Default()))
			if err != nil {
				return errors.Wrap(err, "failed to create formatter")
			}

			results, err := formatSources(ctx, formatter, cmd.Root().Reader, sources)
			if err != nil {
				return err
			}

			return report(cmd.Root().Writer, results, writeBack, cmd.Bool("list"))
		},
	}
}

// formatSources reads and formats every source. Files are processed
// concurrently; results keep the order of sources.
func formatSources(ctx context.Context, f *format.Formatter, stdin io.Reader, sources []source) ([]result, error) {
	results := make([]result, len(sources))

	for i, src := range sources {
		if !src.stdin {
			continue
		}

		content, err := io.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read standard input")
		}
		results[i] = result{source: src, original: string(content)}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(runtime.GOMAXPROCS(0), max(len(sources), 1)))

	for i, src := range sources {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			original := results[i].original
			if !src.stdin {
				content, err := os.ReadFile(src.path)
				if err != nil {
					return errors.Wrapf(err, "failed to read file: %s", src.path)
				}
				original = string(content)
			}

			slog.Debug("Formatting", "path", src.name())
			results[i] = result{source: src, original: original, formatted: formatSQL(f, original)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// formatSQL formats a whole file. Non-empty output ends with a newline.
func formatSQL(f *format.Formatter, content string) string {
	out := f.Format(content)
	if out == "" {
		return ""
	}

	return out + "\n"
}

func report(w io.Writer, results []result, writeBack, list bool) error {
	for i := range results {
		r := &results[i]

		if list && r.changed() {
			if _, err := listColor.Fprintln(w, r.name()); err != nil {
				return errors.Wrap(err, "failed to write file list")
			}
		}

		if writeBack {
			if !r.changed() {
				continue
			}

			if err := os.WriteFile(r.path, []byte(r.formatted), consts.ModeFile); err != nil {
				return errors.Wrapf(err, "failed to write formatted content to file: %s", r.path)
			}

			slog.Debug("Wrote file", "path", r.path)
			continue
		}

		if list {
			continue
		}

		if _, err := fmt.Fprint(w, r.formatted); err != nil {
			return errors.Wrap(err, "failed to write formatted content to output")
		}
	}

	return nil
}
