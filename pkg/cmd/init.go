package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/IKAMTeam/sql-formatter-1/pkg/config"
	"github.com/IKAMTeam/sql-formatter-1/pkg/consts"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

// initCmd writes a starter sqlfmt.yaml. An existing file is left untouched.
//
// Examples:
//
//	sqlfmt init
//	sqlfmt init --extension .sql --extension .trg ci/sqlfmt.yaml
func initCmd() *cli.Command {
	return &cli.Command{
		Name:      "init",
		Usage:     "Create a sqlfmt config file",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "extension",
				Aliases: []string{"e"},
				Usage:   "file extension formatted when walking directories (repeatable)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := consts.DefaultConfigFile
			if cmd.Args().Len() > 0 {
				path = cmd.Args().First()
			}

			if _, err := os.Stat(path); err == nil {
				_, _ = fmt.Fprintf(cmd.Root().Writer, "%s already exists\n", path)
				return nil
			} else if !os.IsNotExist(err) {
				return errors.Wrapf(err, "failed to stat %s", path)
			}

			cfg := config.Default()
			if exts := cmd.StringSlice("extension"); len(exts) > 0 {
				cfg.Extensions = exts
			}

			return writeConfig(path, cfg)
		},
	}
}

func writeConfig(path string, cfg *config.Config) error {
	if err := cfg.Normalize(); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, consts.ModeFile)
	if err != nil {
		return errors.Wrapf(err, "failed to create config file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return cfg.Write(f)
}
