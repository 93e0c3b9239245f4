package main

import (
	"context"
	"os"
	"time"

	"github.com/IKAMTeam/sql-formatter-1/pkg/cmd"
	"github.com/IKAMTeam/sql-formatter-1/pkg/config"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	fx.New(
		fx.NopLogger,
		// the CLI runs inside the start hook
		fx.StartTimeout(time.Hour),
		fx.Supply(os.Args, &cmd.Version{
			Version:   version,
			Commit:    commit,
			Timestamp: date,
		}),
		fx.Provide(func() context.Context { return context.Background() }),
		config.Module,
		cmd.Module,
	).Run()
}
