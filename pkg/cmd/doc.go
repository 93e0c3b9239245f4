// Package cmd provides the CLI commands for the sqlfmt tool.
//
// Commands are built as *cli.Command values following the urfave/cli/v3
// pattern and registered with the application through the fx "commands"
// group (see Module). The root command loads the project configuration in its
// Before hook and passes it to subcommands through the context.
//
// # Available Commands
//
//   - fmt: Format PL/SQL files, directory trees or standard input
//
// # Global Options
//
//   - --config, -c: Project config file (defaults to sqlfmt.yaml, env SQLFMT_CONFIG)
//   - --verbose: Log debug output to stderr
//   - --help, -h: Display command help
//   - --version: Display version information
//
// # Example Usage
//
//	sqlfmt fmt query.sql              # Print formatted SQL
//	sqlfmt fmt -w db/                 # Rewrite every configured file under db/
//	sqlfmt fmt -l db/ scripts/        # List files that need formatting
//	sqlfmt fmt - < query.sql          # Format standard input
package cmd
