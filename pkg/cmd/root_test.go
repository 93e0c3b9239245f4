package cmd

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/IKAMTeam/sql-formatter-1/pkg/config"
	"github.com/IKAMTeam/sql-formatter-1/pkg/consts"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type testApp struct {
	*cli.Command
	out    bytes.Buffer
	errOut bytes.Buffer
	loaded []string
}

func newTestApp(t *testing.T, stdin string, load config.Loader) *testApp {
	t.Helper()

	// Before replaces the default logger
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	ta := &testApp{}
	ta.Command = newApp("test", func(path string) (*config.Config, error) {
		ta.loaded = append(ta.loaded, path)
		return load(path)
	}, []*cli.Command{fmtCmd()})
	ta.Reader = strings.NewReader(stdin)
	ta.Writer = &ta.out
	ta.ErrWriter = &ta.errOut
	return ta
}

func (ta *testApp) run(args ...string) error {
	return ta.Run(context.Background(), append([]string{"sqlfmt"}, args...))
}

func TestRoot_DefaultConfig(t *testing.T) {
	ta := newTestApp(t, unformattedSQL, config.Load)

	require.NoError(t, ta.run("fmt", "-"))
	require.Equal(t, []string{consts.DefaultConfigFile}, ta.loaded)
	require.Equal(t, formattedSQL, ta.out.String())
}

func TestRoot_ConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "dialect:\n  toplevel_words: [QUALIFY]\n")

	ta := newTestApp(t, "select a from t qualify x = 1", config.Load)
	require.NoError(t, ta.run("--config", path, "fmt", "-"))
	require.Equal(t, []string{path}, ta.loaded)
	require.Equal(t, "select a\n  from t\nqualify x = 1\n", ta.out.String())
}

func TestRoot_ConfigEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.yaml")
	t.Setenv("SQLFMT_CONFIG", path)

	ta := newTestApp(t, "select 1 from dual", config.Load)
	require.NoError(t, ta.run("fmt", "-"))
	require.Equal(t, []string{path}, ta.loaded)
}

func TestRoot_ConfigError(t *testing.T) {
	ta := newTestApp(t, "", func(string) (*config.Config, error) {
		return nil, errors.New("boom")
	})

	err := ta.run("-c", "broken.yaml", "fmt", "-")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load config: broken.yaml")
	require.Contains(t, err.Error(), "boom")
	require.Empty(t, ta.out.String())
}

func TestRoot_Verbose(t *testing.T) {
	ta := newTestApp(t, "select 1 from dual", config.Load)
	require.NoError(t, ta.run("--verbose", "fmt", "-"))
	require.Contains(t, ta.errOut.String(), "Loaded config")
	require.Contains(t, ta.errOut.String(), "level=DEBUG")

	quiet := newTestApp(t, "select 1 from dual", config.Load)
	require.NoError(t, quiet.run("fmt", "-"))
	require.Empty(t, quiet.errOut.String())
}

func TestModule(t *testing.T) {
	err := fx.ValidateApp(
		fx.Supply([]string{"sqlfmt", "--help"}, &Version{Version: "test"}),
		fx.Provide(func() context.Context { return context.Background() }),
		config.Module,
		Module,
	)
	require.NoError(t, err)
}
