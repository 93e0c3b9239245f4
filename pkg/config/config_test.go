package config_test

import (
	"context"
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/IKAMTeam/sql-formatter-1/pkg/config"
	"github.com/IKAMTeam/sql-formatter-1/pkg/consts"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/sqlfmt.yaml
var testConfigYAML string

func TestLoadConfig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader(testConfigYAML))
		require.NoError(t, err)
		validateTestConfig(t, cfg)
	})

	t.Run("defaults", func(t *testing.T) {
		for _, data := range []string{"", "other_key: value", "extensions: []"} {
			cfg, err := LoadConfig(strings.NewReader(data))
			require.NoError(t, err)
			require.Equal(t, consts.DefaultExtensions, cfg.Extensions)
			require.Empty(t, cfg.Dialect.TopLevelWords)
		}
	})

	t.Run("error", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader("invalid: yaml: ["))
		require.Error(t, err)
		require.Nil(t, cfg)
		require.Contains(t, err.Error(), "failed to unmarshal sqlfmt config")

		cfg, err = LoadConfig(strings.NewReader("extensions: [\".sql\", \" \"]"))
		require.Error(t, err)
		require.Nil(t, cfg)
		require.Contains(t, err.Error(), "invalid extension at position 1")
	})

	t.Run("defaults are not shared", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader(""))
		require.NoError(t, err)

		cfg.Extensions[0] = ".changed"
		require.Equal(t, ".sql", consts.DefaultExtensions[0])
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), consts.DefaultConfigFile)
		require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), consts.ModeFile))

		cfg, err := LoadConfigFile(path)
		require.NoError(t, err)
		validateTestConfig(t, cfg)
	})

	t.Run("error", func(t *testing.T) {
		cfg, err := LoadConfigFile("nonexistent.yaml")
		require.Error(t, err)
		require.Nil(t, cfg)
		require.Contains(t, err.Error(), "failed to open file")

		// Reading a directory fails on decode rather than open on some systems
		cfg, err = LoadConfigFile(t.TempDir())
		require.Error(t, err)
		require.Nil(t, cfg)
	})
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, consts.DefaultConfigFile))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), consts.ModeFile))

	cfg, err = Load(path)
	require.NoError(t, err)
	validateTestConfig(t, cfg)

	require.NoError(t, os.WriteFile(path, []byte("extensions: ["), consts.ModeFile))
	_, err = Load(path)
	require.Error(t, err)
}

func TestConfig_GetFormatter(t *testing.T) {
	query := "select a from t qualify x = 1"

	cfg, err := LoadConfig(strings.NewReader(testConfigYAML))
	require.NoError(t, err)

	f, err := cfg.GetFormatter()
	require.NoError(t, err)
	require.Equal(t, "select a\n  from t\nqualify x = 1", f.Format(query))

	f, err = Default().GetFormatter()
	require.NoError(t, err)
	require.Equal(t, "select a\n  from t qualify x = 1", f.Format(query))

	var missing *Config
	f, err = missing.GetFormatter()
	require.NoError(t, err)
	require.Equal(t, "select a\n  from t qualify x = 1", f.Format(query))
}

func TestConfig_Matches(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(testConfigYAML))
	require.NoError(t, err)

	tests := []struct {
		path string
		want bool
	}{
		{"db/schema.sql", true},
		{"db/BODY.PKB", true},
		{"db/audit.trg", true},
		{"db/billing.pks", false},
		{"README", false},
		{"notes.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			require.Equal(t, tt.want, cfg.Matches(tt.path))
		})
	}

	var missing *Config
	require.True(t, missing.Matches("billing.pks"))
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	require.Equal(t, Default(), FromContext(ctx))

	cfg := &Config{Extensions: []string{".ddl"}}
	require.Same(t, cfg, FromContext(NewContext(ctx, cfg)))
}

func validateTestConfig(t *testing.T, cfg *Config) {
	t.Helper()

	require.NotNil(t, cfg)
	require.Equal(t, []string{".sql", ".pkb", ".trg"}, cfg.Extensions)
	require.Equal(t, []string{"NOCOPY"}, cfg.Dialect.ReservedWords)
	require.Equal(t, []string{"QUALIFY"}, cfg.Dialect.TopLevelWords)
	require.Empty(t, cfg.Dialect.NewlineWords)
}

func TestConfig_Write(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, Default().Write(&buf))
	require.Equal(t, "extensions:\n  - .sql\n  - .pls\n  - .pks\n  - .pkb\n", buf.String())

	cfg, err := LoadConfig(strings.NewReader(testConfigYAML))
	require.NoError(t, err)

	buf.Reset()
	require.NoError(t, cfg.Write(&buf))

	loaded, err := LoadConfig(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Equal(t, cfg, loaded)
}

func TestConfig_Normalize(t *testing.T) {
	cfg := &Config{Extensions: []string{"SQL", ".Pkb "}}
	require.NoError(t, cfg.Normalize())
	require.Equal(t, []string{".sql", ".pkb"}, cfg.Extensions)

	cfg = &Config{}
	require.NoError(t, cfg.Normalize())
	require.Equal(t, consts.DefaultExtensions, cfg.Extensions)

	cfg = &Config{Extensions: []string{"."}}
	require.Error(t, cfg.Normalize())
}
