package config

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/IKAMTeam/sql-formatter-1/pkg/consts"
	"github.com/IKAMTeam/sql-formatter-1/pkg/format"
	"github.com/IKAMTeam/sql-formatter-1/pkg/grammar"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config represents the project configuration read from sqlfmt.yaml.
type Config struct {
	// Extensions lists the file extensions picked up when a directory is formatted
	Extensions []string `yaml:"extensions,omitempty"`

	// Dialect holds keywords added on top of the built-in PL/SQL grammar
	Dialect grammar.Words `yaml:"dialect,omitempty"`
}

// Default returns the configuration used when no sqlfmt.yaml is present.
func Default() *Config {
	return &Config{Extensions: slices.Clone(consts.DefaultExtensions)}
}

// LoadConfig parses a project configuration from the provided io.Reader.
//
// Extensions are normalized to lower case with a leading dot. When no
// extensions are given, consts.DefaultExtensions is used.
//
// Example:
//
//	yamlData := `
//	extensions: [".sql", ".pkb"]
//	dialect:
//	  toplevel_words: ["QUALIFY"]
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	f, err := cfg.GetFormatter()
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Println(f.Format("select a from t qualify x = 1"))
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	// An empty document is a valid config.
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to unmarshal sqlfmt config")
	}

	if err := cfg.Normalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Normalize fills in default extensions and rewrites each extension to lower
// case with a leading dot.
func (c *Config) Normalize() error {
	if len(c.Extensions) == 0 {
		c.Extensions = slices.Clone(consts.DefaultExtensions)
	}

	for i, ext := range c.Extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" || ext == "." {
			return errors.Errorf("invalid extension at position %d", i)
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		c.Extensions[i] = ext
	}

	return nil
}

// LoadConfigFile loads a project configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// Grammar returns the PL/SQL grammar extended with the configured dialect words.
func (c *Config) Grammar() *grammar.Grammar {
	return grammar.PLSQL().Extend(c.Dialect)
}

// GetFormatter builds a formatter for the configured dialect. A nil Config
// yields the default formatter.
func (c *Config) GetFormatter(opts ...format.Option) (*format.Formatter, error) {
	if c == nil {
		return format.New(opts...)
	}

	return format.New(append([]format.Option{format.WithGrammar(c.Grammar())}, opts...)...)
}

// Matches reports whether path has one of the configured extensions.
func (c *Config) Matches(path string) bool {
	exts := consts.DefaultExtensions
	if c != nil && len(c.Extensions) > 0 {
		exts = c.Extensions
	}

	ext := strings.ToLower(filepath.Ext(path))
	return ext != "" && slices.Contains(exts, ext)
}

// Load reads the configuration at path. A missing file yields Default.
func Load(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}

	return LoadConfigFile(path)
}

type contextKey struct{}

// NewContext returns a copy of ctx carrying cfg.
func NewContext(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, contextKey{}, cfg)
}

// FromContext returns the Config stored by NewContext, or Default when none is set.
func FromContext(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(contextKey{}).(*Config); ok && cfg != nil {
		return cfg
	}

	return Default()
}

// Write encodes the configuration as YAML.
func (c *Config) Write(w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)

	if err := encoder.Encode(c); err != nil {
		return errors.Wrap(err, "failed to write sqlfmt config")
	}

	return errors.Wrap(encoder.Close(), "failed to close yaml encoder")
}
