package config

import "go.uber.org/fx"

// Loader reads the configuration for a config file path. The CLI resolves the
// path from its flags, so loading happens after the application graph is built.
type Loader func(path string) (*Config, error)

var Module = fx.Module("config", fx.Provide(
	func() Loader { return Load },
))
