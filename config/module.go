package config

import (
	"log/slog"

	"go.uber.org/fx"
)

// Module creates an Fx module that resolves fileName once and provides the
// resulting *Config. The module needs a *slog.Logger in the container, which
// the root App supplies.
//
// ErrFileNotFound fails the container, so App.Start reports it and the
// application does not come up.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module(fileName string, opts ...Option) fx.Option {
	return fx.Module("config",
		fx.Provide(func(logger *slog.Logger) (*Config, error) {
			moduleOpts := make([]Option, 0, len(opts)+1)
			moduleOpts = append(moduleOpts, WithLogger(logger))
			moduleOpts = append(moduleOpts, opts...)

			return New(fileName, moduleOpts...)
		}),
	)
}

// Section provides a *T decoded from the table at path, using Provider.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Section[T any](path string) fx.Option {
	return fx.Provide(Provider[T](path))
}
