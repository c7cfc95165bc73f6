package hjarta

import (
	"fmt"
	"log/slog"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"

	"github.com/0xalexb/hjarta-config/config"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules       []fx.Option
	ConfigFile    string
	ConfigOptions []config.Option
	LogLevel      string
	LogFormat     string
}

// envOptions is the part of Options that can come from the environment.
type envOptions struct {
	ConfigFile string `env:"HJARTA_CONFIG_FILE"`
	LogLevel   string `env:"HJARTA_LOG_LEVEL"`
	LogFormat  string `env:"HJARTA_LOG_FORMAT"`
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfigFile resolves name by upward search at startup and provides the
// result as *config.Config. opts are passed on to config.New.
func WithConfigFile(name string, opts ...config.Option) Option {
	return func(o *Options) {
		o.ConfigFile = name
		o.ConfigOptions = append(o.ConfigOptions, opts...)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log output format, "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}

// OptionsFromEnv reads HJARTA_CONFIG_FILE, HJARTA_LOG_LEVEL and HJARTA_LOG_FORMAT.
func OptionsFromEnv() (Options, error) {
	var fromEnv envOptions

	err := env.Parse(&fromEnv)
	if err != nil {
		return Options{}, fmt.Errorf("error getting env options: %w", err)
	}

	return Options{
		Modules:       nil,
		ConfigFile:    fromEnv.ConfigFile,
		ConfigOptions: nil,
		LogLevel:      fromEnv.LogLevel,
		LogFormat:     fromEnv.LogFormat,
	}, nil
}

// WithEnvDefaults fills settings that are still empty from the environment
// (see OptionsFromEnv). Options applied before it keep their values, so pass
// it last. Errors are logged and leave the options unchanged.
func WithEnvDefaults() Option {
	return func(opts *Options) {
		fromEnv, err := OptionsFromEnv()
		if err != nil {
			slog.Warn("ignoring environment options", slog.Any("error", err))

			return
		}

		err = mergo.Merge(opts, fromEnv)
		if err != nil {
			slog.Warn("merging environment options failed", slog.Any("error", err))
		}
	}
}
