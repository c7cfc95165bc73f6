package config

import (
	"log/slog"

	"github.com/0xalexb/hjarta-config/config/env"
	"github.com/0xalexb/hjarta-config/config/value"
)

// Option configures New.
type Option func(*options)

type options struct {
	startDir    string
	environment value.Table
	skipEnv     bool
	parser      Parser
	logger      *slog.Logger
}

func newOptions(opts []Option) *options {
	o := &options{
		startDir:    "",
		environment: nil,
		skipEnv:     false,
		parser:      nil,
		logger:      nil,
	}

	for _, apply := range opts {
		apply(o)
	}

	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o
}

// WithStartDir starts the upward file search at dir instead of the working directory.
func WithStartDir(dir string) Option {
	return func(o *options) {
		o.startDir = dir
	}
}

// WithEnvironment uses vars as the environment overlay instead of a snapshot
// of the process environment.
func WithEnvironment(vars map[string]string) Option {
	return func(o *options) {
		o.environment = env.FromMap(vars)
		o.skipEnv = false
	}
}

// WithoutEnvironment disables the environment overlay.
func WithoutEnvironment() Option {
	return func(o *options) {
		o.environment = nil
		o.skipEnv = true
	}
}

// WithParser forces a parser instead of choosing one from the file extension.
func WithParser(parser Parser) Option {
	return func(o *options) {
		o.parser = parser
	}
}

// WithLogger sets the logger load events are reported to. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
