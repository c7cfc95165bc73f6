package config

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/0xalexb/hjarta-config/config/env"
	filefetcher "github.com/0xalexb/hjarta-config/config/fetcher/file"
	"github.com/0xalexb/hjarta-config/config/locator"
	tomlparser "github.com/0xalexb/hjarta-config/config/parser/toml"
	yamlparser "github.com/0xalexb/hjarta-config/config/parser/yaml"
	"github.com/0xalexb/hjarta-config/config/value"
)

// Parser decodes raw configuration data into a value tree.
//
// Implementations may return a partially filled table together with an error;
// New keeps whatever was decoded.
type Parser interface {
	Parse(data []byte) (value.Table, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Config is a resolved configuration tree.
//
// A Config is immutable once built. Every accessor returns copies, so a
// Config can be shared between goroutines without locking.
type Config struct {
	table   value.Table
	path    string
	loadErr error
}

// New locates fileName by walking upward from the working directory (or the
// directory set with WithStartDir), parses it, and overlays a snapshot of the
// process environment.
//
// New fails with an error wrapping ErrFileNotFound when no directory holds
// the file, and returns locator errors such as locator.ErrEmptyName as they
// are. A file that is found but
// cannot be read or parsed is logged and leaves a degraded Config holding
// whatever could be decoded; LoadError reports the failure.
func New(fileName string, opts ...Option) (*Config, error) {
	return newConfig(fileName, newOptions(opts))
}

// MustNew is like New but panics when New fails.
// It is meant for startup code that cannot run without configuration.
func MustNew(fileName string, opts ...Option) *Config {
	o := newOptions(opts)

	cfg, err := newConfig(fileName, o)
	if err != nil {
		o.logger.Error("configuration unavailable", slog.String("file", fileName), slog.Any("error", err))
		panic(err)
	}

	return cfg
}

// FromTable wraps an already built tree. The table is copied.
func FromTable(table value.Table) *Config {
	return &Config{table: value.Clone(table), path: "", loadErr: nil}
}

func newConfig(fileName string, o *options) (*Config, error) {
	fetcher, err := filefetcher.NewFetcher(fileName, o.startDir)()
	if fetcher == nil {
		if errors.Is(err, locator.ErrNotFound) {
			return nil, fmt.Errorf("%w: %w", ErrFileNotFound, err)
		}

		return nil, err
	}

	base, loadErr := load(fetcher, err, o)

	overlay := o.environment
	if overlay == nil && !o.skipEnv {
		var envErr error

		overlay, envErr = env.Snapshot()
		if envErr != nil {
			o.logger.Debug("environment entries skipped", slog.Any("error", envErr))
		}
	}

	merged, err := Merge(base, overlay)
	if err != nil {
		o.logger.Error("environment overlay failed", slog.Any("error", err))

		merged = base
	}

	return &Config{
		table:   merged,
		path:    fetcher.Path(),
		loadErr: loadErr,
	}, nil
}

func load(fetcher *filefetcher.Fetcher, fetchErr error, o *options) (value.Table, error) {
	path := fetcher.Path()

	if fetchErr != nil {
		o.logger.Error("config read failed", slog.String("path", path), slog.Any("error", fetchErr))

		return value.Table{}, fmt.Errorf("%w: %w", ErrParse, fetchErr)
	}

	data, err := fetcher.Fetch()
	if err != nil {
		o.logger.Error("config read failed", slog.String("path", path), slog.Any("error", err))

		return value.Table{}, fmt.Errorf("%w: %w", ErrParse, err)
	}

	parser := o.parser
	if parser == nil {
		parser = parserFor(path)
	}

	table, err := parser.Parse(data)
	if table == nil {
		table = value.Table{}
	}

	if err != nil {
		o.logger.Error("config parse failed",
			slog.String("path", path),
			slog.Int("keys", len(table)),
			slog.Any("error", err),
		)

		return table, fmt.Errorf("%w: %s: %w", ErrParse, path, err)
	}

	o.logger.Info("config loaded", slog.String("path", path))

	return table, nil
}

func parserFor(path string) Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return yamlparser.NewParser()
	default:
		return tomlparser.NewParser()
	}
}

// Path returns the file the configuration was loaded from. It is empty for
// configs built with FromTable.
func (c *Config) Path() string {
	return c.path
}

// LoadError reports a read or parse failure that New degraded past.
// It wraps ErrParse, or is nil when the file loaded cleanly.
func (c *Config) LoadError() error {
	return c.loadErr
}

// Degraded reports whether the file failed to load cleanly.
func (c *Config) Degraded() bool {
	return errors.Is(c.loadErr, ErrParse)
}
