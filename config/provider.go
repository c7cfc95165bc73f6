package config

import (
	"fmt"
	"log/slog"
)

// Provider returns a constructor that decodes the section at path into a
// new T, applies defaults, and validates it. An empty path decodes the whole
// tree.
//
// T may implement Defaulter and Validator on its pointer receiver. The
// constructor has the shape fx.Provide expects.
func Provider[T any](path string) func(*Config) (*T, error) {
	return func(cfg *Config) (*T, error) {
		section := cfg

		if path != "" {
			var err error

			section, err = cfg.Sub(path)
			if err != nil {
				return nil, fmt.Errorf("selecting section %q: %w", path, err)
			}
		}

		target := new(T)

		err := section.Decode(target)
		if err != nil {
			return nil, fmt.Errorf("decoding section %q: %w", path, err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", path))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating section %q: %w", path, err)
			}
		}

		return target, nil
	}
}
