// Package toml provides a TOML parser implementation for the config package,
// backed by github.com/BurntSushi/toml.
package toml
