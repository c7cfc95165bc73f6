// Package config resolves application configuration from a file found by
// walking upward from the working directory, overlaid with the process
// environment.
//
// # Resolution
//
// New locates the named file (see package locator), parses it with a parser
// picked by extension (.toml and anything unknown use TOML; .yaml, .yml and
// .json use YAML), then overlays a one-time snapshot of the environment.
// Every environment variable becomes a top-level string key, and on
// conflicts the environment wins.
//
// A missing file is fatal: New returns ErrFileNotFound and MustNew panics.
// A file that cannot be parsed is not: it is logged, the Config keeps
// whatever was decoded, and LoadError reports the failure.
//
// # Paths
//
// Lookups take dotted paths. Nested tables are tried first, then longer
// runs of segments as literal flat keys:
//
//	[server]
//	port = 8080        -> "server.port"
//
// A flat key inside a table that shares its first segment has to repeat
// it. With table "a" holding the flat key "a.b.c", use "a.a.b.c".
//
// # Views and decoding
//
// Sub copies a table out into a new Config whose paths are relative to it.
// Decode maps the tree onto a struct using the "config" tag:
//
//	type Server struct {
//	    Host    string        `config:"host"`
//	    Port    int           `config:"port"`
//	    Timeout *int          `config:"timeout"` // optional
//	    Drain   time.Duration `config:"drain"`
//	}
//
//	cfg := config.MustNew("conf/app.toml")
//	section, err := cfg.Sub("server")
//	srv, err := config.Decode[Server](section)
//
// Module and Section wire the same steps into an Fx container.
package config
