// Package logging builds the slog logger used for configuration load events.
// JSON is the default output; "text" switches to slog's text handler.
package logging
