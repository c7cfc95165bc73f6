package toml

import (
	"fmt"
	"time"

	"github.com/0xalexb/hjarta-config/config/value"
	"github.com/BurntSushi/toml"
)

// Parser implements config.Parser for TOML documents.
type Parser struct{}

// NewParser creates a new TOML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a TOML document into a normalized value.Table.
//
// Dotted keys and section headers both produce nested tables, so
// "[a]" followed by "b.c = 1" yields a -> b -> c.
// Offset date-times are kept as RFC 3339 strings; local dates, local times
// and local date-times keep their TOML text form, without an invented zone.
func (p *Parser) Parse(data []byte) (value.Table, error) {
	raw := make(map[string]any)

	err := toml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	table, err := value.FromMap(localTimes(raw).(map[string]any))
	if err != nil {
		return table, fmt.Errorf("normalizing document: %w", err)
	}

	return table, nil
}

// Layouts for the TOML local types. Fractional seconds are printed only when set.
const (
	localDateLayout     = "2006-01-02"
	localTimeLayout     = "15:04:05.999999999"
	localDatetimeLayout = "2006-01-02T15:04:05.999999999"
)

// localTimes replaces values decoded into the toml.Local* zones with their
// text form. Everything else is returned untouched.
func localTimes(raw any) any {
	switch typed := raw.(type) {
	case time.Time:
		switch typed.Location() {
		case toml.LocalDate:
			return typed.Format(localDateLayout)
		case toml.LocalTime:
			return typed.Format(localTimeLayout)
		case toml.LocalDatetime:
			return typed.Format(localDatetimeLayout)
		default:
			return typed
		}
	case map[string]any:
		for key, val := range typed {
			typed[key] = localTimes(val)
		}

		return typed
	case []map[string]any:
		for i, val := range typed {
			typed[i] = localTimes(val).(map[string]any)
		}

		return typed
	case []any:
		for i, val := range typed {
			typed[i] = localTimes(val)
		}

		return typed
	default:
		return raw
	}
}
