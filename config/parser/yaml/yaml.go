package yaml

import (
	"bytes"
	"fmt"

	"github.com/0xalexb/hjarta-config/config/value"
	"github.com/goccy/go-yaml"
)

// Parser implements config.Parser for YAML and JSON documents.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a YAML mapping into a normalized value.Table.
// An empty or null document yields an empty table.
//
// When some values cannot be represented the table holds everything else and
// the error wraps value.ErrUnrepresentable.
func (p *Parser) Parse(data []byte) (value.Table, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return value.Table{}, nil
	}

	var raw map[string]any

	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	table, err := value.FromMap(raw)
	if err != nil {
		return table, fmt.Errorf("normalizing document: %w", err)
	}

	return table, nil
}
