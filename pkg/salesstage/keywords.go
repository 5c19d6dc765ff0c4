package salesstage

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed keywords.yaml
var embeddedTable []byte

var defaultTable = mustParseTable(embeddedTable)

// Rule assigns Stage to any text containing one of Keywords.
type Rule struct {
	Stage    SalesStage `yaml:"stage"`
	Keywords []string   `yaml:"keywords"`
}

// Table is an ordered keyword table. Rules are evaluated in order.
type Table struct {
	Version  int        `yaml:"version"`
	Default  SalesStage `yaml:"default"`
	Rules    []Rule     `yaml:"rules"`
	fallback SalesStage
}

// DefaultTable returns the embedded table.
func DefaultTable() *Table {
	return defaultTable
}

// LoadTable parses a keyword table from YAML.
func LoadTable(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read keyword table: %w", err)
	}
	return parseTable(data)
}

func parseTable(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse keyword table: %w", err)
	}

	t.fallback = Default
	if t.Default != "" {
		if !IsValid(t.Default) {
			return nil, fmt.Errorf("keyword table: invalid default stage %q", t.Default)
		}
		t.fallback = t.Default
	}

	for i, rule := range t.Rules {
		if !IsValid(rule.Stage) {
			return nil, fmt.Errorf("keyword table: rule %d has invalid stage %q", i, rule.Stage)
		}
		for _, kw := range rule.Keywords {
			if strings.TrimSpace(kw) == "" {
				return nil, fmt.Errorf("keyword table: rule %d has an empty keyword", i)
			}
		}
	}

	return &t, nil
}

func mustParseTable(data []byte) *Table {
	t, err := parseTable(data)
	if err != nil {
		panic(err)
	}
	return t
}

// Normalize applies exact literal matching, then the keyword rules, then
// the table default.
func (t *Table) Normalize(raw string) SalesStage {
	trimmed := strings.TrimSpace(raw)
	if stage, ok := Parse(trimmed); ok {
		return stage
	}

	for _, rule := range t.Rules {
		for _, kw := range rule.Keywords {
			if strings.Contains(trimmed, kw) {
				return rule.Stage
			}
		}
	}

	return t.fallback
}
