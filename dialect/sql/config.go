package sql

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/syssam/persist/schema/field"
)

// DialectConfig is the YAML definition of a dialect. A config with a base
// starts from the built-in dialect of that name and overrides it:
//
//	name: cockroach
//	base: postgres
//	auto_increment: ""
//	types:
//	  - type: string
//	    pattern: string
//	    quote: true
type DialectConfig struct {
	Name string `yaml:"name"`
	Base string `yaml:"base"`
	// IdentifierQuote holds one delimiter used on both sides, or two
	// characters for the opening and closing delimiters, like "[]".
	IdentifierQuote   string           `yaml:"identifier_quote"`
	ValueQuote        string           `yaml:"value_quote"`
	AutoIncrement     *string          `yaml:"auto_increment"`
	NotNullOnIdentity *bool            `yaml:"not_null_on_identity"`
	CreateTable       string           `yaml:"create_table"`
	DropTable         string           `yaml:"drop_table"`
	Types             []DataTypeConfig `yaml:"types"`
}

// DataTypeConfig is the YAML definition of a data type.
type DataTypeConfig struct {
	Type    string `yaml:"type"`
	Pattern string `yaml:"pattern"`
	Quote   bool   `yaml:"quote"`
}

// LoadDialect reads a YAML dialect definition.
func LoadDialect(r io.Reader) (Dialect, error) {
	var cfg DialectConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("dialect/sql: decode dialect config: %w", err)
	}
	return cfg.Dialect()
}

// Dialect builds the dialect of the config.
func (c DialectConfig) Dialect() (Dialect, error) {
	opts, err := c.options()
	if err != nil {
		return nil, err
	}
	if c.Base == "" {
		if c.Name == "" {
			return nil, errors.New("dialect/sql: dialect config requires a name or a base")
		}
		return NewDialect(c.Name, opts...), nil
	}
	b, err := builtin(c.Base, opts...)
	if err != nil {
		return nil, err
	}
	if c.Name != "" {
		b.name = c.Name
	}
	return b, nil
}

func (c DialectConfig) options() ([]DialectOption, error) {
	var opts []DialectOption
	switch q := []rune(c.IdentifierQuote); len(q) {
	case 0:
	case 1:
		opts = append(opts, WithIdentifierQuote(string(q), string(q)))
	case 2:
		opts = append(opts, WithIdentifierQuote(string(q[0]), string(q[1])))
	default:
		return nil, fmt.Errorf("dialect/sql: invalid identifier quote %q", c.IdentifierQuote)
	}
	if c.ValueQuote != "" {
		opts = append(opts, WithValueQuote(c.ValueQuote))
	}
	if c.AutoIncrement != nil {
		opts = append(opts, WithAutoIncrement(*c.AutoIncrement))
	}
	if c.NotNullOnIdentity != nil {
		opts = append(opts, WithNotNullOnIdentity(*c.NotNullOnIdentity))
	}
	if c.CreateTable != "" {
		opts = append(opts, WithCreateTable(c.CreateTable))
	}
	if c.DropTable != "" {
		opts = append(opts, WithDropTable(c.DropTable))
	}
	types := make([]DataType, 0, len(c.Types))
	for _, tc := range c.Types {
		t, ok := field.ParseType(tc.Type)
		if !ok {
			return nil, fmt.Errorf("dialect/sql: unknown field type %q", tc.Type)
		}
		if tc.Pattern == "" {
			return nil, fmt.Errorf("dialect/sql: empty pattern for type %q", tc.Type)
		}
		// Text literals are never rendered unquoted.
		if t.Textual() && !tc.Quote {
			return nil, fmt.Errorf("dialect/sql: type %q requires quoted values", tc.Type)
		}
		types = append(types, DataType{Type: t, Pattern: tc.Pattern, QuoteRequired: tc.Quote})
	}
	if len(types) > 0 {
		opts = append(opts, WithDataTypes(types...))
	}
	return opts, nil
}
