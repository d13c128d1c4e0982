package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type yamlFile struct {
	Tables []yamlTable `yaml:"tables"`
}

type yamlTable struct {
	Name    string       `yaml:"name"`
	Rows    int          `yaml:"rows"`
	Batch   int          `yaml:"batch"`
	Derive  string       `yaml:"derive"`
	Columns []yamlColumn `yaml:"columns"`
}

type yamlColumn struct {
	Name      string   `yaml:"name"`
	Type      string   `yaml:"type"`
	Precision int      `yaml:"precision"`
	Scale     int      `yaml:"scale"`
	MaxLen    int      `yaml:"max_len"`
	Elem      string   `yaml:"elem"`
	Values    []string `yaml:"values"`
	Nullable  bool     `yaml:"nullable"`
	Identity  bool     `yaml:"identity"`
	Unique    bool     `yaml:"unique"`
	Index     bool     `yaml:"index"`
	Default   any      `yaml:"default"`
	Pool      string   `yaml:"pool"`
	Prefix    string   `yaml:"prefix"`
}

var kindsByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

// ParseKind resolves a kind name used in schema files ("int32", "decimal", ...).
func ParseKind(name string) (Kind, error) {
	k, ok := kindsByName[name]
	if !ok {
		return 0, fmt.Errorf("unknown type %q", name)
	}
	return k, nil
}

// LoadFile reads additional table definitions from a YAML schema file.
// Loaded tables pass the same validation as the built-in catalog.
func LoadFile(path string) ([]Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}

	var file yamlFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse schema file %s: %w", path, err)
	}
	if len(file.Tables) == 0 {
		return nil, fmt.Errorf("schema file %s defines no tables", path)
	}

	tables := make([]Table, 0, len(file.Tables))
	for _, yt := range file.Tables {
		table := Table{Name: yt.Name, Rows: yt.Rows, Batch: yt.Batch, Derive: yt.Derive}
		for _, yc := range yt.Columns {
			col, err := yc.toColumn()
			if err != nil {
				return nil, fmt.Errorf("schema file %s: table %s: %w", path, yt.Name, err)
			}
			table.Columns = append(table.Columns, col)
		}
		if err := table.Validate(); err != nil {
			return nil, fmt.Errorf("schema file %s: %w", path, err)
		}
		tables = append(tables, table)
	}
	return tables, nil
}

func (yc yamlColumn) toColumn() (Column, error) {
	kind, err := ParseKind(yc.Type)
	if err != nil {
		return Column{}, fmt.Errorf("column %s: %w", yc.Name, err)
	}

	typ := Type{
		Kind:      kind,
		Precision: yc.Precision,
		Scale:     yc.Scale,
		MaxLen:    yc.MaxLen,
		Values:    yc.Values,
	}
	if kind == KindList {
		elem, err := ParseKind(yc.Elem)
		if err != nil {
			return Column{}, fmt.Errorf("column %s: list element: %w", yc.Name, err)
		}
		typ.Elem = elem
	}

	// YAML cannot express the Now marker; timestamp columns spell it "now".
	def := yc.Default
	if s, ok := def.(string); ok && s == "now" &&
		(kind == KindTimestamp || kind == KindTimestampTZ) {
		def = Now
	}

	return Column{
		Name:     yc.Name,
		Type:     typ,
		Nullable: yc.Nullable,
		Identity: yc.Identity,
		Unique:   yc.Unique,
		Index:    yc.Index,
		Default:  def,
		Pool:     yc.Pool,
		Prefix:   yc.Prefix,
	}, nil
}
