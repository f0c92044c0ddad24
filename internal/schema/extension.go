package schema

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Tables is the content an extension contributes to a Registry.
type Tables struct {
	Fields           Fields
	FieldsByType     FieldsByType
	TypeDescriptions TypeDescriptions
	Coercions        Coercions
}

// Extension is a source of additional schema tables.
type Extension interface {
	// Name identifies the extension in logs.
	Name() string

	// Load returns the extension's tables.
	Load() (Tables, error)
}

// Static returns an extension contributing fixed tables.
func Static(name string, t Tables) Extension {
	return staticExtension{name: name, tables: t}
}

type staticExtension struct {
	name   string
	tables Tables
}

func (e staticExtension) Name() string          { return e.name }
func (e staticExtension) Load() (Tables, error) { return e.tables, nil }

// File returns an extension reading its tables from a YAML document:
//
//	fields:
//	  vessel_class:
//	    validate: {kind: int, min: 0, max: 5, nullable: true}
//	    default: 0
//	    units: N/A
//	    description: Vessel class.
//	fields_by_type:
//	  1: [vessel_class]
//	type_descriptions:
//	  30: Custom report
//
// Validator kinds are int, float, string, datetime, in and any.
func File(path string) Extension {
	return fileExtension{path: path}
}

type fileExtension struct {
	path string
}

func (e fileExtension) Name() string { return e.path }

func (e fileExtension) Load() (Tables, error) {
	data, err := os.ReadFile(e.path)
	if err != nil {
		return Tables{}, fmt.Errorf("reading extension: %w", err)
	}
	return ParseYAML(data)
}

type yamlDocument struct {
	Fields           map[string]yamlField `yaml:"fields"`
	FieldsByType     map[int][]string     `yaml:"fields_by_type"`
	TypeDescriptions map[int]string       `yaml:"type_descriptions"`
}

type yamlField struct {
	Validate      *yamlValidator `yaml:"validate"`
	Default       any            `yaml:"default"`
	Units         string         `yaml:"units"`
	Description   string         `yaml:"description"`
	CanonicalName string         `yaml:"canonical_name"`

	// hasDefault records whether "default" was present at all, since an
	// explicit null is a legal default.
	hasDefault bool
}

func (f *yamlField) UnmarshalYAML(node *yaml.Node) error {
	type plain yamlField
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*f = yamlField(p)
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == "default" {
			f.hasDefault = true
		}
	}
	return nil
}

type yamlValidator struct {
	Kind       string   `yaml:"kind"`
	Min        *float64 `yaml:"min"`
	Max        *float64 `yaml:"max"`
	IncludeMax *bool    `yaml:"include_max"`
	Values     []any    `yaml:"values"`
	Nullable   bool     `yaml:"nullable"`
}

// ParseYAML decodes extension tables from a YAML document.
func ParseYAML(data []byte) (Tables, error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Tables{}, fmt.Errorf("decoding extension: %w", err)
	}

	t := Tables{
		Fields:           make(Fields, len(doc.Fields)),
		FieldsByType:     FieldsByType(doc.FieldsByType),
		TypeDescriptions: TypeDescriptions(doc.TypeDescriptions),
	}
	for name, f := range doc.Fields {
		validate, err := f.Validate.build()
		if err != nil {
			return Tables{}, fmt.Errorf("field %q: %w", name, err)
		}
		t.Fields[name] = FieldDefinition{
			Validate:      validate,
			Default:       normalize(f.Default),
			HasDefault:    f.hasDefault,
			CanonicalName: f.CanonicalName,
			Units:         f.Units,
			Description:   f.Description,
		}
	}
	return t, nil
}

func (v *yamlValidator) build() (Validator, error) {
	if v == nil {
		return nil, nil
	}

	var fn Validator
	switch v.Kind {
	case "int":
		fn = Int()
		if v.Min != nil || v.Max != nil {
			fn = IntRange(intBound(v.Min, math.MinInt64), intBound(v.Max, math.MaxInt64))
		}
	case "float":
		fn = Float()
		if v.Min != nil || v.Max != nil {
			includeMax := v.IncludeMax == nil || *v.IncludeMax
			fn = FloatRange(floatBound(v.Min, -math.MaxFloat64), floatBound(v.Max, math.MaxFloat64), includeMax)
		}
	case "string":
		fn = String()
	case "datetime":
		fn = DateTime()
	case "in":
		values := make([]any, len(v.Values))
		for i, x := range v.Values {
			values[i] = normalize(x)
		}
		fn = In(values...)
	case "any", "":
		fn = func(any) bool { return true }
	default:
		return nil, fmt.Errorf("unknown validator kind %q", v.Kind)
	}

	if v.Nullable {
		fn = Nullable(fn)
	}
	return fn, nil
}

// intBound converts a YAML bound, saturating at the int64 range.
func intBound(p *float64, dflt int64) int64 {
	switch {
	case p == nil || math.IsNaN(*p):
		return dflt
	case *p >= math.MaxInt64:
		return math.MaxInt64
	case *p <= math.MinInt64:
		return math.MinInt64
	default:
		return int64(*p)
	}
}

func floatBound(p *float64, dflt float64) float64 {
	if p == nil {
		return dflt
	}
	return *p
}

// normalize converts YAML scalars to the types codecs produce.
func normalize(v any) any {
	switch x := v.(type) {
	case int:
		return int64(x)
	case uint64:
		if x <= math.MaxInt64 {
			return int64(x)
		}
	}
	return v
}
