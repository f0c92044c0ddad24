package gpsdio

import (
	"go.uber.org/zap"

	"github.com/SkyTruth/gpsdio/internal/schema"
)

// Schema building blocks. Extensions contribute tables on top of the
// built-in AIS definitions; see NewSchema.
type (
	SchemaOption     = schema.Option
	SchemaExtension  = schema.Extension
	SchemaTables     = schema.Tables
	FieldDefinition  = schema.FieldDefinition
	Fields           = schema.Fields
	FieldsByType     = schema.FieldsByType
	TypeDescriptions = schema.TypeDescriptions
	Coercion         = schema.Coercion
	Coercions        = schema.Coercions
	Validator        = schema.Validator

	// SchemaTable maps a message type to its fields, keyed by published name.
	SchemaTable = schema.Schema
)

// Validators for FieldDefinition.Validate.
var (
	ValidateInt        = schema.Int
	ValidateIntRange   = schema.IntRange
	ValidateFloat      = schema.Float
	ValidateFloatRange = schema.FloatRange
	ValidateString     = schema.String
	ValidateDateTime   = schema.DateTime
	ValidateIn         = schema.In
	ValidateNullable   = schema.Nullable
)

// NewSchema builds a schema registry from the built-in AIS tables and the
// extensions given with WithSchemaExtensions.
func NewSchema(opts ...SchemaOption) (*Schema, error) {
	return schema.New(opts...)
}

// WithSchemaExtensions registers extensions, merged in order. Later
// extensions override earlier definitions of the same field.
func WithSchemaExtensions(exts ...SchemaExtension) SchemaOption {
	return schema.WithExtensions(exts...)
}

// WithSchemaLogger sets the logger reporting extension registration.
func WithSchemaLogger(l *zap.Logger) SchemaOption {
	return schema.WithLogger(l)
}

// StaticExtension returns an extension contributing fixed tables: fields,
// the fields of each message type, type descriptions and coercions.
func StaticExtension(name string, t SchemaTables) SchemaExtension {
	return schema.Static(name, t)
}

// FileExtension returns an extension reading its tables from a YAML file.
func FileExtension(path string) SchemaExtension {
	return schema.File(path)
}

// MergeFields merges field tables left to right.
func MergeFields(tables ...Fields) Fields {
	return schema.MergeFields(tables...)
}

// MergeFieldsByType unions the field lists of each type across tables,
// keeping first-seen order.
func MergeFieldsByType(tables ...FieldsByType) FieldsByType {
	return schema.MergeFieldsByType(tables...)
}

// MergeTypeDescriptions merges type description tables left to right.
func MergeTypeDescriptions(tables ...TypeDescriptions) TypeDescriptions {
	return schema.MergeTypeDescriptions(tables...)
}

// MergeCoercions merges coercion tables left to right.
func MergeCoercions(tables ...Coercions) Coercions {
	return schema.MergeCoercions(tables...)
}

// BuildSchema resolves fieldsByType against fields. A type naming an
// undefined field is a configuration error.
func BuildSchema(fieldsByType FieldsByType, fields Fields) (SchemaTable, error) {
	return schema.BuildSchema(fieldsByType, fields)
}

// LoadSchema builds a schema registry from the built-in AIS tables and the
// YAML extension files at paths. Extension files that fail to load are
// logged and skipped; tables that don't fit together are a configuration
// error.
func LoadSchema(logger *zap.Logger, paths ...string) (*Schema, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	exts := make([]SchemaExtension, 0, len(paths))
	for _, p := range paths {
		exts = append(exts, FileExtension(p))
	}
	return NewSchema(WithSchemaExtensions(exts...), WithSchemaLogger(logger))
}
