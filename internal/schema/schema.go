// Package schema defines the AIVDM message schema: the legal fields of each
// message type, their defaults and validators, and the coercions applied to
// field values when messages are read ("import") and written ("export").
//
// Built-in tables are merged with an explicit list of extensions when a
// Registry is constructed. A Registry never changes afterwards.
package schema

import (
	"maps"
	"slices"

	"github.com/SkyTruth/gpsdio/internal/gpserr"
)

// FieldDefinition describes one message field.
type FieldDefinition struct {
	// Validate reports whether a value is acceptable. May be nil.
	Validate Validator

	// Default is the value a fully populated message carries when the field
	// is not otherwise known. Only meaningful when HasDefault is set.
	Default    any
	HasDefault bool

	// CanonicalName, when set, is the key the field is published under in a
	// built schema instead of its table key.
	CanonicalName string

	Units       string
	Description string
}

// Fields maps field names to their definitions.
type Fields map[string]FieldDefinition

// FieldsByType maps a message type to the names of its legal fields.
type FieldsByType map[int][]string

// TypeDescriptions maps a message type to a human readable name.
type TypeDescriptions map[int]string

// Schema maps a message type to its fields, keyed by published name.
type Schema map[int]map[string]FieldDefinition

// BuiltinFields returns a copy of the built-in field table.
func BuiltinFields() Fields {
	return maps.Clone(builtinFields)
}

// BuiltinFieldsByType returns a copy of the built-in fields-by-type table.
func BuiltinFieldsByType() FieldsByType {
	return MergeFieldsByType(builtinFieldsByType)
}

// BuiltinTypeDescriptions returns a copy of the built-in type descriptions.
func BuiltinTypeDescriptions() TypeDescriptions {
	return maps.Clone(builtinTypeDescriptions)
}

// BuildSchema resolves every field name of every type against fields.
// A field carrying a CanonicalName is published under that name.
// A name missing from fields is a configuration error.
func BuildSchema(fieldsByType FieldsByType, fields Fields) (Schema, error) {
	out := make(Schema, len(fieldsByType))
	for mtype, names := range fieldsByType {
		def := make(map[string]FieldDefinition, len(names))
		for _, name := range names {
			fd, ok := fields[name]
			if !ok {
				return nil, gpserr.Configuration("type %d references undefined field %q", mtype, name)
			}
			key := name
			if fd.CanonicalName != "" {
				key = fd.CanonicalName
			}
			def[key] = fd
		}
		out[mtype] = def
	}
	return out, nil
}

// MergeFields merges field tables left to right. A later table overrides
// definitions of the same name from earlier ones.
func MergeFields(tables ...Fields) Fields {
	out := make(Fields)
	for _, t := range tables {
		maps.Copy(out, t)
	}
	return out
}

// MergeFieldsByType unions the field lists of each type across tables.
// Names keep the order in which they were first seen, processing tables
// left to right. Duplicates are collapsed.
func MergeFieldsByType(tables ...FieldsByType) FieldsByType {
	out := make(FieldsByType)
	for _, t := range tables {
		for _, mtype := range slices.Sorted(maps.Keys(t)) {
			for _, name := range t[mtype] {
				if !slices.Contains(out[mtype], name) {
					out[mtype] = append(out[mtype], name)
				}
			}
			if _, ok := out[mtype]; !ok {
				out[mtype] = []string{}
			}
		}
	}
	return out
}

// MergeTypeDescriptions merges description tables left to right.
func MergeTypeDescriptions(tables ...TypeDescriptions) TypeDescriptions {
	out := make(TypeDescriptions)
	for _, t := range tables {
		maps.Copy(out, t)
	}
	return out
}
