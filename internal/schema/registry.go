package schema

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/SkyTruth/gpsdio/internal/gpserr"
)

// Registry is the merged, queryable schema: built-in tables plus the
// extensions it was constructed with. A Registry is immutable and safe for
// concurrent use.
type Registry struct {
	fields       Fields
	fieldsByType FieldsByType
	descriptions TypeDescriptions
	coercions    Coercions
	schema       Schema

	// Extension-only tables, kept for Build without extensions.
	extFields       Fields
	extFieldsByType FieldsByType

	extensions []string
	logger     *zap.Logger
}

// Option configures a Registry.
type Option interface {
	apply(*options)
}

type options struct {
	extensions []Extension
	logger     *zap.Logger
}

type optionFunc func(*options)

// Compile-time check that optionFunc implements Option.
var _ Option = optionFunc(nil)

func (f optionFunc) apply(o *options) { f(o) }

// WithExtensions adds extensions, merged in order after the built-in tables.
func WithExtensions(exts ...Extension) Option {
	return optionFunc(func(o *options) {
		o.extensions = append(o.extensions, exts...)
	})
}

// WithLogger sets the logger.
// If not set, a no-op logger is used.
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(o *options) {
		o.logger = l
	})
}

// New builds a Registry. An extension that fails to load is logged and
// skipped. Tables that reference undefined fields are a configuration error.
func New(opts ...Option) (*Registry, error) {
	cfg := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	r := &Registry{
		extFields:       make(Fields),
		extFieldsByType: make(FieldsByType),
		logger:          cfg.logger,
	}
	descriptions := []TypeDescriptions{builtinTypeDescriptions}
	coercions := []Coercions{builtinCoercions()}

	for _, ext := range cfg.extensions {
		t, err := ext.Load()
		if err != nil {
			r.logger.Error("failed to load schema extension",
				zap.String("extension", ext.Name()),
				zap.Error(err),
			)
			continue
		}
		r.extFields = MergeFields(r.extFields, t.Fields)
		r.extFieldsByType = MergeFieldsByType(r.extFieldsByType, t.FieldsByType)
		descriptions = append(descriptions, t.TypeDescriptions)
		coercions = append(coercions, t.Coercions)
		r.extensions = append(r.extensions, ext.Name())

		r.logger.Info("registered schema extension",
			zap.String("extension", ext.Name()),
			zap.Int("fields", len(t.Fields)),
			zap.Int("types", len(t.FieldsByType)),
		)
	}

	r.fields = MergeFields(builtinFields, r.extFields)
	r.fieldsByType = MergeFieldsByType(builtinFieldsByType, r.extFieldsByType)
	r.descriptions = MergeTypeDescriptions(descriptions...)
	r.coercions = MergeCoercions(coercions...)

	s, err := BuildSchema(r.fieldsByType, r.fields)
	if err != nil {
		return nil, err
	}
	r.schema = s
	return r, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry of built-in tables without extensions.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := New()
		if err != nil {
			panic(fmt.Sprintf("schema: invalid built-in tables: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Build resolves fieldsByType against fields, like BuildSchema. A nil table
// is replaced by the built-in one, merged with the registry's extensions
// when includeExtensions is set.
func (r *Registry) Build(fieldsByType FieldsByType, fields Fields, includeExtensions bool) (Schema, error) {
	if fieldsByType == nil {
		if includeExtensions {
			fieldsByType = r.fieldsByType
		} else {
			fieldsByType = builtinFieldsByType
		}
	}
	if fields == nil {
		if includeExtensions {
			fields = r.fields
		} else {
			fields = builtinFields
		}
	}
	return BuildSchema(fieldsByType, fields)
}

// Schema returns the registry's built schema.
func (r *Registry) Schema() Schema {
	out := make(Schema, len(r.schema))
	for mtype, def := range r.schema {
		out[mtype] = maps.Clone(def)
	}
	return out
}

// Fields returns the merged field table.
func (r *Registry) Fields() Fields {
	return maps.Clone(r.fields)
}

// FieldsByType returns the merged fields-by-type table.
func (r *Registry) FieldsByType() FieldsByType {
	return MergeFieldsByType(r.fieldsByType)
}

// Field returns the definition of name.
func (r *Registry) Field(name string) (FieldDefinition, bool) {
	fd, ok := r.fields[name]
	return fd, ok
}

// Types returns the known message types in ascending order.
func (r *Registry) Types() []int {
	return slices.Sorted(maps.Keys(r.schema))
}

// TypeFields returns the published field names of mtype, sorted.
func (r *Registry) TypeFields(mtype int) ([]string, bool) {
	def, ok := r.schema[mtype]
	if !ok {
		return nil, false
	}
	return slices.Sorted(maps.Keys(def)), true
}

// TypeDescription returns the human readable name of mtype.
func (r *Registry) TypeDescription(mtype int) (string, bool) {
	d, ok := r.descriptions[mtype]
	return d, ok
}

// Extensions returns the names of the extensions that loaded successfully.
func (r *Registry) Extensions() []string {
	return slices.Clone(r.extensions)
}

// Import converts a raw field value to its in-memory form. Fields without
// a coercion are returned unchanged.
func (r *Registry) Import(field string, raw any) (any, error) {
	c, ok := r.coercions[field]
	if !ok || c.Import == nil {
		return raw, nil
	}
	v, err := c.Import(raw)
	if err != nil {
		return nil, &gpserr.CodecError{Op: "import", Field: field, Value: raw, Err: err}
	}
	return v, nil
}

// Export converts an in-memory field value to its on-the-wire form. Fields
// without a coercion are returned unchanged.
func (r *Registry) Export(field string, value any) (any, error) {
	c, ok := r.coercions[field]
	if !ok || c.Export == nil {
		return value, nil
	}
	v, err := c.Export(value)
	if err != nil {
		return nil, &gpserr.CodecError{Op: "export", Field: field, Value: value, Err: err}
	}
	return v, nil
}

// ImportMessage returns a copy of msg with every field imported.
func (r *Registry) ImportMessage(msg map[string]any) (map[string]any, error) {
	return r.coerce(msg, r.Import)
}

// ExportMessage returns a copy of msg with every field exported.
func (r *Registry) ExportMessage(msg map[string]any) (map[string]any, error) {
	return r.coerce(msg, r.Export)
}

func (r *Registry) coerce(msg map[string]any, fn func(string, any) (any, error)) (map[string]any, error) {
	out := make(map[string]any, len(msg))
	for k, v := range msg {
		c, err := fn(k, v)
		if err != nil {
			return nil, err
		}
		out[k] = c
	}
	return out, nil
}

// DefaultMessage returns a message of type mtype with every field set to
// its default. Fields without a default are omitted.
func (r *Registry) DefaultMessage(mtype int) (map[string]any, error) {
	def, ok := r.schema[mtype]
	if !ok {
		return nil, gpserr.Configuration("unknown message type %d", mtype)
	}
	msg := make(map[string]any, len(def))
	for name, fd := range def {
		if fd.HasDefault {
			msg[name] = fd.Default
		}
	}
	msg["type"] = int64(mtype)
	return msg, nil
}

// MessageType returns the integer type of msg.
func MessageType(msg map[string]any) (int, bool) {
	n, ok := asInt(msg["type"])
	if !ok {
		if f, isFloat := msg["type"].(float64); isFloat && f == float64(int(f)) {
			return int(f), true
		}
		return 0, false
	}
	return int(n), true
}
