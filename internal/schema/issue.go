package schema

import (
	"fmt"
	"maps"
	"slices"
)

// Issue is a problem found by Validate.
type Issue struct {
	Field  string
	Value  any
	Reason string
}

func (i Issue) String() string {
	if i.Field == "" {
		return i.Reason
	}
	return fmt.Sprintf("%s=%v: %s", i.Field, i.Value, i.Reason)
}

// Validate checks the fields present in msg against the schema of the
// message's type: values are run through their validators, and fields not
// legal for the type are reported. Issues are ordered by field name.
func (r *Registry) Validate(msg map[string]any) []Issue {
	mtype, ok := MessageType(msg)
	if !ok {
		return []Issue{{Field: "type", Value: msg["type"], Reason: "missing or non-integer message type"}}
	}
	def, ok := r.schema[mtype]
	if !ok {
		return []Issue{{Field: "type", Value: msg["type"], Reason: "unknown message type"}}
	}

	var issues []Issue
	for _, name := range slices.Sorted(maps.Keys(msg)) {
		v := msg[name]
		fd, ok := def[name]
		if !ok {
			issues = append(issues, Issue{Field: name, Value: v, Reason: fmt.Sprintf("not a field of type %d", mtype)})
			continue
		}
		if fd.Validate != nil && !fd.Validate(v) {
			issues = append(issues, Issue{Field: name, Value: v, Reason: "invalid value"})
		}
	}
	return issues
}
