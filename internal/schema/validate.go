package schema

import (
	"math"
	"reflect"
	"time"
)

// Validator reports whether a value is acceptable for a field.
// Validators are advisory: streams never apply them automatically.
type Validator func(v any) bool

// Int accepts any integer value. Booleans are not integers.
func Int() Validator {
	return func(v any) bool {
		_, ok := asInt(v)
		return ok
	}
}

// IntRange accepts integers in [min, max].
func IntRange(min, max int64) Validator {
	return func(v any) bool {
		n, ok := asInt(v)
		return ok && n >= min && n <= max
	}
}

// IntMin accepts integers greater than or equal to min.
func IntMin(min int64) Validator {
	return func(v any) bool {
		n, ok := asInt(v)
		return ok && n >= min
	}
}

// IntIn accepts integers equal to one of values.
func IntIn(values ...int64) Validator {
	return func(v any) bool {
		n, ok := asInt(v)
		if !ok {
			return false
		}
		for _, want := range values {
			if n == want {
				return true
			}
		}
		return false
	}
}

// Float accepts any number, integers included.
func Float() Validator {
	return func(v any) bool {
		_, ok := asFloat(v)
		return ok
	}
}

// FloatRange accepts numbers in [min, max], or [min, max) when includeMax
// is false.
func FloatRange(min, max float64, includeMax bool) Validator {
	return func(v any) bool {
		f, ok := asFloat(v)
		if !ok || math.IsNaN(f) || f < min {
			return false
		}
		if includeMax {
			return f <= max
		}
		return f < max
	}
}

// FloatMin accepts numbers greater than or equal to min.
func FloatMin(min float64) Validator {
	return func(v any) bool {
		f, ok := asFloat(v)
		return ok && f >= min
	}
}

// In accepts numbers numerically equal to one of values, or strings equal
// to one of values.
func In(values ...any) Validator {
	return func(v any) bool {
		for _, want := range values {
			if equal(v, want) {
				return true
			}
		}
		return false
	}
}

// String accepts strings.
func String() Validator {
	return func(v any) bool {
		_, ok := v.(string)
		return ok
	}
}

// DateTime accepts time.Time values.
func DateTime() Validator {
	return func(v any) bool {
		_, ok := v.(time.Time)
		return ok
	}
}

// Null accepts only nil.
func Null() Validator {
	return func(v any) bool {
		return v == nil
	}
}

// Any accepts a value if any of validators does.
func Any(validators ...Validator) Validator {
	return func(v any) bool {
		for _, fn := range validators {
			if fn(v) {
				return true
			}
		}
		return false
	}
}

// Nullable accepts nil or anything fn accepts.
func Nullable(fn Validator) Validator {
	return Any(Null(), fn)
}

func equal(a, b any) bool {
	if fa, ok := asFloat(a); ok {
		fb, ok := asFloat(b)
		return ok && fa == fb
	}
	sa, ok := a.(string)
	if !ok {
		return false
	}
	sb, ok := b.(string)
	return ok && sa == sb
}

// asInt returns v as an int64 when v holds an integer kind.
func asInt(v any) (int64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	}
	return 0, false
}

// asFloat returns v as a float64 when v holds any numeric kind.
func asFloat(v any) (float64, bool) {
	if n, ok := asInt(v); ok {
		return float64(n), true
	}
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	case reflect.Uint, reflect.Uint64:
		return float64(rv.Uint()), true
	}
	return 0, false
}
