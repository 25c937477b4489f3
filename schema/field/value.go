package field

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// TimeLayout is the layout used for rendering time values as SQL literals.
const TimeLayout = "2006-01-02 15:04:05"

// Value is a scalar tagged with its field type. A nil V is the null value
// and renders as the dialect null phrase whatever the type is.
type Value struct {
	Type Type
	V    any
}

// Null returns the null value of the given type.
func Null(t Type) Value {
	return Value{Type: t}
}

// IsNull reports if the value is absent.
func (v Value) IsNull() bool {
	return v.V == nil
}

// String returns the textual form of the value, without any quoting.
// Callers must go through a dialect to render it into a statement.
func (v Value) String() string {
	switch x := v.V.(type) {
	case nil:
		return ""
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case string:
		return x
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case time.Time:
		return x.UTC().Format(TimeLayout)
	case uuid.UUID:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// NewValue converts a raw Go value into a Value of type t. Nil and nil
// pointers become the null value. It fails if the Go type of raw cannot
// hold a value of t, so an integer column never receives unquoted text.
func NewValue(t Type, raw any) (Value, error) {
	raw = deref(raw)
	if raw == nil {
		return Null(t), nil
	}
	var (
		v  any
		ok bool
	)
	switch t {
	case TypeInt, TypeInt64:
		v, ok = toInt64(raw)
	case TypeFloat64:
		if v, ok = toInt64(raw); ok {
			v = float64(v.(int64))
			break
		}
		switch x := raw.(type) {
		case float64:
			v, ok = x, true
		case float32:
			v, ok = float64(x), true
		}
		// NaN and infinities have no SQL literal.
		if f, isFloat := v.(float64); isFloat && (math.IsNaN(f) || math.IsInf(f, 0)) {
			return Value{}, fmt.Errorf("field: non-finite value %v is not assignable to %s", f, t)
		}
	case TypeString:
		v, ok = raw.(string)
	case TypeBool:
		v, ok = raw.(bool)
	case TypeTime:
		v, ok = raw.(time.Time)
	case TypeUUID:
		switch x := raw.(type) {
		case uuid.UUID:
			v, ok = x, true
		case string:
			id, err := uuid.Parse(x)
			if err != nil {
				return Value{}, fmt.Errorf("field: invalid uuid %q: %w", x, err)
			}
			v, ok = id, true
		}
	default:
		return Value{}, fmt.Errorf("field: invalid type %s", t)
	}
	if !ok {
		return Value{}, fmt.Errorf("field: value of type %T is not assignable to %s", raw, t)
	}
	return Value{Type: t, V: v}, nil
}

func toInt64(raw any) (any, bool) {
	switch x := raw.(type) {
	case int:
		return int64(x), true
	case int8:
		return int64(x), true
	case int16:
		return int64(x), true
	case int32:
		return int64(x), true
	case int64:
		return x, true
	case uint:
		if uint64(x) > math.MaxInt64 {
			return nil, false
		}
		return int64(x), true
	case uint64:
		if x > math.MaxInt64 {
			return nil, false
		}
		return int64(x), true
	case uint8:
		return int64(x), true
	case uint16:
		return int64(x), true
	case uint32:
		return int64(x), true
	}
	return nil, false
}

// deref unwraps pointers of the supported Go types.
func deref(raw any) any {
	switch x := raw.(type) {
	case *int:
		if x != nil {
			return *x
		}
	case *int64:
		if x != nil {
			return *x
		}
	case *string:
		if x != nil {
			return *x
		}
	case *bool:
		if x != nil {
			return *x
		}
	case *float64:
		if x != nil {
			return *x
		}
	case *time.Time:
		if x != nil {
			return *x
		}
	case *uuid.UUID:
		if x != nil {
			return *x
		}
	default:
		return raw
	}
	return nil
}
