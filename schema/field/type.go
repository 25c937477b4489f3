package field

// Type is the semantic value kind of a field. It decides which dialect
// data type a column maps to and whether its literal values are quoted.
type Type uint8

// List of field types.
const (
	TypeInvalid Type = iota
	TypeBool
	TypeTime
	TypeUUID
	TypeString
	TypeInt
	TypeInt64
	TypeFloat64
	endTypes
)

var typeNames = [...]string{
	TypeInvalid: "invalid",
	TypeBool:    "bool",
	TypeTime:    "time.Time",
	TypeUUID:    "uuid.UUID",
	TypeString:  "string",
	TypeInt:     "int",
	TypeInt64:   "int64",
	TypeFloat64: "float64",
}

// String returns the Go name of the type.
func (t Type) String() string {
	if t < endTypes {
		return typeNames[t]
	}
	return typeNames[TypeInvalid]
}

// Valid reports if the given type is known.
func (t Type) Valid() bool {
	return t > TypeInvalid && t < endTypes
}

// Integer reports if the type is an integer type.
func (t Type) Integer() bool {
	return t == TypeInt || t == TypeInt64
}

// Numeric reports if the type is a numeric type.
func (t Type) Numeric() bool {
	return t.Integer() || t == TypeFloat64
}

// ParseType returns the type with the given name. It accepts the Go names
// returned by String and the short forms "time" and "uuid".
func ParseType(name string) (Type, bool) {
	switch name {
	case "time":
		return TypeTime, true
	case "uuid":
		return TypeUUID, true
	}
	for t := TypeInvalid + 1; t < endTypes; t++ {
		if typeNames[t] == name {
			return t, true
		}
	}
	return TypeInvalid, false
}

// Textual reports if literal values of the type are text and must be quoted.
func (t Type) Textual() bool {
	return t == TypeString || t == TypeTime || t == TypeUUID
}
