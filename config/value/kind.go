package value

// Kind tags the shape of a value held in a Table.
type Kind int

// Kinds of values a normalized tree can hold.
const (
	KindInvalid Kind = iota
	KindString
	KindInteger
	KindFloat
	KindBoolean
	KindArray
	KindTable
)

//nolint:gochecknoglobals // lookup table for Kind.String.
var kindNames = map[Kind]string{
	KindInvalid: "invalid",
	KindString:  "string",
	KindInteger: "integer",
	KindFloat:   "float",
	KindBoolean: "boolean",
	KindArray:   "array",
	KindTable:   "table",
}

func (k Kind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return kindNames[KindInvalid]
	}

	return name
}

// KindOf reports the kind of a normalized value.
// Anything outside the closed set of tree types is KindInvalid.
func KindOf(v any) Kind {
	switch v.(type) {
	case string:
		return KindString
	case int64:
		return KindInteger
	case float64:
		return KindFloat
	case bool:
		return KindBoolean
	case []any:
		return KindArray
	case Table:
		return KindTable
	default:
		return KindInvalid
	}
}

// IsScalar reports whether k is one of the leaf kinds.
func (k Kind) IsScalar() bool {
	switch k {
	case KindString, KindInteger, KindFloat, KindBoolean:
		return true
	case KindInvalid, KindArray, KindTable:
		return false
	default:
		return false
	}
}
