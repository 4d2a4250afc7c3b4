package invariant

import (
	"fmt"
	"math/big"
	"reflect"
	"time"

	"cloud.google.com/go/civil"
	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	"github.com/x448/float16"
)

// Kind is the classification tag assigned to a value. Every value maps to
// exactly one Kind; the renderer switches exhaustively over it.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindBigInt
	KindFloat16
	KindFloat32
	KindFloat64
	KindDecimal
	KindString
	KindGUID
	KindDate
	KindTimeOfDay
	KindDateTime
	KindTimestamp
	KindDuration
	KindEnum
	KindSequence
	KindMap
	KindMultiArray
	KindConvertible
)

var kindNames = map[Kind]string{
	KindNull:        "Null",
	KindBool:        "Bool",
	KindInt:         "Int",
	KindUint:        "Uint",
	KindBigInt:      "BigInt",
	KindFloat16:     "Float16",
	KindFloat32:     "Float32",
	KindFloat64:     "Float64",
	KindDecimal:     "Decimal",
	KindString:      "String",
	KindGUID:        "GUID",
	KindDate:        "Date",
	KindTimeOfDay:   "TimeOfDay",
	KindDateTime:    "DateTime",
	KindTimestamp:   "Timestamp",
	KindDuration:    "Duration",
	KindEnum:        "Enum",
	KindSequence:    "Sequence",
	KindMap:         "Map",
	KindMultiArray:  "MultiArray",
	KindConvertible: "Convertible",
}

// String returns the kind name.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "<unknown kind>"
}

// IsScalar reports whether k renders through the scalar formatter.
func (k Kind) IsScalar() bool {
	switch k {
	case KindSequence, KindMap, KindMultiArray, KindConvertible:
		return false
	default:
		return true
	}
}

// Cached types for exact-match classification.
var (
	bigIntType    = reflect.TypeFor[big.Int]()
	decimalType   = reflect.TypeFor[apd.Decimal]()
	float16Type   = reflect.TypeFor[float16.Float16]()
	uuidType      = reflect.TypeFor[uuid.UUID]()
	timeType      = reflect.TypeFor[time.Time]()
	durationType  = reflect.TypeFor[time.Duration]()
	dateType      = reflect.TypeFor[civil.Date]()
	timeOfDayType = reflect.TypeFor[civil.Time]()
	dateTimeType  = reflect.TypeFor[civil.DateTime]()
	stringerType  = reflect.TypeFor[fmt.Stringer]()
)

// exactKinds maps closed-set scalar types to their kinds. Exact-type
// matches take precedence over reflect.Kind dispatch so that, for
// example, time.Duration does not classify as a plain Int.
var exactKinds = map[reflect.Type]Kind{
	bigIntType:    KindBigInt,
	decimalType:   KindDecimal,
	float16Type:   KindFloat16,
	uuidType:      KindGUID,
	timeType:      KindTimestamp,
	durationType:  KindDuration,
	dateType:      KindDate,
	timeOfDayType: KindTimeOfDay,
	dateTimeType:  KindDateTime,
}

// isArrayDim reports whether t counts as one dimension of a
// multi-dimensional array. Scalar types with an array representation,
// such as uuid.UUID, are not dimensions.
func isArrayDim(t reflect.Type) bool {
	if _, exact := exactKinds[t]; exact {
		return false
	}
	return t.Kind() == reflect.Array
}

// classify maps a value to exactly one Kind. It is pure and total: the
// invalid zero reflect.Value classifies as KindNull, pointers and
// interfaces are transparent, and no branch panics or produces output.
func classify(rv reflect.Value) Kind {
	if !rv.IsValid() {
		return KindNull
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return KindNull
		}
		return classify(rv.Elem())
	}
	if k, ok := exactKinds[rv.Type()]; ok {
		return k
	}
	switch rv.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if isEnum(rv.Type()) {
			return KindEnum
		}
		return KindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if isEnum(rv.Type()) {
			return KindEnum
		}
		return KindUint
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.String:
		// Strings, named string types included, are always scalars.
		return KindString
	case reflect.Array:
		if isArrayDim(rv.Type().Elem()) {
			return KindMultiArray
		}
		return KindSequence
	case reflect.Slice:
		return KindSequence
	case reflect.Map:
		return KindMap
	default:
		return KindConvertible
	}
}

// isEnum reports whether t is a named integer type that renders by
// symbolic member name through fmt.Stringer.
func isEnum(t reflect.Type) bool {
	return t.Name() != "" && t.PkgPath() != "" && t.Implements(stringerType)
}
