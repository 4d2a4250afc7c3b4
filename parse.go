package invariant

import (
	"errors"
	"math/big"
	"reflect"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	"github.com/x448/float16"
)

// ErrNilType is returned by [ParseScalarType] when the target type is nil.
var ErrNilType = errors.New("nil target type")

// timestampLayouts are tried in order when parsing time.Time text. The
// first is the renderer's own output form.
var timestampLayouts = []string{
	"2006-01-02 15:04:05-07:00",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseScalar parses invariant text as a value of type T. Parsing is
// fail-soft: malformed text, numeric overflow, and unknown enum names
// yield T's zero value. Only the scalar subset is supported; composite
// targets always yield the zero value.
func ParseScalar[T any](text string) T {
	v, err := ParseScalarType(text, reflect.TypeFor[T]())
	if err != nil {
		var zero T
		return zero
	}
	return v.(T)
}

// ParseScalarType is the reflect-typed form of [ParseScalar]. Pointer
// targets resolve to their element type before parsing and the result is
// re-wrapped, so a *int target yields a non-nil *int. The only error is
// [ErrNilType] for a nil target; parse failures degrade silently to the
// zero value.
func ParseScalarType(text string, target reflect.Type) (any, error) {
	if target == nil {
		return nil, ErrNilType
	}
	elem := target
	ptrs := 0
	for elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
		ptrs++
	}
	rv := parseValue(text, elem)
	for i := 0; i < ptrs; i++ {
		p := reflect.New(rv.Type())
		p.Elem().Set(rv)
		rv = p
	}
	return rv.Interface(), nil
}

// parseValue parses text as a value of type t, returning t's zero value
// on any failure.
func parseValue(text string, t reflect.Type) reflect.Value {
	trimmed := strings.TrimSpace(text)
	switch t {
	case bigIntType:
		n := new(big.Int)
		if _, ok := n.SetString(trimmed, 10); ok {
			return reflect.ValueOf(*n)
		}
		return reflect.Zero(t)
	case decimalType:
		d, _, err := apd.NewFromString(trimmed)
		if err != nil {
			return reflect.Zero(t)
		}
		return reflect.ValueOf(*d)
	case float16Type:
		f, err := strconv.ParseFloat(trimmed, 32)
		if err != nil {
			return reflect.Zero(t)
		}
		return reflect.ValueOf(float16.Fromfloat32(float32(f)))
	case uuidType:
		u, err := uuid.Parse(trimmed)
		if err != nil {
			return reflect.Zero(t)
		}
		return reflect.ValueOf(u)
	case timeType:
		for _, layout := range timestampLayouts {
			if ts, err := time.Parse(layout, trimmed); err == nil {
				return reflect.ValueOf(ts)
			}
		}
		return reflect.Zero(t)
	case durationType:
		d, ok := parseDuration(trimmed)
		if !ok {
			return reflect.Zero(t)
		}
		return reflect.ValueOf(d)
	case dateType:
		d, err := civil.ParseDate(trimmed)
		if err != nil {
			return reflect.Zero(t)
		}
		return reflect.ValueOf(d)
	case timeOfDayType:
		tod, err := civil.ParseTime(trimmed)
		if err != nil {
			return reflect.Zero(t)
		}
		return reflect.ValueOf(tod)
	case dateTimeType:
		if ts, err := time.Parse(DefaultTimeLayout, trimmed); err == nil {
			return reflect.ValueOf(civil.DateTimeOf(ts))
		}
		if dt, err := civil.ParseDateTime(trimmed); err == nil {
			return reflect.ValueOf(dt)
		}
		return reflect.Zero(t)
	}
	if table := lookupEnum(t); table != nil {
		if m, ok := table[trimmed]; ok {
			return m
		}
		return reflect.Zero(t)
	}
	rv := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Bool:
		// The renderer emits "True"/"False"; accept any casing.
		rv.SetBool(strings.EqualFold(trimmed, "true"))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if n, err := strconv.ParseInt(trimmed, 10, t.Bits()); err == nil {
			rv.SetInt(n)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if n, err := strconv.ParseUint(trimmed, 10, t.Bits()); err == nil {
			rv.SetUint(n)
		}
	case reflect.Float32, reflect.Float64:
		if f, err := strconv.ParseFloat(trimmed, t.Bits()); err == nil {
			rv.SetFloat(f)
		}
	case reflect.String:
		// Pass-through, untrimmed: strings round-trip verbatim.
		rv.SetString(text)
	}
	return rv
}

// parseDuration inverts formatDuration. It accepts the long d:hh:mm:ss
// form, the compact [d.]hh:mm:ss form, both with an optional fractional
// second, and falls back to Go duration syntax such as "1h30m".
func parseDuration(s string) (time.Duration, bool) {
	neg := strings.HasPrefix(s, "-")
	body := strings.TrimPrefix(s, "-")
	var dayStr, fracStr string
	parts := strings.Split(body, ":")
	switch len(parts) {
	case 4:
		dayStr = parts[0]
		parts = parts[1:]
	case 3:
		if i := strings.IndexByte(parts[0], '.'); i >= 0 {
			dayStr = parts[0][:i]
			parts[0] = parts[0][i+1:]
		}
	default:
		d, err := time.ParseDuration(s)
		return d, err == nil
	}
	if i := strings.IndexByte(parts[2], '.'); i >= 0 {
		fracStr = parts[2][i+1:]
		parts[2] = parts[2][:i]
	}
	var days int64
	if dayStr != "" {
		n, err := strconv.ParseInt(dayStr, 10, 64)
		if err != nil {
			return 0, false
		}
		days = n
	}
	var fields [3]int64
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 10, 64)
		if err != nil || n < 0 {
			return 0, false
		}
		fields[i] = n
	}
	var nanos int64
	if fracStr != "" {
		if len(fracStr) > 9 {
			fracStr = fracStr[:9]
		}
		n, err := strconv.ParseInt(fracStr+strings.Repeat("0", 9-len(fracStr)), 10, 64)
		if err != nil {
			return 0, false
		}
		nanos = n
	}
	d := time.Duration(days)*24*time.Hour +
		time.Duration(fields[0])*time.Hour +
		time.Duration(fields[1])*time.Minute +
		time.Duration(fields[2])*time.Second +
		time.Duration(nanos)
	if neg {
		d = -d
	}
	return d, true
}
