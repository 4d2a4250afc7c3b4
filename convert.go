package invariant

import (
	"fmt"
	"reflect"
	"sync"
)

// Converter is the escape hatch for types outside the closed scalar and
// collection kinds. A type that implements it controls its own rendering;
// the renderer uses the returned text verbatim. Returning an error, or
// panicking, renders the value as the empty string.
type Converter interface {
	InvariantString() (string, error)
}

var (
	convertersMu sync.RWMutex
	converters   = map[reflect.Type]func(any) (string, error){}
)

// RegisterConverter registers fn as the converter for values of type T.
// It is the alternative to implementing [Converter] when T is owned by
// another package. Later registrations for the same type replace earlier
// ones.
func RegisterConverter[T any](fn func(T) (string, error)) {
	t := reflect.TypeFor[T]()
	convertersMu.Lock()
	defer convertersMu.Unlock()
	converters[t] = func(v any) (string, error) {
		return fn(v.(T))
	}
}

func lookupConverter(t reflect.Type) func(any) (string, error) {
	convertersMu.RLock()
	defer convertersMu.RUnlock()
	return converters[t]
}

// convert produces text for a value no other branch claimed. Fallbacks
// run in order with short-circuit on first match: the Converter
// interface, a registered converter, the error interface, fmt.Stringer,
// and finally fmt's "%v". Errors and panics inside any fallback are
// contained here and map to the empty string; callers of the renderer
// never observe them.
func convert(v any) string {
	if c, ok := v.(Converter); ok {
		return contained(c.InvariantString)
	}
	if fn := lookupConverter(reflect.TypeOf(v)); fn != nil {
		return contained(func() (string, error) { return fn(v) })
	}
	if err, ok := v.(error); ok {
		return contained(func() (string, error) { return err.Error(), nil })
	}
	if s, ok := v.(fmt.Stringer); ok {
		return contained(func() (string, error) { return s.String(), nil })
	}
	return fmt.Sprintf("%v", v)
}

// contained invokes fn and maps any error or panic to the empty string.
// This is the single exception boundary of the conversion bridge.
func contained(fn func() (string, error)) (out string) {
	defer func() {
		if recover() != nil {
			out = ""
		}
	}()
	s, err := fn()
	if err != nil {
		return ""
	}
	return s
}
