package invariant

import (
	"fmt"
	"reflect"
	"sync"
)

var (
	enumsMu sync.RWMutex
	enums   = map[reflect.Type]map[string]reflect.Value{}
)

// RegisterEnum records the members of an enum type so [ParseScalar] can
// resolve member names back to values. Rendering needs no registration;
// it goes through the member's String method. Members whose String method
// panics are skipped. Later registrations for the same type replace
// earlier ones.
//
//	invariant.RegisterEnum(StateIdle, StateRunning, StateDone)
func RegisterEnum[T fmt.Stringer](members ...T) {
	t := reflect.TypeFor[T]()
	table := make(map[string]reflect.Value, len(members))
	for _, m := range members {
		if name, ok := tryString(m); ok {
			table[name] = reflect.ValueOf(m)
		}
	}
	enumsMu.Lock()
	defer enumsMu.Unlock()
	enums[t] = table
}

func lookupEnum(t reflect.Type) map[string]reflect.Value {
	enumsMu.RLock()
	defer enumsMu.RUnlock()
	return enums[t]
}
