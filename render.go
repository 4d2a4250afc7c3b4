package invariant

import (
	"fmt"
	"io"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// FormatValue renders v as culture-invariant diagnostic text. A nil opts
// selects [DefaultOptions]. FormatValue is total: it never panics and has
// no error return; conversion failures inside custom types degrade to the
// empty string.
func FormatValue(v any, opts *Options) string {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	r := renderer{opts: o}
	return r.render(reflect.ValueOf(v), 0)
}

// Write renders v and writes the text to w. The only possible error is
// the writer's.
func Write(w io.Writer, v any, opts *Options) error {
	_, err := io.WriteString(w, FormatValue(v, opts))
	return err
}

// renderer carries the per-call options snapshot through the recursion.
type renderer struct {
	opts Options
}

// render is the recursive core. The depth budget is consumed
// unconditionally at every call, scalars included, so MaxNestingDepth
// bounds both output size and stack usage regardless of input shape.
func (r *renderer) render(rv reflect.Value, depth int) string {
	if depth >= r.opts.MaxNestingDepth {
		return depthPlaceholder
	}
	rv = indirect(rv)
	k := classify(rv)
	switch k {
	case KindSequence:
		return r.renderSequence(rv, depth)
	case KindMap:
		return r.renderMap(rv, depth)
	case KindMultiArray:
		return r.renderMultiArray(rv, depth)
	case KindConvertible:
		return convert(rv.Interface())
	default:
		return r.opts.formatScalar(k, rv)
	}
}

// indirect unwraps pointers and interfaces. A chain ending in nil stays
// at the nil value so classification yields KindNull.
func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return rv
		}
		rv = rv.Elem()
	}
	return rv
}

func (r *renderer) renderSequence(rv reflect.Value, depth int) string {
	n := rv.Len()
	if n == 0 {
		return "[]"
	}
	limit := n
	if max := r.opts.MaxCollectionItems; max > 0 && n > max {
		limit = max
	}
	parts := make([]string, 0, limit+1)
	for i := 0; i < limit; i++ {
		parts = append(parts, r.render(rv.Index(i), depth+1))
	}
	if limit < n {
		parts = append(parts, truncationMarker)
	}
	return "[" + strings.Join(parts, r.opts.CollectionSeparator) + "]" + r.countSuffix(n)
}

func (r *renderer) renderMap(rv reflect.Value, depth int) string {
	n := rv.Len()
	if n == 0 {
		return "{}"
	}
	type pair struct {
		key, val string
	}
	pairs := make([]pair, 0, n)
	it := rv.MapRange()
	for it.Next() {
		pairs = append(pairs, pair{
			key: r.render(it.Key(), depth+1),
			val: r.render(it.Value(), depth+1),
		})
	}
	// Map iteration order is randomized; sort by rendered text so output
	// is deterministic.
	slices.SortFunc(pairs, func(a, b pair) int {
		if c := strings.Compare(a.key, b.key); c != 0 {
			return c
		}
		return strings.Compare(a.val, b.val)
	})
	limit := n
	if max := r.opts.MaxCollectionItems; max > 0 && n > max {
		limit = max
	}
	parts := make([]string, 0, limit+1)
	for _, p := range pairs[:limit] {
		parts = append(parts, p.key+r.opts.KeyValueSeparator+p.val)
	}
	if limit < n {
		parts = append(parts, truncationMarker)
	}
	return "{" + strings.Join(parts, r.opts.CollectionSeparator) + "}" + r.countSuffix(n)
}

// renderMultiArray renders a nested fixed-size array. Dimension 0 is the
// outermost nesting level; a rank-R array consumes R units of depth
// budget before its scalar elements render.
func (r *renderer) renderMultiArray(rv reflect.Value, depth int) string {
	body := r.renderArrayLevel(rv, depth)
	if !r.opts.ShowArrayDimensions {
		return body
	}
	dims := arrayDims(rv.Type())
	total := 1
	strs := make([]string, len(dims))
	for i, d := range dims {
		total *= d
		strs[i] = strconv.Itoa(d)
	}
	return fmt.Sprintf("%dD %s, %d items %s", len(dims), strings.Join(strs, "×"), total, body)
}

// renderArrayLevel renders one dimension. Unlike sequences, array levels
// carry no count suffix; truncation applies per level.
func (r *renderer) renderArrayLevel(rv reflect.Value, depth int) string {
	if depth >= r.opts.MaxNestingDepth {
		return depthPlaceholder
	}
	n := rv.Len()
	if n == 0 {
		return "[]"
	}
	limit := n
	if max := r.opts.MaxCollectionItems; max > 0 && n > max {
		limit = max
	}
	inner := isArrayDim(rv.Type().Elem())
	parts := make([]string, 0, limit+1)
	for i := 0; i < limit; i++ {
		if inner {
			parts = append(parts, r.renderArrayLevel(rv.Index(i), depth+1))
		} else {
			parts = append(parts, r.render(rv.Index(i), depth+1))
		}
	}
	if limit < n {
		parts = append(parts, truncationMarker)
	}
	return "[" + strings.Join(parts, r.opts.CollectionSeparator) + "]"
}

// arrayDims returns the length of each dimension of a nested array type.
func arrayDims(t reflect.Type) []int {
	var dims []int
	for isArrayDim(t) {
		dims = append(dims, t.Len())
		t = t.Elem()
	}
	return dims
}

func (r *renderer) countSuffix(n int) string {
	if !r.opts.ShowCollectionCount {
		return ""
	}
	return fmt.Sprintf(" (%d items)", n)
}
