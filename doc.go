// Package invariant renders arbitrary runtime values as deterministic,
// culture-invariant diagnostic text.
//
// The central entry point is [FormatValue], which accepts any value and an
// optional [Options] and returns text. It is total: it never panics and
// never returns an error, regardless of input. The inverse for primitive
// kinds is [ParseScalar], a best-effort parser that yields the target
// type's zero value on malformed input.
//
//	invariant.FormatValue([]int{1, 2, 3}, nil) // "[1, 2, 3] (3 items)"
//	invariant.ParseScalar[int]("42")           // 42
//
// # Classification
//
// Every value maps to exactly one rendering branch:
//
//   - nil, nil pointers, and nil interfaces render as Options.NullString
//   - non-nil pointers are transparent and unwrap to their element
//   - scalars (booleans, integers of every width, big.Int, half-precision
//     floats, float32/float64, arbitrary-precision decimals, strings,
//     UUIDs, civil dates and times, time.Time, time.Duration) render by
//     fixed invariant rules
//   - named integer types implementing [fmt.Stringer] render by member name
//   - slices and rank-1 arrays render as "[a, b, c]" sequences; strings are
//     always scalars, never character sequences
//   - maps render as "{k: v, ...}" with pairs sorted by rendered key text,
//     so output is deterministic across runs
//   - nested fixed-size arrays ([2][3]int and deeper) render as
//     multi-dimensional arrays with an optional dimension header
//   - everything else goes through the conversion bridge (see below)
//
// # Bounds
//
// Two options bound output size and recursion for arbitrarily nested or
// self-referential input. Options.MaxNestingDepth is a depth budget
// consumed by every recursive step; once exhausted, rendering yields the
// fixed placeholder "<max nesting depth reached>", even for a plain
// scalar, so callers get a single worst-case bound on output and stack
// usage. Options.MaxCollectionItems bounds per-level breadth; truncated
// levels end with a literal "..." and the count suffix still reports the
// full element count.
//
// # Extensibility
//
// Types outside the closed kind set render through an ordered fallback
// chain: the [Converter] interface, a converter registered with
// [RegisterConverter], the error interface, [fmt.Stringer], and finally
// fmt's "%v". Any panic or error inside a converter or Stringer is
// contained and maps to the empty string; nothing escapes [FormatValue].
//
// Enum parsing needs a member table, since Go cannot invert String():
//
//	invariant.RegisterEnum(StateIdle, StateRunning, StateDone)
//	invariant.ParseScalar[State]("Running") // StateRunning
//
// # Parsing
//
// [ParseScalar] and [ParseScalarType] invert the scalar subset only.
// Parsing is fail-soft: malformed text, numeric overflow, and unknown enum
// names silently yield the target type's zero value. The single hard
// failure is [ErrNilType] from [ParseScalarType] when the target type is
// nil. Composite kinds (sequences, maps, arrays) are not parsed.
//
// # Concurrency
//
// The package holds no mutable state during rendering or parsing. An
// [Options] value is copied at entry and may be shared by concurrent
// calls. [RegisterConverter] and [RegisterEnum] are safe for concurrent
// use, though they are intended for init-time registration.
package invariant
