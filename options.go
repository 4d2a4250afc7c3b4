package invariant

// Fixed output markers. These are part of the output contract and are not
// configurable.
const (
	depthPlaceholder = "<max nesting depth reached>"
	truncationMarker = "..."
)

// Defaults applied by [DefaultOptions].
const (
	DefaultNullString          = "<null>"
	DefaultMaxNestingDepth     = 32
	DefaultCollectionSeparator = ", "
	DefaultKeyValueSeparator   = ": "
	DefaultTimeLayout          = "2006-01-02 15:04:05"
)

// Duration format tokens recognized by Options.DurationFormat. Anything
// else, including the empty string, selects the compact form.
const (
	DurationLong    = "long"    // d:hh:mm:ss
	DurationCompact = "compact" // hh:mm:ss, prefixed with "d." when days are nonzero
)

// Options configures rendering. The zero value is not useful; start from
// [DefaultOptions] and adjust fields. An Options value is copied when a
// render call starts, so one instance may be shared by concurrent calls
// and is never mutated by this package.
type Options struct {
	// NullString is the text for nil values, nil pointers, and nil
	// interfaces.
	NullString string

	// MaxNestingDepth is the recursion budget. Every recursive rendering
	// step consumes one unit, scalars included; once the budget is spent
	// the fixed placeholder "<max nesting depth reached>" is emitted. A
	// value of 0 renders everything as the placeholder.
	MaxNestingDepth int

	// MaxCollectionItems bounds how many elements of a sequence, map, or
	// array dimension are rendered; the rest collapse into "...". 0 means
	// unlimited.
	MaxCollectionItems int

	// ShowCollectionCount appends " (<N> items)" after sequences and maps,
	// where N is the element count before truncation. Empty collections
	// never carry the suffix.
	ShowCollectionCount bool

	// CollectionSeparator joins elements and pairs.
	CollectionSeparator string

	// KeyValueSeparator joins a rendered map key and its rendered value.
	KeyValueSeparator string

	// ShowArrayDimensions prepends "<R>D <d1>×<d2>…, <total> items " before
	// multi-dimensional arrays.
	ShowArrayDimensions bool

	// DecimalFormat, Float64Format, and Float32Format are fmt verbs (for
	// example "%.2f") applied to the matching numeric kind. Empty selects
	// the kind's default shortest invariant form.
	DecimalFormat string
	Float64Format string
	Float32Format string

	// DurationFormat selects a duration form: [DurationLong] or
	// [DurationCompact]. Empty or unrecognized values select the compact
	// form.
	DurationFormat string

	// TimeLayout is the Go layout for time.Time and civil.DateTime values.
	// Empty selects [DefaultTimeLayout]. time.Time values additionally
	// carry the zone offset in ±hh:mm form after the formatted text.
	TimeLayout string
}

// DefaultOptions returns the options used when a caller passes nil.
func DefaultOptions() Options {
	return Options{
		NullString:          DefaultNullString,
		MaxNestingDepth:     DefaultMaxNestingDepth,
		ShowCollectionCount: true,
		CollectionSeparator: DefaultCollectionSeparator,
		KeyValueSeparator:   DefaultKeyValueSeparator,
	}
}

func (o Options) timeLayout() string {
	if o.TimeLayout == "" {
		return DefaultTimeLayout
	}
	return o.TimeLayout
}
