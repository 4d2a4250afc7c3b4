package invariant

import (
	"fmt"
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

// formatScalar renders a scalar or enum kind. rv has already been
// unwrapped through pointers and interfaces, except for KindNull, where
// it may be invalid or nil.
func (o Options) formatScalar(k Kind, rv reflect.Value) string {
	switch k {
	case KindNull:
		return o.NullString
	case KindBool:
		if rv.Bool() {
			return "True"
		}
		return "False"
	case KindInt:
		return strconv.FormatInt(rv.Int(), 10)
	case KindUint:
		return strconv.FormatUint(rv.Uint(), 10)
	case KindBigInt:
		n := rv.Interface().(big.Int)
		return n.String()
	case KindFloat16:
		h := rv.Interface().(float16.Float16)
		return o.formatFloat(float64(h.Float32()), 32, o.Float32Format)
	case KindFloat32:
		return o.formatFloat(rv.Float(), 32, o.Float32Format)
	case KindFloat64:
		return o.formatFloat(rv.Float(), 64, o.Float64Format)
	case KindDecimal:
		d := rv.Interface().(apd.Decimal)
		if o.DecimalFormat != "" {
			return fmt.Sprintf(o.DecimalFormat, &d)
		}
		return d.String()
	case KindString:
		return rv.String()
	case KindGUID:
		return rv.Interface().(uuid.UUID).String()
	case KindDate:
		return rv.Interface().(civil.Date).String()
	case KindTimeOfDay:
		return rv.Interface().(civil.Time).String()
	case KindDateTime:
		dt := rv.Interface().(civil.DateTime)
		return dt.In(time.UTC).Format(o.timeLayout())
	case KindTimestamp:
		t := rv.Interface().(time.Time)
		return t.Format(o.timeLayout()) + t.Format("-07:00")
	case KindDuration:
		return o.formatDuration(rv.Interface().(time.Duration))
	case KindEnum:
		return formatEnum(rv)
	default:
		// Composite kinds never reach the scalar formatter.
		return ""
	}
}

// formatFloat applies the caller's fmt verb when present, otherwise the
// shortest invariant representation for the float's bit width.
func (o Options) formatFloat(f float64, bits int, verb string) string {
	if verb != "" {
		return fmt.Sprintf(verb, f)
	}
	return strconv.FormatFloat(f, 'g', -1, bits)
}

// formatDuration renders d in the long (d:hh:mm:ss) or compact
// ([d.]hh:mm:ss) form. Sub-second remainders append as a trimmed
// fractional second in either form.
func (o Options) formatDuration(d time.Duration) string {
	var b strings.Builder
	if d < 0 {
		b.WriteByte('-')
		d = -d
	}
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	frac := d - seconds*time.Second

	if o.DurationFormat == DurationLong {
		fmt.Fprintf(&b, "%d:%02d:%02d:%02d", days, hours, minutes, seconds)
	} else {
		if days > 0 {
			fmt.Fprintf(&b, "%d.", days)
		}
		fmt.Fprintf(&b, "%02d:%02d:%02d", hours, minutes, seconds)
	}
	if frac != 0 {
		b.WriteString(strings.TrimRight(fmt.Sprintf(".%09d", frac), "0"))
	}
	return b.String()
}

// formatEnum renders an enum member by its declared name. A String method
// that panics falls back to the numeric value.
func formatEnum(rv reflect.Value) string {
	if s, ok := rv.Interface().(fmt.Stringer); ok {
		if name, ok := tryString(s); ok {
			return name
		}
	}
	if rv.CanInt() {
		return strconv.FormatInt(rv.Int(), 10)
	}
	return strconv.FormatUint(rv.Uint(), 10)
}

func tryString(s fmt.Stringer) (name string, ok bool) {
	defer func() {
		if recover() != nil {
			name, ok = "", false
		}
	}()
	return s.String(), true
}
