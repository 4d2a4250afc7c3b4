package invariant_test

import (
	"reflect"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/bjaus/invariant"
)

// --- Round-trip: ParseScalar inverts FormatValue for scalar kinds ---

func TestParseScalarRoundTripInt(t *testing.T) {
	t.Parallel()
	for _, v := range []int{0, 1, -1, 42, -9000} {
		assert.Equal(t, v, invariant.ParseScalar[int](invariant.FormatValue(v, nil)))
	}
}

func TestParseScalarRoundTripUint(t *testing.T) {
	t.Parallel()
	v := uint64(18446744073709551615)
	assert.Equal(t, v, invariant.ParseScalar[uint64](invariant.FormatValue(v, nil)))
}

func TestParseScalarRoundTripFloat(t *testing.T) {
	t.Parallel()
	for _, v := range []float64{0, 3.14, -2.5, 1e300} {
		assert.Equal(t, v, invariant.ParseScalar[float64](invariant.FormatValue(v, nil)))
	}
	f := float32(1.5)
	assert.Equal(t, f, invariant.ParseScalar[float32](invariant.FormatValue(f, nil)))
}

func TestParseScalarRoundTripFloat16(t *testing.T) {
	t.Parallel()
	h := float16.Fromfloat32(2.25)
	assert.Equal(t, h, invariant.ParseScalar[float16.Float16](invariant.FormatValue(h, nil)))
}

func TestParseScalarRoundTripBool(t *testing.T) {
	t.Parallel()
	assert.True(t, invariant.ParseScalar[bool](invariant.FormatValue(true, nil)))
	assert.False(t, invariant.ParseScalar[bool](invariant.FormatValue(false, nil)))
}

func TestParseScalarRoundTripGUID(t *testing.T) {
	t.Parallel()
	u := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	assert.Equal(t, u, invariant.ParseScalar[uuid.UUID](invariant.FormatValue(u, nil)))
}

func TestParseScalarRoundTripDecimal(t *testing.T) {
	t.Parallel()
	d := apd.New(314159, -5)
	got := invariant.ParseScalar[apd.Decimal](invariant.FormatValue(d, nil))
	assert.Zero(t, got.Cmp(d))
}

func TestParseScalarRoundTripTimestamp(t *testing.T) {
	t.Parallel()
	ts := time.Date(2024, 3, 5, 10, 30, 0, 0, time.FixedZone("", 3600))
	got := invariant.ParseScalar[time.Time](invariant.FormatValue(ts, nil))
	assert.True(t, got.Equal(ts))
}

func TestParseScalarRoundTripCivil(t *testing.T) {
	t.Parallel()
	d := civil.Date{Year: 2024, Month: time.March, Day: 5}
	assert.Equal(t, d, invariant.ParseScalar[civil.Date](invariant.FormatValue(d, nil)))

	tod := civil.Time{Hour: 10, Minute: 30, Second: 15}
	assert.Equal(t, tod, invariant.ParseScalar[civil.Time](invariant.FormatValue(tod, nil)))

	dt := civil.DateTime{Date: d, Time: tod}
	assert.Equal(t, dt, invariant.ParseScalar[civil.DateTime](invariant.FormatValue(dt, nil)))
}

func TestParseScalarRoundTripDuration(t *testing.T) {
	t.Parallel()
	durations := []time.Duration{
		0,
		90 * time.Minute,
		26 * time.Hour,
		-90 * time.Second,
		1500 * time.Millisecond,
		73*time.Hour + 20*time.Minute + 3*time.Second + 250*time.Millisecond,
	}
	for _, format := range []string{"", invariant.DurationLong} {
		opts := invariant.DefaultOptions()
		opts.DurationFormat = format
		for _, d := range durations {
			text := invariant.FormatValue(d, &opts)
			assert.Equal(t, d, invariant.ParseScalar[time.Duration](text), "format %q text %q", format, text)
		}
	}
}

func TestParseScalarRoundTripEnum(t *testing.T) {
	t.Parallel()
	// Registered in render_test.go's init.
	assert.Equal(t, blue, invariant.ParseScalar[color](invariant.FormatValue(blue, nil)))
}

func TestParseScalarRoundTripString(t *testing.T) {
	t.Parallel()
	// Strings pass through untouched, whitespace included.
	assert.Equal(t, "  padded  ", invariant.ParseScalar[string]("  padded  "))
}

// --- Fail-soft behavior ---

func TestParseScalarFailSoft(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 0, invariant.ParseScalar[int]("invalid"))
	assert.Equal(t, uuid.Nil, invariant.ParseScalar[uuid.UUID]("not-a-guid"))
	assert.Equal(t, float64(0), invariant.ParseScalar[float64]("xyz"))
	assert.Equal(t, time.Duration(0), invariant.ParseScalar[time.Duration]("later"))
	assert.False(t, invariant.ParseScalar[bool]("yes please"))
	assert.True(t, invariant.ParseScalar[time.Time]("not a time").IsZero())
}

func TestParseScalarOverflow(t *testing.T) {
	t.Parallel()
	assert.Equal(t, int8(0), invariant.ParseScalar[int8]("300"))
	assert.Equal(t, uint8(0), invariant.ParseScalar[uint8]("-1"))
}

func TestParseScalarUnknownEnumName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, red, invariant.ParseScalar[color]("Purple"))
}

func TestParseScalarCompositeYieldsZero(t *testing.T) {
	t.Parallel()
	assert.Nil(t, invariant.ParseScalar[[]int]("[1, 2] (2 items)"))
	assert.Nil(t, invariant.ParseScalar[map[string]int]("{a: 1}"))
}

func TestParseScalarBoolCasing(t *testing.T) {
	t.Parallel()
	assert.True(t, invariant.ParseScalar[bool]("True"))
	assert.True(t, invariant.ParseScalar[bool]("true"))
	assert.True(t, invariant.ParseScalar[bool]("TRUE"))
	assert.False(t, invariant.ParseScalar[bool]("False"))
}

func TestParseScalarGoDurationSyntax(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 90*time.Minute, invariant.ParseScalar[time.Duration]("1h30m"))
}

// --- Pointer targets ---

func TestParseScalarPointerTarget(t *testing.T) {
	t.Parallel()
	p := invariant.ParseScalar[*int]("5")
	require.NotNil(t, p)
	assert.Equal(t, 5, *p)
}

// --- ParseScalarType ---

func TestParseScalarTypeNilType(t *testing.T) {
	t.Parallel()
	_, err := invariant.ParseScalarType("42", nil)
	require.ErrorIs(t, err, invariant.ErrNilType)
}

func TestParseScalarType(t *testing.T) {
	t.Parallel()
	v, err := invariant.ParseScalarType("42", reflect.TypeOf(0))
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	v, err = invariant.ParseScalarType("invalid", reflect.TypeOf(0))
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}
