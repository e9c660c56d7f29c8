package envar_test

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lwmacct/251207-go-pkg-envar/pkg/envar"
)

func TestBool(t *testing.T) {
	p := envar.Bool()

	for _, raw := range []string{"true", "1", "yes", "y", "on", "enabled", "TRUE", "Yes", "ON", "Enabled", " y "} {
		got, err := p.Parse("FLAG", raw)
		require.NoError(t, err, raw)
		assert.True(t, got, raw)
	}

	for _, raw := range []string{"false", "0", "no", "n", "off", "disabled", "FALSE", "No", "OFF", "Disabled", "", "   "} {
		got, err := p.Parse("FLAG", raw)
		require.NoError(t, err, raw)
		assert.False(t, got, raw)
	}

	_, err := p.Parse("FLAG", "maybe")
	require.Error(t, err)
	assert.ErrorIs(t, err, envar.ErrParse)

	var perr *envar.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "FLAG", perr.VarName)
	assert.Equal(t, "bool", perr.TypeName)
	assert.Equal(t, "maybe", perr.Value)
	assert.Contains(t, perr.Reason(), "enabled")
}

func TestInt(t *testing.T) {
	tests := []struct {
		name    string
		parse   func(string) (any, error)
		raw     string
		want    any
		wantErr bool
	}{
		{name: "int8 max", parse: parseWith(envar.Int[int8]()), raw: "127", want: int8(127)},
		{name: "int8 overflow", parse: parseWith(envar.Int[int8]()), raw: "128", wantErr: true},
		{name: "int16", parse: parseWith(envar.Int[int16]()), raw: "-32768", want: int16(-32768)},
		{name: "int32", parse: parseWith(envar.Int[int32]()), raw: "2147483647", want: int32(2147483647)},
		{name: "int64", parse: parseWith(envar.Int[int64]()), raw: "9223372036854775807", want: int64(9223372036854775807)},
		{name: "int", parse: parseWith(envar.Int[int]()), raw: "1000", want: 1000},
		{name: "int garbage", parse: parseWith(envar.Int[int]()), raw: "not_a_number", wantErr: true},
		{name: "int surrounding space", parse: parseWith(envar.Int[int]()), raw: " 1", wantErr: true},
		{name: "uint8 max", parse: parseWith(envar.Uint[uint8]()), raw: "255", want: uint8(255)},
		{name: "uint8 overflow", parse: parseWith(envar.Uint[uint8]()), raw: "999", wantErr: true},
		{name: "uint16", parse: parseWith(envar.Uint[uint16]()), raw: "65535", want: uint16(65535)},
		{name: "uint32", parse: parseWith(envar.Uint[uint32]()), raw: "4294967295", want: uint32(4294967295)},
		{name: "uint64", parse: parseWith(envar.Uint[uint64]()), raw: "18446744073709551615", want: uint64(18446744073709551615)},
		{name: "uint negative", parse: parseWith(envar.Uint[uint]()), raw: "-1", wantErr: true},
		{name: "float64", parse: parseWith(envar.Float[float64]()), raw: "3.141592653589793", want: 3.141592653589793},
		{name: "float32", parse: parseWith(envar.Float[float32]()), raw: "3.14159", want: float32(3.14159)},
		{name: "float garbage", parse: parseWith(envar.Float[float32]()), raw: "not_a_float", wantErr: true},
		{name: "duration", parse: parseWith(envar.Duration()), raw: "1m30s", want: 90 * time.Second},
		{name: "duration garbage", parse: parseWith(envar.Duration()), raw: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parse(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, envar.ErrParse)

				var perr *envar.ParseError
				require.ErrorAs(t, err, &perr)
				assert.Equal(t, tt.raw, perr.Value)
				assert.Equal(t, "VAR", perr.VarName)
				assert.NotEmpty(t, perr.Reason())

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInt_TypeName(t *testing.T) {
	_, err := envar.Int[int32]().Parse("T1_TEST_I32", "x")

	var perr *envar.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "int32", perr.TypeName)
	assert.ErrorIs(t, err, strconv.ErrSyntax)
}

func TestString(t *testing.T) {
	for _, raw := range []string{"Hello, World!", "", "  spaces around  "} {
		got, err := envar.String().Parse("S", raw)
		require.NoError(t, err)
		assert.Equal(t, raw, got)
	}
}

func TestOptional(t *testing.T) {
	p := envar.Optional(envar.Int[int]())

	_, err := p.Parse("OPT", "  ")
	assert.ErrorIs(t, err, envar.ErrTryDefault)

	got, err := p.Parse("OPT", " 42 ")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 42, *got)

	_, err = p.Parse("OPT", "x")
	assert.ErrorIs(t, err, envar.ErrParse)
}

func TestParseFunc_CustomType(t *testing.T) {
	type level int

	p := envar.ParseFunc[level](func(name, raw string) (level, error) {
		for _, c := range raw {
			if c != 'v' {
				return 0, envar.NewParseError(name, "level", raw, func() string {
					return "invalid character: " + string(c)
				})
			}
		}

		return level(len(raw)), nil
	})

	got, err := p.Parse("LEVEL", "vvvv")
	require.NoError(t, err)
	assert.Equal(t, level(4), got)

	_, err = p.Parse("LEVEL", "vx")

	var perr *envar.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, "invalid character: x", perr.Reason())
}

func parseWith[T any](p envar.Parser[T]) func(string) (any, error) {
	return func(raw string) (any, error) {
		return p.Parse("VAR", raw)
	}
}
