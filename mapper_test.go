package argbind

import (
	"errors"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

func init() {
	hclog.L().SetLevel(hclog.Trace)
}

type exampleTarget struct {
	Count int    `argbind:"option=count,required"`
	Name  string `argbind:"value=0"`
}

type allTypes struct {
	Bool   bool    `argbind:"option=bool"`
	Char   rune    `argbind:"option=char,char"`
	Byte   byte    `argbind:"option=byte"`
	Short  int16   `argbind:"option=short"`
	Int    int     `argbind:"option=int"`
	Int32  int32   `argbind:"option=int32"`
	Long   int64   `argbind:"option=long"`
	Float  float32 `argbind:"option=float"`
	Double float64 `argbind:"option=double"`
	String string  `argbind:"option=string"`
}

// kinds returns the error kinds of r in order.
func kinds(r *Result) []ErrorKind {
	var result []ErrorKind
	for _, err := range r.Errors() {
		result = append(result, err.Kind)
	}

	return result
}

func TestMap_example(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		require := require.New(t)

		var target exampleTarget
		result, err := Bind(&target, []string{"--count", "5", "hello"})
		require.NoError(err)
		require.True(result.Success(), spew.Sdump(result.Errors()))
		require.Empty(result.Errors())
		require.NoError(result.Err())
		require.Equal(5, target.Count)
		require.Equal("hello", target.Name)
		require.Same(&target, result.Target())
	})

	t.Run("type mismatch", func(t *testing.T) {
		require := require.New(t)

		var target exampleTarget
		result, err := Bind(&target, []string{"--count", "abc", "hello"})
		require.NoError(err)
		require.False(result.Success())

		errs := result.Errors()
		require.Len(errs, 1, spew.Sdump(errs))
		require.Equal(ErrorTypeMismatch, errs[0].Kind)
		require.Equal("count", errs[0].Slot)
		require.Equal("abc", errs[0].Token)
		require.Equal(TypeInt, errs[0].Expected)

		require.Equal(0, target.Count)
		require.Equal("hello", target.Name)
	})
}

func TestMap_roundTrip(t *testing.T) {
	require := require.New(t)

	expected := allTypes{
		Bool:   true,
		Char:   'λ',
		Byte:   200,
		Short:  -300,
		Int:    123456,
		Int32:  -7,
		Long:   -9000000000,
		Float:  2.5,
		Double: 1e-9,
		String: " spaced out ",
	}

	args := []string{
		"--bool", "true",
		"--char", "λ",
		"--byte", "200",
		"--short", "-300",
		"--int", "123456",
		"--int32", "-7",
		"--long", "-9000000000",
		"--float", "2.5",
		"--double", "1e-09",
		"--string", " spaced out ",
	}

	var actual allTypes
	result, err := Bind(&actual, args)
	require.NoError(err)
	require.True(result.Success(), spew.Sdump(result.Errors()))
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Fatalf("unexpected target (-want +got):\n%s", diff)
	}
}

func TestMap(t *testing.T) {
	type target struct {
		Count   int     `argbind:"option=count|c,required"`
		Verbose bool    `argbind:"option=verbose|v"`
		Ratio   float64 `argbind:"option=ratio,default=1.5"`
		Mode    rune    `argbind:"option=mode,char,default=a"`
		Name    string  `argbind:"value=0"`
		Level   int16   `argbind:"value=1,default=3"`
	}

	cases := []struct {
		Name     string
		Args     []string
		Opts     []Option
		Expected target
		Errs     []ErrorKind
	}{
		{
			"all supplied",
			[]string{"-c", "2", "--verbose", "1", "--ratio", "0.5", "--mode", "z", "n", "9"},
			nil,
			target{Count: 2, Verbose: true, Ratio: 0.5, Mode: 'z', Name: "n", Level: 9},
			nil,
		},

		{
			"defaults applied",
			[]string{"--count", "1"},
			nil,
			target{Count: 1, Ratio: 1.5, Mode: 'a', Level: 3},
			nil,
		},

		{
			"missing required",
			[]string{"name"},
			nil,
			target{Ratio: 1.5, Mode: 'a', Name: "name", Level: 3},
			[]ErrorKind{ErrorMissingRequiredValue},
		},

		{
			"unknown option continues scanning",
			[]string{"--bogus", "--count", "4", "x"},
			nil,
			target{Count: 4, Ratio: 1.5, Mode: 'a', Name: "x", Level: 3},
			[]ErrorKind{ErrorUnknownOption},
		},

		{
			"unknown option does not consume the next token",
			[]string{"--bogus", "x", "--count", "4"},
			nil,
			target{Count: 4, Ratio: 1.5, Mode: 'a', Name: "x", Level: 3},
			[]ErrorKind{ErrorUnknownOption},
		},

		{
			"unknown option allowed",
			[]string{"--bogus", "--count", "4"},
			[]Option{WithAllowUnknownOptions(true)},
			target{Count: 4, Ratio: 1.5, Mode: 'a', Level: 3},
			nil,
		},

		{
			"too many values",
			[]string{"--count", "1", "a", "2", "extra"},
			nil,
			target{Count: 1, Ratio: 1.5, Mode: 'a', Name: "a", Level: 2},
			[]ErrorKind{ErrorPropertyNotFound},
		},

		{
			"dangling option",
			[]string{"name", "--count"},
			nil,
			target{Ratio: 1.5, Mode: 'a', Name: "name", Level: 3},
			[]ErrorKind{ErrorMissingOptionValue},
		},

		{
			"option value that looks like an option",
			[]string{"--count", "-3"},
			nil,
			target{Count: -3, Ratio: 1.5, Mode: 'a', Level: 3},
			nil,
		},

		{
			"inline value",
			[]string{"--count=8", "--mode=q"},
			nil,
			target{Count: 8, Ratio: 1.5, Mode: 'q', Level: 3},
			nil,
		},

		{
			"terminator makes later tokens positional",
			[]string{"--count", "1", "--", "--verbose", "4"},
			nil,
			target{Count: 1, Ratio: 1.5, Mode: 'a', Name: "--verbose", Level: 4},
			nil,
		},

		{
			"bare prefix is a value",
			[]string{"-", "--count", "1"},
			nil,
			target{Count: 1, Ratio: 1.5, Mode: 'a', Name: "-", Level: 3},
			nil,
		},

		{
			"case insensitive names by default",
			[]string{"--COUNT", "1", "--Verbose", "TRUE"},
			nil,
			target{Count: 1, Verbose: true, Ratio: 1.5, Mode: 'a', Level: 3},
			nil,
		},

		{
			"case sensitive names",
			[]string{"--COUNT", "1", "--count", "2", "--verbose", "TRUE"},
			[]Option{WithCaseSensitive(true)},
			target{Count: 2, Ratio: 1.5, Mode: 'a', Name: "1", Level: 3},
			[]ErrorKind{ErrorUnknownOption, ErrorTypeMismatch},
		},

		{
			"custom prefix",
			[]string{"/count", "6", "-5"},
			[]Option{WithOptionPrefix("/")},
			target{Count: 6, Ratio: 1.5, Mode: 'a', Name: "-5", Level: 3},
			nil,
		},

		{
			"every problem reported at once",
			[]string{"--verbose", "yes", "--nope", "--ratio", "fast", "n", "big", "extra"},
			nil,
			target{Ratio: 0, Mode: 'a', Name: "n"},
			[]ErrorKind{
				ErrorTypeMismatch,
				ErrorUnknownOption,
				ErrorTypeMismatch,
				ErrorTypeMismatch,
				ErrorPropertyNotFound,
				ErrorMissingRequiredValue,
			},
		},
	}

	for _, tt := range cases {
		t.Run(tt.Name, func(t *testing.T) {
			require := require.New(t)

			var actual target
			reg, err := BuildRegistry(&actual)
			require.NoError(err)

			result := Map(tt.Args, reg, tt.Opts...)
			require.Equal(tt.Errs, kinds(result), spew.Sdump(result.Errors()))
			require.Equal(len(tt.Errs) == 0, result.Success())
			if diff := cmp.Diff(tt.Expected, actual); diff != "" {
				t.Fatalf("unexpected target (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMap_booleanLiterals(t *testing.T) {
	for _, raw := range []string{"true", "True", "TRUE", "1"} {
		t.Run(raw, func(t *testing.T) {
			require := require.New(t)

			var target struct {
				On bool `argbind:"option=on"`
			}
			result, err := Bind(&target, []string{"--on", raw})
			require.NoError(err)
			require.True(result.Success())
			require.True(target.On)
		})
	}

	t.Run("yes", func(t *testing.T) {
		require := require.New(t)

		var target struct {
			On bool `argbind:"option=on"`
		}
		result, err := Bind(&target, []string{"--on", "yes"})
		require.NoError(err)
		require.Equal([]ErrorKind{ErrorTypeMismatch}, kinds(result))
		require.True(errors.Is(result.Errors()[0], ErrTypeMismatch))
	})
}

func TestMap_missingRequiredOnce(t *testing.T) {
	require := require.New(t)

	var target struct {
		A string `argbind:"option=a,required"`
		B string `argbind:"value=0,required"`
	}
	result, err := Bind(&target, nil)
	require.NoError(err)
	require.False(result.Success())

	missing := result.ErrorsOf(ErrorMissingRequiredValue)
	require.Len(missing, 2)
	require.Equal("a", missing[0].Slot)
	require.Equal("B", missing[1].Slot)
}

func TestMap_duplicatePositional(t *testing.T) {
	require := require.New(t)

	var target struct {
		Name string `argbind:"value=0,default=anon"`
	}
	reg, err := BuildRegistry(&target)
	require.NoError(err)

	result := Map([]string{"first"}, reg)
	require.True(result.Success())
	require.Equal("first", target.Name)

	result = Map([]string{"second"}, reg)
	require.Equal([]ErrorKind{ErrorDuplicatePositional}, kinds(result))
	require.Equal(0, result.Errors()[0].Position)
	require.Equal("first", target.Name, "bound value must not be overwritten")
}

func TestMap_independentRegistries(t *testing.T) {
	require := require.New(t)

	var a, b exampleTarget
	regA, err := BuildRegistry(&a)
	require.NoError(err)
	regB, err := BuildRegistry(&b)
	require.NoError(err)

	ra := Map([]string{"--count", "1", "a"}, regA)
	rb := Map([]string{"--count", "2", "b"}, regB)
	require.True(ra.Success())
	require.True(rb.Success())
	require.Equal(exampleTarget{Count: 1, Name: "a"}, a)
	require.Equal(exampleTarget{Count: 2, Name: "b"}, b)
}

func TestMap_noSlots(t *testing.T) {
	require := require.New(t)

	var target struct{}
	result, err := Bind(&target, []string{"x"})
	require.NoError(err)
	require.Equal([]ErrorKind{ErrorPropertyNotFound}, kinds(result))
}

func TestMap_caseSensitiveRegistry(t *testing.T) {
	type target struct {
		Lower string `argbind:"option=v"`
		Upper string `argbind:"option=V"`
		Long  int    `argbind:"option=long"`
	}

	cases := []struct {
		Name     string
		Args     []string
		Opts     []Option
		Expected target
		Errs     []ErrorKind
	}{
		{
			"exact names",
			[]string{"-v", "a", "-V", "b"},
			[]Option{WithCaseSensitive(true)},
			target{Lower: "a", Upper: "b"},
			nil,
		},

		{
			"exact names in an insensitive map",
			[]string{"-V", "b", "-v", "a"},
			nil,
			target{Lower: "a", Upper: "b"},
			nil,
		},

		{
			"folded unique name in an insensitive map",
			[]string{"--LONG", "3"},
			nil,
			target{Long: 3},
			nil,
		},

		{
			"folded name in a sensitive map",
			[]string{"--LONG", "3"},
			[]Option{WithCaseSensitive(true)},
			target{},
			[]ErrorKind{ErrorUnknownOption, ErrorPropertyNotFound},
		},
	}

	for _, tt := range cases {
		t.Run(tt.Name, func(t *testing.T) {
			require := require.New(t)

			var actual target
			reg, err := BuildRegistry(&actual, WithCaseSensitive(true))
			require.NoError(err)

			result := Map(tt.Args, reg, tt.Opts...)
			require.Equal(tt.Errs, kinds(result), spew.Sdump(result.Errors()))
			if diff := cmp.Diff(tt.Expected, actual); diff != "" {
				t.Fatalf("unexpected target (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildRegistry_duplicatePosition(t *testing.T) {
	require := require.New(t)

	var target struct {
		A string `argbind:"value=0"`
		B string `argbind:"value=0"`
	}
	reg, err := BuildRegistry(&target)
	require.Error(err)
	require.Nil(reg)
	require.Contains(err.Error(), `position 0 is already used by "A"`)

	var cfgErr *ConfigError
	require.True(errors.As(err, &cfgErr))
	require.Equal("B", cfgErr.Field)
}

func TestBind_configError(t *testing.T) {
	require := require.New(t)

	var target struct {
		A int `argbind:"option=a"`
		B int `argbind:"option=a"`
	}
	result, err := Bind(&target, []string{"--a", "1"})
	require.Error(err)
	require.Nil(result)

	var cfgErr *ConfigError
	require.True(errors.As(err, &cfgErr))
	require.Equal("B", cfgErr.Field)
}

func TestResultErr(t *testing.T) {
	require := require.New(t)

	var target exampleTarget
	result, err := Bind(&target, []string{"--x", "--count", "no"})
	require.NoError(err)

	rerr := result.Err()
	require.Error(rerr)
	require.True(errors.Is(rerr, ErrUnknownOption))
	require.True(errors.Is(rerr, ErrTypeMismatch))
	require.False(errors.Is(rerr, ErrMissingRequiredValue))
	require.Contains(rerr.Error(), `unknown option "--x"`)
	require.Contains(rerr.Error(), `invalid value "no" for "count": expected integer`)
}
