package solo

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/result/pkg/rop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samples() []rop.Result[int, string] {
	return []rop.Result[int, string]{
		rop.Ok[int, string](0),
		rop.Ok[int, string](5),
		rop.Ok[int, string](-3),
		rop.Err[int]("boom"),
		rop.Err[int](""),
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rop.Ok[string, string]("5"), Map(rop.Ok[int, string](5), strconv.Itoa))
	assert.Equal(t, rop.Err[string]("boom"), Map(rop.Err[int]("boom"), strconv.Itoa))
}

func TestMap_IdentityLaw(t *testing.T) {
	t.Parallel()

	for _, r := range samples() {
		assert.True(t, Map(r, func(v int) int { return v }).Equal(r), "identity failed for %v", r)
	}
}

func TestMap_CompositionLaw(t *testing.T) {
	t.Parallel()

	f := func(v int) int { return v + 1 }
	g := func(v int) string { return strconv.Itoa(v * 10) }

	for _, r := range samples() {
		left := Map(Map(r, f), g)
		right := Map(r, func(v int) string { return g(f(v)) })
		assert.Equal(t, left, right, "composition failed for %v", r)
	}
}

func TestAndThen_AssociativityLaw(t *testing.T) {
	t.Parallel()

	f := func(v int) rop.Result[int, string] {
		if v < 0 {
			return rop.Err[int]("negative")
		}
		return rop.Ok[int, string](v * 2)
	}
	g := func(v int) rop.Result[string, string] {
		if v == 0 {
			return rop.Err[string]("zero")
		}
		return rop.Ok[string, string](strconv.Itoa(v))
	}

	for _, r := range samples() {
		left := AndThen(AndThen(r, f), g)
		right := AndThen(r, func(v int) rop.Result[string, string] { return AndThen(f(v), g) })
		assert.Equal(t, left, right, "associativity failed for %v", r)
	}
}

func TestAndThen_ShortCircuit(t *testing.T) {
	t.Parallel()

	called := false
	out := AndThen(rop.Err[int]("boom"), func(v int) rop.Result[int, string] {
		called = true
		return rop.Ok[int, string](v)
	})

	assert.False(t, called)
	assert.Equal(t, rop.Err[int]("boom"), out)
}

func TestMapErr(t *testing.T) {
	t.Parallel()

	toErr := func(s string) error { return errors.New(s) }

	assert.Equal(t, rop.Ok[int, error](1), MapErr(rop.Ok[int, string](1), toErr))
	out := MapErr(rop.Err[int]("bad"), toErr)
	require.True(t, out.IsErr())
	assert.EqualError(t, out.UnwrapErr(), "bad")
}

func TestMapOrAndMapOrElse(t *testing.T) {
	t.Parallel()

	double := func(v int) int { return v * 2 }

	assert.Equal(t, 10, MapOr(rop.Ok[int, string](5), -1, double))
	assert.Equal(t, -1, MapOr(rop.Err[int]("e"), -1, double))

	length := func(s string) int { return len(s) }
	assert.Equal(t, 10, MapOrElse(rop.Ok[int, string](5), length, double))
	assert.Equal(t, 4, MapOrElse(rop.Err[int]("four"), length, double))
}

func TestAnd(t *testing.T) {
	t.Parallel()

	other := rop.Ok[string, string]("next")

	assert.Equal(t, other, And(rop.Ok[int, string](1), other))
	assert.Equal(t, rop.Err[string]("first"), And(rop.Err[int]("first"), other))
	assert.Equal(t, rop.Err[string]("second"), And(rop.Ok[int, string](1), rop.Err[string]("second")))
}

func TestOrAndOrElse(t *testing.T) {
	t.Parallel()

	fallback := rop.Ok[int, error](9)

	assert.Equal(t, rop.Ok[int, error](1), Or(rop.Ok[int, string](1), fallback))
	assert.Equal(t, fallback, Or(rop.Err[int]("e"), fallback))

	fromErr := func(e string) rop.Result[int, int] { return rop.Err[int](len(e)) }
	assert.Equal(t, rop.Ok[int, int](1), OrElse(rop.Ok[int, string](1), fromErr))
	assert.Equal(t, rop.Err[int](3), OrElse(rop.Err[int]("abc"), fromErr))
}

func TestMatch_EvaluatesOneBranch(t *testing.T) {
	t.Parallel()

	got := Match(rop.Ok[int, string](5),
		func(v int) int { return v + 1 },
		func(string) int {
			t.Fatal("error branch must not be called")
			return 0
		})
	assert.Equal(t, 6, got)

	got = Match(rop.Err[int]("boom"),
		func(int) int {
			t.Fatal("ok branch must not be called")
			return 0
		},
		func(e string) int { return len(e) })
	assert.Equal(t, 4, got)
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rop.Ok[int, string](1), Flatten(rop.Ok[rop.Result[int, string], string](rop.Ok[int, string](1))))
	assert.Equal(t, rop.Err[int]("inner"), Flatten(rop.Ok[rop.Result[int, string], string](rop.Err[int]("inner"))))
	assert.Equal(t, rop.Err[int]("outer"), Flatten(rop.Err[rop.Result[int, string]]("outer")))
}

func TestTranspose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   rop.Result[rop.Option[int], string]
		want rop.Option[rop.Result[int, string]]
	}{
		{"ok some", rop.Ok[rop.Option[int], string](rop.Some(1)), rop.Some(rop.Ok[int, string](1))},
		{"ok none", rop.Ok[rop.Option[int], string](rop.None[int]()), rop.None[rop.Result[int, string]]()},
		{"err", rop.Err[rop.Option[int]]("e"), rop.Some(rop.Err[int]("e"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Transpose(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, rop.TransposeOption(got), "transpose twice should round-trip")
		})
	}
}

func TestFromPairAndToPair(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rop.Ok[int, error](3), FromPair(3, nil))

	boom := errors.New("boom")
	r := FromPair(3, boom)
	require.True(t, r.IsErr())
	assert.Same(t, boom, r.UnwrapErr())

	v, err := ToPair(rop.Ok[int, error](4))
	assert.Equal(t, 4, v)
	assert.NoError(t, err)

	v, err = ToPair(rop.Err[int](boom))
	assert.Equal(t, 0, v)
	assert.ErrorIs(t, err, boom)
}

func TestTry(t *testing.T) {
	t.Parallel()

	out := Try(rop.Ok[string, error]("12"), strconv.Atoi)
	assert.Equal(t, rop.Ok[int, error](12), out)

	out = Try(rop.Ok[string, error]("x"), strconv.Atoi)
	assert.True(t, out.IsErr())

	boom := errors.New("boom")
	called := false
	out = Try(rop.Err[string](boom), func(s string) (int, error) {
		called = true
		return 0, nil
	})
	assert.False(t, called)
	assert.ErrorIs(t, out.UnwrapErr(), boom)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	positive := func(v int) (bool, string) { return v > 0, "must be positive" }

	assert.Equal(t, rop.Ok[int, error](1), Validate(rop.Ok[int, error](1), positive))
	assert.EqualError(t, Validate(rop.Ok[int, error](-1), positive).UnwrapErr(), "must be positive")

	boom := errors.New("boom")
	assert.ErrorIs(t, Validate(rop.Err[int](boom), positive).UnwrapErr(), boom)
}

func TestTees(t *testing.T) {
	t.Parallel()

	var seen []string

	Tee(rop.Ok[int, string](1), func(int) { seen = append(seen, "tee") })
	Tee(rop.Err[int]("e"), func(int) { seen = append(seen, "tee-err") })
	TeeIf(rop.Ok[int, string](2), func(v int) bool { return v > 1 }, func(int) { seen = append(seen, "teeif") })
	TeeIf(rop.Ok[int, string](0), func(v int) bool { return v > 1 }, func(int) { seen = append(seen, "teeif-skip") })
	out := DoubleTee(rop.Err[int]("e"),
		func(int) { seen = append(seen, "double-ok") },
		func(string) { seen = append(seen, "double-err") })

	assert.Equal(t, []string{"tee", "teeif", "double-err"}, seen)
	assert.Equal(t, rop.Err[int]("e"), out)
}
