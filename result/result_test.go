package result

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/digitalmonad/fpkit/monoid"
	"github.com/digitalmonad/fpkit/option"
)

func TestConstructors(t *testing.T) {
	req := require.New(t)

	r := Ok[string](1)
	req.True(r.IsOk())
	req.False(r.IsErr())
	v, ok := r.Value()
	req.True(ok)
	req.Equal(1, v)
	_, failed := r.Failure()
	req.False(failed)

	r = Err[string, int]("boom")
	req.True(r.IsErr())
	e, failed := r.Failure()
	req.True(failed)
	req.Equal("boom", e)

	req.Equal(Ok[string](1), Of[string](1))
}

func TestMatch(t *testing.T) {
	req := require.New(t)

	var got string
	Ok[string](1).Match(func(string) { got = "err" }, func(int) { got = "ok" })
	req.Equal("ok", got)

	Err[string, int]("e").Match(func(string) { got = "err" }, func(int) { got = "ok" })
	req.Equal("err", got)

	// nil handlers are skipped
	Ok[string](1).Match(nil, nil)
}

func TestFromOption(t *testing.T) {
	req := require.New(t)

	onNone := func() string { return "missing" }
	req.Equal(Ok[string](1), FromOption(option.Some(1), onNone))
	req.Equal(Err[string, int]("missing"), FromOption(option.None[int](), onNone))
}

func TestFromPredicate(t *testing.T) {
	req := require.New(t)

	even := func(n int) bool { return n%2 == 0 }
	onFalse := func(n int) string { return strconv.Itoa(n) + " is odd" }

	req.Equal(Ok[string](2), FromPredicate(2, even, onFalse))
	req.Equal(Err[string, int]("3 is odd"), FromPredicate(3, even, onFalse))
}

func TestToOption(t *testing.T) {
	req := require.New(t)

	req.Equal(option.Some(1), ToOption(Ok[string](1)))
	req.Equal(option.None[int](), ToOption(Err[string, int]("e")))
}

func TestFunctorLaws(t *testing.T) {
	req := require.New(t)

	id := func(n int) int { return n }
	f := func(n int) int { return n + 1 }
	g := func(n int) int { return n * 2 }

	for _, r := range []Result[string, int]{Ok[string](3), Err[string, int]("e")} {
		// identity
		req.Equal(r, Map(r, id))
		// composition
		req.Equal(Map(Map(r, f), g), Map(r, func(n int) int { return g(f(n)) }))
	}
}

func TestMonadLaws(t *testing.T) {
	req := require.New(t)

	f := func(n int) Result[string, int] { return Ok[string](n + 1) }
	g := func(n int) Result[string, int] { return Ok[string](n * 2) }
	m := Ok[string](3)

	// left identity
	req.Equal(f(3), Chain(Of[string](3), f))
	// right identity
	req.Equal(m, Chain(m, Of[string, int]))
	// associativity
	req.Equal(
		Chain(Chain(m, f), g),
		Chain(m, func(n int) Result[string, int] { return Chain(f(n), g) }),
	)
}

func TestChainShortCircuit(t *testing.T) {
	req := require.New(t)

	called := false
	r := Chain(Err[string, int]("e"), func(int) Result[string, int] {
		called = true
		return Ok[string](0)
	})
	req.False(called)
	req.Equal(Err[string, int]("e"), r)
}

func TestChainFirst(t *testing.T) {
	req := require.New(t)

	r := ChainFirst(Ok[string](2), func(n int) Result[string, string] {
		return Ok[string](strconv.Itoa(n))
	})
	req.Equal(Ok[string](2), r)

	r = ChainFirst(Ok[string](2), func(int) Result[string, string] {
		return Err[string, string]("e")
	})
	req.Equal(Err[string, int]("e"), r)
}

func TestMapErrBiMap(t *testing.T) {
	req := require.New(t)

	req.Equal(Err[string, int]("E"), MapErr(Err[string, int]("e"), strings.ToUpper))
	req.Equal(Ok[string](1), MapErr(Ok[string](1), strings.ToUpper))

	up := strings.ToUpper
	inc := func(n int) int { return n + 1 }
	req.Equal(Ok[string](2), BiMap(Ok[string](1), up, inc))
	req.Equal(Err[string, int]("E"), BiMap(Err[string, int]("e"), up, inc))
}

func TestAp(t *testing.T) {
	req := require.New(t)

	inc := func(n int) int { return n + 1 }

	req.Equal(Ok[string](2), Ap(Ok[string](inc), Ok[string](1)))
	req.Equal(Err[string, int]("f"), Ap(Err[string, func(int) int]("f"), Ok[string](1)))
	req.Equal(Err[string, int]("a"), Ap(Ok[string](inc), Err[string, int]("a")))
	// function side's failure wins when both fail
	req.Equal(Err[string, int]("f"), Ap(Err[string, func(int) int]("f"), Err[string, int]("a")))
}

func TestApValidation(t *testing.T) {
	req := require.New(t)

	sem := monoid.String.Semigroup()
	inc := func(n int) int { return n + 1 }

	// both failures are concatenated, function side first
	r := ApValidation(sem, Err[string, func(int) int]("f;"), Err[string, int]("a"))
	req.Equal(Err[string, int]("f;a"), r)

	req.Equal(Ok[string](2), ApValidation(sem, Ok[string](inc), Ok[string](1)))
	req.Equal(Err[string, int]("f"), ApValidation(sem, Err[string, func(int) int]("f"), Ok[string](1)))
	req.Equal(Err[string, int]("a"), ApValidation(sem, Ok[string](inc), Err[string, int]("a")))
}

func TestAltOrElse(t *testing.T) {
	req := require.New(t)

	req.Equal(Ok[string](1), Alt(Ok[string](1), func() Result[string, int] { return Ok[string](2) }))
	req.Equal(Ok[string](2), Alt(Err[string, int]("e"), func() Result[string, int] { return Ok[string](2) }))

	r := OrElse(Err[string, int]("e"), func(e string) Result[int, int] {
		return Err[int, int](len(e))
	})
	req.Equal(Err[int, int](1), r)
	req.Equal(Ok[int](7), OrElse(Ok[string](7), func(string) Result[int, int] { return Ok[int](0) }))
}

func TestFoldGetOrElseSwap(t *testing.T) {
	req := require.New(t)

	onErr := func(e string) string { return "err:" + e }
	onOk := func(n int) string { return "ok:" + strconv.Itoa(n) }

	req.Equal("ok:1", Fold(Ok[string](1), onErr, onOk))
	req.Equal("err:e", Fold(Err[string, int]("e"), onErr, onOk))

	req.Equal(1, GetOrElse(Ok[string](1), func(string) int { return -1 }))
	req.Equal(-1, GetOrElse(Err[string, int]("e"), func(string) int { return -1 }))

	req.Equal(Err[int, string](1), Swap(Ok[string](1)))
	req.Equal(Ok[int]("e"), Swap(Err[string, int]("e")))
}

func TestTraverseSlice(t *testing.T) {
	req := require.New(t)

	parse := func(s string) Result[string, int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Err[string, int]("bad: " + s)
		}
		return Ok[string](n)
	}

	req.Equal(Ok[string]([]int{1, 2, 3}), TraverseSlice([]string{"1", "2", "3"}, parse))
	req.Equal(Err[string, []int]("bad: x"), TraverseSlice([]string{"1", "x", "3"}, parse))
	req.Equal(Ok[string]([]int{}), TraverseSlice(nil, parse))
}

func TestSequenceSlice(t *testing.T) {
	req := require.New(t)

	req.Equal(
		Ok[string]([]int{1, 2}),
		SequenceSlice([]Result[string, int]{Ok[string](1), Ok[string](2)}),
	)
	req.Equal(
		Err[string, []int]("e"),
		SequenceSlice([]Result[string, int]{Ok[string](1), Err[string, int]("e")}),
	)
}
