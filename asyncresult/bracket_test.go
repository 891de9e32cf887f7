package asyncresult

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/digitalmonad/fpkit/result"
)

func TestBracketReleaseRunsOnSuccess(t *testing.T) {
	req := require.New(t)

	releases := 0
	r := run(Bracket(
		Ok[string]("resource"),
		func(res string) AsyncResult[string, int] {
			req.Equal("resource", res)
			return Ok[string](42)
		},
		func(res string, outcome result.Result[string, int]) AsyncResult[string, struct{}] {
			releases++
			req.Equal("resource", res)
			req.Equal(result.Ok[string](42), outcome)
			return Ok[string](struct{}{})
		},
	))

	req.Equal(result.Ok[string](42), r)
	req.Equal(1, releases)
}

func TestBracketReleaseRunsOnUseFailure(t *testing.T) {
	req := require.New(t)

	releases := 0
	r := run(Bracket(
		Ok[string]("resource"),
		func(string) AsyncResult[string, int] {
			return Err[string, int]("use failed")
		},
		func(_ string, outcome result.Result[string, int]) AsyncResult[string, struct{}] {
			releases++
			req.Equal(result.Err[string, int]("use failed"), outcome)
			return Ok[string](struct{}{})
		},
	))

	// use's failure survives the successful release
	req.Equal(result.Err[string, int]("use failed"), r)
	req.Equal(1, releases)
}

func TestBracketAcquireFailureSkipsUseAndRelease(t *testing.T) {
	req := require.New(t)

	useCalled := false
	releaseCalled := false

	r := run(Bracket(
		Err[string, string]("acquire failed"),
		func(string) AsyncResult[string, int] {
			useCalled = true
			return Ok[string](0)
		},
		func(string, result.Result[string, int]) AsyncResult[string, struct{}] {
			releaseCalled = true
			return Ok[string](struct{}{})
		},
	))

	req.Equal(result.Err[string, int]("acquire failed"), r)
	req.False(useCalled)
	req.False(releaseCalled)
}

func TestBracketReleaseFailureWins(t *testing.T) {
	req := require.New(t)

	r := run(Bracket(
		Ok[string]("resource"),
		func(string) AsyncResult[string, int] {
			return Ok[string](42)
		},
		func(string, result.Result[string, int]) AsyncResult[string, struct{}] {
			return Err[string, struct{}]("release failed")
		},
	))
	req.Equal(result.Err[string, int]("release failed"), r)

	// release failure also wins over a use failure
	r = run(Bracket(
		Ok[string]("resource"),
		func(string) AsyncResult[string, int] {
			return Err[string, int]("use failed")
		},
		func(string, result.Result[string, int]) AsyncResult[string, struct{}] {
			return Err[string, struct{}]("release failed")
		},
	))
	req.Equal(result.Err[string, int]("release failed"), r)
}

func TestBracketReleasesExactlyOncePerAcquisition(t *testing.T) {
	req := require.New(t)

	acquisitions := 0
	releases := 0

	fa := Bracket(
		FromFallible(func(context.Context) (string, error) {
			acquisitions++
			return "r", nil
		}, func(err error) string { return err.Error() }),
		func(string) AsyncResult[string, int] { return Ok[string](1) },
		func(string, result.Result[string, int]) AsyncResult[string, struct{}] {
			releases++
			return Ok[string](struct{}{})
		},
	)

	run(fa)
	run(fa)

	req.Equal(2, acquisitions)
	req.Equal(2, releases)
}
