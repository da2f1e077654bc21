package serrors_test

import (
	"errors"
	"exposure/pkg/serrors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrNetworkUnreachable,
		serrors.ErrRateLimited,
		serrors.ErrUnavailable,
		serrors.ErrNotFound,
		serrors.ErrBadRequest,
		serrors.ErrTimeout,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("connection refused")

	e1 := serrors.With(serrors.ErrNotFound, "user %s not found", "u-1")
	require.Equal(t, "user u-1 not found", e1.Error())

	e2 := serrors.Wrap(serrors.ErrNetworkUnreachable, base, "probing http://api.example.com")
	require.Equal(t, "probing http://api.example.com: connection refused", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrRateLimited)
	require.Equal(t, "RATE_LIMITED", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrUnavailable, base, "breach lookup")

	require.ErrorIs(t, e, serrors.ErrUnavailable)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrRateLimited)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(nil))
	require.Nil(t, serrors.KindOf(errors.New("plain")))

	wrapped := fmt.Errorf("could not check breaches: %w", serrors.With(serrors.ErrRateLimited, "slow down"))
	require.Equal(t, serrors.ErrRateLimited, serrors.KindOf(wrapped))
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnavailable, base, "no api key")
	require.Equal(t, serrors.ErrUnavailable, e.Kind())
	require.Equal(t, "no api key", e.Message())
	require.Equal(t, base, e.Cause())
}
