package serrors_test

import (
	"discovery/pkg/serrors"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type placeError struct{ name string }

func (e *placeError) Error() string { return "place " + e.name }

func TestError(t *testing.T) {
	cause := errors.New("connection reset")

	tests := []struct {
		name string
		err  *serrors.Error
		want string
	}{
		{name: "message", err: serrors.With(serrors.ErrNotFound, "event %d not found", 42), want: "event 42 not found"},
		{name: "message and cause", err: serrors.Wrap(serrors.ErrInternal, cause, "loading feed"),
			want: "loading feed: connection reset"},
		{name: "cause only", err: serrors.Wrap(serrors.ErrInternal, cause, ""), want: "connection reset"},
		{name: "kind only", err: serrors.KindOnly(serrors.ErrRateLimited), want: "RATE_LIMITED"},
		{name: "nil", err: nil, want: "<nil>"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.err.Error())
		})
	}
}

func TestIsAndAs(t *testing.T) {
	cause := &placeError{name: "Union Station"}
	err := fmt.Errorf("saving: %w", serrors.Wrap(serrors.ErrNotFound, cause, "unknown listing"))

	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.ErrorIs(t, err, cause)
	require.NotErrorIs(t, err, serrors.ErrBadRequest)

	var k serrors.Kind
	require.ErrorAs(t, err, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var pe *placeError
	require.ErrorAs(t, err, &pe)
	require.Same(t, cause, pe)
}

func TestKindOf(t *testing.T) {
	require.Equal(t, serrors.ErrBadRequest,
		serrors.KindOf(fmt.Errorf("decoding: %w", serrors.With(serrors.ErrBadRequest, "bad lat"))))
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Nil(t, serrors.KindOf(nil))
}

func TestAccessors(t *testing.T) {
	cause := errors.New("expired")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "invalid token")

	require.Equal(t, serrors.ErrUnauthorized, err.Kind())
	require.Equal(t, "invalid token", err.Message())
	require.Equal(t, cause, err.Cause())
}
