package validation_test

import (
	"discovery/pkg/geo"
	"discovery/pkg/serrors"
	"discovery/pkg/validation"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type listing struct {
	Title    string    `json:"title"    validate:"required,max=10"`
	Price    int       `json:"price"    validate:"min=0,max=4"`
	Location geo.Point `json:"location"`
	StartsAt time.Time `json:"startsAt" validate:"required"`
	EndsAt   time.Time `json:"endsAt"   validate:"required,gtefield=StartsAt"`
	Internal string    `json:"-"`
}

func TestStruct(t *testing.T) {
	start := time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)
	valid := listing{
		Title:    "jazz",
		Location: geo.Denver,
		StartsAt: start,
		EndsAt:   start.Add(time.Hour),
	}
	require.NoError(t, validation.Struct(valid))

	tests := []struct {
		name    string
		mutate  func(l *listing)
		message string
	}{
		{name: "required", mutate: func(l *listing) { l.Title = "" }, message: "title is required"},
		{name: "string max", mutate: func(l *listing) { l.Title = "a very long title" }, message: "title must be at most 10 characters"},
		{name: "number max", mutate: func(l *listing) { l.Price = 5 }, message: "price must be at most 4"},
		{name: "latitude", mutate: func(l *listing) { l.Location.Lat = 91 }, message: "location.lat must be a valid latitude (-90 to 90)"},
		{name: "field order", mutate: func(l *listing) { l.EndsAt = start.Add(-time.Hour) }, message: "endsAt must not be before StartsAt"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := valid
			tc.mutate(&l)

			err := validation.Struct(l)
			require.ErrorIs(t, err, serrors.ErrBadRequest)
			_, _, msg := serrors.Public(err)
			require.Equal(t, tc.message, msg)
		})
	}
}

func TestStruct_JoinsMessages(t *testing.T) {
	err := validation.Struct(listing{Price: -1})

	_, code, msg := serrors.Public(err)
	require.Equal(t, "BAD_REQUEST", code)
	require.Contains(t, msg, "title is required")
	require.Contains(t, msg, "price must be at least 0")
	require.Contains(t, msg, "; ")
}
