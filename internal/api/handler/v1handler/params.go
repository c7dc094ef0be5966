package v1handler

import (
	"discovery/pkg/domain"
	"discovery/pkg/geo"
	"discovery/pkg/serrors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// queryFloat parses an optional float parameter; ok is false when it is absent.
func queryFloat(q url.Values, name string) (float64, bool, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, serrors.Wrap(serrors.ErrBadRequest, err, "%s must be a number", name)
	}

	return v, true, nil
}

func queryInt(q url.Values, name string) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, serrors.Wrap(serrors.ErrBadRequest, err, "%s must be an integer", name)
	}

	return v, nil
}

func queryBool(q url.Values, name string) (bool, error) {
	raw := q.Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, serrors.Wrap(serrors.ErrBadRequest, err, "%s must be a boolean", name)
	}

	return v, nil
}

// queryLocation reads lat and lon. Both must be given together.
func queryLocation(q url.Values) (*geo.Point, error) {
	lat, hasLat, err := queryFloat(q, "lat")
	if err != nil {
		return nil, err
	}
	lon, hasLon, err := queryFloat(q, "lon")
	if err != nil {
		return nil, err
	}
	if hasLat != hasLon {
		return nil, serrors.With(serrors.ErrBadRequest, "lat and lon must be given together")
	}
	if !hasLat {
		return nil, nil //nolint: nilnil
	}

	p := geo.Point{Lat: lat, Lon: lon}
	if !p.Valid() {
		return nil, serrors.With(serrors.ErrBadRequest, "lat/lon out of range")
	}

	return &p, nil
}

// queryKinds accepts repeated or comma separated kind parameters.
func queryKinds(q url.Values) ([]domain.ItemKind, error) {
	var kinds []domain.ItemKind
	for _, v := range q["kind"] {
		for k := range strings.SplitSeq(v, ",") {
			kind := domain.ItemKind(strings.TrimSpace(k))
			if kind == "" {
				continue
			}
			if !kind.Valid() {
				return nil, serrors.With(serrors.ErrBadRequest, "unknown kind %q", kind)
			}
			kinds = append(kinds, kind)
		}
	}

	return kinds, nil
}

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, serrors.Wrap(serrors.ErrBadRequest, err, "%s must be a UUID", name)
	}

	return id, nil
}
