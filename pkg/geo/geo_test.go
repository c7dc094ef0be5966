package geo_test

import (
	"discovery/pkg/geo"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHaversine(t *testing.T) {
	unionStation := geo.Point{Lat: 39.7527, Lon: -105.0001}
	coorsField := geo.Point{Lat: 39.7559, Lon: -104.9942}
	boulder := geo.Point{Lat: 40.0150, Lon: -105.2705}

	require.InDelta(t, 0, geo.Haversine(geo.Denver, geo.Denver), 1e-9)
	require.InDelta(t, 0.62, geo.Haversine(unionStation, coorsField), 0.05)
	require.InDelta(t, 39.0, geo.Haversine(geo.Denver, boulder), 1.0)
	// symmetric
	require.InDelta(t, geo.Haversine(geo.Denver, boulder), geo.Haversine(boulder, geo.Denver), 1e-9)
}

func TestPoint_Valid(t *testing.T) {
	require.True(t, geo.Denver.Valid())
	require.True(t, geo.Point{Lat: -90, Lon: 180}.Valid())
	require.False(t, geo.Point{Lat: 91, Lon: 0}.Valid())
	require.False(t, geo.Point{Lat: 0, Lon: -181}.Valid())
	require.False(t, geo.Point{Lat: math.NaN(), Lon: 0}.Valid())
	require.False(t, geo.Point{Lat: 0, Lon: math.Inf(1)}.Valid())
}

func TestNewBoundingBox_ContainsRadius(t *testing.T) {
	box := geo.NewBoundingBox(geo.Denver, 5)

	require.Less(t, box.MinLat, geo.Denver.Lat)
	require.Greater(t, box.MaxLat, geo.Denver.Lat)
	require.Less(t, box.MinLon, geo.Denver.Lon)
	require.Greater(t, box.MaxLon, geo.Denver.Lon)

	// points exactly radius away along each axis must be inside the box
	for _, bearing := range []float64{0, 90, 180, 270} {
		p := destination(geo.Denver, 4.99, bearing)
		require.True(t, box.Contains(p), "bearing %v: %+v not in %+v", bearing, p, box)
	}

	// a point well outside the radius must be outside the box
	require.False(t, box.Contains(geo.Point{Lat: 40.0150, Lon: -105.2705}))
}

func TestNewBoundingBox_Poles(t *testing.T) {
	box := geo.NewBoundingBox(geo.Point{Lat: 89.99, Lon: 10}, 10)
	require.InDelta(t, 90, box.MaxLat, 1e-9)
	require.InDelta(t, -180, box.MinLon, 1e-9)
	require.InDelta(t, 180, box.MaxLon, 1e-9)
}

func TestNewBoundingBox_Antimeridian(t *testing.T) {
	box := geo.NewBoundingBox(geo.Point{Lat: 0, Lon: 179.99}, 10)
	require.InDelta(t, -180, box.MinLon, 1e-9)
	require.InDelta(t, 180, box.MaxLon, 1e-9)
	require.True(t, box.Contains(geo.Point{Lat: 0, Lon: -179.99}))
}

// destination returns the point reached by travelling distKm from p on the
// given bearing (degrees).
func destination(p geo.Point, distKm, bearing float64) geo.Point {
	d := distKm / geo.EarthRadiusKm
	b := bearing * math.Pi / 180
	lat1 := p.Lat * math.Pi / 180
	lon1 := p.Lon * math.Pi / 180

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(d) + math.Cos(lat1)*math.Sin(d)*math.Cos(b))
	lon2 := lon1 + math.Atan2(math.Sin(b)*math.Sin(d)*math.Cos(lat1), math.Cos(d)-math.Sin(lat1)*math.Sin(lat2))

	return geo.Point{Lat: lat2 * 180 / math.Pi, Lon: lon2 * 180 / math.Pi}
}
