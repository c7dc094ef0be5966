// Package geo contains the small amount of spherical geometry needed for
// proximity queries: great-circle distance and bounding boxes around a point.
package geo

import (
	"math"
)

const (
	// EarthRadiusKm is the mean earth radius used by Haversine.
	EarthRadiusKm = 6371.0
	// kmPerDegreeLat is the length of one degree of latitude on a sphere of
	// EarthRadiusKm.
	kmPerDegreeLat = 2 * math.Pi * EarthRadiusKm / 360
)

// Denver is the default center for city-wide queries.
var Denver = Point{Lat: 39.7392, Lon: -104.9903} //nolint: gochecknoglobals

// Point is a WGS84 coordinate in decimal degrees.
type Point struct {
	Lat float64 `json:"lat" validate:"latitude"  yaml:"lat"`
	Lon float64 `json:"lon" validate:"longitude" yaml:"lon"`
}

// Valid reports whether p is a finite coordinate within the WGS84 ranges.
func (p Point) Valid() bool {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lon) || math.IsInf(p.Lat, 0) || math.IsInf(p.Lon, 0) {
		return false
	}

	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// IsZero reports whether p is the zero value.
func (p Point) IsZero() bool {
	return p.Lat == 0 && p.Lon == 0
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Haversine returns the great-circle distance between a and b in kilometers.
func Haversine(a, b Point) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	dLat := radians(b.Lat - a.Lat)
	dLon := radians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// BoundingBox is an axis-aligned latitude/longitude rectangle. It is used as a
// cheap, index-friendly pre-filter before exact distance checks.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// NewBoundingBox returns the smallest box that contains every point within
// radiusKm of center. Near the poles, or when the longitude span would exceed
// half the globe, the box covers every longitude.
func NewBoundingBox(center Point, radiusKm float64) BoundingBox {
	dLat := radiusKm / kmPerDegreeLat

	box := BoundingBox{
		MinLat: math.Max(center.Lat-dLat, -90),
		MaxLat: math.Min(center.Lat+dLat, 90),
		MinLon: -180,
		MaxLon: 180,
	}

	if box.MinLat <= -90 || box.MaxLat >= 90 {
		return box
	}

	// widest longitude offset of a spherical cap; it is reached slightly
	// poleward of the center latitude.
	s := math.Sin(radiusKm/EarthRadiusKm) / math.Cos(radians(center.Lat))
	if s >= 1 {
		return box
	}

	dLon := math.Asin(s) * 180 / math.Pi

	box.MinLon = center.Lon - dLon
	box.MaxLon = center.Lon + dLon
	// the box crosses the antimeridian; SQL BETWEEN cannot express a wrapped
	// range, so widen to the full span and let the exact filter do the work.
	if box.MinLon < -180 || box.MaxLon > 180 {
		box.MinLon, box.MaxLon = -180, 180
	}

	return box
}

// Contains reports whether p lies inside the box, edges included.
func (b BoundingBox) Contains(p Point) bool {
	return p.Lat >= b.MinLat && p.Lat <= b.MaxLat && p.Lon >= b.MinLon && p.Lon <= b.MaxLon
}
