// Package geo holds the pure map-framing math shared by the planner and
// the delivery layer.
package geo

import (
	"math"

	"fleetops/internal/domain/entity"

	"github.com/paulmach/orb"
)

// DefaultZoom is used whenever at least one valid point frames the map.
const DefaultZoom = 11

// Frame is the derived map viewport: a center, a zoom level and, when the
// frame was computed from actual points, their bounding box.
type Frame struct {
	Center   orb.Point `json:"center"` // [lng, lat], orb's axis order.
	Zoom     int       `json:"zoom"`
	Bound    orb.Bound `json:"bound"`
	HasBound bool      `json:"has_bound"`
}

// PointFromLatLng builds an orb point from the entity lat/lng order.
func PointFromLatLng(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

// LocationPoint extracts a location's coordinates as an orb point.
func LocationPoint(l entity.Location) orb.Point {
	return PointFromLatLng(l.Latitude, l.Longitude)
}

// ComputeFrame derives the map frame for a set of candidate points.
//
// Invalid points ((0,0), NaN or infinite components, out-of-range
// coordinates) are discarded. With one or more valid points left, the
// center is the coordinate-wise arithmetic mean of those points (a
// centroid, deliberately not a bounds-fitting circle) at DefaultZoom.
// With none, the fallback region's predefined center and zoom are
// returned unchanged.
func ComputeFrame(points []orb.Point, fallback entity.Region) Frame {
	valid := make([]orb.Point, 0, len(points))
	for _, p := range points {
		if IsValidPoint(p) {
			valid = append(valid, p)
		}
	}

	if len(valid) == 0 {
		zoom := fallback.DefaultZoom
		if zoom == 0 {
			zoom = DefaultZoom
		}

		return Frame{
			Center: PointFromLatLng(fallback.CenterLat, fallback.CenterLng),
			Zoom:   zoom,
		}
	}

	var sumLng, sumLat float64
	for _, p := range valid {
		sumLng += p.Lon()
		sumLat += p.Lat()
	}
	center := orb.Point{sumLng / float64(len(valid)), sumLat / float64(len(valid))}

	return Frame{
		Center:   center,
		Zoom:     DefaultZoom,
		Bound:    orb.MultiPoint(valid).Bound(),
		HasBound: true,
	}
}

// IsValidPoint reports whether a point may participate in framing.
func IsValidPoint(p orb.Point) bool {
	lng, lat := p.Lon(), p.Lat()
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	if lat == 0 && lng == 0 {
		return false
	}

	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
