package geo

import (
	"math"
	"testing"

	"fleetops/internal/domain/entity"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestComputeFrameFallsBackToRegion(t *testing.T) {
	t.Parallel()

	fallback := entity.Region{
		Country:     "South Africa",
		Name:        "Gauteng",
		CenterLat:   -26.2041,
		CenterLng:   28.0473,
		DefaultZoom: 10,
	}

	frame := ComputeFrame(nil, fallback)
	assert.False(t, frame.HasBound)
	assert.Equal(t, 10, frame.Zoom)
	assert.InDelta(t, -26.2041, frame.Center.Lat(), 0.0001)
	assert.InDelta(t, 28.0473, frame.Center.Lon(), 0.0001)

	// A zero-zoom fallback still gets a usable zoom.
	frame = ComputeFrame(nil, entity.Region{CenterLat: -30, CenterLng: 25})
	assert.Equal(t, DefaultZoom, frame.Zoom)
}

func TestComputeFrameDiscardsInvalidPoints(t *testing.T) {
	t.Parallel()

	fallback := entity.Region{CenterLat: -26.2, CenterLng: 28.0, DefaultZoom: 9}
	points := []orb.Point{
		{0, 0},
		{math.NaN(), 10},
		{200, 10},
		{10, 95},
	}

	frame := ComputeFrame(points, fallback)
	assert.False(t, frame.HasBound)
	assert.InDelta(t, -26.2, frame.Center.Lat(), 0.0001)
}

func TestComputeFrameCentroidOfTwoPoints(t *testing.T) {
	t.Parallel()

	points := []orb.Point{
		PointFromLatLng(-26.0, 28.0),
		PointFromLatLng(-27.0, 29.0),
	}

	frame := ComputeFrame(points, entity.Region{})
	assert.True(t, frame.HasBound)
	assert.Equal(t, DefaultZoom, frame.Zoom)
	assert.InDelta(t, -26.5, frame.Center.Lat(), 0.0001)
	assert.InDelta(t, 28.5, frame.Center.Lon(), 0.0001)
	assert.InDelta(t, -27.0, frame.Bound.Min.Lat(), 0.0001)
	assert.InDelta(t, 29.0, frame.Bound.Max.Lon(), 0.0001)
}

func TestComputeFrameSinglePoint(t *testing.T) {
	t.Parallel()

	frame := ComputeFrame([]orb.Point{PointFromLatLng(-33.9249, 18.4241)}, entity.Region{})
	assert.True(t, frame.HasBound)
	assert.InDelta(t, -33.9249, frame.Center.Lat(), 0.0001)
	assert.InDelta(t, 18.4241, frame.Center.Lon(), 0.0001)
}
