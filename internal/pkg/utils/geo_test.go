package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("zero distance for identical points", func(t *testing.T) {
		d := HaversineDistance(1.287953, 103.851784, 1.287953, 103.851784)
		assert.InDelta(t, 0, d, 1e-9)
	})

	t.Run("symmetric", func(t *testing.T) {
		pairs := [][4]float64{
			{1.287953, 103.851784, 1.3521, 103.8198},
			{-33.8688, 151.2093, 51.5074, -0.1278},
			{89.9, 179.9, -89.9, -179.9},
		}
		for _, p := range pairs {
			ab := HaversineDistance(p[0], p[1], p[2], p[3])
			ba := HaversineDistance(p[2], p[3], p[0], p[1])
			assert.InDelta(t, ab, ba, 1e-9)
		}
	})

	t.Run("known distance", func(t *testing.T) {
		// Singapore city centre to Changi Airport, roughly 17.6 km.
		d := HaversineDistance(1.287953, 103.851784, 1.3644, 103.9915)
		assert.InDelta(t, 17.6, d, 1.0)
	})

	t.Run("ordering is consistent with proximity", func(t *testing.T) {
		near := HaversineDistance(1.287953, 103.851784, 1.29, 103.85)
		far := HaversineDistance(1.287953, 103.851784, 1.44, 103.79)
		assert.Less(t, near, far)
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, ValidateCoordinates(0, 0))
	assert.True(t, ValidateCoordinates(-90, 180))
	assert.True(t, ValidateCoordinates(90, -180))
	assert.False(t, ValidateCoordinates(90.1, 0))
	assert.False(t, ValidateCoordinates(0, -180.5))
}
