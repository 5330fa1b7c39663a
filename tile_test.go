package main

import (
	"path/filepath"
	"testing"

	"github.com/paulmach/orb/maptile"
	"github.com/stretchr/testify/assert"
)

func TestLatlon2TileDeterminism(t *testing.T) {
	a := latlon2tile(35, 139, 6)
	b := latlon2tile(35, 139, 6)
	assert.Equal(t, a, b)
	assert.Equal(t, maptile.New(56, 25, 6), a)
}

func TestLatlon2TileZoomZero(t *testing.T) {
	for _, c := range []struct{ lat, lon float64 }{
		{0, 0}, {35, 139}, {-35, -139}, {83, 179.9}, {-83, -180},
	} {
		assert.Equal(t, maptile.New(0, 0, 0), latlon2tile(c.lat, c.lon, 0), "lat=%v lon=%v", c.lat, c.lon)
	}
}

func TestLatlon2TileLonBounds(t *testing.T) {
	for _, zoom := range []int{1, 6, 12} {
		tile := latlon2tile(0, -180, zoom)
		assert.Equal(t, uint32(0), tile.X, "zoom %d west edge", zoom)

		tile = latlon2tile(0, 179.9999, zoom)
		max := uint32(1)<<uint(zoom) - 1
		assert.Equal(t, max, tile.X, "zoom %d east edge", zoom)
	}
}

func TestTilePath(t *testing.T) {
	path := tilePath("out", "S1burst", Ascending, 3, maptile.New(56, 25, 6))
	assert.Equal(t, filepath.Join("out", "S1burstA3", "6", "56", "25.geojson"), path)

	path = tilePath(".", "S1burst", Descending, 5, maptile.New(1, 0, 1))
	assert.Equal(t, filepath.Join(".", "S1burstD5", "1", "1", "0.geojson"), path)
}
