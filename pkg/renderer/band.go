package renderer

import (
	"math/rand"
)

// Band is a run of whole image rows rendered by a single worker
type Band struct {
	Index  int        // Position in the grid, top band first
	MinY   int        // First row (inclusive)
	MaxY   int        // Last row (exclusive)
	Random *rand.Rand // Band-specific random generator for deterministic results
}

// NewBand creates a band over rows [minY, maxY) with its own generator
func NewBand(index, minY, maxY int, seed int64) *Band {
	return &Band{
		Index:  index,
		MinY:   minY,
		MaxY:   maxY,
		Random: rand.New(rand.NewSource(bandSeed(seed, index))),
	}
}

// Rows returns the number of rows covered by the band
func (b *Band) Rows() int {
	return b.MaxY - b.MinY
}

// NewBandGrid splits height rows into bands of rowsPerBand rows; the last band may be shorter
func NewBandGrid(height, rowsPerBand int, seed int64) []*Band {
	if rowsPerBand <= 0 {
		rowsPerBand = 1
	}

	var bands []*Band
	for y0 := 0; y0 < height; y0 += rowsPerBand {
		y1 := min(y0+rowsPerBand, height)
		bands = append(bands, NewBand(len(bands), y0, y1, seed))
	}
	return bands
}

// bandSeed spreads band indices so neighbouring bands never share a stream
func bandSeed(seed int64, index int) int64 {
	return seed*1_000_003 + int64(index)
}
