package renderer

import (
	"testing"
)

func TestNewBandGrid(t *testing.T) {
	tests := []struct {
		name        string
		height      int
		rowsPerBand int
		expected    [][2]int
	}{
		{"one row per band", 3, 1, [][2]int{{0, 1}, {1, 2}, {2, 3}}},
		{"even split", 6, 3, [][2]int{{0, 3}, {3, 6}}},
		{"short last band", 7, 3, [][2]int{{0, 3}, {3, 6}, {6, 7}}},
		{"band taller than image", 2, 8, [][2]int{{0, 2}}},
		{"non-positive treated as one", 2, 0, [][2]int{{0, 1}, {1, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bands := NewBandGrid(tt.height, tt.rowsPerBand, 1)
			if len(bands) != len(tt.expected) {
				t.Fatalf("Expected %d bands, got %d", len(tt.expected), len(bands))
			}
			for i, band := range bands {
				if band.Index != i {
					t.Errorf("Band %d has index %d", i, band.Index)
				}
				if band.MinY != tt.expected[i][0] || band.MaxY != tt.expected[i][1] {
					t.Errorf("Band %d: expected rows [%d,%d), got [%d,%d)",
						i, tt.expected[i][0], tt.expected[i][1], band.MinY, band.MaxY)
				}
				if band.Random == nil {
					t.Errorf("Band %d has no generator", i)
				}
			}
		})
	}
}

func TestNewBandGrid_Seeding(t *testing.T) {
	first := NewBandGrid(4, 1, 7)
	second := NewBandGrid(4, 1, 7)
	other := NewBandGrid(4, 1, 8)

	seen := make(map[float64]int)
	for i := range first {
		a, b, c := first[i].Random.Float64(), second[i].Random.Float64(), other[i].Random.Float64()
		if a != b {
			t.Errorf("Band %d: same seed produced different streams", i)
		}
		if a == c {
			t.Errorf("Band %d: different seeds produced the same stream", i)
		}
		if j, ok := seen[a]; ok {
			t.Errorf("Bands %d and %d share a stream", j, i)
		}
		seen[a] = i
	}
}
