package renderer

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestAverageLuminance(t *testing.T) {
	buffer := NewPixelBuffer(2, 2)
	buffer.Set(0, 0, core.NewVec3(1, 0, 0))
	buffer.Set(1, 0, core.NewVec3(0, 1, 0))
	buffer.Set(0, 1, core.NewVec3(0, 0, 1))

	// (0.299 + 0.587 + 0.114 + 0) / 4
	if got := AverageLuminance(buffer); math.Abs(got-0.25) > 1e-12 {
		t.Errorf("Expected average luminance 0.25, got %f", got)
	}
	if got := AverageLuminance(NewPixelBuffer(0, 0)); got != 0 {
		t.Errorf("Expected 0 for an empty buffer, got %f", got)
	}
}

func TestRenderStats_String(t *testing.T) {
	stats := RenderStats{
		Width:     1920,
		Height:    1080,
		Bands:     1080,
		Workers:   8,
		TotalRays: 1234567,
		Duration:  2 * time.Second,
	}

	s := stats.String()
	for _, want := range []string{"1920x1080 image", "1,080 bands", "1,234,567 rays", "617,284 rays/s"} {
		if !strings.Contains(s, want) {
			t.Errorf("Expected %q in %q", want, s)
		}
	}

	if (RenderStats{}).RaysPerSecond() != 0 {
		t.Error("Expected zero throughput without a duration")
	}
}

func TestDefaultWorkerCount(t *testing.T) {
	if n := DefaultWorkerCount(); n < 1 {
		t.Errorf("Expected at least one worker, got %d", n)
	}
}
