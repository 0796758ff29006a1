package renderer

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
)

// DefaultWorkerCount returns the number of physical cores, falling back to
// the logical CPU count when the platform does not report them.
func DefaultWorkerCount() int {
	if n, err := cpu.Counts(false); err == nil && n > 0 {
		return n
	}
	return runtime.NumCPU()
}
