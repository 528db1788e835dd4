package system

import (
	"os"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// MemoryUsage is a point-in-time memory reading for the performance report.
type MemoryUsage struct {
	ProcessRSS  uint64
	SystemTotal uint64
	SystemUsed  float64 // Percent
}

// ReadMemoryUsage samples the current process and the host.
func ReadMemoryUsage() (MemoryUsage, error) {
	var usage MemoryUsage

	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return usage, err
	}
	info, err := p.MemoryInfo()
	if err != nil {
		return usage, err
	}
	usage.ProcessRSS = info.RSS

	vm, err := mem.VirtualMemory()
	if err != nil {
		return usage, err
	}
	usage.SystemTotal = vm.Total
	usage.SystemUsed = vm.UsedPercent

	return usage, nil
}

// MiB converts a byte count for display.
func MiB(b uint64) float64 {
	return float64(b) / (1 << 20)
}
