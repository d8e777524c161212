package system

import (
	"fmt"
	"runtime"
	"syscall"

	"github.com/dustin/go-humanize"
)

// RunMetrics describes the process and the output volume at the end of a run
type RunMetrics struct {
	DiskUsage      float64        `json:"disk_usage"`
	DiskFree       string         `json:"disk_free"`
	GoroutineCount int            `json:"goroutine_count"`
	AppMemory      AppMemoryStats `json:"memory_app"`
}

type AppMemoryStats struct {
	CurrentAlloc string `json:"current_alloc"`
	TotalAlloc   string `json:"total_alloc"`
	SystemMem    string `json:"system_mem"`
	HeapInuse    string `json:"heap_inuse"`
	GCCycles     uint32 `json:"gc_cycles"`
}

// LinuxOnly ensures the caller runs on Linux
func LinuxOnly() error {
	if runtime.GOOS != "linux" {
		return fmt.Errorf("this function only works with linux")
	}
	return nil
}

// getDiskUsage returns used percentage and free bytes of the filesystem holding path
func getDiskUsage(path string) (float64, uint64, error) {
	if err := LinuxOnly(); err != nil {
		return 0, 0, err
	}

	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		return 0, 0, err
	}

	total := stat.Blocks * uint64(stat.Bsize)
	free := stat.Bavail * uint64(stat.Bsize)
	if total == 0 {
		return 0, free, nil
	}

	return float64(total-free) / float64(total) * 100, free, nil
}

// GetRunMetrics collects process memory and the usage of the volume holding outputDir
func GetRunMetrics(outputDir string) RunMetrics {
	metrics := RunMetrics{
		DiskFree:       "N/A",
		GoroutineCount: runtime.NumGoroutine(),
		AppMemory:      getAppMemoryStats(),
	}

	if usage, free, err := getDiskUsage(outputDir); err == nil {
		metrics.DiskUsage = usage
		metrics.DiskFree = humanize.Bytes(free)
	}

	return metrics
}

func getAppMemoryStats() AppMemoryStats {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return AppMemoryStats{
		CurrentAlloc: humanize.Bytes(m.Alloc),
		TotalAlloc:   humanize.Bytes(m.TotalAlloc),
		SystemMem:    humanize.Bytes(m.Sys),
		HeapInuse:    humanize.Bytes(m.HeapInuse),
		GCCycles:     m.NumGC,
	}
}
