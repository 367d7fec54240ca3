package utils

import (
	"fmt"
	"math"
	"os"
	"runtime"

	"github.com/shirou/gopsutil/process"

	"github.com/notargets/quasi1d/types"
)

func GetMemUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	// For info on each, see: https://golang.org/pkg/runtime/#MemStats
	bToMb := func(b uint64) uint64 {
		return b / 1024 / 1024
	}
	o := fmt.Sprintf("Alloc = %v MiB TotalAlloc = %v MiB Sys = %v MiB NumGC = %v",
		bToMb(m.Alloc), bToMb(m.TotalAlloc), bToMb(m.Sys), m.NumGC)
	// Resident set size as seen by the OS, skipped where the platform can't report it
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if mi, err := p.MemoryInfo(); err == nil {
			o += fmt.Sprintf(" RSS = %v MiB", bToMb(mi.RSS))
		}
	}
	return o
}

func IsNanPanic(A any) {
	if IsNan(A) {
		panic("NAN found")
	}
}

func IsNan(A any) bool {
	switch v := A.(type) {
	case float64:
		return math.IsNaN(v)
	case []float64:
		for _, f := range v {
			if math.IsNaN(f) {
				return true
			}
		}
	case types.Triple:
		for _, f := range v {
			if math.IsNaN(f) {
				return true
			}
		}
	case []types.Triple:
		for _, t := range v {
			if IsNan(t) {
				return true
			}
		}
	case *types.Field:
		return IsNan(v.Cells())
	}
	return false
}
