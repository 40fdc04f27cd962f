package doctor

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// HostInfo describes the machine the bootstrap runs on. Purely
// informational; nothing in the sequence branches on it.
type HostInfo struct {
	CPUModel   string `json:"cpu_model"`
	CPUThreads int    `json:"cpu_threads"`
	RAMBytes   uint64 `json:"ram_bytes"`
	OS         string `json:"os"`
	Arch       string `json:"arch"`
}

// CollectHost gathers host information. Detection failures degrade to
// placeholder values instead of failing the doctor run.
func CollectHost() HostInfo {
	info := HostInfo{
		CPUModel:   "Unknown",
		CPUThreads: runtime.NumCPU(),
		OS:         runtime.GOOS,
		Arch:       runtime.GOARCH,
	}

	if cpus, err := cpu.Info(); err == nil && len(cpus) > 0 {
		info.CPUModel = cpus[0].ModelName
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		info.RAMBytes = vm.Total
	}

	return info
}

// FormatRAM renders a byte count as GB with one decimal
func FormatRAM(bytes uint64) string {
	gb := float64(bytes) / (1024 * 1024 * 1024)
	return fmt.Sprintf("%.1f GB", gb)
}
