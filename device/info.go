package device

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Info describes a device and the host it runs on.
type Info struct {
	Name           string   `json:"name"`
	ComputeUnits   int      `json:"compute_units"`
	BlockSize      int      `json:"block_size"`
	ItemsPerThread int      `json:"items_per_thread"`
	TileSize       int      `json:"tile_size"`
	MaxLaunchSize  int      `json:"max_launch_size"`
	Arch           string   `json:"arch"`
	CacheLineSize  int      `json:"cache_line_size"`
	Features       []string `json:"features"`
}

func newInfo(cfg Config) Info {
	return Info{
		Name:           cfg.Name,
		ComputeUnits:   cfg.ComputeUnits,
		BlockSize:      cfg.BlockSize,
		ItemsPerThread: cfg.ItemsPerThread,
		TileSize:       cfg.TileSize(),
		MaxLaunchSize:  cfg.MaxLaunchSize,
		Arch:           runtime.GOOS + "/" + runtime.GOARCH,
		CacheLineSize:  int(unsafe.Sizeof(cpu.CacheLinePad{})),
		Features:       cpuFeatures(runtime.GOARCH),
	}
}

// cpuFeatures lists the SIMD extensions the host CPU reports.
func cpuFeatures(arch string) []string {
	var fs []string
	add := func(ok bool, name string) {
		if ok {
			fs = append(fs, name)
		}
	}
	switch arch {
	case "amd64", "386":
		add(cpu.X86.HasSSE2, "sse2")
		add(cpu.X86.HasSSE41, "sse4.1")
		add(cpu.X86.HasSSE42, "sse4.2")
		add(cpu.X86.HasAVX, "avx")
		add(cpu.X86.HasAVX2, "avx2")
		add(cpu.X86.HasFMA, "fma")
		add(cpu.X86.HasAVX512F, "avx512f")
	case "arm64":
		add(cpu.ARM64.HasFP, "fp")
		add(cpu.ARM64.HasASIMD, "asimd")
		add(cpu.ARM64.HasATOMICS, "atomics")
		add(cpu.ARM64.HasSVE, "sve")
	}
	return fs
}
