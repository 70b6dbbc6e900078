package main

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// hostInfo describes the machine a digest was computed on.
// The FPU features are shown only for reference: none of them may change the digest.
type hostInfo struct {
	GOOS      string          `json:"goos"`
	GOARCH    string          `json:"goarch"`
	GoVersion string          `json:"go_version"`
	NumCPU    int             `json:"num_cpu"`
	Features  map[string]bool `json:"features"`
}

func currentHost() hostInfo {
	return hostInfo{
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		GoVersion: runtime.Version(),
		NumCPU:    runtime.NumCPU(),
		Features:  fpuFeatures(runtime.GOARCH),
	}
}

// fpuFeatures returns the floating-point related cpu features for arch.
func fpuFeatures(arch string) map[string]bool {
	switch arch {
	case "amd64", "386":
		return map[string]bool{
			"sse2":  cpu.X86.HasSSE2,
			"sse41": cpu.X86.HasSSE41,
			"avx2":  cpu.X86.HasAVX2,
			"fma":   cpu.X86.HasFMA,
		}
	case "arm64":
		return map[string]bool{
			"fp":    cpu.ARM64.HasFP,
			"asimd": cpu.ARM64.HasASIMD,
			"fphp":  cpu.ARM64.HasFPHP,
		}
	default:
		return map[string]bool{}
	}
}
