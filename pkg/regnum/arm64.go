package regnum

import "fmt"

// The register numbering used by the kernel for arm64 user registers
// in sampling events is specified in
// arch/arm64/include/uapi/asm/perf_regs.h (enum perf_event_arm64_regs).

const (
	ARM64_X0  = 0 // X1 through X29 follow
	ARM64_X29 = 29
	ARM64_LR  = 30
	ARM64_SP  = 31
	ARM64_PC  = 32

	ARM64_MAX = ARM64_PC + 1
)

var arm64ToName = map[int]string{
	ARM64_LR: "lr",
	ARM64_SP: "sp",
	ARM64_PC: "pc",
}

// ARM64ToName returns the name of register regno in the arm64 sampling
// numbering. The general-purpose registers map by offset.
func ARM64ToName(regno int) (string, bool) {
	if regno >= ARM64_X0 && regno <= ARM64_X29 {
		return fmt.Sprintf("r%d", regno-ARM64_X0), true
	}
	name, ok := arm64ToName[regno]
	return name, ok
}
