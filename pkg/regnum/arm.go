package regnum

import "fmt"

// The register numbering used by the kernel for arm user registers in
// sampling events is specified in
// arch/arm/include/uapi/asm/perf_regs.h (enum perf_event_arm_regs).

const (
	ARM_R0  = 0 // R1 through R10 follow
	ARM_R10 = 10
	ARM_FP  = 11
	ARM_IP  = 12
	ARM_SP  = 13
	ARM_LR  = 14
	ARM_PC  = 15

	ARM_MAX = ARM_PC + 1
)

var armToName = map[int]string{
	ARM_FP: "fp",
	ARM_IP: "ip",
	ARM_SP: "sp",
	ARM_LR: "lr",
	ARM_PC: "pc",
}

// ARMToName returns the name of register regno in the arm sampling
// numbering. The table of named extras is not exhaustive over every
// numbering scheme an arm sample can carry, so misses report false
// instead of being an error.
func ARMToName(regno int) (string, bool) {
	if regno >= ARM_R0 && regno <= ARM_R10 {
		return fmt.Sprintf("r%d", regno-ARM_R0), true
	}
	name, ok := armToName[regno]
	return name, ok
}
