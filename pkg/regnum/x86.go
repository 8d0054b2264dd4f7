package regnum

import "fmt"

// The register numbering used by the kernel when it attaches x86 user
// registers to a sampling event is specified in
// arch/x86/include/uapi/asm/perf_regs.h (enum perf_event_x86_regs).
// The 32-bit numbering is a prefix of the 64-bit one: the extended
// registers R8-R15 only exist past the 32-bit maximum.

const (
	X86_AX    = 0
	X86_BX    = 1
	X86_CX    = 2
	X86_DX    = 3
	X86_SI    = 4
	X86_DI    = 5
	X86_BP    = 6
	X86_SP    = 7
	X86_IP    = 8
	X86_FLAGS = 9
	X86_CS    = 10
	X86_SS    = 11
	X86_DS    = 12
	X86_ES    = 13
	X86_FS    = 14
	X86_GS    = 15
	X86_R8    = 16 // R9 through R15 follow
	X86_R15   = 23

	X86_32_MAX = X86_GS + 1
	X86_64_MAX = X86_R15 + 1
)

var x86ToName = map[int]string{
	X86_AX:    "ax",
	X86_BX:    "bx",
	X86_CX:    "cx",
	X86_DX:    "dx",
	X86_SI:    "si",
	X86_DI:    "di",
	X86_BP:    "bp",
	X86_SP:    "sp",
	X86_IP:    "ip",
	X86_FLAGS: "flags",
	X86_CS:    "cs",
	X86_SS:    "ss",
	X86_DS:    "ds",
	X86_ES:    "es",
	X86_FS:    "fs",
	X86_GS:    "gs",
}

// X86ToName returns the name of register regno in the 32-bit x86
// sampling numbering.
func X86ToName(regno int) (string, bool) {
	name, ok := x86ToName[regno]
	return name, ok
}

// AMD64ToName returns the name of register regno in the 64-bit x86
// sampling numbering. The extended registers map by offset, everything
// below them shares the 32-bit table.
func AMD64ToName(regno int) (string, bool) {
	if regno >= X86_R8 && regno <= X86_R15 {
		return fmt.Sprintf("r%d", regno-X86_R8+8), true
	}
	return X86ToName(regno)
}
