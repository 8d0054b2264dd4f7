package regs

import (
	"fmt"

	"github.com/go-perf/perfregs/pkg/regnum"
)

// BadRegError is the panic value raised by register queries that
// violate the caller contract: an index outside the architecture's
// supported register mask, or outside the 64-slot dump entirely. Such
// an index means the caller skipped the SupportedRegMask check, or the
// sample is corrupted; hosts that prefer a structured error over an
// abort can recover it.
type BadRegError struct {
	Arch  ArchType
	Regno int
}

func (e *BadRegError) Error() string {
	return fmt.Sprintf("unknown %s register %d", e.Arch, e.Regno)
}

// RegName returns the name of register regno in arch's sampling
// numbering. Callers must only query indices inside
// SupportedRegMask(arch): the architectures whose name tables are
// exhaustive over that mask (both x86 variants, arm64, riscv64) panic
// with a *BadRegError on a miss. The arm extras table is not
// exhaustive over every numbering an arm sample can carry, so unmapped
// arm indices resolve to "unknown", as does any index of an
// unsupported architecture.
func RegName(arch ArchType, regno int) string {
	switch arch {
	case X86_32:
		name, ok := regnum.X86ToName(regno)
		if !ok {
			panic(&BadRegError{arch, regno})
		}
		return name
	case X86_64:
		name, ok := regnum.AMD64ToName(regno)
		if !ok {
			panic(&BadRegError{arch, regno})
		}
		return name
	case ARM:
		if name, ok := regnum.ARMToName(regno); ok {
			return name
		}
		return "unknown"
	case ARM64:
		name, ok := regnum.ARM64ToName(regno)
		if !ok {
			panic(&BadRegError{arch, regno})
		}
		return name
	case RISCV64:
		name, ok := regnum.RISCV64ToName(regno)
		if !ok {
			panic(&BadRegError{arch, regno})
		}
		return name
	}
	return "unknown"
}
