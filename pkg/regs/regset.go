package regs

import (
	"fmt"
	"math/bits"

	"github.com/go-perf/perfregs/pkg/logflags"
	"github.com/go-perf/perfregs/pkg/regnum"
)

// A RegSet holds the decoded user registers of one sample as a dense,
// randomly addressable array. Data[i] is only meaningful when bit i of
// ValidMask is set; every other slot is left zero. A RegSet is
// immutable after construction and safe to share between goroutines.
type RegSet struct {
	// Arch is the effective architecture of the sample, the layout
	// Data is indexed by. It can differ from the machine architecture
	// when the profiled process ran under a compat ABI.
	Arch ArchType

	// ValidMask has bit i set iff the kernel supplied a value for
	// register index i.
	ValidMask uint64

	Data [64]uint64
}

// Register is one named register value of a sample.
type Register struct {
	Name  string
	Value uint64
}

// NewRegSet expands the sparse register dump of one sample.
// machineArch is the architecture of the sampling kernel, abi the
// sample's ABI tag, and validRegs carries exactly one value per set
// bit of validMask, ordered by ascending bit index. A length mismatch
// means the sample record is corrupted and panics.
func NewRegSet(machineArch ArchType, abi ABI, validMask uint64, validRegs []uint64) *RegSet {
	if len(validRegs) != bits.OnesCount64(validMask) {
		panic(fmt.Sprintf("regs: %d values for a mask of %d registers", len(validRegs), bits.OnesCount64(validMask)))
	}
	rs := &RegSet{Arch: ArchForABI(machineArch, abi), ValidMask: validMask}
	for i, j := 0, 0; i < 64; i++ {
		if (validMask>>uint(i))&1 == 1 {
			rs.Data[i] = validRegs[j]
			j++
		}
	}
	if machineArch == ARM64 && abi == ABI32 {
		// The aarch64 kernel dumps arm64 registers even for a
		// compat-mode arm process, but consumers index Data by the
		// effective (arm) layout, which keeps pc at a different slot.
		rs.Data[regnum.ARM_PC] = rs.Data[regnum.ARM64_PC]
		if logflags.Regs() {
			logflags.RegsLogger().Debugf("compat arm sample on arm64 host, pc=%#x", rs.Data[regnum.ARM_PC])
		}
	}
	return rs
}

// Decode expands a sample using the process-wide current architecture
// (see SetCurrentArch) as the machine architecture.
func Decode(abi ABI, validMask uint64, validRegs []uint64) *RegSet {
	return NewRegSet(CurrentArch(), abi, validMask, validRegs)
}

// Get returns the value of register regno and whether the kernel
// supplied it in this sample. regno must be below 64; a larger index
// was never checked against the supported mask and panics with a
// *BadRegError.
func (rs *RegSet) Get(regno int) (uint64, bool) {
	if regno < 0 || regno >= 64 {
		panic(&BadRegError{rs.Arch, regno})
	}
	if (rs.ValidMask>>uint(regno))&1 == 1 {
		return rs.Data[regno], true
	}
	return 0, false
}

// SP returns the stack pointer of the sample, if it was collected.
func (rs *RegSet) SP() (uint64, bool) {
	var regno int
	switch rs.Arch {
	case X86_32, X86_64:
		regno = regnum.X86_SP
	case ARM:
		regno = regnum.ARM_SP
	case ARM64:
		regno = regnum.ARM64_SP
	case RISCV64:
		regno = regnum.RISCV_SP
	default:
		return 0, false
	}
	return rs.Get(regno)
}

// IP returns the instruction pointer of the sample, if it was
// collected.
func (rs *RegSet) IP() (uint64, bool) {
	var regno int
	switch rs.Arch {
	case X86_32, X86_64:
		regno = regnum.X86_IP
	case ARM:
		regno = regnum.ARM_PC
	case ARM64:
		regno = regnum.ARM64_PC
	case RISCV64:
		regno = regnum.RISCV_PC
	default:
		return 0, false
	}
	return rs.Get(regno)
}

// Slice returns the registers the kernel supplied as (name, value)
// pairs in ascending register-index order, for reports and debug
// output.
func (rs *RegSet) Slice() []Register {
	out := make([]Register, 0, bits.OnesCount64(rs.ValidMask))
	for i := 0; i < 64; i++ {
		if (rs.ValidMask>>uint(i))&1 == 1 {
			out = append(out, Register{Name: RegName(rs.Arch, i), Value: rs.Data[i]})
		}
	}
	return out
}
