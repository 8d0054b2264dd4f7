// Package regs decodes the register dumps attached to kernel
// performance-sampling events into dense, queryable register sets.
//
// The kernel attaches user registers to a sample as a sparse pair: a
// 64-bit mask of present registers plus one value per set bit, in
// ascending bit order. Which register a bit denotes depends on the
// architecture and on the ABI the profiled process was executing
// under, which can differ from the architecture of the sampling
// kernel (a 32-bit process sampled on a 64-bit kernel). This package
// resolves the effective architecture of each sample, expands the
// sparse dump, and answers architecture-aware queries: stack pointer,
// instruction pointer, raw slot values and register names.
package regs

import (
	"strings"

	"github.com/go-perf/perfregs/pkg/logflags"
	"github.com/go-perf/perfregs/pkg/regnum"
)

// ArchType identifies the instruction-set/register-layout family of a
// CPU or of a process execution mode. The zero value is Unsupported.
type ArchType uint8

const (
	Unsupported ArchType = iota
	X86_32
	X86_64
	ARM
	ARM64
	RISCV64
)

// ABI tags a sample with the execution mode the profiled process was
// running under, using the PERF_SAMPLE_REGS_ABI_* values of the
// kernel's sampling ABI.
type ABI uint64

const (
	ABINone ABI = 0
	ABI32   ABI = 1
	ABI64   ABI = 2
)

// ParseArch returns the architecture named by arch, a textual
// identifier as reported by a host query or by a sampled binary's
// metadata. Tokens are matched case-sensitively. Unrecognized names
// log an error and return Unsupported.
func ParseArch(arch string) ArchType {
	switch {
	case arch == "x86" || arch == "i686":
		return X86_32
	case arch == "x86_64":
		return X86_64
	case arch == "riscv64":
		return RISCV64
	case arch == "aarch64":
		return ARM64
	case strings.HasPrefix(arch, "arm"):
		// A machine like "armv8l" is a 32-bit userspace running on an
		// aarch64 kernel. The kernel is what takes the samples, so the
		// profiling environment is ARM64.
		if len(arch) > 3 && arch[3] == 'v' {
			if version, ok := leadingInt(arch[4:]); ok && version >= 8 {
				return ARM64
			}
		}
		return ARM
	}
	logflags.ArchLogger().Errorf("unsupported arch: %s", arch)
	return Unsupported
}

// leadingInt parses the decimal digits at the start of s, ignoring any
// trailing suffix ("8l" parses to 8).
func leadingInt(s string) (int, bool) {
	n, ok := 0, false
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			break
		}
		n = n*10 + int(s[i]-'0')
		ok = true
	}
	return n, ok
}

// ArchForABI resolves the effective architecture of a sample: the
// architecture that describes the sample's register layout once the
// sample's ABI tag is reconciled with the machine architecture of the
// sampling kernel. A 64-bit kernel sampling a compat-mode process
// reports machine X86_64 or ARM64 together with a 32-bit ABI tag, and
// the registers then follow the 32-bit layout. The reverse mapping is
// defined symmetrically. Every other combination, including RISCV64
// which has no compat ABI, resolves to the machine architecture
// unchanged.
func ArchForABI(machineArch ArchType, abi ABI) ArchType {
	switch abi {
	case ABI32:
		switch machineArch {
		case X86_64:
			return X86_32
		case ARM64:
			return ARM
		}
	case ABI64:
		switch machineArch {
		case X86_32:
			return X86_64
		case ARM:
			return ARM64
		}
	}
	return machineArch
}

// x86 defines the segment registers in its sampling numbering but the
// kernel never populates them, so they are excluded from the
// collectible mask of both x86 variants.
const x86SegRegMask = 1<<regnum.X86_DS | 1<<regnum.X86_ES | 1<<regnum.X86_FS | 1<<regnum.X86_GS

// SupportedRegMask returns the mask of register indices the kernel can
// collect for arch: bit i set means register i is architecturally
// defined and populated in sample dumps. Unsupported yields an empty
// mask.
func SupportedRegMask(arch ArchType) uint64 {
	switch arch {
	case X86_32:
		return (uint64(1)<<regnum.X86_32_MAX - 1) &^ x86SegRegMask
	case X86_64:
		return (uint64(1)<<regnum.X86_64_MAX - 1) &^ x86SegRegMask
	case ARM:
		return uint64(1)<<regnum.ARM_MAX - 1
	case ARM64:
		return uint64(1)<<regnum.ARM64_MAX - 1
	case RISCV64:
		return uint64(1)<<regnum.RISCV_MAX - 1
	}
	return 0
}

func (a ArchType) String() string {
	switch a {
	case X86_32:
		return "x86"
	case X86_64:
		return "x86_64"
	case ARM:
		return "arm"
	case ARM64:
		return "arm64"
	case RISCV64:
		return "riscv64"
	}
	return "unknown"
}

// PtrSize returns the size of a pointer on this architecture, in
// bytes, or 0 for Unsupported.
func (a ArchType) PtrSize() int {
	switch a {
	case X86_32, ARM:
		return 4
	case X86_64, ARM64, RISCV64:
		return 8
	}
	return 0
}
