//go:build linux
// +build linux

package regs

import "golang.org/x/sys/unix"

// DetectHostArch queries the running kernel for its machine
// architecture. The result is what SetCurrentArch expects: the
// architecture of the kernel taking the samples, not of any profiled
// process (uname reports "armv8l" under a 32-bit userspace on an
// aarch64 kernel, which ParseArch resolves to ARM64 for this reason).
func DetectHostArch() (ArchType, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return Unsupported, err
	}
	return ParseArch(unix.ByteSliceToString(uts.Machine[:])), nil
}
