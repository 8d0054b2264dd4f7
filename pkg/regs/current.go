package regs

import "sync/atomic"

// currentArch holds the architecture of the machine running the
// sampling session, as an ArchType. It is written once at startup,
// before any sample is decoded, and read-only afterwards; the atomic
// store makes that single write visible to sampling goroutines without
// further synchronization. Writes concurrent with decoding are outside
// the contract.
var currentArch uint32

// SetCurrentArch records arch as the architecture of the sampling
// host. Call it once, before decoding begins. It is consulted by
// Decode to resolve ABI-dependent samples.
func SetCurrentArch(arch ArchType) {
	atomic.StoreUint32(&currentArch, uint32(arch))
}

// CurrentArch returns the architecture recorded by SetCurrentArch, or
// Unsupported if SetCurrentArch was never called.
func CurrentArch() ArchType {
	return ArchType(atomic.LoadUint32(&currentArch))
}
