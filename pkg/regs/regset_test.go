package regs

import (
	"math/bits"
	"testing"

	"github.com/go-perf/perfregs/pkg/regnum"
)

func TestNewRegSetSparseExpansion(t *testing.T) {
	mask := uint64(1<<2 | 1<<5 | 1<<9)
	vals := []uint64{0xaa, 0xbb, 0xcc}

	rs := NewRegSet(X86_64, ABI64, mask, vals)
	if rs.Arch != X86_64 {
		t.Fatalf("Arch = %v, want %v", rs.Arch, X86_64)
	}
	if rs.ValidMask != mask {
		t.Fatalf("ValidMask = %#x, want %#x", rs.ValidMask, mask)
	}

	want := map[int]uint64{2: 0xaa, 5: 0xbb, 9: 0xcc}
	for regno := 0; regno < 64; regno++ {
		v, ok := rs.Get(regno)
		wantv, wantok := want[regno]
		if ok != wantok || v != wantv {
			t.Errorf("Get(%d) = %#x, %v, want %#x, %v", regno, v, ok, wantv, wantok)
		}
		if rs.Data[regno] != wantv {
			t.Errorf("Data[%d] = %#x, want %#x", regno, rs.Data[regno], wantv)
		}
	}
}

func TestNewRegSetResolvesABI(t *testing.T) {
	rs := NewRegSet(X86_64, ABI32, 1<<regnum.X86_SP, []uint64{0xf00})
	if rs.Arch != X86_32 {
		t.Errorf("Arch = %v, want %v", rs.Arch, X86_32)
	}
	if sp, ok := rs.SP(); !ok || sp != 0xf00 {
		t.Errorf("SP() = %#x, %v, want 0xf00, true", sp, ok)
	}
}

// An aarch64 kernel dumps arm64 registers even for a compat-mode arm
// process. The decoder must copy the arm64 pc slot to the slot the arm
// layout keeps it in, since consumers index by the effective
// architecture.
func TestNewRegSetARM64CompatPC(t *testing.T) {
	mask := SupportedRegMask(ARM64)
	vals := make([]uint64, bits.OnesCount64(mask))
	for i := range vals {
		vals[i] = 0x1000 + uint64(i)
	}

	rs := NewRegSet(ARM64, ABI32, mask, vals)
	if rs.Arch != ARM {
		t.Fatalf("Arch = %v, want %v", rs.Arch, ARM)
	}
	if rs.Data[regnum.ARM_PC] != rs.Data[regnum.ARM64_PC] {
		t.Errorf("Data[%d] = %#x, want pc value %#x", regnum.ARM_PC, rs.Data[regnum.ARM_PC], rs.Data[regnum.ARM64_PC])
	}
	if ip, ok := rs.IP(); !ok || ip != rs.Data[regnum.ARM64_PC] {
		t.Errorf("IP() = %#x, %v, want %#x, true", ip, ok, rs.Data[regnum.ARM64_PC])
	}

	// Without the compat ABI tag the dump stays in the arm64 layout.
	rs = NewRegSet(ARM64, ABI64, mask, vals)
	if rs.Arch != ARM64 {
		t.Fatalf("Arch = %v, want %v", rs.Arch, ARM64)
	}
	if rs.Data[regnum.ARM_PC] != vals[regnum.ARM_PC] {
		t.Errorf("Data[%d] = %#x, want %#x", regnum.ARM_PC, rs.Data[regnum.ARM_PC], vals[regnum.ARM_PC])
	}
}

func TestDecodeUsesCurrentArch(t *testing.T) {
	saved := CurrentArch()
	defer SetCurrentArch(saved)

	SetCurrentArch(ARM64)
	rs := Decode(ABI32, 1<<regnum.ARM_SP, []uint64{0xbeef})
	if rs.Arch != ARM {
		t.Errorf("Arch = %v, want %v", rs.Arch, ARM)
	}

	SetCurrentArch(RISCV64)
	rs = Decode(ABI32, 1<<regnum.RISCV_SP, []uint64{0xbeef})
	if rs.Arch != RISCV64 {
		t.Errorf("Arch = %v, want %v", rs.Arch, RISCV64)
	}
}

func TestSPAndIP(t *testing.T) {
	tests := []struct {
		arch  ArchType
		spReg int
		ipReg int
	}{
		{X86_32, regnum.X86_SP, regnum.X86_IP},
		{X86_64, regnum.X86_SP, regnum.X86_IP},
		{ARM, regnum.ARM_SP, regnum.ARM_PC},
		{ARM64, regnum.ARM64_SP, regnum.ARM64_PC},
		{RISCV64, regnum.RISCV_SP, regnum.RISCV_PC},
	}
	for _, tt := range tests {
		mask := uint64(1)<<uint(tt.spReg) | uint64(1)<<uint(tt.ipReg)
		spv, ipv := uint64(0x51ac), uint64(0x1b)
		vals := []uint64{spv, ipv}
		if tt.ipReg < tt.spReg {
			vals = []uint64{ipv, spv}
		}

		rs := NewRegSet(tt.arch, ABINone, mask, vals)
		if sp, ok := rs.SP(); !ok || sp != spv {
			t.Errorf("%v: SP() = %#x, %v, want %#x, true", tt.arch, sp, ok, spv)
		}
		if ip, ok := rs.IP(); !ok || ip != ipv {
			t.Errorf("%v: IP() = %#x, %v, want %#x, true", tt.arch, ip, ok, ipv)
		}
	}
}

func TestSPAndIPNotCollected(t *testing.T) {
	rs := NewRegSet(X86_64, ABI64, 1<<regnum.X86_AX, []uint64{1})
	if _, ok := rs.SP(); ok {
		t.Error("SP() reported a value the kernel did not supply")
	}
	if _, ok := rs.IP(); ok {
		t.Error("IP() reported a value the kernel did not supply")
	}
}

func TestSPAndIPUnsupportedArch(t *testing.T) {
	rs := NewRegSet(Unsupported, ABINone, 0, nil)
	if _, ok := rs.SP(); ok {
		t.Error("SP() succeeded on an unsupported architecture")
	}
	if _, ok := rs.IP(); ok {
		t.Error("IP() succeeded on an unsupported architecture")
	}
}

func TestGetOutOfRange(t *testing.T) {
	rs := NewRegSet(X86_64, ABI64, 1, []uint64{1})
	defer func() {
		err := recover()
		if err == nil {
			t.Error("Get(64) did not panic")
			return
		}
		if _, ok := err.(*BadRegError); !ok {
			t.Errorf("Get(64) panicked with %T, want *BadRegError", err)
		}
	}()
	rs.Get(64)
}

func TestNewRegSetValueCountMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewRegSet with a short value array did not panic")
		}
	}()
	NewRegSet(X86_64, ABI64, 1<<2|1<<5, []uint64{1})
}

func TestSlice(t *testing.T) {
	mask := uint64(1<<regnum.X86_AX | 1<<regnum.X86_SP | 1<<regnum.X86_IP)
	rs := NewRegSet(X86_32, ABINone, mask, []uint64{1, 2, 3})

	want := []Register{{"ax", 1}, {"sp", 2}, {"ip", 3}}
	got := rs.Slice()
	if len(got) != len(want) {
		t.Fatalf("Slice() returned %d registers, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Slice()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
