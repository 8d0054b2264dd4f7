package regnum

// The register numbering used by the kernel for riscv user registers
// in sampling events is specified in
// arch/riscv/include/uapi/asm/perf_regs.h (enum perf_event_riscv_regs).
// Registers are named after their role in the standard calling
// convention rather than their x-numbering.

const (
	RISCV_PC  = 0
	RISCV_RA  = 1
	RISCV_SP  = 2
	RISCV_GP  = 3
	RISCV_TP  = 4
	RISCV_T0  = 5
	RISCV_T1  = 6
	RISCV_T2  = 7
	RISCV_S0  = 8
	RISCV_S1  = 9
	RISCV_A0  = 10
	RISCV_A1  = 11
	RISCV_A2  = 12
	RISCV_A3  = 13
	RISCV_A4  = 14
	RISCV_A5  = 15
	RISCV_A6  = 16
	RISCV_A7  = 17
	RISCV_S2  = 18
	RISCV_S3  = 19
	RISCV_S4  = 20
	RISCV_S5  = 21
	RISCV_S6  = 22
	RISCV_S7  = 23
	RISCV_S8  = 24
	RISCV_S9  = 25
	RISCV_S10 = 26
	RISCV_S11 = 27
	RISCV_T3  = 28
	RISCV_T4  = 29
	RISCV_T5  = 30
	RISCV_T6  = 31

	RISCV_MAX = RISCV_T6 + 1
)

var riscv64ToName = map[int]string{
	RISCV_PC:  "pc",
	RISCV_RA:  "ra",
	RISCV_SP:  "sp",
	RISCV_GP:  "gp",
	RISCV_TP:  "tp",
	RISCV_T0:  "t0",
	RISCV_T1:  "t1",
	RISCV_T2:  "t2",
	RISCV_S0:  "s0",
	RISCV_S1:  "s1",
	RISCV_A0:  "a0",
	RISCV_A1:  "a1",
	RISCV_A2:  "a2",
	RISCV_A3:  "a3",
	RISCV_A4:  "a4",
	RISCV_A5:  "a5",
	RISCV_A6:  "a6",
	RISCV_A7:  "a7",
	RISCV_S2:  "s2",
	RISCV_S3:  "s3",
	RISCV_S4:  "s4",
	RISCV_S5:  "s5",
	RISCV_S6:  "s6",
	RISCV_S7:  "s7",
	RISCV_S8:  "s8",
	RISCV_S9:  "s9",
	RISCV_S10: "s10",
	RISCV_S11: "s11",
	RISCV_T3:  "t3",
	RISCV_T4:  "t4",
	RISCV_T5:  "t5",
	RISCV_T6:  "t6",
}

// RISCV64ToName returns the ABI name of register regno in the riscv
// sampling numbering.
func RISCV64ToName(regno int) (string, bool) {
	name, ok := riscv64ToName[regno]
	return name, ok
}
