package cpu

// Opcodes, assigned in catalogue order starting at 0. The numeric values
// are part of the wire format and must never be reordered.
const (
	OpNOOP     = iota // no operation
	OpSYS             // system subfunction, selected by field
	OpADD             // A += R[field] + C
	OpSUB             // A -= R[field] + C
	OpMUL             // unsigned A,B = A * R[field]
	OpIMUL            // signed A,B = A * R[field]
	OpDIV             // A /= R[field], unsigned, undefined-safe on zero
	OpMOD             // A %= R[field], unsigned, undefined-safe on zero
	OpAND             // A &= R[field]
	OpOR              // A |= R[field]
	OpXOR             // A ^= R[field]
	OpNOT             // A = ^R[field]
	OpINC             // R[field]++
	OpDEC             // R[field]--
	OpRTL             // rotate R[field] left; C = old bit 7
	OpRTR             // rotate R[field] right; C = old bit 0
	OpSET             // R[field] = immediate byte
	OpSWAP            // R[field] <-> R[operand register]
	OpLOADI           // R[field] = MEM[immediate address]
	OpSTOREI          // MEM[immediate address] = R[field]
	OpLOADIR          // A = MEM[pair(field)]
	OpSTOREIR         // MEM[pair(field)] = A
	OpCOPYIN          // A = R[field]
	OpCOPYOUT         // R[field] = A
	OpSTK             // field 0: push A; field 1: pop A
	OpJMP             // unconditional jump / call, per field
	OpBRCH            // conditional branch, per field
	OpRET             // return / interrupt return, per field
	OpCMP             // SUB's flag effect without writing A
	OpCLF             // toggle F bit number field
	OpSEF             // set F bit number field
)

// SYS subfunctions, selected by field.
const (
	SysHalt          = 0 // running = false
	SysEnableIRQ     = 1 // reserved no-op; SEF on FlagI is the real mechanism
	SysDisableIRQ    = 2 // reserved no-op; CLF on FlagI is the real mechanism
	SysDataIn        = 3 // A = bus[E].Read(); 0 if unbound
	SysDataOut       = 4 // bus[E].Write(A); no-op if unbound
	SysClearIPend    = 5 // IPend = 0
)

// BRCH condition codes, selected by field.
const (
	BranchZSet = iota
	BranchZClear
	BranchNSet
	BranchNClear
	BranchCSet
	BranchCClear
	BranchOSet
	BranchOClear
)
