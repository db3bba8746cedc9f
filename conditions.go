package m68k

// Condition is the 4-bit ir[11..8] field selecting one of 16 conditions
// for Bcc/DBcc/Scc/TRAPcc. Their FPU Fxxx counterparts store their raw
// 6-bit condition value in the same type. The core
// never evaluates a condition — it does not execute — it only uses the
// ordering to pick a mnemonic.
type Condition uint8

const (
	CondT  Condition = 0
	CondF  Condition = 1
	CondHI Condition = 2
	CondLS Condition = 3
	CondCC Condition = 4
	CondCS Condition = 5
	CondNE Condition = 6
	CondEQ Condition = 7
	CondVC Condition = 8
	CondVS Condition = 9
	CondPL Condition = 10
	CondMI Condition = 11
	CondGE Condition = 12
	CondLT Condition = 13
	CondGT Condition = 14
	CondLE Condition = 15
)

// conditionSuffix names the condition for diagnostic purposes (tests
// only; the printer that would render "bhi.b" lives outside the core).
var conditionSuffix = [16]string{
	"t", "f", "hi", "ls", "cc", "cs", "ne", "eq",
	"vc", "vs", "pl", "mi", "ge", "lt", "gt", "le",
}

// All four condition-bearing families (Bcc/DBcc/Scc/TRAPcc) share this
// same 16-entry ordering; only the mnemonic prefix differs, which is a
// printer concern out of scope here.
