package m68k

// OperandType tags the Operand union.
type OperandType uint8

const (
	OpTypeNone OperandType = iota
	OpTypeRegister
	OpTypeImmediate
	OpTypeMemory
	OpTypeRegisterBits
	OpTypeRegisterPair
)

// AddressMode enumerates the twelve EA-derived addressing modes plus
// the non-EA register/immediate modes a builder may also produce.
type AddressMode uint8

const (
	AddrNone AddressMode = iota
	AddrRegDirectData
	AddrRegDirectAddr
	AddrRegIndirectAddr
	AddrRegIndirectPostInc
	AddrRegIndirectPreDec
	AddrRegIndirectDisp
	AddrRegIndirectIndex8
	AddrRegIndirectIndexBaseDisp
	AddrAbsShort
	AddrAbsLong
	AddrPCDisp
	AddrPCIndex8
	AddrPCIndexBaseDisp
	AddrMemIndirectPreIndex
	AddrMemIndirectPostIndex
	AddrPCMemIndirectPreIndex
	AddrPCMemIndirectPostIndex
	AddrImmediate
	AddrFPRegDirect // FP0-FP7, the coprocessor's own register file
)

// IndexSize selects word (sign-extended) or long index register width
// in indexed addressing modes.
type IndexSize uint8

const (
	IndexWord IndexSize = iota
	IndexLong
)

// MemOperand carries every field a memory-referencing addressing mode
// might need. Only the subset relevant to Operand.AddressMode is
// meaningful at any one time; the rest are zero.
type MemOperand struct {
	BaseReg  uint8 // An, or PC-relative pseudo-register
	HasBase  bool
	IndexReg uint8
	HasIndex bool
	IndexIsA bool // index register is An (vs Dn)
	Scale    uint8 // 1, 2, 4, or 8
	IndexSz  IndexSize

	Disp    int32 // resolved single displacement (brief form, d16, d32)
	InDisp  int32 // base displacement (full form)
	OutDisp int32 // outer displacement (full indirect forms)

	Bitfield bool
	Width    uint8 // static width (1-32); 0 when WidthIsReg (see WidthReg)
	Offset   uint8 // static offset (0-31); 0 when OffsetIsReg (see OffsetReg)
	WidthReg uint8
	OffsetReg uint8
	WidthIsReg  bool
	OffsetIsReg bool
}

// Operand is the tagged record a decoded addressing mode or register
// reference is reduced to.
type Operand struct {
	Type        OperandType
	AddressMode AddressMode

	Reg uint8 // single register id (D0-7 -> 0-7, A0-7 -> 0-7)
	Mem MemOperand

	Imm          uint64
	RegisterBits uint32 // MOVEM mask, 16 or 32 bits depending on context
}

// Extension is the fixed-capacity per-instruction operand record.
type Extension struct {
	Operands [4]Operand
	OpCount  int
	Size     OpSize
}

// reset clears the Extension to its default state: every operand slot
// defaults to OpTypeRegister with AddrNone.
func (e *Extension) reset() {
	*e = Extension{}
	for i := range e.Operands {
		e.Operands[i] = Operand{Type: OpTypeRegister}
	}
}

// Instruction is the output container. The core writes exactly Opcode,
// Size, Operands, OpCount, Cond, and Groups/GroupCount; everything else is
// left for an external printer or library façade to attach.
type Instruction struct {
	Opcode Opcode
	Ext    Extension
	Cond   Condition // meaningful only for Bcc/DBcc/Scc/TRAPcc and their F-prefixed FPU counterparts

	Groups     [2]Group
	GroupCount int
}

// addGroup attaches a group classification tag. Instructions attach at
// most one or two tags (none currently need two, but the array is
// sized for it).
func (in *Instruction) addGroup(g Group) {
	if in.GroupCount < len(in.Groups) {
		in.Groups[in.GroupCount] = g
		in.GroupCount++
	}
}

// reset clears an Instruction for reuse: the Extension record and the
// group list are both zeroed.
func (in *Instruction) reset() {
	in.Opcode = Invalid
	in.Ext.reset()
	in.Groups = [2]Group{}
	in.GroupCount = 0
}
