package m68k

// This file holds the operand builders: the shape routines that populate
// Instruction.Ext for an archetypal instruction layout. Rather than every
// opcode-table row carrying its own bespoke function body, each row
// supplies the Opcode id, Size, and which of these shared shapes to call.

// initOp stamps the Opcode id, operand count, and size onto insn.Ext.
func (info *Info) initOp(op Opcode, count int, size Size) {
	info.insn.Opcode = op
	info.insn.Ext.OpCount = count
	info.insn.Ext.Size = OpSize{CPU: size}
}

func (info *Info) initOpFPU(op Opcode, count int, size FPUSize) {
	info.insn.Opcode = op
	info.insn.Ext.OpCount = count
	info.insn.Ext.Size = OpSize{FPU: size}
}

func dataReg(n uint8) Operand { return Operand{Type: OpTypeRegister, AddressMode: AddrRegDirectData, Reg: n} }
func addrReg(n uint8) Operand { return Operand{Type: OpTypeRegister, AddressMode: AddrRegDirectAddr, Reg: n} }
func immOperand(v uint64) Operand {
	return Operand{Type: OpTypeImmediate, AddressMode: AddrImmediate, Imm: v}
}

// irReg0 / irReg9 read the 3-bit Dn/An register field at ir bits 2..0
// and 11..9, the two positions every instruction-word register field
// can occupy; irMode3 / irMode6 read the 3-bit mode fields at ir bits
// 5..3 and 8..6.
func (info *Info) irReg0() uint8 { return uint8(info.ir & 7) }
func (info *Info) irReg9() uint8 { return uint8((info.ir >> 9) & 7) }
func (info *Info) irMode3() uint8 { return uint8((info.ir >> 3) & 7) }
func (info *Info) irMode6() uint8 { return uint8((info.ir >> 6) & 7) }

// buildEA: one EA operand (clr, neg, not, tst, pea, jmp/jsr control EAs, ...).
func (info *Info) buildEA(op Opcode, size Size) {
	info.initOp(op, 1, size)
	info.insn.Ext.Operands[0] = info.parseEA(info.irMode3(), info.irReg0(), size)
}

// buildEAA: EA source, An destination (LEA, ADDA/SUBA/CMPA).
func (info *Info) buildEAA(op Opcode, size Size) {
	info.initOp(op, 2, size)
	info.insn.Ext.Operands[0] = info.parseEA(info.irMode3(), info.irReg0(), size)
	info.insn.Ext.Operands[1] = addrReg(info.irReg9())
}

// buildER: EA source, Dn/An destination (register field at ir 11..9).
// isAreg selects which register file the destination comes from.
func (info *Info) buildER(op Opcode, size Size, isAreg bool) {
	info.initOp(op, 2, size)
	info.insn.Ext.Operands[0] = info.parseEA(info.irMode3(), info.irReg0(), size)
	if isAreg {
		info.insn.Ext.Operands[1] = addrReg(info.irReg9())
	} else {
		info.insn.Ext.Operands[1] = dataReg(info.irReg9())
	}
}

// buildRE: Dn/An source (ir 11..9), EA destination.
func (info *Info) buildRE(op Opcode, size Size, isAreg bool) {
	info.initOp(op, 2, size)
	if isAreg {
		info.insn.Ext.Operands[0] = addrReg(info.irReg9())
	} else {
		info.insn.Ext.Operands[0] = dataReg(info.irReg9())
	}
	info.insn.Ext.Operands[1] = info.parseEA(info.irMode3(), info.irReg0(), size)
}

// buildEAEA: two EA operands, destination reconstructed by swapping
// ir's mode:reg <-> reg:mode (the MOVE encoding).
func (info *Info) buildEAEA(op Opcode, size Size) {
	info.initOp(op, 2, size)
	info.insn.Ext.Operands[0] = info.parseEA(info.irMode3(), info.irReg0(), size)
	dstField := moveDestField(info.ir)
	info.insn.Ext.Operands[1] = info.parseEA(uint8(dstField>>3)&7, uint8(dstField&7), size)
}

// buildRR: two Dn registers, source from ir 2..0 first and destination
// from ir 11..9 second (ADDX/SUBX/ABCD/SBCD/PACK/UNPK register forms).
func (info *Info) buildRR(op Opcode, size Size) {
	info.initOp(op, 2, size)
	info.insn.Ext.Operands[0] = dataReg(info.irReg0())
	info.insn.Ext.Operands[1] = dataReg(info.irReg9())
}

// buildMM: two An registers in predecrement mode (ADDX/SUBX/ABCD/SBCD
// memory-memory forms), or in postincrement mode when postInc is set
// (CMPM).
func (info *Info) buildMM(op Opcode, size Size, postInc bool) {
	info.initOp(op, 2, size)
	mode := AddrRegIndirectPreDec
	if postInc {
		mode = AddrRegIndirectPostInc
	}
	info.insn.Ext.Operands[0] = Operand{Type: OpTypeMemory, AddressMode: mode,
		Mem: MemOperand{BaseReg: info.irReg0(), HasBase: true}}
	info.insn.Ext.Operands[1] = Operand{Type: OpTypeMemory, AddressMode: mode,
		Mem: MemOperand{BaseReg: info.irReg9(), HasBase: true}}
}

// buildImmEA: immediate (sized) + EA (ADDI/SUBI/ANDI/ORI/EORI/CMPI).
func (info *Info) buildImmEA(op Opcode, size Size) {
	imm := info.readImmBySize(size)
	info.initOp(op, 2, size)
	info.insn.Ext.Operands[0] = immOperand(imm)
	info.insn.Ext.Operands[1] = info.parseEA(info.irMode3(), info.irReg0(), size)
}

// buildImmSpecialReg: immediate + a named special register operand
// (CCR, SR) with no addressing mode of its own.
func (info *Info) buildImmSpecialReg(op Opcode, imm uint64, reg specialReg) {
	info.initOp(op, 2, Word)
	info.insn.Ext.Operands[0] = immOperand(imm)
	info.insn.Ext.Operands[1] = Operand{Type: OpTypeRegister, AddressMode: AddrNone, Reg: uint8(reg)}
}

// specialReg names a non-addressable system register (CCR, SR, USP,
// VBR, CACR, ...) referenced as an Operand without a normal EA.
type specialReg uint8

const (
	RegCCR specialReg = iota
	RegSR
	RegUSP
	RegVBR
	RegCACR
	RegCAAR
	RegMSP
	RegISP
	RegSFC
	RegDFC
	RegFPCR
	RegFPSR
	RegFPIAR
)

// fpReg builds an FP0-FP7 operand, the coprocessor register file's
// analogue of dataReg/addrReg.
func fpReg(n uint8) Operand {
	return Operand{Type: OpTypeRegister, AddressMode: AddrFPRegDirect, Reg: n}
}

// quick3Data is the 3-bit quick-immediate table: 0 encodes 8. Used by
// ADDQ/SUBQ and the immediate shift count.
var quick3Data = [8]uint64{8, 1, 2, 3, 4, 5, 6, 7}

// bitfieldWidth is the 5-bit bitfield-width table: 0 encodes 32.
var bitfieldWidth [32]uint8

func init() {
	bitfieldWidth[0] = 32
	for i := uint8(1); i < 32; i++ {
		bitfieldWidth[i] = i
	}
}

// build3bitD: quick immediate (ir 11..9) + Dn (ir 2..0).
func (info *Info) build3bitD(op Opcode, size Size) {
	info.initOp(op, 2, size)
	info.insn.Ext.Operands[0] = immOperand(quick3Data[info.irReg9()])
	info.insn.Ext.Operands[1] = dataReg(info.irReg0())
}

// build3bitEA: quick immediate (ir 11..9) + EA.
func (info *Info) build3bitEA(op Opcode, size Size) {
	quick := quick3Data[info.irReg9()]
	ea := info.parseEA(info.irMode3(), info.irReg0(), size)
	info.initOp(op, 2, size)
	info.insn.Ext.Operands[0] = immOperand(quick)
	info.insn.Ext.Operands[1] = ea
}

// buildBxx: a single immediate jump-target operand, tagged GroupJump.
// cond carries the condition code for Bcc (CondT/CondF select BRA/BSR at
// the call site instead).
func (info *Info) buildBxx(op Opcode, size Size, target int32, cond Condition) {
	info.initOp(op, 1, size)
	info.insn.Ext.Operands[0] = immOperand(uint64(uint32(target)))
	info.insn.Cond = cond
	info.insn.addGroup(GroupJump)
}

// buildDbxx: Dn + immediate jump target, tagged GroupJump.
func (info *Info) buildDbxx(op Opcode, target int32, cond Condition) {
	info.initOp(op, 2, Word)
	info.insn.Ext.Operands[0] = dataReg(info.irReg0())
	info.insn.Ext.Operands[1] = immOperand(uint64(uint32(target)))
	info.insn.Cond = cond
	info.insn.addGroup(GroupJump)
}

// buildScc: EA destination set per condition; no extra operand beyond
// the EA.
func (info *Info) buildScc(size Size, cond Condition) {
	info.initOp(Scc, 1, size)
	info.insn.Ext.Operands[0] = info.parseEA(info.irMode3(), info.irReg0(), size)
	info.insn.Cond = cond
}

// buildTrapcc: TRAPcc with zero, one (word), or two (long) immediate
// extension words depending on ir's low 3 bits (2 = word, 3 = long;
// any other value, i.e. 4, takes no operand at all).
func (info *Info) buildTrapcc(cond Condition) {
	switch info.irReg0() & 7 {
	case 2:
		v := info.read16()
		info.initOp(TRAPcc, 1, Word)
		info.insn.Ext.Operands[0] = immOperand(uint64(v))
	case 3:
		v := info.read32()
		info.initOp(TRAPcc, 1, Long)
		info.insn.Ext.Operands[0] = immOperand(uint64(v))
	default:
		info.initOp(TRAPcc, 0, None)
	}
	info.insn.Cond = cond
	info.insn.addGroup(GroupJump)
}

// buildDDEA: two D registers drawn from an extension word's bits 2..0
// and 8..6, plus an EA from ir (the CAS Dc,Du,<ea> shape).
func (info *Info) buildDDEA(op Opcode, size Size) {
	ext := info.read16()
	ea := info.parseEA(info.irMode3(), info.irReg0(), size)
	info.initOp(op, 3, size)
	info.insn.Ext.Operands[0] = dataReg(uint8(ext & 7))
	info.insn.Ext.Operands[1] = dataReg(uint8((ext >> 6) & 7))
	info.insn.Ext.Operands[2] = ea
}

// buildBitfieldIns: bitfield EA + optional destination Dn. hasD selects
// whether a second (register) operand is present; BFINS additionally
// reverses operand order at the call site.
func (info *Info) buildBitfieldIns(op Opcode, hasD bool, reverseOrder bool) {
	ext := info.read16()

	var offset, width uint8
	var mem MemOperand
	if ext&0x0800 != 0 {
		mem.OffsetIsReg = true
		mem.OffsetReg = uint8((ext >> 6) & 7)
	} else {
		offset = uint8((ext >> 6) & 31)
		mem.Offset = offset
	}
	if ext&0x0020 != 0 {
		mem.WidthIsReg = true
		mem.WidthReg = uint8(ext & 7)
	} else {
		width = bitfieldWidth[ext&31]
		mem.Width = width
	}

	ea := info.parseEA(info.irMode3(), info.irReg0(), Byte)
	ea.Mem.Bitfield = true
	ea.Mem.Width = mem.Width
	ea.Mem.Offset = mem.Offset
	ea.Mem.WidthIsReg = mem.WidthIsReg
	ea.Mem.WidthReg = mem.WidthReg
	ea.Mem.OffsetIsReg = mem.OffsetIsReg
	ea.Mem.OffsetReg = mem.OffsetReg

	dReg := dataReg(uint8((ext >> 12) & 7))

	count := 1
	if hasD {
		count = 2
	}
	info.initOp(op, count, None)
	if !hasD {
		info.insn.Ext.Operands[0] = ea
		return
	}
	if reverseOrder { // BFINS: source Dn first, destination bitfield second
		info.insn.Ext.Operands[0] = dReg
		info.insn.Ext.Operands[1] = ea
	} else {
		info.insn.Ext.Operands[0] = ea
		info.insn.Ext.Operands[1] = dReg
	}
}

// buildD: single Dn operand (ir 2..0).
func (info *Info) buildD(op Opcode, size Size) {
	info.initOp(op, 1, size)
	info.insn.Ext.Operands[0] = dataReg(info.irReg0())
}

// reverseBits16 bit-reverses a 16-bit register mask, the architectural
// MOVEM predecrement peculiarity.
func reverseBits16(v uint16) uint16 {
	var r uint16
	for i := 0; i < 16; i++ {
		r <<= 1
		r |= v & 1
		v >>= 1
	}
	return r
}

// reverseBits8 is reverseBits16's 8-bit counterpart, used by FMOVEM's
// reversed-static-list form.
func reverseBits8(v uint8) uint8 {
	var r uint8
	for i := 0; i < 8; i++ {
		r <<= 1
		r |= v & 1
		v >>= 1
	}
	return r
}

// buildMovemRE: register-mask operand + EA destination; the mask is
// bit-reversed when the destination is predecrement.
func (info *Info) buildMovemRE(op Opcode, size Size) {
	mask := info.read16()
	ea := info.parseEA(info.irMode3(), info.irReg0(), size)
	if ea.AddressMode == AddrRegIndirectPreDec {
		mask = reverseBits16(mask)
	}
	info.initOp(op, 2, size)
	info.insn.Ext.Operands[0] = Operand{Type: OpTypeRegisterBits, RegisterBits: uint32(mask)}
	info.insn.Ext.Operands[1] = ea
}

// buildMovemER: EA source + register-mask destination (load direction).
func (info *Info) buildMovemER(op Opcode, size Size) {
	mask := info.read16()
	ea := info.parseEA(info.irMode3(), info.irReg0(), size)
	info.initOp(op, 2, size)
	info.insn.Ext.Operands[0] = ea
	info.insn.Ext.Operands[1] = Operand{Type: OpTypeRegisterBits, RegisterBits: uint32(mask)}
}

// buildImm: a single bare immediate operand (the Invalid payload).
func (info *Info) buildImm(op Opcode, data uint64) {
	info.initOp(op, 1, None)
	info.insn.Ext.Operands[0] = immOperand(data)
}

// readImmBySize fetches an immediate of the given integer size from the
// instruction stream, used by buildImmEA and the standalone immediate
// handlers.
func (info *Info) readImmBySize(size Size) uint64 {
	switch size {
	case Byte:
		return uint64(info.read16() & 0xFF)
	case Word:
		return uint64(info.read16())
	default:
		return uint64(info.read32())
	}
}

// emitInvalid marks the current instruction Invalid with ir as its sole
// immediate payload.
func (info *Info) emitInvalid(reason DecodeError) {
	if info.err == ErrNone {
		info.err = reason
	}
	info.buildImm(Invalid, uint64(info.ir))
}

// dyadicALUFamily builds the descriptor pair shared by ADD/SUB/AND/OR:
// a direction bit (ir bit 8: 0 = <ea>,Dn ; 1 = Dn,<ea>) crossed with the
// standard 2-bit size field (ir bits 7..6). base is the fixed high
// nibble (e.g. 0xD000 for ADD). srcEAMask selects which addressing
// categories are valid as the <ea>,Dn source per size (AND/OR never
// allow An-direct; ADD/SUB do for Word/Long) — pass the same mask three
// times when size makes no difference. Shared by ADD/SUB and, via the
// same shape, the logic family's AND/OR; EOR has its own rows.
func dyadicALUFamily(base uint16, toReg, toEA Opcode, srcEAMask [3]uint16) []opcodeDescriptor {
	var d []opcodeDescriptor
	sizes := [3]Size{Byte, Word, Long}
	for i, size := range sizes {
		szBits := uint16(i)
		size := size
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildER(toReg, size, false) },
			mask:    0xF1C0,
			match:   uint32(base) | uint32(szBits)<<6,
			eaMask:  srcEAMask[i],
		})
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildRE(toEA, size, false) },
			mask:    0xF1C0,
			match:   uint32(base) | 0x100 | uint32(szBits)<<6,
			eaMask:  eaMemoryAlterable,
		})
	}
	return d
}

// immEAFamily builds the ADDI/SUBI/ANDI/ORI/EORI/CMPI shape: sized
// immediate + data-alterable (or, for CMPI, data) EA, one row per size.
func immEAFamily(base uint16, op Opcode, eaMask uint16) []opcodeDescriptor {
	var d []opcodeDescriptor
	sizes := [3]Size{Byte, Word, Long}
	for i, size := range sizes {
		szBits := uint16(i)
		size := size
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildImmEA(op, size) },
			mask:    0xFFC0 | 0x00C0,
			match:   uint32(base) | uint32(szBits)<<6,
			eaMask:  eaMask,
		})
	}
	return d
}

// quickEAFamily builds the ADDQ/SUBQ shape: 3-bit quick immediate + EA,
// one row per size. ADDQ/SUBQ to An is always treated as Long with no
// flag effect at the architecture level, but that's a semantic detail
// outside the decoder's scope — the operand shape here is a plain EA
// write regardless.
func quickEAFamily(base uint16, op Opcode) []opcodeDescriptor {
	var d []opcodeDescriptor
	sizes := [3]Size{Byte, Word, Long}
	for i, size := range sizes {
		szBits := uint16(i)
		size := size
		eaMask := eaDataAlterable
		if size != Byte {
			eaMask = eaAlterable
		}
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.build3bitEA(op, size) },
			mask:    0xF1C0,
			match:   uint32(base) | uint32(szBits)<<6,
			eaMask:  eaMask,
		})
	}
	return d
}
