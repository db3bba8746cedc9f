package m68k

// logicDescriptors builds the opcode rows for bitwise-logic mnemonics:
// AND/ANDI/ANDI-to-CCR/SR, OR/ORI/ORI-to-CCR/SR, EOR/EORI/EORI-to-CCR/SR,
// NOT, and the shift/rotate family (ASL/ASR/LSL/LSR/ROL/ROR/ROXL/ROXR).
func logicDescriptors() []opcodeDescriptor {
	var d []opcodeDescriptor

	d = append(d, dyadicALUFamily(0xC000, AND, AND, [3]uint16{eaData, eaData, eaData})...)
	d = append(d, dyadicALUFamily(0x8000, OR, OR, [3]uint16{eaData, eaData, eaData})...)

	// EOR Dn,<ea> only — EOR has no "<ea>,Dn" reverse form (that space is
	// CMP's). 1011 DDD 1SS eee eee, data-alterable destination.
	for i, size := range [3]Size{Byte, Word, Long} {
		szBits := uint32(i)
		size := size
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildRE(EOR, size, false) },
			mask:    0xF1C0,
			match:   0xB100 | szBits<<6,
			eaMask:  eaDataAlterable,
		})
	}

	d = append(d, immEAFamily(0x0200, ANDI, eaDataAlterable)...)
	d = append(d, immEAFamily(0x0000, ORI, eaDataAlterable)...)
	d = append(d, immEAFamily(0x0A00, EORI, eaDataAlterable)...)

	// ANDI/ORI/EORI to CCR (byte immediate) and SR (word immediate):
	// the EA field is forced to 0x3C (#imm, architecturally the marker
	// for "this is the CCR/SR form, not a plain immediate-to-memory op").
	for _, row := range []struct {
		op    Opcode
		match uint16
		reg   specialReg
	}{
		{ANDItoCCR, 0x023C, RegCCR}, {ANDItoSR, 0x027C, RegSR},
		{ORItoCCR, 0x003C, RegCCR}, {ORItoSR, 0x007C, RegSR},
		{EORItoCCR, 0x0A3C, RegCCR}, {EORItoSR, 0x0A7C, RegSR},
	} {
		row := row
		isWord := row.match&0x40 != 0
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) {
				size := Byte
				if isWord {
					size = Word
				}
				imm := info.readImmBySize(size)
				info.buildImmSpecialReg(row.op, imm, row.reg)
			},
			mask:  0xFFFF,
			match: uint32(row.match),
		})
	}

	// NOT <ea>: 0100 0110 SSmm mrrr.
	for i, size := range [3]Size{Byte, Word, Long} {
		szBits := uint32(i)
		size := size
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildEA(NOT, size) },
			mask:    0xFFC0 | 0x00C0, match: 0x4600 | szBits<<6, eaMask: eaDataAlterable,
		})
	}

	d = append(d, shiftDescriptors()...)

	return d
}

// shiftOpFor maps (typ, dir) to the mnemonic: typ 0=arithmetic,
// 1=logical, 2=rotate-through-extend, 3=rotate; dir 0=right, 1=left.
var shiftOpFor = [4][2]Opcode{
	{ASR, ASL},
	{LSR, LSL},
	{ROXR, ROXL},
	{ROR, ROL},
}

// shiftDescriptors builds the register/immediate-count and memory
// (word, count-1) shift forms.
func shiftDescriptors() []opcodeDescriptor {
	var d []opcodeDescriptor

	for typ := uint32(0); typ < 4; typ++ {
		for dir := uint32(0); dir < 2; dir++ {
			typ, dir := typ, dir
			op := shiftOpFor[typ][dir]

			// Immediate count (ir bit 5 = 0): 1110 CCC D SS 0 TT RRR.
			for i, size := range [3]Size{Byte, Word, Long} {
				szBits := uint32(i)
				size := size
				d = append(d, opcodeDescriptor{
					handler: func(info *Info) { info.buildShiftImm(op, size) },
					mask:    0xF1F8 | 0x0020,
					match:   0xE000 | dir<<8 | szBits<<6 | typ<<3,
				})
			}

			// Register count (ir bit 5 = 1): 1110 CCC D SS 1 TT RRR.
			for i, size := range [3]Size{Byte, Word, Long} {
				szBits := uint32(i)
				size := size
				d = append(d, opcodeDescriptor{
					handler: func(info *Info) { info.buildShiftReg(op, size) },
					mask:    0xF1F8 | 0x0020,
					match:   0xE020 | dir<<8 | szBits<<6 | typ<<3,
				})
			}

			// Memory form (word only, implicit count 1): 1110 0TT D 11 eee eee.
			d = append(d, opcodeDescriptor{
				handler: func(info *Info) { info.buildShiftMem(op) },
				mask:    0xFFC0,
				match:   0xE0C0 | dir<<8 | typ<<9,
				eaMask:  eaMemoryAlterable,
			})
		}
	}

	return d
}

// buildShiftImm: 3-bit immediate shift count (0 encodes 8) + Dn.
func (info *Info) buildShiftImm(op Opcode, size Size) {
	info.initOp(op, 2, size)
	info.insn.Ext.Operands[0] = immOperand(quick3Data[info.irReg9()])
	info.insn.Ext.Operands[1] = dataReg(info.irReg0())
}

// buildShiftReg: count register + Dn.
func (info *Info) buildShiftReg(op Opcode, size Size) {
	info.initOp(op, 2, size)
	info.insn.Ext.Operands[0] = dataReg(info.irReg9())
	info.insn.Ext.Operands[1] = dataReg(info.irReg0())
}

// buildShiftMem: single word EA, implicit shift count of 1.
func (info *Info) buildShiftMem(op Opcode) {
	info.buildEA(op, Word)
}
