package m68k

// bitDescriptors builds the opcode rows for BTST/BCHG/BCLR/BSET, each in
// its dynamic (bit number in Dn) and static (bit number in an extension
// word) form.
//
// Quirk: the destination size is reported as Long when the destination
// is Dn and Byte otherwise — the operand's actual addressed width
// varies with destination, not with any size field in the opcode word,
// since there is none. The one exception is BTST's dynamic (Dn bit
// number) form, which reports Long for every destination.
func bitDescriptors() []opcodeDescriptor {
	var d []opcodeDescriptor

	for _, row := range []struct {
		op          Opcode
		dynMatch    uint16
		staticMatch uint16
	}{
		{BTST, 0x0100, 0x0800},
		{BCHG, 0x0140, 0x0840},
		{BCLR, 0x0180, 0x0880},
		{BSET, 0x01C0, 0x08C0},
	} {
		row := row
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildBitDyn(row.op) },
			mask:    0xF1C0,
			match:   uint32(row.dynMatch),
			eaMask:  eaDataAlterable,
		})
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildBitStatic(row.op) },
			mask:    0xFFC0,
			match:   uint32(row.staticMatch),
			eaMask:  eaDataAlterable,
		})
	}

	return d
}

// buildBitDyn: bit-number source is Dn (ir bits 11..9), destination EA
// follows in ir bits 5..0.
func (info *Info) buildBitDyn(op Opcode) {
	bitNumReg := dataReg(info.irReg9())
	ea := info.parseEA(info.irMode3(), info.irReg0(), Byte)
	size := bitDestSize(ea)
	if op == BTST {
		size = Long
	}
	info.initOp(op, 2, size)
	info.insn.Ext.Operands[0] = bitNumReg
	info.insn.Ext.Operands[1] = ea
}

// buildBitStatic: bit-number source is an immediate extension word,
// destination EA follows.
func (info *Info) buildBitStatic(op Opcode) {
	imm := uint64(info.read16() & 0xFF)
	ea := info.parseEA(info.irMode3(), info.irReg0(), Byte)
	info.initOp(op, 2, bitDestSize(ea))
	info.insn.Ext.Operands[0] = immOperand(imm)
	info.insn.Ext.Operands[1] = ea
}

// bitDestSize reports the nominal operand size for a bit instruction's
// destination: Long when Dn-direct, Byte for every memory form.
func bitDestSize(ea Operand) Size {
	if ea.AddressMode == AddrRegDirectData {
		return Long
	}
	return Byte
}
