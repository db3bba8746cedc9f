package m68k

// bcdDescriptors builds the opcode rows for the packed-BCD family: ABCD,
// SBCD, NBCD, and the 68020+ PACK/UNPK conversions.
func bcdDescriptors() []opcodeDescriptor {
	var d []opcodeDescriptor

	// ABCD/SBCD Dy,Dx and -(Ay),-(Ax): 1100/1000 XXX1 0000 0/1 YYY.
	for _, row := range []struct {
		op      Opcode
		regBase uint16
		memBase uint16
	}{
		{ABCD, 0xC100, 0xC108},
		{SBCD, 0x8100, 0x8108},
	} {
		row := row
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildRR(row.op, Byte) },
			mask:    0xF1F8, match: uint32(row.regBase),
		})
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildMM(row.op, Byte, false) },
			mask:    0xF1F8, match: uint32(row.memBase),
		})
	}

	// NBCD <ea>: 0100 1000 00mm mrrr.
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildEA(NBCD, Byte) },
		mask:    0xFFC0, match: 0x4800, eaMask: eaDataAlterable,
	})

	// PACK/UNPK Dy,Dx / -(Ay),-(Ax), each followed by a 16-bit adjustment
	// word — 68020+: 1000/1000 XXX1 0100/1000 0/1 YYY + #adj.
	for _, row := range []struct {
		op      Opcode
		regBase uint16
		memBase uint16
	}{
		{PACK, 0x8140, 0x8148},
		{UNPK, 0x8180, 0x8188},
	} {
		row := row
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildPackUnpk(row.op, false) },
			mask:    0xF1F8, match: uint32(row.regBase), gate: cpu68020Up,
		})
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildPackUnpk(row.op, true) },
			mask:    0xF1F8, match: uint32(row.memBase), gate: cpu68020Up,
		})
	}

	return d
}

// buildPackUnpk builds the PACK/UNPK reg-reg or mem-mem shape plus the
// trailing 16-bit adjustment immediate operand.
func (info *Info) buildPackUnpk(op Opcode, mem bool) {
	if mem {
		info.buildMM(op, 0, false)
	} else {
		info.buildRR(op, 0)
	}
	adj := uint64(info.read16())
	info.insn.Ext.OpCount = 3
	info.insn.Ext.Operands[2] = immOperand(adj)
}
