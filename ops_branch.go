package m68k

// branchDescriptors builds the opcode rows for the program-control
// family: Bcc/BRA/BSR, DBcc, Scc, JMP/JSR, RTS/RTD/RTE/RTR. RTD is
// 68010+; TRAPcc/TRAPV/TRAP/ILLEGAL's immediate cousins live in
// ops_ctrl.go.
func branchDescriptors() []opcodeDescriptor {
	var d []opcodeDescriptor

	// BRA: 0110 0000 DDDDDDDD.
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildBranchDisp(BRA, CondT) },
		mask:    0xFF00, match: 0x6000,
	})
	// BSR: 0110 0001 DDDDDDDD.
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildBranchDisp(BSR, CondF) },
		mask:    0xFF00, match: 0x6100,
	})
	// Bcc, cc = 2..15: 0110 CCCC DDDDDDDD.
	for cc := uint32(2); cc < 16; cc++ {
		cond := Condition(cc)
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildBranchDisp(Bcc, cond) },
			mask:    0xFF00, match: 0x6000 | cc<<8,
		})
	}

	// DBcc: 0101 CCCC 1100 1DDD + 16-bit word displacement.
	for cc := uint32(0); cc < 16; cc++ {
		cond := Condition(cc)
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildDbccInsn(cond) },
			mask:    0xFFF8, match: 0x50C8 | cc<<8,
		})
	}

	// Scc: 0101 CCCC 11ss ssss.
	for cc := uint32(0); cc < 16; cc++ {
		cond := Condition(cc)
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) { info.buildScc(Byte, cond) },
			mask:    0xFFC0, match: 0x50C0 | cc<<8, eaMask: eaDataAlterable,
		})
	}

	// JMP/JSR: 0100 1110 11/10 ssssss, control addressing modes only.
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildControlJump(JMP) },
		mask:    0xFFC0, match: 0x4EC0, eaMask: eaControl,
	})
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildControlJump(JSR) },
		mask:    0xFFC0, match: 0x4E80, eaMask: eaControl,
	})

	// RTS/RTE/RTR: no operands.
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildNoOperand(RTS, GroupRet) },
		mask:    0xFFFF, match: 0x4E75,
	})
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildNoOperand(RTE, GroupIRet) },
		mask:    0xFFFF, match: 0x4E73,
	})
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildNoOperand(RTR, GroupIRet) },
		mask:    0xFFFF, match: 0x4E77,
	})

	// RTD #imm16 — 68010+: 0100 1110 0111 0100.
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildRtd() },
		mask:    0xFFFF, match: 0x4E74, gate: cpu68010Plus,
	})

	return d
}

// branchBase returns the address a Bcc/BRA/BSR/DBcc displacement is
// relative to: the instruction's address plus 2, i.e. the address of
// the word immediately following the opcode, captured before any
// extension-word read advances info.pc.
func (info *Info) branchBase() uint32 {
	return info.pc
}

// buildBranchDisp resolves the 8/16/32-bit displacement shared by
// BRA/BSR/Bcc and hands the target to buildBxx. An all-zero low byte
// means a 16-bit extension word follows; 0xFF means a 32-bit extension
// word follows on 68020+ and decodes as Invalid (ErrCpuMismatch) on
// earlier CPUs.
func (info *Info) buildBranchDisp(op Opcode, cond Condition) {
	base := info.branchBase()
	lo := info.ir & 0xFF
	size := Byte

	var disp int32
	switch {
	case lo == 0xFF:
		if !info.gate(cpu68020Up) {
			info.emitInvalid(ErrCpuMismatch)
			return
		}
		disp = info.readSigned32()
		size = Long
	case lo == 0:
		disp = info.readSigned16()
		size = Word
	default:
		disp = signExtend8(uint8(lo))
	}

	info.buildBxx(op, size, int32(base)+disp, cond)
}

// buildDbccInsn reads the mandatory 16-bit word displacement and hands
// the target to buildDbxx.
func (info *Info) buildDbccInsn(cond Condition) {
	base := info.branchBase()
	disp := info.readSigned16()
	info.buildDbxx(DBcc, int32(base)+disp, cond)
}

// buildControlJump: single control-class EA operand, tagged GroupJump.
func (info *Info) buildControlJump(op Opcode) {
	info.initOp(op, 1, Long)
	info.insn.Ext.Operands[0] = info.parseEA(info.irMode3(), info.irReg0(), Long)
	info.insn.addGroup(GroupJump)
}

// buildNoOperand: zero-operand control instruction tagged with group g.
func (info *Info) buildNoOperand(op Opcode, g Group) {
	info.initOp(op, 0, None)
	info.insn.addGroup(g)
}

// buildRtd: RTD #imm16, tagged GroupRet like RTS.
func (info *Info) buildRtd() {
	imm := uint64(info.read16())
	info.initOp(RTD, 1, Word)
	info.insn.Ext.Operands[0] = immOperand(imm)
	info.insn.addGroup(GroupRet)
}
