package m68k

// ctrlDescriptors builds the opcode rows for the remaining
// zero/one-operand privileged and trap instructions: NOP, STOP, RESET,
// TRAP, TRAPV, TRAPcc, and ILLEGAL. MOVE to CCR, MOVE to/from SR and
// MOVE to/from USP moved to ops_move.go and the ANDI/ORI/EORI-to-CCR/SR immediates moved to
// ops_logic.go, since both are shape variants of families already
// built there. TRAPcc is 68020+ only.
func ctrlDescriptors() []opcodeDescriptor {
	var d []opcodeDescriptor

	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildNoOperand(NOP, GroupNone) },
		mask:    0xFFFF, match: 0x4E71,
	})
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildImmWordOp(STOP) },
		mask:    0xFFFF, match: 0x4E72,
	})
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildNoOperand(RESET, GroupNone) },
		mask:    0xFFFF, match: 0x4E70,
	})
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildNoOperand(TRAPV, GroupJump) },
		mask:    0xFFFF, match: 0x4E76,
	})
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildNoOperand(ILLEGAL, GroupNone) },
		mask:    0xFFFF, match: 0x4AFC,
	})

	// TRAP #vector: 0100 1110 0100 VVVV.
	d = append(d, opcodeDescriptor{
		handler: func(info *Info) { info.buildTrap() },
		mask:    0xFFF0, match: 0x4E40,
	})

	// TRAPcc, no/word/long operand — 68020+: 0101 CCCC 1111 1xxx, cc free.
	for _, shape := range []uint16{0x50FC, 0x50FA, 0x50FB} {
		shape := shape
		d = append(d, opcodeDescriptor{
			handler: func(info *Info) {
				cond := Condition((info.ir >> 8) & 0xF)
				info.buildTrapcc(cond)
			},
			mask: 0xF0FF, match: uint32(shape), gate: cpu68020Up,
		})
	}

	return d
}

// buildImmWordOp: STOP #imm16, no group tag.
func (info *Info) buildImmWordOp(op Opcode) {
	imm := uint64(info.read16())
	info.initOp(op, 1, Word)
	info.insn.Ext.Operands[0] = immOperand(imm)
}

// buildTrap: TRAP #vector (0-15), tagged GroupJump like TRAPcc.
func (info *Info) buildTrap() {
	info.initOp(TRAP, 1, Byte)
	info.insn.Ext.Operands[0] = immOperand(uint64(info.ir & 0xF))
	info.insn.addGroup(GroupJump)
}
