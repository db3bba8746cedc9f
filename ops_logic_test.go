package m68k

import "testing"

func TestDecodeANDDnToEA(t *testing.T) {
	// AND.W D0,(A1): toEA form, 1100 000 1 01 010 001.
	res := decode68000(t, encode(0xC151))
	if !res.Ok || res.Instruction.Opcode != AND {
		t.Fatalf("AND: got %+v", res)
	}
}

func TestDecodeEORHasNoReverseForm(t *testing.T) {
	// EOR.W D1,D0: 1011 001 1 01 000000.
	res := decode68000(t, encode(0xB340))
	if !res.Ok || res.Instruction.Opcode != EOR {
		t.Fatalf("EOR: got %+v", res)
	}
}

func TestDecodeANDItoCCR(t *testing.T) {
	res := decode68000(t, encode(0x023C, 0x00FF))
	if !res.Ok || res.Instruction.Opcode != ANDItoCCR {
		t.Fatalf("ANDI to CCR: got %+v", res)
	}
	if res.Instruction.Ext.Operands[0].Imm != 0xFF {
		t.Fatalf("ANDI to CCR imm = %#x, want 0xff", res.Instruction.Ext.Operands[0].Imm)
	}
}

func TestDecodeORItoSR(t *testing.T) {
	res := decode68000(t, encode(0x007C, 0x0700))
	if !res.Ok || res.Instruction.Opcode != ORItoSR {
		t.Fatalf("ORI to SR: got %+v", res)
	}
	if res.Instruction.Ext.Operands[0].Imm != 0x0700 {
		t.Fatalf("ORI to SR imm = %#x, want 0x700", res.Instruction.Ext.Operands[0].Imm)
	}
}

func TestDecodeNOT(t *testing.T) {
	// NOT.L D0: 0100 0110 10 000000.
	res := decode68000(t, encode(0x4680))
	if !res.Ok || res.Instruction.Opcode != NOT {
		t.Fatalf("NOT: got %+v", res)
	}
}

func TestDecodeShiftImmediateCount(t *testing.T) {
	// ASL.W #3,D0: 1110 011 1 01 0 00 000, count field 3.
	res := decode68000(t, encode(0xE740))
	if !res.Ok || res.Instruction.Opcode != ASL {
		t.Fatalf("ASL: got %+v", res)
	}
	if res.Instruction.Ext.Operands[0].Imm != 3 {
		t.Fatalf("ASL count = %d, want 3", res.Instruction.Ext.Operands[0].Imm)
	}
}

func TestDecodeShiftMemoryImplicitCount(t *testing.T) {
	// ASR (A0): memory shift form, implicit count 1, word only.
	res := decode68000(t, encode(0xE0D0))
	if !res.Ok || res.Instruction.Opcode != ASR {
		t.Fatalf("ASR mem: got %+v", res)
	}
}
