package m68k

import "testing"

func TestDecodeSTOP(t *testing.T) {
	res := decode68000(t, encode(0x4E72, 0x2700))
	if !res.Ok || res.Instruction.Opcode != STOP {
		t.Fatalf("STOP: got %+v", res)
	}
	if res.Instruction.Ext.Operands[0].Imm != 0x2700 {
		t.Fatalf("STOP imm = %#x, want 0x2700", res.Instruction.Ext.Operands[0].Imm)
	}
}

func TestDecodeILLEGAL(t *testing.T) {
	res := decode68000(t, encode(0x4AFC))
	if !res.Ok || res.Instruction.Opcode != ILLEGAL {
		t.Fatalf("ILLEGAL: got %+v", res)
	}
}

func TestDecodeTRAP(t *testing.T) {
	res := decode68000(t, encode(0x4E4F)) // TRAP #15
	if !res.Ok || res.Instruction.Opcode != TRAP {
		t.Fatalf("TRAP: got %+v", res)
	}
	if res.Instruction.Ext.Operands[0].Imm != 15 {
		t.Fatalf("TRAP vector = %d, want 15", res.Instruction.Ext.Operands[0].Imm)
	}
}

func TestDecodeTRAPccShapes(t *testing.T) {
	// TRAPNE (no operand): 0101 0110 1111 1100.
	res := decode020(t, encode(0x56FC))
	if !res.Ok || res.Instruction.Opcode != TRAPcc {
		t.Fatalf("TRAPcc no-op: got %+v", res)
	}
	if res.Instruction.Cond != Condition(6) {
		t.Fatalf("TRAPcc cond = %d, want 6", res.Instruction.Cond)
	}

	// TRAPNE.W #imm16.
	res = decode020(t, encode(0x56FA, 0x1234))
	if !res.Ok || res.Instruction.Opcode != TRAPcc {
		t.Fatalf("TRAPcc word: got %+v", res)
	}
	if res.Instruction.Ext.Operands[0].Imm != 0x1234 {
		t.Fatalf("TRAPcc word imm = %#x, want 0x1234", res.Instruction.Ext.Operands[0].Imm)
	}
}

func TestDecodeTRAPccRequires020(t *testing.T) {
	res := NewDecoder(CPU68010).Decode(encode(0x56FC), 0, 0)
	if res.Instruction.Opcode != Invalid || res.Err != ErrCpuMismatch {
		t.Fatalf("TRAPcc on 68010: got %+v", res)
	}
}
