package m68k

import "testing"

func TestDecodeBSR(t *testing.T) {
	res := decode68000(t, encode(0x6104)) // BSR.S *+6
	if !res.Ok || res.Instruction.Opcode != BSR {
		t.Fatalf("BSR: got %+v", res)
	}
	if res.Instruction.Ext.Operands[0].Imm != 6 {
		t.Fatalf("BSR target = %#x, want 6", res.Instruction.Ext.Operands[0].Imm)
	}
}

func TestDecodeBccCondition(t *testing.T) {
	// BNE.S *+4: cc=6 (NE).
	res := decode68000(t, encode(0x6602))
	if !res.Ok || res.Instruction.Opcode != Bcc {
		t.Fatalf("Bcc: got %+v", res)
	}
	if res.Instruction.Cond != Condition(6) {
		t.Fatalf("Bcc cond = %d, want 6", res.Instruction.Cond)
	}
}

func TestDecodeDBcc(t *testing.T) {
	// DBEQ D0,<disp>: cc=7 (EQ), reg=0.
	res := decode68000(t, encode(0x57C8, 0x0002))
	if !res.Ok || res.Instruction.Opcode != DBcc {
		t.Fatalf("DBcc: got %+v", res)
	}
	if res.Instruction.Cond != Condition(7) {
		t.Fatalf("DBcc cond = %d, want 7", res.Instruction.Cond)
	}
}

func TestDecodeScc(t *testing.T) {
	// SEQ D0: cc=7 (EQ), EA=D0.
	res := decode68000(t, encode(0x57C0))
	if !res.Ok || res.Instruction.Opcode != Scc {
		t.Fatalf("Scc: got %+v", res)
	}
	if res.Instruction.Cond != Condition(7) {
		t.Fatalf("Scc cond = %d, want 7", res.Instruction.Cond)
	}
}

func TestDecodeJSRControlOnly(t *testing.T) {
	res := decode68000(t, encode(0x4E90)) // JSR (A0)
	if !res.Ok || res.Instruction.Opcode != JSR {
		t.Fatalf("JSR: got %+v", res)
	}
	if res.Instruction.Groups[0] != GroupJump {
		t.Fatalf("JSR groups = %+v, want GroupJump", res.Instruction.Groups)
	}
}

func TestDecodeRTS(t *testing.T) {
	res := decode68000(t, encode(0x4E75))
	if !res.Ok || res.Instruction.Opcode != RTS {
		t.Fatalf("RTS: got %+v", res)
	}
}

func TestDecodeRTDRequires010(t *testing.T) {
	res := NewDecoder(CPU68000).Decode(encode(0x4E74, 0x0008), 0, 0)
	if res.Instruction.Opcode != Invalid || res.Err != ErrCpuMismatch {
		t.Fatalf("RTD on 68000: got %+v", res)
	}
	res = NewDecoder(CPU68010).Decode(encode(0x4E74, 0x0008), 0, 0)
	if !res.Ok || res.Instruction.Opcode != RTD {
		t.Fatalf("RTD on 68010: got %+v", res)
	}
	if res.Instruction.Ext.Operands[0].Imm != 8 {
		t.Fatalf("RTD imm = %d, want 8", res.Instruction.Ext.Operands[0].Imm)
	}
}
