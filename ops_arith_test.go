package m68k

import "testing"

func decodeArith(t *testing.T, code []byte) Result {
	t.Helper()
	return NewDecoder(CPU68020).Decode(code, 0, 0)
}

func TestDecodeADDDataRegToDn(t *testing.T) {
	// ADD.W D0,D1 (Dn,Dn form, <ea>,Dn): 1101 001 001 000000.
	res := decode68000(t, encode(0xD240))
	if !res.Ok || res.Instruction.Opcode != ADD {
		t.Fatalf("ADD: got %+v", res)
	}
}

func TestDecodeCMPM(t *testing.T) {
	// CMPM.B (A0)+,(A1)+: 1011 001 1 00 001 000.
	res := decode68000(t, encode(0xB308))
	if !res.Ok || res.Instruction.Opcode != CMPM {
		t.Fatalf("CMPM: got %+v", res)
	}
}

func TestDecodeMulLSignedVsUnsigned(t *testing.T) {
	// MULU.L D2,D0: ext bit 11 clear.
	res := decodeArith(t, encode(0x4C02, 0x0000))
	if !res.Ok || res.Instruction.Opcode != MULU_L {
		t.Fatalf("MULU.L: got %+v", res)
	}

	// MULS.L D2,D0: ext bit 11 set.
	res = decodeArith(t, encode(0x4C02, 0x0800))
	if !res.Ok || res.Instruction.Opcode != MULS_L {
		t.Fatalf("MULS.L: got %+v", res)
	}
}

func TestDecodeMulL64BitResult(t *testing.T) {
	// MULU.L D2,D1:D0 — ext bit 10 set selects the 64-bit Dh:Dl form.
	res := decodeArith(t, encode(0x4C02, 0x1400))
	if !res.Ok || res.Instruction.Opcode != MULU_L {
		t.Fatalf("MULU.L 64-bit: got %+v", res)
	}
	if res.Instruction.Ext.OpCount != 3 {
		t.Fatalf("MULU.L 64-bit opcount = %d, want 3", res.Instruction.Ext.OpCount)
	}
}

func TestDecodeDivLSigned(t *testing.T) {
	// DIVS.L D2,D0: ext bit 11 set.
	res := decodeArith(t, encode(0x4C42, 0x0800))
	if !res.Ok || res.Instruction.Opcode != DIVS_L {
		t.Fatalf("DIVS.L: got %+v", res)
	}
}

func TestDecodeCHK2(t *testing.T) {
	// CHK2.B <ea>,D0 — extension word bit 11 set selects CHK2; bit 15
	// clear selects a data register.
	res := decodeArith(t, encode(0x00D0, 0x0800))
	if !res.Ok || res.Instruction.Opcode != CHK2 {
		t.Fatalf("CHK2: got %+v", res)
	}
}

func TestDecodeCHKLongRequires020(t *testing.T) {
	res := NewDecoder(CPU68000).Decode(encode(0x4100), 0, 0)
	if res.Instruction.Opcode != Invalid || res.Err != ErrCpuMismatch {
		t.Fatalf("CHK.L on 68000: got %+v", res)
	}
}
