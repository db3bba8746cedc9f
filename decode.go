package m68k

// Decoder is the public entry point into the core. It carries no state
// beyond the CPU variant selector — every field a decode needs beyond
// that lives in the per-call Info, allocated fresh for each Decode.
type Decoder struct {
	CPU CPUType
}

// NewDecoder returns a Decoder targeting the given CPU variant.
func NewDecoder(cpu CPUType) Decoder {
	return Decoder{CPU: cpu}
}

// Result is everything Decode reports back to the caller: the decoded
// Instruction, the number of bytes consumed, and a typed error tag.
type Result struct {
	Instruction Instruction
	Consumed    int
	Err         DecodeError
	Ok          bool
}

// Decode decodes a single instruction starting at pc within code, whose
// first byte is located at baseAddress. It never panics and never
// returns a Go error; every failure mode collapses to an Invalid
// Instruction.
//
// The driver peeks the opcode word, validates the second word, commits
// the read, then dispatches.
func (d Decoder) Decode(code []byte, baseAddress, pc uint32) Result {
	ensureDispatchTable()

	info := &Info{
		code:        code,
		codeLen:     uint32(len(code)),
		baseAddress: baseAddress,
		pc:          pc,
		addressMask: d.CPU.addressMask(),
		cpuType:     d.CPU,
	}

	insn := &Instruction{}
	insn.reset()
	info.insn = insn

	// Step 2: peek the opcode word.
	ir := info.peek16(pc)
	entry := dispatchTable[ir]

	// Step 3: peek the word that would follow and validate it against
	// the dispatch entry's second-word mask/match before committing.
	if entry.mask2 != 0 {
		next := info.peek16(pc + 2)
		if uint32(next)&entry.mask2 != entry.match2 {
			info.ir = ir
			info.emitInvalid(ErrBadSecondWord)
			return info.result(pc)
		}
	}

	// Step 4: commit the read of ir, then dispatch.
	info.ir = ir
	info.pc = pc + 2
	entry.handler(info)

	return info.result(pc)
}

// result computes the consumed byte count (always even, at least 2,
// clamped to the input length) and the success flag (false only when
// zero bytes could be consumed, i.e. an empty input buffer).
func (info *Info) result(start uint32) Result {
	consumed := info.pc - start
	if consumed < 2 {
		consumed = 2
	}
	if info.codeLen == 0 {
		return Result{Instruction: *info.insn, Consumed: 0, Err: ErrTruncated, Ok: false}
	}
	if consumed > info.codeLen {
		consumed = info.codeLen
		// Clamping to an odd length would break the always-even
		// invariant; the buffer itself must be even-sized for a 68k
		// instruction stream, but guard defensively.
		consumed &^= 1
		if consumed < 2 {
			consumed = 2
		}
	}
	return Result{Instruction: *info.insn, Consumed: int(consumed), Err: info.err, Ok: true}
}
