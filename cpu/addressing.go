package cpu

// Mode tags an opcode's addressing mode, used both to size its operand
// and (via disassemble) to format it.
type Mode int

const (
	ModeImplied Mode = iota
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirect
	ModeIndirectX
	ModeIndirectY
	ModeZeroPageIndirect
	ModeIndirectAbsoluteX
	ModeRelative
)

// OperandSize is the number of operand bytes following the opcode byte
// for mode. The disassembler uses it to size instructions, and the
// load/rmw/store handlers in opcodes.go use it to advance PC past the
// operand, since the addressing-mode evaluators below never move PC.
func (m Mode) OperandSize() uint8 {
	switch m {
	case ModeImplied, ModeAccumulator:
		return 0
	case ModeImmediate, ModeZeroPage, ModeZeroPageX, ModeZeroPageY,
		ModeIndirectX, ModeIndirectY, ModeZeroPageIndirect, ModeRelative:
		return 1
	case ModeAbsolute, ModeAbsoluteX, ModeAbsoluteY, ModeIndirect, ModeIndirectAbsoluteX:
		return 2
	}
	return 0
}

// String names the mode the way the disassembler tags it.
func (m Mode) String() string {
	switch m {
	case ModeImplied:
		return "imp"
	case ModeAccumulator:
		return "acc"
	case ModeImmediate:
		return "imm"
	case ModeZeroPage:
		return "zpg"
	case ModeZeroPageX:
		return "zpx"
	case ModeZeroPageY:
		return "zpy"
	case ModeAbsolute:
		return "abs"
	case ModeAbsoluteX:
		return "abx"
	case ModeAbsoluteY:
		return "aby"
	case ModeIndirect:
		return "ind"
	case ModeIndirectX:
		return "inx"
	case ModeIndirectY:
		return "iny"
	case ModeZeroPageIndirect:
		return "zpi"
	case ModeIndirectAbsoluteX:
		return "iax"
	case ModeRelative:
		return "rel"
	}
	return "???"
}

// pageCross reports whether a and b fall in different 256-byte pages.
func pageCross(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// addrFunc resolves an opcode's effective address from the current PC
// (which is positioned at the first operand byte). It never advances
// PC itself — that's done by the caller once the operand size for the
// mode is known. It may add to extraCycles on a page-cross if addCycles
// is set for the current opcode.
type addrFunc func(c *Chip) uint16

// addrImmediate treats the operand byte's own address as the effective
// address, so reading through it yields the immediate value directly.
func addrImmediate(c *Chip) uint16 {
	return c.PC
}

// addrZP implements zpg: the operand byte is the zero-page address.
func addrZP(c *Chip) uint16 {
	return uint16(c.mem.Read(c.PC))
}

// addrZPX implements zpx: (operand + X) & 0xFF, wrapping within the zero page.
func addrZPX(c *Chip) uint16 {
	return uint16((c.mem.Read(c.PC) + c.X) & 0xFF)
}

// addrZPY implements zpy: (operand + Y) & 0xFF, wrapping within the zero page.
func addrZPY(c *Chip) uint16 {
	return uint16((c.mem.Read(c.PC) + c.Y) & 0xFF)
}

// addrAbsolute implements abs: the 16-bit word at PC.
func addrAbsolute(c *Chip) uint16 {
	return readWord(c.mem, c.PC)
}

// addrAbsoluteX implements abx: abs + X, mod 2^16, with a page-cross penalty.
func addrAbsoluteX(c *Chip) uint16 {
	base := readWord(c.mem, c.PC)
	addr := base + uint16(c.X)
	if c.addCycles && pageCross(base, addr) {
		c.extraCycles++
	}
	return addr
}

// addrAbsoluteY implements aby: abs + Y, mod 2^16, with a page-cross penalty.
func addrAbsoluteY(c *Chip) uint16 {
	base := readWord(c.mem, c.PC)
	addr := base + uint16(c.Y)
	if c.addCycles && pageCross(base, addr) {
		c.extraCycles++
	}
	return addr
}

// addrIndirect implements ind: read_word(read_word(pc)). The 65C02
// fixes the NMOS page-wrap bug in the outer fetch by using full 16-bit
// address arithmetic throughout (readWord, never the zero-page-wrapping
// variant) for both the pointer fetch and its dereference.
func addrIndirect(c *Chip) uint16 {
	ptr := readWord(c.mem, c.PC)
	return readWord(c.mem, ptr)
}

// addrIndirectX implements inx: read_word_zp_wrap((operand + X) & 0xFF).
func addrIndirectX(c *Chip) uint16 {
	zp := uint16((c.mem.Read(c.PC) + c.X) & 0xFF)
	return readWordZPWrap(c.mem, zp)
}

// addrIndirectY implements iny: read_word_zp_wrap(operand) + Y, mod
// 2^16, with a page-cross penalty.
func addrIndirectY(c *Chip) uint16 {
	zp := uint16(c.mem.Read(c.PC))
	base := readWordZPWrap(c.mem, zp)
	addr := base + uint16(c.Y)
	if c.addCycles && pageCross(base, addr) {
		c.extraCycles++
	}
	return addr
}

// addrZeroPageIndirect implements zpi (65C02-only): read_word_zp_wrap(operand).
func addrZeroPageIndirect(c *Chip) uint16 {
	zp := uint16(c.mem.Read(c.PC))
	return readWordZPWrap(c.mem, zp)
}

// addrIndirectAbsoluteX implements iax: read_word((read_word(pc) + X) &
// 0xFFFF). Used only by JMP (abs,X).
func addrIndirectAbsoluteX(c *Chip) uint16 {
	ptr := readWord(c.mem, c.PC) + uint16(c.X)
	return readWord(c.mem, ptr)
}

// branchTarget computes the target PC for a relative-mode branch,
// given PC already advanced past the displacement operand byte, and
// accounts for the +1 (taken) / +1 (page-crossed) extra cycles.
func (c *Chip) branchTarget(disp uint8, newPC uint16) uint16 {
	target := newPC + uint16(int16(int8(disp)))
	c.extraCycles++
	if pageCross(newPC, target) {
		c.extraCycles++
	}
	return target
}
