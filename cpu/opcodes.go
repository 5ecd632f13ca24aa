package cpu

import "fmt"

// This file builds the 256-entry opcode dispatch table: for every
// documented 65C02 opcode, its mnemonic (for disassembly), addressing
// mode tag, base cycle count, page-cross penalty flag, and handler.
// Entries left zero-valued (handler == nil) fall through to Step's
// NOP-equivalent default, which is also the real chip's behavior for
// its remaining reserved opcodes.
//
// The table is built once at init() time as a static array, per the
// "static array of function pointers" design note: no registration
// decorator, no reflection, just data.

type handlerFunc func(c *Chip)

type opcodeEntry struct {
	mnemonic string
	mode     Mode
	cycles   uint8
	penalty  bool
	handler  handlerFunc
}

var opcodeTable [256]opcodeEntry

func set(op uint8, mnemonic string, mode Mode, cycles uint8, penalty bool, h handlerFunc) {
	opcodeTable[op] = opcodeEntry{mnemonic: mnemonic, mode: mode, cycles: cycles, penalty: penalty, handler: h}
}

// load composes an addressing-mode evaluator with an ALU read operation:
// resolve the effective address, read the operand, advance PC past it,
// then run the operation against the value. The resolved address and
// operand are recorded on the Chip's per-instruction scratch (opAddr,
// opVal) so a failed op or a debugger inspecting mid-Step state can see
// what the instruction actually touched, not just its side effects.
func load(mode Mode, af addrFunc, op func(c *Chip, val uint8)) handlerFunc {
	return func(c *Chip) {
		c.opAddr = af(c)
		c.opVal = c.mem.Read(c.opAddr)
		c.PC += uint16(mode.OperandSize())
		op(c, c.opVal)
	}
}

// rmw composes an addressing-mode evaluator with a read-modify-write
// ALU operation, writing the returned value back to the resolved address.
func rmw(mode Mode, af addrFunc, op func(c *Chip, val uint8) uint8) handlerFunc {
	return func(c *Chip) {
		c.opAddr = af(c)
		c.opVal = c.mem.Read(c.opAddr)
		c.PC += uint16(mode.OperandSize())
		c.opVal = op(c, c.opVal)
		c.mem.Write(c.opAddr, c.opVal)
	}
}

// store composes an addressing-mode evaluator with a value source,
// writing it to the resolved address.
func store(mode Mode, af addrFunc, get func(c *Chip) uint8) handlerFunc {
	return func(c *Chip) {
		c.opAddr = af(c)
		c.PC += uint16(mode.OperandSize())
		c.opVal = get(c)
		c.mem.Write(c.opAddr, c.opVal)
	}
}

// branch composes a relative-mode handler from a taken/not-taken predicate.
func branch(cond func(c *Chip) bool) handlerFunc {
	return func(c *Chip) {
		disp := c.mem.Read(c.PC)
		newPC := c.PC + 1
		if cond(c) {
			c.PC = c.branchTarget(disp, newPC)
			return
		}
		c.PC = newPC
	}
}

func getA(c *Chip) uint8 { return c.A }
func getX(c *Chip) uint8 { return c.X }
func getY(c *Chip) uint8 { return c.Y }
func getZero(c *Chip) uint8 { return 0 }

func opLDA(c *Chip, val uint8) { c.A = val; c.flagsNZ(c.A) }
func opLDX(c *Chip, val uint8) { c.X = val; c.flagsNZ(c.X) }
func opLDY(c *Chip, val uint8) { c.Y = val; c.flagsNZ(c.Y) }

func jmpAbs(c *Chip)  { c.PC = addrAbsolute(c) }
func jmpInd(c *Chip)  { c.PC = addrIndirect(c) }
func jmpIndX(c *Chip) { c.PC = addrIndirectAbsoluteX(c) }

// jsr pushes the address of the last byte of the instruction (the
// operand's high byte, i.e. PC+1 at entry) then jumps to the target.
func jsr(c *Chip) {
	target := addrAbsolute(c)
	c.pushWord(c.PC + 1)
	c.PC = target
}

// rts pops the return address and adds one, the inverse of jsr's push.
func rts(c *Chip) {
	c.PC = c.popWord() + 1
}

// rti pops flags then PC. The unused bit always reads 1 once observed.
func rti(c *Chip) {
	c.P = c.pop() | PUnused
	c.PC = c.popWord()
}

// brk pushes PC+1 (the byte after the BRK signature byte), pushes P
// with break+unused forced, sets break and interrupt-disable in the
// register, clears decimal (65C02-specific), and vectors through IRQVector.
func brk(c *Chip) {
	c.pushWord(c.PC + 1)
	c.push(c.P | PUnused | PBreak)
	c.P |= PInterrupt | PBreak
	c.P &^= PDecimal
	c.PC = readWord(c.mem, IRQVector)
}

// wai suspends instruction execution until the next Irq or Nmi.
func wai(c *Chip) { c.Waiting = true }

func nop(c *Chip) {}

func tax(c *Chip) { c.X = c.A; c.flagsNZ(c.X) }
func tay(c *Chip) { c.Y = c.A; c.flagsNZ(c.Y) }
func txa(c *Chip) { c.A = c.X; c.flagsNZ(c.A) }
func tya(c *Chip) { c.A = c.Y; c.flagsNZ(c.A) }
func tsx(c *Chip) { c.X = c.S; c.flagsNZ(c.X) }
func txs(c *Chip) { c.S = c.X }

func inxReg(c *Chip) { c.X++; c.flagsNZ(c.X) }
func inyReg(c *Chip) { c.Y++; c.flagsNZ(c.Y) }
func dexReg(c *Chip) { c.X--; c.flagsNZ(c.X) }
func deyReg(c *Chip) { c.Y--; c.flagsNZ(c.Y) }

func clc(c *Chip) { c.P &^= PCarry }
func sec(c *Chip) { c.P |= PCarry }
func cli(c *Chip) { c.P &^= PInterrupt }
func sei(c *Chip) { c.P |= PInterrupt }
func cld(c *Chip) { c.P &^= PDecimal }
func sed(c *Chip) { c.P |= PDecimal }
func clv(c *Chip) { c.P &^= POverflow }

func pha(c *Chip) { c.push(c.A) }
func phx(c *Chip) { c.push(c.X) }
func phy(c *Chip) { c.push(c.Y) }
func pla(c *Chip) { c.A = c.pop(); c.flagsNZ(c.A) }
func plx(c *Chip) { c.X = c.pop(); c.flagsNZ(c.X) }
func ply(c *Chip) { c.Y = c.pop(); c.flagsNZ(c.Y) }

// php pushes P with break and unused forced set, matching the documented 0x30 convention.
func php(c *Chip) { c.push(c.P | PUnused | PBreak) }

// plp pops P then forces bits 0x30 (break/unused) set in the register.
func plp(c *Chip) { c.P = c.pop() | PUnused | PBreak }

func init() {
	// BRK / NOP / flow control.
	set(0x00, "BRK", ModeImplied, 7, false, brk)
	set(0xEA, "NOP", ModeImplied, 2, false, nop)
	set(0x4C, "JMP", ModeAbsolute, 3, false, jmpAbs)
	set(0x6C, "JMP", ModeIndirect, 6, false, jmpInd)
	set(0x7C, "JMP", ModeIndirectAbsoluteX, 6, false, jmpIndX)
	set(0x20, "JSR", ModeAbsolute, 6, false, jsr)
	set(0x60, "RTS", ModeImplied, 6, false, rts)
	set(0x40, "RTI", ModeImplied, 6, false, rti)
	set(0xCB, "WAI", ModeImplied, 3, false, wai)

	// Branches (all relative, base 2 cycles + conditional extras added
	// inside branch()/branchTarget).
	set(0x10, "BPL", ModeRelative, 2, false, branch(func(c *Chip) bool { return c.P&PNegative == 0 }))
	set(0x30, "BMI", ModeRelative, 2, false, branch(func(c *Chip) bool { return c.P&PNegative != 0 }))
	set(0x50, "BVC", ModeRelative, 2, false, branch(func(c *Chip) bool { return c.P&POverflow == 0 }))
	set(0x70, "BVS", ModeRelative, 2, false, branch(func(c *Chip) bool { return c.P&POverflow != 0 }))
	set(0x90, "BCC", ModeRelative, 2, false, branch(func(c *Chip) bool { return c.P&PCarry == 0 }))
	set(0xB0, "BCS", ModeRelative, 2, false, branch(func(c *Chip) bool { return c.P&PCarry != 0 }))
	set(0xD0, "BNE", ModeRelative, 2, false, branch(func(c *Chip) bool { return c.P&PZero == 0 }))
	set(0xF0, "BEQ", ModeRelative, 2, false, branch(func(c *Chip) bool { return c.P&PZero != 0 }))
	set(0x80, "BRA", ModeRelative, 2, false, branch(func(c *Chip) bool { return true }))

	// Flag instructions.
	set(0x18, "CLC", ModeImplied, 2, false, clc)
	set(0x38, "SEC", ModeImplied, 2, false, sec)
	set(0x58, "CLI", ModeImplied, 2, false, cli)
	set(0x78, "SEI", ModeImplied, 2, false, sei)
	set(0xD8, "CLD", ModeImplied, 2, false, cld)
	set(0xF8, "SED", ModeImplied, 2, false, sed)
	set(0xB8, "CLV", ModeImplied, 2, false, clv)

	// Register transfers and increments.
	set(0xAA, "TAX", ModeImplied, 2, false, tax)
	set(0xA8, "TAY", ModeImplied, 2, false, tay)
	set(0x8A, "TXA", ModeImplied, 2, false, txa)
	set(0x98, "TYA", ModeImplied, 2, false, tya)
	set(0xBA, "TSX", ModeImplied, 2, false, tsx)
	set(0x9A, "TXS", ModeImplied, 2, false, txs)
	set(0xE8, "INX", ModeImplied, 2, false, inxReg)
	set(0xC8, "INY", ModeImplied, 2, false, inyReg)
	set(0xCA, "DEX", ModeImplied, 2, false, dexReg)
	set(0x88, "DEY", ModeImplied, 2, false, deyReg)

	// Stack instructions.
	set(0x48, "PHA", ModeImplied, 3, false, pha)
	set(0x68, "PLA", ModeImplied, 4, false, pla)
	set(0x08, "PHP", ModeImplied, 3, false, php)
	set(0x28, "PLP", ModeImplied, 4, false, plp)
	set(0xDA, "PHX", ModeImplied, 3, false, phx)
	set(0xFA, "PLX", ModeImplied, 4, false, plx)
	set(0x5A, "PHY", ModeImplied, 3, false, phy)
	set(0x7A, "PLY", ModeImplied, 4, false, ply)

	// ORA.
	set(0x09, "ORA", ModeImmediate, 2, false, load(ModeImmediate, addrImmediate, opORA))
	set(0x05, "ORA", ModeZeroPage, 3, false, load(ModeZeroPage, addrZP, opORA))
	set(0x15, "ORA", ModeZeroPageX, 4, false, load(ModeZeroPageX, addrZPX, opORA))
	set(0x0D, "ORA", ModeAbsolute, 4, false, load(ModeAbsolute, addrAbsolute, opORA))
	set(0x1D, "ORA", ModeAbsoluteX, 4, true, load(ModeAbsoluteX, addrAbsoluteX, opORA))
	set(0x19, "ORA", ModeAbsoluteY, 4, true, load(ModeAbsoluteY, addrAbsoluteY, opORA))
	set(0x01, "ORA", ModeIndirectX, 6, false, load(ModeIndirectX, addrIndirectX, opORA))
	set(0x11, "ORA", ModeIndirectY, 5, true, load(ModeIndirectY, addrIndirectY, opORA))
	set(0x12, "ORA", ModeZeroPageIndirect, 5, false, load(ModeZeroPageIndirect, addrZeroPageIndirect, opORA))

	// AND.
	set(0x29, "AND", ModeImmediate, 2, false, load(ModeImmediate, addrImmediate, opAND))
	set(0x25, "AND", ModeZeroPage, 3, false, load(ModeZeroPage, addrZP, opAND))
	set(0x35, "AND", ModeZeroPageX, 4, false, load(ModeZeroPageX, addrZPX, opAND))
	set(0x2D, "AND", ModeAbsolute, 4, false, load(ModeAbsolute, addrAbsolute, opAND))
	set(0x3D, "AND", ModeAbsoluteX, 4, true, load(ModeAbsoluteX, addrAbsoluteX, opAND))
	set(0x39, "AND", ModeAbsoluteY, 4, true, load(ModeAbsoluteY, addrAbsoluteY, opAND))
	set(0x21, "AND", ModeIndirectX, 6, false, load(ModeIndirectX, addrIndirectX, opAND))
	set(0x31, "AND", ModeIndirectY, 5, true, load(ModeIndirectY, addrIndirectY, opAND))
	set(0x32, "AND", ModeZeroPageIndirect, 5, false, load(ModeZeroPageIndirect, addrZeroPageIndirect, opAND))

	// EOR.
	set(0x49, "EOR", ModeImmediate, 2, false, load(ModeImmediate, addrImmediate, opEOR))
	set(0x45, "EOR", ModeZeroPage, 3, false, load(ModeZeroPage, addrZP, opEOR))
	set(0x55, "EOR", ModeZeroPageX, 4, false, load(ModeZeroPageX, addrZPX, opEOR))
	set(0x4D, "EOR", ModeAbsolute, 4, false, load(ModeAbsolute, addrAbsolute, opEOR))
	set(0x5D, "EOR", ModeAbsoluteX, 4, true, load(ModeAbsoluteX, addrAbsoluteX, opEOR))
	set(0x59, "EOR", ModeAbsoluteY, 4, true, load(ModeAbsoluteY, addrAbsoluteY, opEOR))
	set(0x41, "EOR", ModeIndirectX, 6, false, load(ModeIndirectX, addrIndirectX, opEOR))
	set(0x51, "EOR", ModeIndirectY, 5, true, load(ModeIndirectY, addrIndirectY, opEOR))
	set(0x52, "EOR", ModeZeroPageIndirect, 5, false, load(ModeZeroPageIndirect, addrZeroPageIndirect, opEOR))

	// ADC.
	set(0x69, "ADC", ModeImmediate, 2, false, load(ModeImmediate, addrImmediate, opADC))
	set(0x65, "ADC", ModeZeroPage, 3, false, load(ModeZeroPage, addrZP, opADC))
	set(0x75, "ADC", ModeZeroPageX, 4, false, load(ModeZeroPageX, addrZPX, opADC))
	set(0x6D, "ADC", ModeAbsolute, 4, false, load(ModeAbsolute, addrAbsolute, opADC))
	set(0x7D, "ADC", ModeAbsoluteX, 4, true, load(ModeAbsoluteX, addrAbsoluteX, opADC))
	set(0x79, "ADC", ModeAbsoluteY, 4, true, load(ModeAbsoluteY, addrAbsoluteY, opADC))
	set(0x61, "ADC", ModeIndirectX, 6, false, load(ModeIndirectX, addrIndirectX, opADC))
	set(0x71, "ADC", ModeIndirectY, 5, true, load(ModeIndirectY, addrIndirectY, opADC))
	set(0x72, "ADC", ModeZeroPageIndirect, 5, false, load(ModeZeroPageIndirect, addrZeroPageIndirect, opADC))

	// SBC.
	set(0xE9, "SBC", ModeImmediate, 2, false, load(ModeImmediate, addrImmediate, opSBC))
	set(0xE5, "SBC", ModeZeroPage, 3, false, load(ModeZeroPage, addrZP, opSBC))
	set(0xF5, "SBC", ModeZeroPageX, 4, false, load(ModeZeroPageX, addrZPX, opSBC))
	set(0xED, "SBC", ModeAbsolute, 4, false, load(ModeAbsolute, addrAbsolute, opSBC))
	set(0xFD, "SBC", ModeAbsoluteX, 4, true, load(ModeAbsoluteX, addrAbsoluteX, opSBC))
	set(0xF9, "SBC", ModeAbsoluteY, 4, true, load(ModeAbsoluteY, addrAbsoluteY, opSBC))
	set(0xE1, "SBC", ModeIndirectX, 6, false, load(ModeIndirectX, addrIndirectX, opSBC))
	set(0xF1, "SBC", ModeIndirectY, 5, true, load(ModeIndirectY, addrIndirectY, opSBC))
	set(0xF2, "SBC", ModeZeroPageIndirect, 5, false, load(ModeZeroPageIndirect, addrZeroPageIndirect, opSBC))

	// CMP.
	set(0xC9, "CMP", ModeImmediate, 2, false, load(ModeImmediate, addrImmediate, opCMP))
	set(0xC5, "CMP", ModeZeroPage, 3, false, load(ModeZeroPage, addrZP, opCMP))
	set(0xD5, "CMP", ModeZeroPageX, 4, false, load(ModeZeroPageX, addrZPX, opCMP))
	set(0xCD, "CMP", ModeAbsolute, 4, false, load(ModeAbsolute, addrAbsolute, opCMP))
	set(0xDD, "CMP", ModeAbsoluteX, 4, true, load(ModeAbsoluteX, addrAbsoluteX, opCMP))
	set(0xD9, "CMP", ModeAbsoluteY, 4, true, load(ModeAbsoluteY, addrAbsoluteY, opCMP))
	set(0xC1, "CMP", ModeIndirectX, 6, false, load(ModeIndirectX, addrIndirectX, opCMP))
	set(0xD1, "CMP", ModeIndirectY, 5, true, load(ModeIndirectY, addrIndirectY, opCMP))
	set(0xD2, "CMP", ModeZeroPageIndirect, 5, false, load(ModeZeroPageIndirect, addrZeroPageIndirect, opCMP))

	// CPX / CPY.
	set(0xE0, "CPX", ModeImmediate, 2, false, load(ModeImmediate, addrImmediate, opCPX))
	set(0xE4, "CPX", ModeZeroPage, 3, false, load(ModeZeroPage, addrZP, opCPX))
	set(0xEC, "CPX", ModeAbsolute, 4, false, load(ModeAbsolute, addrAbsolute, opCPX))
	set(0xC0, "CPY", ModeImmediate, 2, false, load(ModeImmediate, addrImmediate, opCPY))
	set(0xC4, "CPY", ModeZeroPage, 3, false, load(ModeZeroPage, addrZP, opCPY))
	set(0xCC, "CPY", ModeAbsolute, 4, false, load(ModeAbsolute, addrAbsolute, opCPY))

	// LDA / LDX / LDY.
	set(0xA9, "LDA", ModeImmediate, 2, false, load(ModeImmediate, addrImmediate, opLDA))
	set(0xA5, "LDA", ModeZeroPage, 3, false, load(ModeZeroPage, addrZP, opLDA))
	set(0xB5, "LDA", ModeZeroPageX, 4, false, load(ModeZeroPageX, addrZPX, opLDA))
	set(0xAD, "LDA", ModeAbsolute, 4, false, load(ModeAbsolute, addrAbsolute, opLDA))
	set(0xBD, "LDA", ModeAbsoluteX, 4, true, load(ModeAbsoluteX, addrAbsoluteX, opLDA))
	set(0xB9, "LDA", ModeAbsoluteY, 4, true, load(ModeAbsoluteY, addrAbsoluteY, opLDA))
	set(0xA1, "LDA", ModeIndirectX, 6, false, load(ModeIndirectX, addrIndirectX, opLDA))
	set(0xB1, "LDA", ModeIndirectY, 5, true, load(ModeIndirectY, addrIndirectY, opLDA))
	set(0xB2, "LDA", ModeZeroPageIndirect, 5, false, load(ModeZeroPageIndirect, addrZeroPageIndirect, opLDA))
	set(0xA2, "LDX", ModeImmediate, 2, false, load(ModeImmediate, addrImmediate, opLDX))
	set(0xA6, "LDX", ModeZeroPage, 3, false, load(ModeZeroPage, addrZP, opLDX))
	set(0xB6, "LDX", ModeZeroPageY, 4, false, load(ModeZeroPageY, addrZPY, opLDX))
	set(0xAE, "LDX", ModeAbsolute, 4, false, load(ModeAbsolute, addrAbsolute, opLDX))
	set(0xBE, "LDX", ModeAbsoluteY, 4, true, load(ModeAbsoluteY, addrAbsoluteY, opLDX))
	set(0xA0, "LDY", ModeImmediate, 2, false, load(ModeImmediate, addrImmediate, opLDY))
	set(0xA4, "LDY", ModeZeroPage, 3, false, load(ModeZeroPage, addrZP, opLDY))
	set(0xB4, "LDY", ModeZeroPageX, 4, false, load(ModeZeroPageX, addrZPX, opLDY))
	set(0xAC, "LDY", ModeAbsolute, 4, false, load(ModeAbsolute, addrAbsolute, opLDY))
	set(0xBC, "LDY", ModeAbsoluteX, 4, true, load(ModeAbsoluteX, addrAbsoluteX, opLDY))

	// STA / STX / STY / STZ.
	set(0x85, "STA", ModeZeroPage, 3, false, store(ModeZeroPage, addrZP, getA))
	set(0x95, "STA", ModeZeroPageX, 4, false, store(ModeZeroPageX, addrZPX, getA))
	set(0x8D, "STA", ModeAbsolute, 4, false, store(ModeAbsolute, addrAbsolute, getA))
	set(0x9D, "STA", ModeAbsoluteX, 5, false, store(ModeAbsoluteX, addrAbsoluteX, getA))
	set(0x99, "STA", ModeAbsoluteY, 5, false, store(ModeAbsoluteY, addrAbsoluteY, getA))
	set(0x81, "STA", ModeIndirectX, 6, false, store(ModeIndirectX, addrIndirectX, getA))
	set(0x91, "STA", ModeIndirectY, 6, false, store(ModeIndirectY, addrIndirectY, getA))
	set(0x92, "STA", ModeZeroPageIndirect, 5, false, store(ModeZeroPageIndirect, addrZeroPageIndirect, getA))
	set(0x86, "STX", ModeZeroPage, 3, false, store(ModeZeroPage, addrZP, getX))
	set(0x96, "STX", ModeZeroPageY, 4, false, store(ModeZeroPageY, addrZPY, getX))
	set(0x8E, "STX", ModeAbsolute, 4, false, store(ModeAbsolute, addrAbsolute, getX))
	set(0x84, "STY", ModeZeroPage, 3, false, store(ModeZeroPage, addrZP, getY))
	set(0x94, "STY", ModeZeroPageX, 4, false, store(ModeZeroPageX, addrZPX, getY))
	set(0x8C, "STY", ModeAbsolute, 4, false, store(ModeAbsolute, addrAbsolute, getY))
	set(0x64, "STZ", ModeZeroPage, 3, false, store(ModeZeroPage, addrZP, getZero))
	set(0x74, "STZ", ModeZeroPageX, 4, false, store(ModeZeroPageX, addrZPX, getZero))
	set(0x9C, "STZ", ModeAbsolute, 4, false, store(ModeAbsolute, addrAbsolute, getZero))
	set(0x9E, "STZ", ModeAbsoluteX, 5, false, store(ModeAbsoluteX, addrAbsoluteX, getZero))

	// Shifts / rotates, memory and accumulator forms.
	set(0x0A, "ASL", ModeAccumulator, 2, false, aslAcc)
	set(0x06, "ASL", ModeZeroPage, 5, false, rmw(ModeZeroPage, addrZP, opASL))
	set(0x16, "ASL", ModeZeroPageX, 6, false, rmw(ModeZeroPageX, addrZPX, opASL))
	set(0x0E, "ASL", ModeAbsolute, 6, false, rmw(ModeAbsolute, addrAbsolute, opASL))
	set(0x1E, "ASL", ModeAbsoluteX, 6, false, rmw(ModeAbsoluteX, addrAbsoluteX, opASL))
	set(0x4A, "LSR", ModeAccumulator, 2, false, lsrAcc)
	set(0x46, "LSR", ModeZeroPage, 5, false, rmw(ModeZeroPage, addrZP, opLSR))
	set(0x56, "LSR", ModeZeroPageX, 6, false, rmw(ModeZeroPageX, addrZPX, opLSR))
	set(0x4E, "LSR", ModeAbsolute, 6, false, rmw(ModeAbsolute, addrAbsolute, opLSR))
	set(0x5E, "LSR", ModeAbsoluteX, 6, false, rmw(ModeAbsoluteX, addrAbsoluteX, opLSR))
	set(0x2A, "ROL", ModeAccumulator, 2, false, rolAcc)
	set(0x26, "ROL", ModeZeroPage, 5, false, rmw(ModeZeroPage, addrZP, opROL))
	set(0x36, "ROL", ModeZeroPageX, 6, false, rmw(ModeZeroPageX, addrZPX, opROL))
	set(0x2E, "ROL", ModeAbsolute, 6, false, rmw(ModeAbsolute, addrAbsolute, opROL))
	set(0x3E, "ROL", ModeAbsoluteX, 6, false, rmw(ModeAbsoluteX, addrAbsoluteX, opROL))
	set(0x6A, "ROR", ModeAccumulator, 2, false, rorAcc)
	set(0x66, "ROR", ModeZeroPage, 5, false, rmw(ModeZeroPage, addrZP, opROR))
	set(0x76, "ROR", ModeZeroPageX, 6, false, rmw(ModeZeroPageX, addrZPX, opROR))
	set(0x6E, "ROR", ModeAbsolute, 6, false, rmw(ModeAbsolute, addrAbsolute, opROR))
	set(0x7E, "ROR", ModeAbsoluteX, 6, false, rmw(ModeAbsoluteX, addrAbsoluteX, opROR))

	// INC / DEC, memory and 65C02-added accumulator forms.
	set(0x1A, "INC", ModeAccumulator, 2, false, incAcc)
	set(0xE6, "INC", ModeZeroPage, 5, false, rmw(ModeZeroPage, addrZP, opINC))
	set(0xF6, "INC", ModeZeroPageX, 6, false, rmw(ModeZeroPageX, addrZPX, opINC))
	set(0xEE, "INC", ModeAbsolute, 6, false, rmw(ModeAbsolute, addrAbsolute, opINC))
	set(0xFE, "INC", ModeAbsoluteX, 6, false, rmw(ModeAbsoluteX, addrAbsoluteX, opINC))
	set(0x3A, "DEC", ModeAccumulator, 2, false, decAcc)
	set(0xC6, "DEC", ModeZeroPage, 5, false, rmw(ModeZeroPage, addrZP, opDEC))
	set(0xD6, "DEC", ModeZeroPageX, 6, false, rmw(ModeZeroPageX, addrZPX, opDEC))
	set(0xCE, "DEC", ModeAbsolute, 6, false, rmw(ModeAbsolute, addrAbsolute, opDEC))
	set(0xDE, "DEC", ModeAbsoluteX, 6, false, rmw(ModeAbsoluteX, addrAbsoluteX, opDEC))

	// BIT.
	set(0x89, "BIT", ModeImmediate, 2, false, load(ModeImmediate, addrImmediate, opBITImmediate))
	set(0x24, "BIT", ModeZeroPage, 3, false, load(ModeZeroPage, addrZP, opBIT))
	set(0x34, "BIT", ModeZeroPageX, 4, false, load(ModeZeroPageX, addrZPX, opBIT))
	set(0x2C, "BIT", ModeAbsolute, 4, false, load(ModeAbsolute, addrAbsolute, opBIT))
	set(0x3C, "BIT", ModeAbsoluteX, 4, true, load(ModeAbsoluteX, addrAbsoluteX, opBIT))

	// TSB / TRB.
	set(0x04, "TSB", ModeZeroPage, 5, false, rmw(ModeZeroPage, addrZP, opTSB))
	set(0x0C, "TSB", ModeAbsolute, 6, false, rmw(ModeAbsolute, addrAbsolute, opTSB))
	set(0x14, "TRB", ModeZeroPage, 5, false, rmw(ModeZeroPage, addrZP, opTRB))
	set(0x1C, "TRB", ModeAbsolute, 6, false, rmw(ModeAbsolute, addrAbsolute, opTRB))

	// RMB0-7 / SMB0-7: opcode byte's low nibble is always 7, high
	// nibble selects bit number 0-7 and clear (RMBn) vs set (SMBn).
	rmbOpcodes := [8]uint8{0x07, 0x17, 0x27, 0x37, 0x47, 0x57, 0x67, 0x77}
	smbOpcodes := [8]uint8{0x87, 0x97, 0xA7, 0xB7, 0xC7, 0xD7, 0xE7, 0xF7}
	for n := uint(0); n < 8; n++ {
		mnemonic := fmt.Sprintf("RMB%d", n)
		set(rmbOpcodes[n], mnemonic, ModeZeroPage, 5, false, rmw(ModeZeroPage, addrZP, rmb(n)))
		mnemonic = fmt.Sprintf("SMB%d", n)
		set(smbOpcodes[n], mnemonic, ModeZeroPage, 5, false, rmw(ModeZeroPage, addrZP, smb(n)))
	}
}
