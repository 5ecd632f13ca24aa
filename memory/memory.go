// Package memory defines the flat byte-addressable memory the 65C02
// core borrows during a step. Unlike a full system memory map there is
// no bank switching and no parent/child chaining for shared databus
// state here — the core only ever sees one flat 64 KiB address space,
// per the "dumb byte array at this layer" boundary the CPU core is
// specified against.
package memory

import "fmt"

// Bank is the interface the CPU core requires of its memory.
type Bank interface {
	// Read returns the data byte stored at addr.
	Read(addr uint16) uint8
	// Write updates addr with the new value. The CPU does not
	// distinguish RAM from ROM; every address is writable.
	Write(addr uint16, val uint8)
	// PowerOn resets the bank to its initial state (all zeros).
	PowerOn()
}

// ram implements Bank as a single contiguous 64 KiB array.
type ram struct {
	mem [1 << 16]uint8
}

// New8BitRAMBank returns a Bank backed by a zeroed 64 KiB array. It
// always covers the full 16-bit address space; there is no smaller
// aliasing variant.
func New8BitRAMBank() Bank {
	return &ram{}
}

// Read implements Bank.
func (r *ram) Read(addr uint16) uint8 {
	return r.mem[addr]
}

// Write implements Bank.
func (r *ram) Write(addr uint16, val uint8) {
	r.mem[addr] = val
}

// PowerOn implements Bank, clearing the array to all zeros. The real
// chip's RAM contents are undefined on power-on; this emulator commits
// to zero rather than randomizing so runs are reproducible.
func (r *ram) PowerOn() {
	for i := range r.mem {
		r.mem[i] = 0
	}
}

// Load bulk-writes b into m starting at offset, for program loading.
// It is an error for the data to run past the top of the 64 KiB
// address space.
func Load(m Bank, offset uint16, b []uint8) error {
	if int(offset)+len(b) > 1<<16 {
		return fmt.Errorf("load of %d bytes at offset 0x%04X overruns 64K address space", len(b), offset)
	}
	for i, v := range b {
		m.Write(offset+uint16(i), v)
	}
	return nil
}
