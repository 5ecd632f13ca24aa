// Package irq defines the interface an external IRQ or NMI source
// implements so a run loop can poll it between CPU steps without coupling
// the core to whatever peripheral is raising the line. The core itself
// never calls Raised(); that's left to whatever owns the surrounding
// emulator's run loop, which decides when to call Chip.Irq/Chip.Nmi.
//
// NOTE: real hardware distinguishes level-triggered (IRQ) from
// edge-triggered (NMI) interrupts; that distinction isn't modeled here
// since Chip.Irq/Chip.Nmi are single-shot calls and it's up to the
// caller to only invoke Nmi once per edge.
package irq

// Sender defines the interface for an interrupt source.
type Sender interface {
	// Raised indicates whether the interrupt is currently held high.
	Raised() bool
}
