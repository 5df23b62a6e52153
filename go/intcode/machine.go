// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package intcode

import "io"

//go:generate mockgen -source machine.go -destination machine_mock.go -package intcode

// Machine is the interface of an Intcode machine as consumed by puzzle code
// and composition adapters.
//
// A machine is created from a program and keeps a snapshot of its initial
// state. Run executes instructions until the program halts or an input
// instruction finds no input available. In the latter case the machine is
// suspended without consuming the input instruction; after more input was
// provided, Run resumes at that same instruction.
//
// Machines are not safe for concurrent use. Distinct machines share no state.
type Machine interface {
	// Get reads the memory cell at the given address. Memory grows on
	// demand; cells never written read as zero.
	Get(address int) (Word, error)
	// Set writes the memory cell at the given address.
	Set(address int, value Word) error

	// SendInput appends values to the input queue. It does not resume
	// execution; Run needs to be called for that.
	SendInput(values ...Word)
	// QueueInput appends a source of input values to the input queue.
	QueueInput(source InputSource)
	// OnOutput registers the sink receiving output values, replacing any
	// previously registered sink. A nil sink discards outputs.
	OnOutput(sink Sink)

	// Run executes the program until it halts or waits for input. Errors
	// reported by the program's sink or caused by a malformed program are
	// returned. Calling Run on a halted machine has no effect.
	Run() error
	// Reset restores the memory, cursor, relative base, and input queue to
	// their state at construction time. The output sink is retained.
	Reset()

	Status() Status
	// IsDone reports whether the program has halted.
	IsDone() bool
	// IsWaitingForInput reports whether the machine is suspended waiting
	// for input.
	IsWaitingForInput() bool

	// Cursor returns the address of the next instruction.
	Cursor() int
	// RelativeBase returns the current relative base register.
	RelativeBase() int
}

// MachineFactory is the type of a function creating a new Machine running
// the given program.
type MachineFactory func(program Program) (Machine, error)

// ProfilingMachine is an optional extension of the Machine interface
// implemented by machines collecting statistical data on their executions.
type ProfilingMachine interface {
	Machine

	// Steps returns the number of instructions executed since construction
	// or the last call to ResetProfile.
	Steps() uint64
	// ResetProfile clears the collected statistics.
	ResetProfile()
	// DumpProfile writes a human readable summary of the collected
	// statistics to the given writer.
	DumpProfile(out io.Writer) error
}
