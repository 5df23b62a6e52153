// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package icvm

import (
	"fmt"
	"io"
	"os"

	"github.com/Fantom-foundation/Intcode/go/intcode"
)

// Registers the Intcode VM as a possible machine implementation.
func init() {
	intcode.MustRegisterMachineFactory("icvm", func(program intcode.Program) (intcode.Machine, error) {
		return NewMachine(program, Config{}), nil
	})
}

// RegisterExperimentalConfigurations registers VM configurations intended
// for debugging and profiling to the machine registry:
//   - icvm-logging: logs every executed instruction to os.Stderr
//   - icvm-stats: collects instruction statistics
func RegisterExperimentalConfigurations() {
	configs := map[string]Config{
		"icvm-logging": {Trace: os.Stderr},
		"icvm-stats":   {WithStatistics: true},
	}
	for name, config := range configs {
		config := config
		intcode.MustRegisterMachineFactory(name, func(program intcode.Program) (intcode.Machine, error) {
			return NewMachine(program, config), nil
		})
	}
}

// Config contains a set of configuration options for a Machine.
type Config struct {
	// Inputs are queued at construction time and on every reset.
	Inputs []intcode.Word
	// Trace, if not nil, receives a log line for every executed instruction.
	Trace io.Writer
	// WithStatistics enables the collection of instruction statistics.
	WithStatistics bool
}

// Machine is the Intcode VM. It implements intcode.ProfilingMachine.
type Machine struct {
	// The state captured at construction time, restored by Reset.
	program intcode.Program
	inputs  []intcode.Word

	ctxt    context
	input   intcode.InputChannel
	runner  runner
	failure error // < the error that moved the machine into the Failed status
}

var _ intcode.ProfilingMachine = (*Machine)(nil)

// NewMachine creates a machine running a copy of the given program.
func NewMachine(program intcode.Program, config Config) *Machine {
	res := &Machine{
		program: program.Clone(),
		inputs:  append([]intcode.Word(nil), config.Inputs...),
	}
	switch {
	case config.Trace != nil:
		res.runner = newLogger(config.Trace)
	case config.WithStatistics:
		res.runner = &statisticRunner{stats: newStatistics()}
	default:
		res.runner = vanillaRunner{}
	}
	res.Reset()
	return res
}

// FromText creates a machine running the program described by the given
// text.
func FromText(text string, config Config) (*Machine, error) {
	program, err := intcode.ParseProgram(text)
	if err != nil {
		return nil, err
	}
	return NewMachine(program, config), nil
}

// FromFile creates a machine running the program stored in the given file.
func FromFile(path string, config Config) (*Machine, error) {
	program, err := intcode.LoadProgram(path)
	if err != nil {
		return nil, err
	}
	return NewMachine(program, config), nil
}

func (m *Machine) Get(address int) (intcode.Word, error) {
	return m.ctxt.memory.Get(address)
}

func (m *Machine) Set(address int, value intcode.Word) error {
	return m.ctxt.memory.Set(address, value)
}

func (m *Machine) SendInput(values ...intcode.Word) {
	m.input.Send(values...)
}

func (m *Machine) QueueInput(source intcode.InputSource) {
	m.input.Queue(source)
}

func (m *Machine) OnOutput(sink intcode.Sink) {
	m.ctxt.sink = sink
}

func (m *Machine) Run() error {
	switch m.ctxt.status {
	case intcode.Halted:
		return nil
	case intcode.Failed:
		return m.failure
	case intcode.WaitingForInput:
		m.ctxt.status = intcode.Running
	}
	err := m.runner.run(&m.ctxt)
	if m.ctxt.status == intcode.Failed {
		m.failure = err
	}
	return err
}

func (m *Machine) Reset() {
	// Everything is prepared before the state is replaced, such that a reset
	// is never observed partially.
	memory := NewMemory(m.program)
	input := intcode.InputChannel{}
	input.Send(m.inputs...)

	m.input = input
	m.ctxt = context{
		memory: memory,
		input:  &m.input,
		sink:   m.ctxt.sink,
		steps:  m.ctxt.steps,
		status: intcode.Running,
	}
	m.failure = nil
}

func (m *Machine) Status() intcode.Status {
	return m.ctxt.status
}

func (m *Machine) IsDone() bool {
	return m.ctxt.status == intcode.Halted
}

func (m *Machine) IsWaitingForInput() bool {
	return m.ctxt.status == intcode.WaitingForInput
}

func (m *Machine) Cursor() int {
	return m.ctxt.cursor
}

func (m *Machine) RelativeBase() int {
	return m.ctxt.relativeBase
}

// Memory returns a copy of the machine's current memory content.
func (m *Machine) Memory() intcode.Program {
	return m.ctxt.memory.Snapshot()
}

func (m *Machine) Steps() uint64 {
	return m.ctxt.steps
}

func (m *Machine) ResetProfile() {
	m.ctxt.steps = 0
	if statsRunner, ok := m.runner.(*statisticRunner); ok {
		statsRunner.reset()
	}
}

func (m *Machine) DumpProfile(out io.Writer) error {
	if _, err := fmt.Fprintf(out, "Executed instructions: %d\n", m.ctxt.steps); err != nil {
		return err
	}
	if statsRunner, ok := m.runner.(*statisticRunner); ok {
		if _, err := io.WriteString(out, statsRunner.getSummary()); err != nil {
			return err
		}
	}
	return nil
}
