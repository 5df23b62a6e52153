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
	"errors"

	"github.com/Fantom-foundation/Intcode/go/intcode"
)

// context is the execution state of a machine. It is owned by a Machine and
// mutated by every run.
type context struct {
	memory       *Memory
	cursor       int
	relativeBase int
	status       intcode.Status

	input *intcode.InputChannel
	sink  intcode.Sink

	steps uint64 // < number of completed instructions
}

// ioError marks failures of input sources and output sinks. In contrast to
// errors caused by malformed programs, those leave the machine in a state
// from which execution may be resumed. If completed is set, the failing
// instruction took effect before the failure was reported.
type ioError struct {
	err       error
	completed bool
}

func (e *ioError) Error() string {
	return e.err.Error()
}

func (e *ioError) Unwrap() error {
	return e.err
}

// relativeAddress computes the address referenced by a relative mode
// parameter.
func (c *context) relativeAddress(offset intcode.Word) (int, error) {
	return toAddress(intcode.NewWord(int64(c.relativeBase)).Add(offset))
}

// param fetches the raw value of the i-th parameter of the current
// instruction.
func (c *context) param(i int) (intcode.Word, error) {
	return c.memory.Get(c.cursor + 1 + i)
}

// read resolves the operand of the i-th parameter of the given instruction.
func (c *context) read(ins instruction, i int) (intcode.Word, error) {
	param, err := c.param(i)
	if err != nil {
		return intcode.Word{}, err
	}
	return modeTable[ins.modes[i]].read(c, param)
}

// write stores a value at the destination denoted by the i-th parameter of
// the given instruction.
func (c *context) write(ins instruction, i int, value intcode.Word) error {
	param, err := c.param(i)
	if err != nil {
		return err
	}
	return modeTable[ins.modes[i]].write(c, param, value)
}

// fetch decodes the instruction at the cursor.
func (c *context) fetch() (intcode.Word, instruction, error) {
	raw, err := c.memory.Get(c.cursor)
	if err != nil {
		return raw, instruction{}, err
	}
	ins, err := decode(raw)
	return raw, ins, err
}

// --- Runners ---

type runner interface {
	// run executes instructions while the context's status is Running.
	// Errors of malformed programs are returned as *intcode.ExecutionError
	// and leave the context in the Failed status. Errors of input sources
	// and sinks are returned as they are.
	run(*context) error
}

// vanillaRunner is the default runner executing instructions without any
// additional features.
type vanillaRunner struct{}

func (vanillaRunner) run(c *context) error {
	for c.status == intcode.Running {
		if err := step(c); err != nil {
			return err
		}
	}
	return nil
}

// step executes the instruction at the cursor.
func step(c *context) error {
	raw, ins, err := c.fetch()
	if err != nil {
		return c.fail(raw, err)
	}
	if err := opTable[ins.opcode].execute(c, ins); err != nil {
		var ioErr *ioError
		if errors.As(err, &ioErr) {
			if ioErr.completed {
				c.steps++
			}
			return ioErr.err
		}
		return c.fail(raw, err)
	}
	if c.status != intcode.WaitingForInput {
		c.steps++
	}
	return nil
}

// fail moves the context into the Failed status and describes the failing
// instruction.
func (c *context) fail(raw intcode.Word, err error) error {
	c.status = intcode.Failed
	return &intcode.ExecutionError{
		Cursor:      c.cursor,
		Instruction: raw,
		Err:         err,
	}
}
