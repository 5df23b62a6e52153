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

	"github.com/Fantom-foundation/Intcode/go/intcode"
)

var (
	zero = intcode.NewWord(0)
	one  = intcode.NewWord(1)
)

func opAdd(c *context, ins instruction) error {
	return c.binary(ins, func(a, b intcode.Word) intcode.Word {
		return a.Add(b)
	})
}

func opMul(c *context, ins instruction) error {
	return c.binary(ins, func(a, b intcode.Word) intcode.Word {
		return a.Mul(b)
	})
}

func opLessThan(c *context, ins instruction) error {
	return c.binary(ins, func(a, b intcode.Word) intcode.Word {
		if a.Cmp(b) < 0 {
			return one
		}
		return zero
	})
}

func opEquals(c *context, ins instruction) error {
	return c.binary(ins, func(a, b intcode.Word) intcode.Word {
		if a.Cmp(b) == 0 {
			return one
		}
		return zero
	})
}

// opInput stores the next input value. If no input is available, the
// machine is suspended without consuming the instruction, so it is
// retried by the next run.
func opInput(c *context, ins instruction) error {
	if ins.modes[0] == Immediate {
		return intcode.ErrImmediateWrite
	}
	if !c.input.HasNext() {
		c.status = intcode.WaitingForInput
		return nil
	}
	value, err := c.input.Next()
	if err != nil {
		return &ioError{err: fmt.Errorf("failed to read input: %w", err)}
	}
	if err := c.write(ins, 0, value); err != nil {
		return err
	}
	c.cursor += ins.size()
	return nil
}

// opOutput delivers a value to the sink. The cursor is advanced before the
// sink is invoked such that a failing sink leaves a resumable machine.
func opOutput(c *context, ins instruction) error {
	value, err := c.read(ins, 0)
	if err != nil {
		return err
	}
	c.cursor += ins.size()
	if c.sink == nil {
		return nil
	}
	if err := c.sink.Output(value); err != nil {
		return &ioError{err: fmt.Errorf("output sink failed: %w", err), completed: true}
	}
	return nil
}

func opJumpIfTrue(c *context, ins instruction) error {
	return c.jumpIf(ins, func(a intcode.Word) bool { return !a.IsZero() })
}

func opJumpIfFalse(c *context, ins instruction) error {
	return c.jumpIf(ins, func(a intcode.Word) bool { return a.IsZero() })
}

func opAdjustRelativeBase(c *context, ins instruction) error {
	offset, err := c.read(ins, 0)
	if err != nil {
		return err
	}
	base, ok := intcode.NewWord(int64(c.relativeBase)).Add(offset).Int64()
	if !ok || int64(int(base)) != base {
		return intcode.ErrAddressOutOfRange
	}
	c.relativeBase = int(base)
	c.cursor += ins.size()
	return nil
}

func opHalt(c *context, ins instruction) error {
	c.status = intcode.Halted
	return nil
}

// binary evaluates a two-operand instruction and stores its result in the
// third parameter.
func (c *context) binary(ins instruction, op func(a, b intcode.Word) intcode.Word) error {
	a, err := c.read(ins, 0)
	if err != nil {
		return err
	}
	b, err := c.read(ins, 1)
	if err != nil {
		return err
	}
	if err := c.write(ins, 2, op(a, b)); err != nil {
		return err
	}
	c.cursor += ins.size()
	return nil
}

// jumpIf moves the cursor to the second parameter if the condition holds
// for the first one, and to the next instruction otherwise.
func (c *context) jumpIf(ins instruction, condition func(intcode.Word) bool) error {
	a, err := c.read(ins, 0)
	if err != nil {
		return err
	}
	if !condition(a) {
		c.cursor += ins.size()
		return nil
	}
	b, err := c.read(ins, 1)
	if err != nil {
		return err
	}
	target, err := toAddress(b)
	if err != nil {
		return err
	}
	c.cursor = target
	return nil
}
