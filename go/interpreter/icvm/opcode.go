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

import "fmt"

// OpCode is the operation selected by the two least significant decimal
// digits of an instruction.
type OpCode byte

const (
	ADD  OpCode = 1  // dest = a + b
	MUL  OpCode = 2  // dest = a * b
	IN   OpCode = 3  // dest = next input value
	OUT  OpCode = 4  // output a
	JNZ  OpCode = 5  // jump to b if a != 0
	JZ   OpCode = 6  // jump to b if a == 0
	LT   OpCode = 7  // dest = a < b
	EQ   OpCode = 8  // dest = a == b
	ARB  OpCode = 9  // relative base += a
	HALT OpCode = 99 // stop execution
)

// numOpCodes is the size of the opcode space defined by two decimal digits.
const numOpCodes = 100

// maxParameters is the largest number of parameters of any instruction.
const maxParameters = 3

// executor implements the effect of an instruction on the given context.
// Executors of instructions not transferring control advance the cursor.
type executor func(c *context, ins instruction) error

type opInfo struct {
	name       string
	parameters int
	execute    executor
}

// opTable maps opcodes to their properties. Entries with a nil executor are
// unknown opcodes.
var opTable = [numOpCodes]opInfo{
	ADD:  {name: "ADD", parameters: 3, execute: opAdd},
	MUL:  {name: "MUL", parameters: 3, execute: opMul},
	IN:   {name: "IN", parameters: 1, execute: opInput},
	OUT:  {name: "OUT", parameters: 1, execute: opOutput},
	JNZ:  {name: "JNZ", parameters: 2, execute: opJumpIfTrue},
	JZ:   {name: "JZ", parameters: 2, execute: opJumpIfFalse},
	LT:   {name: "LT", parameters: 3, execute: opLessThan},
	EQ:   {name: "EQ", parameters: 3, execute: opEquals},
	ARB:  {name: "ARB", parameters: 1, execute: opAdjustRelativeBase},
	HALT: {name: "HALT", parameters: 0, execute: opHalt},
}

// IsValid reports whether the opcode is part of the instruction set.
func (op OpCode) IsValid() bool {
	return int(op) < numOpCodes && opTable[op].execute != nil
}

// Parameters returns the number of parameters of the given opcode.
func (op OpCode) Parameters() int {
	if !op.IsValid() {
		return 0
	}
	return opTable[op].parameters
}

func (op OpCode) String() string {
	if op.IsValid() {
		return opTable[op].name
	}
	return fmt.Sprintf("op(%d)", op)
}
