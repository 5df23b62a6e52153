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

import "fmt"

// ConstError is an error type that can be used to define immutable
// error constants. Errors of this type are comparable using errors.Is.
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

const (
	ErrInvalidProgram    = ConstError("invalid program")
	ErrAddressOutOfRange = ConstError("address out of range")
	ErrUnknownOpcode     = ConstError("unknown opcode")
	ErrUnknownMode       = ConstError("unknown parameter mode")
	ErrImmediateWrite    = ConstError("write to immediate mode parameter")
	ErrNoInput           = ConstError("no input available")
)

// ExecutionError is returned by a machine's Run if the executed program is
// malformed. It records the position and raw value of the failing
// instruction. The wrapped error is one of the constant errors above.
type ExecutionError struct {
	Cursor      int
	Instruction Word
	Err         error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("execution failed at %d (instruction %v): %v", e.Cursor, e.Instruction, e.Err)
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}
