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
	"strings"

	"github.com/Fantom-foundation/Intcode/go/intcode"
)

// instruction is a decoded Intcode instruction.
type instruction struct {
	opcode     OpCode
	parameters int
	modes      [maxParameters]Mode
}

// decode splits an instruction value into its opcode and the modes of its
// parameters. The opcode is given by the two least significant decimal
// digits, the modes by the remaining digits, least significant first. Missing
// mode digits default to Position; digits beyond the parameter count of the
// opcode are ignored.
func decode(value intcode.Word) (instruction, error) {
	raw, ok := value.Int64()
	if !ok || raw < 0 {
		return instruction{}, intcode.ErrUnknownOpcode
	}
	op := OpCode(raw % 100)
	if !op.IsValid() {
		return instruction{}, intcode.ErrUnknownOpcode
	}
	res := instruction{
		opcode:     op,
		parameters: opTable[op].parameters,
	}
	digits := raw / 100
	for i := 0; i < res.parameters; i++ {
		mode := Mode(digits % 10)
		if !mode.isValid() {
			return instruction{}, intcode.ErrUnknownMode
		}
		res.modes[i] = mode
		digits /= 10
	}
	return res, nil
}

// size is the number of memory cells occupied by the instruction.
func (i instruction) size() int {
	return 1 + i.parameters
}

// format renders the instruction using the given raw parameter values.
// Position parameters are shown as [a], relative ones as [rb+o], and
// immediate ones as plain values.
func (i instruction) format(params []intcode.Word) string {
	var builder strings.Builder
	builder.WriteString(i.opcode.String())
	for k := 0; k < i.parameters && k < len(params); k++ {
		builder.WriteByte(' ')
		switch i.modes[k] {
		case Position:
			fmt.Fprintf(&builder, "[%v]", params[k])
		case Immediate:
			builder.WriteString(params[k].String())
		case Relative:
			if params[k].Sign() < 0 {
				fmt.Fprintf(&builder, "[rb%v]", params[k])
			} else {
				fmt.Fprintf(&builder, "[rb+%v]", params[k])
			}
		}
	}
	return builder.String()
}
