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

// Mode is the addressing mode of an instruction parameter.
type Mode byte

const (
	Position  Mode = iota // < the parameter is the address of the operand
	Immediate             // < the parameter is the operand
	Relative              // < the parameter is an offset to the relative base
	numModes  int  = iota
)

// modeInfo defines how parameters of a given mode are read and written.
type modeInfo struct {
	name  string
	read  func(c *context, param intcode.Word) (intcode.Word, error)
	write func(c *context, param, value intcode.Word) error
}

var modeTable = [numModes]modeInfo{
	Position: {
		name: "position",
		read: func(c *context, param intcode.Word) (intcode.Word, error) {
			address, err := toAddress(param)
			if err != nil {
				return intcode.Word{}, err
			}
			return c.memory.Get(address)
		},
		write: func(c *context, param, value intcode.Word) error {
			address, err := toAddress(param)
			if err != nil {
				return err
			}
			return c.memory.Set(address, value)
		},
	},
	Immediate: {
		name: "immediate",
		read: func(c *context, param intcode.Word) (intcode.Word, error) {
			return param, nil
		},
		write: func(c *context, param, value intcode.Word) error {
			return intcode.ErrImmediateWrite
		},
	},
	Relative: {
		name: "relative",
		read: func(c *context, param intcode.Word) (intcode.Word, error) {
			address, err := c.relativeAddress(param)
			if err != nil {
				return intcode.Word{}, err
			}
			return c.memory.Get(address)
		},
		write: func(c *context, param, value intcode.Word) error {
			address, err := c.relativeAddress(param)
			if err != nil {
				return err
			}
			return c.memory.Set(address, value)
		},
	},
}

func (m Mode) isValid() bool {
	return int(m) < numModes
}

func (m Mode) String() string {
	if m.isValid() {
		return modeTable[m].name
	}
	return fmt.Sprintf("Mode(%d)", m)
}
