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

	"github.com/Fantom-foundation/Intcode/go/intcode"
)

// loggingRunner is a runner that logs the execution of the program to an
// io.Writer, one line per executed instruction.
type loggingRunner struct {
	log io.Writer
}

// newLogger creates a new logging runner that writes to the provided
// io.Writer.
func newLogger(writer io.Writer) loggingRunner {
	return loggingRunner{log: writer}
}

func (l loggingRunner) run(c *context) error {
	for c.status == intcode.Running {
		// log format: <cursor>, <instruction>, <relative base>\n
		if l.log != nil {
			if _, err := fmt.Fprintf(l.log, "%d, %s, %d\n", c.cursor, describe(c), c.relativeBase); err != nil {
				return err
			}
		}
		if err := step(c); err != nil {
			return err
		}
	}
	return nil
}

// describe renders the instruction at the cursor of the given context
// without modifying the context's memory.
func describe(c *context) string {
	if c.cursor >= c.memory.Len() {
		return "-end-"
	}
	raw := c.memory.store[c.cursor]
	ins, err := decode(raw)
	if err != nil {
		return fmt.Sprintf("DATA %v", raw)
	}
	params := make([]intcode.Word, ins.parameters)
	for i := range params {
		if pos := c.cursor + 1 + i; pos < c.memory.Len() {
			params[i] = c.memory.store[pos]
		}
	}
	return ins.format(params)
}
