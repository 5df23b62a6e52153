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

// Status is the execution state of an Intcode machine.
type Status byte

const (
	Running         Status = iota // < ready to execute, the default after construction and reset
	WaitingForInput               // < suspended on an input instruction with no input available
	Halted                        // < stopped by a halt instruction
	Failed                        // < stopped by a malformed program
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case WaitingForInput:
		return "waiting-for-input"
	case Halted:
		return "halted"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("Status(%d)", s)
	}
}
