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

// Disassemble produces a linear listing of the given program, one
// instruction per line. Values not forming a complete, valid instruction are
// listed as data. Since Intcode programs may modify themselves, the listing
// reflects the initial program only.
func Disassemble(program intcode.Program) string {
	var builder strings.Builder
	for pos := 0; pos < len(program); {
		ins, err := decode(program[pos])
		if err != nil || pos+ins.size() > len(program) {
			fmt.Fprintf(&builder, "%5d: DATA %v\n", pos, program[pos])
			pos++
			continue
		}
		fmt.Fprintf(&builder, "%5d: %s\n", pos, ins.format(program[pos+1:pos+ins.size()]))
		pos += ins.size()
	}
	return builder.String()
}
