// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package examples

import (
	"github.com/Fantom-foundation/Intcode/go/intcode"
)

func GetSquaresExample() Example {
	/* Stores the squares of 0..n-1 in consecutive cells addressed relative to
	   the relative base, starting at 2000, and sums them up:
	       0: IN   [1000]                 n
	       2: ARB  2000
	       4: ADD  0 0 [1001]             i = 0
	       8: LT   [1001] [1000] [1002]
	      12: JZ   [1002] 36
	      15: MUL  [1001] [1001] [1003]
	      19: ADD  [1003] 0 [rb+0]
	      23: ADD  [rb+0] [1004] [1004]
	      27: ARB  1
	      29: ADD  [1001] 1 [1001]
	      33: JNZ  1 8
	      36: OUT  [1004]
	      38: HALT
	*/
	return exampleSpec{
		Name:      "squares",
		program:   intcode.MustParseProgram("3,1000,109,2000,1101,0,0,1001,7,1001,1000,1002,1006,1002,36,2,1001,1001,1003,21001,1003,0,0,201,0,1004,1004,109,1,1001,1001,1,1001,1105,1,8,4,1004,99"),
		reference: squares,
	}.build()
}

func squares(n int64) intcode.Word {
	if n <= 0 {
		return intcode.NewWord(0)
	}
	return intcode.NewWord((n - 1) * n * (2*n - 1) / 6)
}
