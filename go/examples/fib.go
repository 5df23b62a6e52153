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
	"math/big"

	"github.com/Fantom-foundation/Intcode/go/intcode"
)

func GetFibExample() Example {
	/* Iterative computation of the n-th Fibonacci number:
	       0: IN   [100]            n
	       2: ADD  0 0 [101]        a = 0
	       6: ADD  1 0 [102]        b = 1
	      10: ADD  0 0 [103]        i = 0
	      14: LT   [103] [100] [104]
	      18: JZ   [104] 40
	      21: ADD  [101] [102] [105]
	      25: ADD  [102] 0 [101]
	      29: ADD  [105] 0 [102]
	      33: ADD  [103] 1 [103]
	      37: JNZ  1 14
	      40: OUT  [101]
	      42: HALT
	*/
	return exampleSpec{
		Name:      "fib",
		program:   intcode.MustParseProgram("3,100,1101,0,0,101,1101,1,0,102,1101,0,0,103,7,103,100,104,1006,104,40,1,101,102,105,1001,102,0,101,1001,105,0,102,1001,103,1,103,1105,1,14,4,101,99"),
		reference: fib,
	}.build()
}

func fib(n int64) intcode.Word {
	a, b := big.NewInt(0), big.NewInt(1)
	for i := int64(0); i < n; i++ {
		a.Add(a, b)
		a, b = b, a
	}
	return intcode.WordFromBig(a)
}
