// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package amplifier

import (
	"context"
	"fmt"

	"github.com/Fantom-foundation/Intcode/go/intcode"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of running a series with a specific phase order.
type Result struct {
	Phases []int64
	Signal intcode.Word
}

func (r Result) String() string {
	return fmt.Sprintf("%v -> %v", r.Phases, r.Signal)
}

// MaxSignal runs a series for every permutation of the given phases, each
// starting with the signal 0, and returns the permutation producing the
// largest signal. Up to jobs series are run in parallel; a non-positive
// value imposes no limit. The first error encountered aborts the search.
func MaxSignal(
	ctx context.Context,
	program intcode.Program,
	phases []int64,
	feedback bool,
	jobs int,
	factory intcode.MachineFactory,
) (Result, error) {
	if len(phases) == 0 {
		return Result{}, ErrNoAmplifiers
	}

	orders := permutations(phases)
	signals := make([]intcode.Word, len(orders))

	group, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		group.SetLimit(jobs)
	}
	for i, order := range orders {
		i, order := i, order
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			series, err := NewSeries(program, order, factory)
			if err != nil {
				return err
			}
			run := series.Run
			if feedback {
				run = series.RunWithFeedback
			}
			signal, err := run(intcode.NewWord(0))
			if err != nil {
				return fmt.Errorf("phases %v: %w", order, err)
			}
			signals[i] = signal
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Result{}, err
	}

	best := 0
	for i := range signals {
		if signals[i].Cmp(signals[best]) > 0 {
			best = i
		}
	}
	return Result{Phases: orders[best], Signal: signals[best]}, nil
}

// permutations lists all orderings of the given values, starting with the
// given order.
func permutations(values []int64) [][]int64 {
	if len(values) <= 1 {
		return [][]int64{append([]int64(nil), values...)}
	}
	res := [][]int64{}
	for i := range values {
		rest := make([]int64, 0, len(values)-1)
		rest = append(rest, values[:i]...)
		rest = append(rest, values[i+1:]...)
		for _, tail := range permutations(rest) {
			res = append(res, append([]int64{values[i]}, tail...))
		}
	}
	return res
}
