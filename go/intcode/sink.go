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

//go:generate mockgen -source sink.go -destination sink_mock.go -package intcode

// Sink receives the values produced by output instructions. Output is
// delivered synchronously, once per executed output instruction. An error
// returned by a sink aborts the current run of the producing machine and is
// forwarded to the caller of Run.
type Sink interface {
	Output(value Word) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(value Word) error

func (f SinkFunc) Output(value Word) error {
	return f(value)
}

// Collector is a Sink retaining all received values.
type Collector struct {
	Values []Word
}

func (c *Collector) Output(value Word) error {
	c.Values = append(c.Values, value)
	return nil
}

// String renders the collected values as a comma separated list.
func (c *Collector) String() string {
	return Program(c.Values).String()
}
