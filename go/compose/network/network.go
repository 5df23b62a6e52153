// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package network simulates a network of Intcode machines exchanging packets.
//
// Every machine is assigned an address on start up, provided as its first
// input. A machine sends a packet by emitting three values: the destination
// address followed by the X and Y values of the packet. Packets are appended
// to the input of the destination. A machine waiting for input without a
// pending packet receives -1. Packets sent to address 255 are captured by a
// NAT, which re-sends the last received packet to address 0 whenever the
// network is idle.
package network

import (
	"errors"
	"fmt"

	"github.com/Fantom-foundation/Intcode/go/intcode"
)

const (
	// NatAddress is the address of the NAT.
	NatAddress = 255

	ErrUnknownDestination = intcode.ConstError("unknown destination address")
	ErrIdle               = intcode.ConstError("network is idle and the NAT holds no packet")
	ErrHalted             = intcode.ConstError("all machines of the network halted")

	errStopped = intcode.ConstError("stopped by observer")
)

// Packet is a pair of values sent between machines.
type Packet struct {
	X, Y intcode.Word
}

func (p Packet) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// EventKind distinguishes the events reported to an Observer.
type EventKind int

const (
	// Received is reported when the NAT receives a packet.
	Received EventKind = iota
	// Delivered is reported when the NAT re-sends a packet to address 0.
	Delivered
)

func (k EventKind) String() string {
	switch k {
	case Received:
		return "received"
	case Delivered:
		return "delivered"
	}
	return fmt.Sprintf("EventKind(%d)", k)
}

// Event describes an action of the NAT.
type Event struct {
	Kind   EventKind
	Packet Packet
}

// Observer is informed about NAT events. Returning true stops the network.
type Observer func(Event) bool

type node struct {
	machine intcode.Machine
	buffer  []intcode.Word
	pending bool // < set if a packet was received since the last run
}

// Network is a set of machines connected through a packet router.
type Network struct {
	nodes    []*node
	nat      Packet
	hasNat   bool
	sent     uint64
	observer Observer
}

// New creates a network of size machines running the given program, created
// by the given factory. Machine i is assigned address i.
func New(program intcode.Program, size int, factory intcode.MachineFactory) (*Network, error) {
	if size <= 0 || size > NatAddress {
		return nil, fmt.Errorf("invalid network size %d", size)
	}
	res := &Network{nodes: make([]*node, size)}
	for i := range res.nodes {
		machine, err := factory(program)
		if err != nil {
			return nil, fmt.Errorf("failed to create machine %d: %w", i, err)
		}
		cur := &node{machine: machine}
		machine.SendInput(intcode.NewWord(int64(i)))
		machine.OnOutput(intcode.SinkFunc(func(value intcode.Word) error {
			return res.collect(cur, value)
		}))
		res.nodes[i] = cur
	}
	return res, nil
}

// Size returns the number of machines in the network.
func (n *Network) Size() int {
	return len(n.nodes)
}

func (n *Network) collect(from *node, value intcode.Word) error {
	from.buffer = append(from.buffer, value)
	if len(from.buffer) < 3 {
		return nil
	}
	destination, packet := from.buffer[0], Packet{X: from.buffer[1], Y: from.buffer[2]}
	from.buffer = from.buffer[:0]
	return n.route(destination, packet)
}

func (n *Network) route(destination intcode.Word, packet Packet) error {
	n.sent++
	address, ok := destination.Int64()
	switch {
	case ok && address == NatAddress:
		n.nat = packet
		n.hasNat = true
		return n.notify(Event{Kind: Received, Packet: packet})
	case ok && address >= 0 && address < int64(len(n.nodes)):
		n.deliver(n.nodes[address], packet)
		return nil
	}
	return fmt.Errorf("%w: %v", ErrUnknownDestination, destination)
}

func (n *Network) deliver(to *node, packet Packet) {
	to.machine.SendInput(packet.X, packet.Y)
	to.pending = true
}

func (n *Network) notify(event Event) error {
	if n.observer != nil && n.observer(event) {
		return errStopped
	}
	return nil
}

// Run operates the network in rounds, running every machine once per round,
// until the observer requests a stop. If in a round every machine was
// waiting for input without a pending packet and no packet was sent, the
// network is idle and the NAT delivers its last packet to address 0.
func (n *Network) Run(observer Observer) error {
	n.observer = observer
	defer func() { n.observer = nil }()
	for {
		err := n.round()
		if errors.Is(err, errStopped) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (n *Network) round() error {
	sent := n.sent
	idle := true
	halted := 0
	for i, cur := range n.nodes {
		machine := cur.machine
		if machine.IsDone() {
			halted++
			continue
		}
		if machine.IsWaitingForInput() && !cur.pending {
			machine.SendInput(intcode.NewWord(-1))
		} else {
			idle = false
		}
		cur.pending = false
		if err := machine.Run(); err != nil {
			if errors.Is(err, errStopped) {
				return err
			}
			return fmt.Errorf("machine %d failed: %w", i, err)
		}
	}
	if halted == len(n.nodes) {
		return ErrHalted
	}
	if !idle || sent != n.sent {
		return nil
	}
	if !n.hasNat {
		return ErrIdle
	}
	n.deliver(n.nodes[0], n.nat)
	return n.notify(Event{Kind: Delivered, Packet: n.nat})
}

// FirstNATPacket runs the network until the NAT receives its first packet.
func FirstNATPacket(n *Network) (Packet, error) {
	var res Packet
	err := n.Run(func(event Event) bool {
		res = event.Packet
		return event.Kind == Received
	})
	return res, err
}

// FirstRepeatedDelivery runs the network until the NAT delivers a packet
// with the same Y value as the packet it delivered before.
func FirstRepeatedDelivery(n *Network) (Packet, error) {
	var res Packet
	var last *intcode.Word
	err := n.Run(func(event Event) bool {
		if event.Kind != Delivered {
			return false
		}
		res = event.Packet
		if last != nil && last.Cmp(event.Packet.Y) == 0 {
			return true
		}
		y := event.Packet.Y
		last = &y
		return false
	})
	return res, err
}
