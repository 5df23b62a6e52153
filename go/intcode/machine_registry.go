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

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// This file provides a registry for Machine implementations.
//
// Implementations register a factory under a name, typically as part of the
// init code of the package providing them. By importing the implementation
// package, machines become available to all clients of this registry.

// NewMachine performs a lookup for the given name (case-insensitive) in the
// registry and creates a new Machine running the given program. An error is
// returned if no factory was registered under the given name.
func NewMachine(name string, program Program) (Machine, error) {
	factory := GetMachineFactory(name)
	if factory == nil {
		return nil, fmt.Errorf("machine implementation not found: %s", name)
	}
	return factory(program)
}

// GetMachineFactory performs a lookup for the given name (case-insensitive)
// in the registry. The result is nil if no factory was registered under the
// given name.
func GetMachineFactory(name string) MachineFactory {
	machineRegistryLock.Lock()
	defer machineRegistryLock.Unlock()
	return machineRegistry[strings.ToLower(name)]
}

// GetAllRegisteredMachines obtains all registered implementations.
func GetAllRegisteredMachines() map[string]MachineFactory {
	machineRegistryLock.Lock()
	defer machineRegistryLock.Unlock()
	return maps.Clone(machineRegistry)
}

// GetRegisteredMachineNames returns the sorted names of all registered
// implementations.
func GetRegisteredMachineNames() []string {
	res := maps.Keys(GetAllRegisteredMachines())
	slices.Sort(res)
	return res
}

// RegisterMachineFactory registers a new Machine implementation to be
// exported for general use in the binary. The name is not case-sensitive.
// An error is returned if a factory was bound to the same name before, or
// the factory is nil.
func RegisterMachineFactory(name string, factory MachineFactory) error {
	key := strings.ToLower(name)
	if factory == nil {
		return fmt.Errorf("invalid initialization: cannot register nil-factory using `%s`", key)
	}
	machineRegistryLock.Lock()
	defer machineRegistryLock.Unlock()
	if _, found := machineRegistry[key]; found {
		return fmt.Errorf("invalid initialization: multiple factories registered for `%s`", key)
	}
	machineRegistry[key] = factory
	return nil
}

// MustRegisterMachineFactory is like RegisterMachineFactory but panics on
// errors. This function is mainly intended to be used by package
// initialization code.
func MustRegisterMachineFactory(name string, factory MachineFactory) {
	if err := RegisterMachineFactory(name, factory); err != nil {
		panic(err)
	}
}

// machineRegistry is a global registry for Machine factories of different
// implementations and configurations.
var machineRegistry = map[string]MachineFactory{}

// machineRegistryLock protects concurrent accesses to the registry.
var machineRegistryLock sync.Mutex
