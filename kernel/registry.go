package kernel

import (
	"fmt"
	"sync"
)

// Kernel name constants.
const (
	// KernelSDF is the name of the pure-Go signed-distance-field kernel.
	KernelSDF = "sdf"
)

// Factory creates a new kernel instance.
type Factory func() Kernel

// registry holds registered kernels.
var (
	registryMu sync.RWMutex
	kernels    = make(map[string]Factory)
	// Priority order for kernel selection (first available wins). External
	// CAD kernels register ahead of the SDF fallback by name.
	kernelPriority = []string{KernelSDF}
)

// Register registers a kernel factory with the given name.
// This is typically called from init() functions in kernel packages.
// If a kernel with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	kernels[name] = factory
}

// Unregister removes a kernel from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(kernels, name)
}

// Available returns a list of registered kernel names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(kernels))
	for name := range kernels {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a kernel with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := kernels[name]
	return ok
}

// Get returns a kernel instance by name.
// Returns nil if the kernel is not registered.
func Get(name string) Kernel {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := kernels[name]
	if !ok {
		return nil
	}
	return factory()
}

// Lookup returns a kernel instance by name, or ErrKernelNotAvailable if no
// kernel with that name is registered.
func Lookup(name string) (Kernel, error) {
	if k := Get(name); k != nil {
		return k, nil
	}
	return nil, fmt.Errorf("%w: %q (registered: %v)", ErrKernelNotAvailable, name, Available())
}

// Default returns the best available kernel based on priority.
// Returns nil if no kernels are registered.
func Default() Kernel {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range kernelPriority {
		if factory, ok := kernels[name]; ok {
			if k := factory(); k != nil {
				return k
			}
		}
	}

	// Fallback: return first available
	for _, factory := range kernels {
		if k := factory(); k != nil {
			return k
		}
	}

	return nil
}

// MustDefault returns the default kernel or panics.
func MustDefault() Kernel {
	k := Default()
	if k == nil {
		panic("kernel: no kernel available")
	}
	return k
}
