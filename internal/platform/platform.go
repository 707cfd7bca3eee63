// Package platform answers best-effort queries for low-level host
// attributes that the metrics provider does not expose. Attribute
// lookups are OS-conditional: on darwin they shell out to sysctl, on
// every other OS they report the attribute as unavailable.
package platform

import "runtime"

// AttributeSource resolves a platform attribute key to its textual
// value, or nil when the attribute cannot be read. Failure and
// platform-unsupported are indistinguishable to callers.
type AttributeSource interface {
	Attribute(key string) *string
}

// NewSource selects the attribute source for the current OS. The
// choice is made once at startup; collectors hold the returned value.
func NewSource() AttributeSource {
	return NewSourceForOS(runtime.GOOS)
}

// NewSourceForOS selects an attribute source for the given GOOS value.
// Split out from NewSource so tests can exercise both strategies.
func NewSourceForOS(goos string) AttributeSource {
	if goos == "darwin" {
		return &sysctlSource{}
	}
	return &unsupportedSource{}
}

// sysctlSource reads attributes via the sysctl utility.
type sysctlSource struct{}

func (s *sysctlSource) Attribute(key string) *string {
	return RunCommand("sysctl", "-n", key)
}

// unsupportedSource reports every attribute as unavailable.
type unsupportedSource struct{}

func (s *unsupportedSource) Attribute(key string) *string {
	return nil
}
