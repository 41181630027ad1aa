//go:build !windows

package ui

// enableANSI is a no-op outside Windows, terminals there speak VT already.
func enableANSI() {}
