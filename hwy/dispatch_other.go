//go:build noasm || (!amd64 && !arm64)

package hwy

// availableTargets returns only the scalar target. Architectures without
// assembly lane routines, and noasm builds, fall back to the portable
// 64-bit word implementation.
func availableTargets() []target {
	return []target{scalarTarget}
}
