//go:build arm64 && !noasm

package hwy

import "golang.org/x/sys/cpu"

// availableTargets lists the arm64 targets, best first.
//
// ARM64 (AArch64) always has NEON (ASIMD) available, it's part of the
// ARMv8-A base architecture. We still check the cpu package for consistency.
func availableTargets() []target {
	if cpu.ARM64.HasASIMD {
		return []target{
			{level: DispatchNEON, width: 16, lanes: subFromMaxLanesNEON},
			scalarTarget,
		}
	}
	return []target{scalarTarget}
}
