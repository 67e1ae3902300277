// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build amd64 && !noasm

package hwy

import "golang.org/x/sys/cpu"

// availableTargets lists the amd64 targets supported by this CPU, best first.
func availableTargets() []target {
	targets := make([]target, 0, 3)
	// AVX2 needs OS support for the YMM state, which cpu.X86.HasAVX2 already
	// accounts for.
	if cpu.X86.HasAVX2 {
		targets = append(targets, target{level: DispatchAVX2, width: 32, lanes: subFromMaxLanesAVX2})
	}
	// SSE2 is baseline for amd64, but keep the check for consistency.
	if cpu.X86.HasSSE2 {
		targets = append(targets, target{level: DispatchSSE2, width: 16, lanes: subFromMaxLanesSSE2})
	}
	return append(targets, scalarTarget)
}
