//go:build arm64 && !noasm

package hwy

// subFromMaxNEON computes p[i] = 255 - p[i] for i in [0, n) with
// VLD1/VSUB/VST1 on 16-byte lanes. n must be a multiple of 16.
//
//go:noescape
func subFromMaxNEON(p *byte, n int)

func subFromMaxLanesNEON(b []byte) {
	subFromMaxNEON(&b[0], len(b))
}
