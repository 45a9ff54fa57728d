package mathutil

import "math"

// Epsilon is the smallest magnitude accepted for a determinant or a scale axis
// before it is substituted.
const Epsilon = 1e-8

// MirrorY flips the vertical axis: diag(1, -1). It converts between document
// space and the image space used by raster and linked items.
var MirrorY = Diag2(1, -1)

// Round2 rounds v to two decimals, i.e. to a whole percent when v is a scale factor.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
