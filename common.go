package main

// Quadrant is the fixed traversal order used by every recursive pass over
// the tree: construction, variance, lossy filtering, encoding, decoding,
// reconstruction, and the segmentation grid. It is a clockwise walk
// starting at the top-left quadrant, NOT row-major order — the fourth
// slot (BottomLeft) is always the one whose mean is derived rather than
// transmitted, and that only holds if every traversal agrees on this
// order.
type Quadrant int

const (
	TopLeft Quadrant = iota
	TopRight
	BottomRight
	BottomLeft
)

// quadrantOrder is the canonical child visitation sequence.
var quadrantOrder = [4]Quadrant{TopLeft, TopRight, BottomRight, BottomLeft}

// isPowerOfTwo reports whether x is a power of two. x == 0 is not.
func isPowerOfTwo(x uint32) bool {
	return x != 0 && x&(x-1) == 0
}

// fourthMean reconstructs the mean of a node's fourth (BottomLeft) child
// from the parent's mean and remainder plus the first three children's
// means, using the identity 4*m + e = m0 + m1 + m2 + m3. ok is false if
// the computed value falls outside 0..255, which signals a corrupt
// stream to the caller.
func fourthMean(parentMean, parentErr, m0, m1, m2 uint16) (uint8, bool) {
	total := 4*parentMean + parentErr
	sumThree := m0 + m1 + m2
	if total < sumThree {
		return 0, false
	}
	m3 := total - sumThree
	if m3 > 255 {
		return 0, false
	}
	return uint8(m3), true
}
