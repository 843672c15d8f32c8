package main

import (
	"bytes"
	"fmt"
	"time"
)

const qtcMagic = "Q1"

// Encode serializes a tree into the QTC wire format: the textual header
// of spec.md §6.2 followed by the level-synchronous bit-packed payload
// of §4.6. now is the timestamp stamped into the header comment; callers
// that need byte-identical output across calls (idempotence, spec.md §8
// property 5) should pass the same value.
func Encode(t *tree, now time.Time, log Logger) ([]byte, error) {
	if t == nil || t.root == nil {
		return nil, newError(KindInvalidParam, "tree has no root")
	}
	if t.levels < 1 || t.levels > 32 {
		return nil, ErrTreeDepth
	}

	log.Header("QUADTREE COMPRESSION")

	// First pass: write the payload to a scratch sink to learn the exact
	// bit count before any header field (the compression rate) that
	// depends on it is known.
	var scratch bytes.Buffer
	bw := newBitWriter(&scratch)
	for level := uint32(0); level <= t.levels; level++ {
		encodeLevel(bw, t.root, 0, level, t.levels, false)
		if bw.err != nil {
			return nil, wrapError(KindIO, "writing scratch bit stream", bw.err)
		}
	}
	bw.flush()
	if bw.err != nil {
		return nil, wrapError(KindIO, "flushing scratch bit stream", bw.err)
	}

	originalBits := uint64(t.size) * uint64(t.size) * 8
	rate := float64(bw.totalBits) / float64(originalBits) * 100

	var out bytes.Buffer
	if err := writeHeader(&out, t.levels, rate, now); err != nil {
		return nil, err
	}
	if _, err := out.Write(scratch.Bytes()); err != nil {
		return nil, wrapError(KindIO, "copying payload to output", err)
	}

	log.Item("Tree depth", "%d levels", t.levels)
	log.Item("Compressed size", "%.2f KB (%.2f%%)", float64(bw.bytesOut)/1024, rate)
	log.Success("Compression completed")

	return out.Bytes(), nil
}

// writeHeader writes the magic line, the two comment lines, and the
// depth byte, in the exact layout of spec.md §6.2.
func writeHeader(w *bytes.Buffer, levels uint32, rate float64, now time.Time) error {
	if _, err := w.WriteString(qtcMagic); err != nil {
		return wrapError(KindIO, "writing magic", err)
	}
	if err := w.WriteByte('\n'); err != nil {
		return wrapError(KindIO, "writing magic newline", err)
	}
	if _, err := fmt.Fprintf(w, "# %s\n", now.Format("Mon Jan 2 15:04:05 2006")); err != nil {
		return wrapError(KindIO, "writing timestamp comment", err)
	}
	if _, err := fmt.Fprintf(w, "# compression rate %.2f%%\n", rate); err != nil {
		return wrapError(KindIO, "writing rate comment", err)
	}
	if levels > 32 {
		return ErrTreeDepth
	}
	return w.WriteByte(byte(levels))
}

// encodeLevel performs a depth-first descent, emitting bits only for
// nodes at exactly currentLevel that are reachable from the root through
// non-uniform ancestors. isInterpolated marks the fourth child of its
// parent (quadrant order index 3), whose mean is never transmitted.
func encodeLevel(bw *bitWriter, n *node, currentLevel, targetLevel, maxLevel uint32, isInterpolated bool) {
	if n == nil || bw.err != nil {
		return
	}

	isLeaf := n.e == 0 && n.u && currentLevel == maxLevel

	if currentLevel == targetLevel {
		writeNode(bw, n, isLeaf, isInterpolated)
		return
	}

	if !n.u {
		for i, q := range quadrantOrder {
			encodeLevel(bw, n.children[q], currentLevel+1, targetLevel, maxLevel, i == 3)
		}
	}
}

// writeNode emits one node's fields per the table in spec.md §4.6.
func writeNode(bw *bitWriter, n *node, isLeaf, isInterpolated bool) {
	if !isInterpolated {
		bw.writeBits(uint32(n.m), 8)
	}
	if isLeaf {
		return
	}
	bw.writeBits(uint32(n.e), 2)
	if n.e == 0 {
		bw.writeBits(boolBit(n.u), 1)
	}
}

func boolBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}
