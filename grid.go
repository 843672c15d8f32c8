package main

const gridLineValue = 128

// GenerateGrid renders a size*size pixel buffer visualizing the tree's
// partition: every non-leaf region gets a one-pixel mid-gray border plus
// horizontal/vertical mid-lines, drawn over the reconstructed pixels.
func GenerateGrid(t *tree) ([]uint8, error) {
	pixels, err := Reconstruct(t)
	if err != nil {
		return nil, err
	}
	drawGrid(t.root, pixels, t.size, 0, 0, t.size)
	drawBorder(pixels, t.size)
	return pixels, nil
}

// drawGrid recurses exactly like fillRegion, but instead of painting
// mean values it overlays mid-lines inside every region it descends
// into (i.e. every region with children).
func drawGrid(n *node, pixels []uint8, imgSize, row, col, regionSize uint32) {
	if n == nil || n.u || regionSize == 1 {
		return
	}

	h := regionSize / 2
	midRow := row + h
	midCol := col + h
	for c := col; c < col+regionSize; c++ {
		pixels[midRow*imgSize+c] = gridLineValue
	}
	for r := row; r < row+regionSize; r++ {
		pixels[r*imgSize+midCol] = gridLineValue
	}

	for _, q := range quadrantOrder {
		cr, cc := childOrigin(q, row, col, h)
		drawGrid(n.children[q], pixels, imgSize, cr, cc, h)
	}
}

// drawBorder paints a one-pixel mid-gray frame around the whole image.
func drawBorder(pixels []uint8, size uint32) {
	for c := uint32(0); c < size; c++ {
		pixels[c] = gridLineValue
		pixels[(size-1)*size+c] = gridLineValue
	}
	for r := uint32(0); r < size; r++ {
		pixels[r*size] = gridLineValue
		pixels[r*size+size-1] = gridLineValue
	}
}
