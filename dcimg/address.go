package dcimg

// layerPixelOffset returns the byte offset of a layer's pixel block in
// the main pixel-data region. The block still carries the sentinel
// pattern over each frame's first pixels.
func (f *File) layerPixelOffset(index, framesPerLayer int) int64 {
	return pixelDataOffset +
		int64(f.Session.BytesPerImg)*int64(framesPerLayer)*int64(index)
}

// cornerPixelOffset returns the byte offset of the footer backup of the
// true first four pixels for frame i of the given layer. The backups sit
// past the footer preamble, the per-frame counter table and the
// timestamp table.
func (f *File) cornerPixelOffset(index, framesPerLayer, i int) int64 {
	perFrame := int64(frameCounterEntrySize + timestampEntrySize)
	return f.sessionFooterOffset() + footerPreambleSize +
		perFrame*int64(f.Session.Nfrms) +
		int64(cornerPixelCount)*int64(f.Session.ByteDepth)*
			(int64(index)*int64(framesPerLayer)+int64(i))
}

// layerAddress resolves and range-checks both offsets needed to assemble
// a layer: the start of its pixel block and the start of its first
// frame's corner-pixel backup.
func (f *File) layerAddress(index, framesPerLayer int) (pixel, corner int64, err error) {
	if index < 0 || framesPerLayer < 1 {
		return 0, 0, &BoundsError{
			What: "layer request", Offset: int64(index),
			Need: int64(framesPerLayer), Size: int64(len(f.data)),
		}
	}

	pixel = f.layerPixelOffset(index, framesPerLayer)
	blockLen := int64(f.Session.BytesPerImg) * int64(framesPerLayer)
	if viewLen := int64(f.Ysize()*f.Xsize()*f.elemLen) * int64(framesPerLayer); viewLen > blockLen {
		blockLen = viewLen
	}
	if err = f.checkRange("layer pixel block", pixel, blockLen); err != nil {
		return 0, 0, err
	}

	corner = f.cornerPixelOffset(index, framesPerLayer, 0)
	cornerLen := int64(cornerPixelCount) * int64(f.Session.ByteDepth) *
		int64(framesPerLayer)
	if err = f.checkRange("corner-pixel table", corner, cornerLen); err != nil {
		return 0, 0, err
	}
	return pixel, corner, nil
}
