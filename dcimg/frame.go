package dcimg

import "unsafe"

// Layer returns a view over a stack of framesPerLayer consecutive
// frames, shaped (framesPerLayer, ysize, xsize).
//
// The view aliases the mapped region with no data copy. The first four
// pixels of each frame are restored from their footer backup, replacing
// the sentinel pattern the hardware writes into the main pixel block;
// the restore patches the copy-on-write mapping, never the file.
func (f *File) Layer(index, framesPerLayer int) (*Stack, error) {
	pixel, corner, err := f.layerAddress(index, framesPerLayer)
	if err != nil {
		return nil, err
	}

	// The view is contiguous: one frame is rows*cols*depth bytes.
	frameLen := f.Ysize() * f.Xsize() * f.elemLen
	s := &Stack{
		Data:      f.data[pixel : pixel+int64(frameLen)*int64(framesPerLayer)],
		Frames:    framesPerLayer,
		Rows:      f.Ysize(),
		Columns:   f.Xsize(),
		ByteDepth: f.elemLen,
	}

	cornerLen := cornerPixelCount * f.elemLen
	for i := 0; i < framesPerLayer; i++ {
		frameStart := i * frameLen
		copy(s.Data[frameStart:frameStart+cornerLen],
			f.data[corner:corner+int64(cornerLen)])
		corner += int64(cornerLen)
	}
	return s, nil
}

// Frame returns a single frame, the leading stack dimension squeezed to
// one. Same as Layer(index, 1).
func (f *File) Frame(index int) (*Stack, error) {
	return f.Layer(index, 1)
}

// At returns the pixel at (frame, row, col), widened to uint16 for
// 1-byte files.
func (s *Stack) At(frame, row, col int) uint16 {
	i := (frame*s.Rows*s.Columns + row*s.Columns + col) * s.ByteDepth
	if s.ByteDepth == 1 {
		return uint16(s.Data[i])
	}
	return le.Uint16(s.Data[i:])
}

// Uint16 reinterprets the view as a []uint16 without copying. Only valid
// for 2-byte files; the slice aliases the mapping like Data does.
func (s *Stack) Uint16() []uint16 {
	if s.ByteDepth != 2 {
		return nil
	}
	return unsafe.Slice((*uint16)(unsafe.Pointer(&s.Data[0])), len(s.Data)/2)
}

// Uint8 returns the view as a []uint8. Only valid for 1-byte files.
func (s *Stack) Uint8() []uint8 {
	if s.ByteDepth != 1 {
		return nil
	}
	return s.Data
}

// ToUint16 returns a copy of the stack widened to 2 bytes per pixel.
// The copy owns its data and stays valid after the file is closed.
func (s *Stack) ToUint16() *Stack {
	out := &Stack{
		Data:      make([]byte, s.Frames*s.Rows*s.Columns*2),
		Frames:    s.Frames,
		Rows:      s.Rows,
		Columns:   s.Columns,
		ByteDepth: 2,
	}
	if s.ByteDepth == 2 {
		copy(out.Data, s.Data)
		return out
	}
	for i, v := range s.Data {
		le.PutUint16(out.Data[2*i:], uint16(v))
	}
	return out
}
