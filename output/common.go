package output

import (
	"image"

	"github.com/lightsheet/dcimg-go/dcimg"
)

type Config struct {
	Input      string
	Output     string
	Frame      int
	Verbose    bool
	DumpMeta   bool
	Timestamps bool
}

// GrayImage converts one frame of a stack into a stdlib grayscale
// image: Gray for 1-byte files, Gray16 for 2-byte files. The result is
// a copy and stays valid after the file is closed.
func GrayImage(s *dcimg.Stack, frame int) image.Image {
	if s.ByteDepth == 1 {
		img := image.NewGray(image.Rect(0, 0, s.Columns, s.Rows))
		for y := 0; y < s.Rows; y++ {
			copy(img.Pix[y*img.Stride:y*img.Stride+s.Columns],
				s.Data[(frame*s.Rows+y)*s.Columns:])
		}
		return img
	}

	img := image.NewGray16(image.Rect(0, 0, s.Columns, s.Rows))
	for y := 0; y < s.Rows; y++ {
		for x := 0; x < s.Columns; x++ {
			v := s.At(frame, y, x)
			i := y*img.Stride + 2*x
			// Gray16 samples are big-endian.
			img.Pix[i] = uint8(v >> 8)
			img.Pix[i+1] = uint8(v)
		}
	}
	return img
}
