package output

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/lightsheet/dcimg-go/dcimg"
)

// ExportPGM writes one frame of a stack as a binary (P5) PGM file.
// 2-byte frames use the 16-bit big-endian sample encoding the format
// prescribes for maxval > 255.
func ExportPGM(s *dcimg.Stack, frame int, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	maxval := 255
	if s.ByteDepth == 2 {
		maxval = 65535
	}
	fmt.Fprintf(w, "P5\n%d %d\n%d\n", s.Columns, s.Rows, maxval)

	if s.ByteDepth == 1 {
		start := frame * s.Rows * s.Columns
		if _, err := w.Write(s.Data[start : start+s.Rows*s.Columns]); err != nil {
			return err
		}
		return w.Flush()
	}

	var px [2]byte
	for y := 0; y < s.Rows; y++ {
		for x := 0; x < s.Columns; x++ {
			binary.BigEndian.PutUint16(px[:], s.At(frame, y, x))
			if _, err := w.Write(px[:]); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}
