package output

import (
	"bytes"
	"encoding/binary"
	"image"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/tiff"

	"github.com/lightsheet/dcimg-go/dcimg"
)

func testStack(byteDepth int) *dcimg.Stack {
	const rows, cols = 4, 4
	s := &dcimg.Stack{
		Data:      make([]byte, rows*cols*byteDepth),
		Frames:    1,
		Rows:      rows,
		Columns:   cols,
		ByteDepth: byteDepth,
	}
	for i := 0; i < rows*cols; i++ {
		if byteDepth == 1 {
			s.Data[i] = uint8(i * 16)
		} else {
			binary.LittleEndian.PutUint16(s.Data[2*i:], uint16(i*4000))
		}
	}
	return s
}

func TestExportPGM16(t *testing.T) {
	s := testStack(2)
	path := filepath.Join(t.TempDir(), "frame.pgm")
	if err := ExportPGM(s, 0, path); err != nil {
		t.Fatalf("ExportPGM: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	header := []byte("P5\n4 4\n65535\n")
	if !bytes.HasPrefix(data, header) {
		t.Fatalf("header = %q", data[:len(header)])
	}
	payload := data[len(header):]
	if len(payload) != 4*4*2 {
		t.Fatalf("payload len = %d, want 32", len(payload))
	}
	// PGM 16-bit samples are big-endian
	if got := binary.BigEndian.Uint16(payload[2:]); got != 4000 {
		t.Errorf("pixel 1 = %d, want 4000", got)
	}
}

func TestExportPGM8(t *testing.T) {
	s := testStack(1)
	path := filepath.Join(t.TempDir(), "frame.pgm")
	if err := ExportPGM(s, 0, path); err != nil {
		t.Fatalf("ExportPGM: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	header := []byte("P5\n4 4\n255\n")
	if !bytes.HasPrefix(data, header) {
		t.Fatalf("header = %q", data[:len(header)])
	}
	if got := data[len(header)+3]; got != 48 {
		t.Errorf("pixel 3 = %d, want 48", got)
	}
}

func TestExportTIFFRoundTrip(t *testing.T) {
	s := testStack(2)
	path := filepath.Join(t.TempDir(), "frame.tiff")
	if err := ExportTIFF(s, 0, path); err != nil {
		t.Fatalf("ExportTIFF: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	img, err := tiff.Decode(f)
	if err != nil {
		t.Fatalf("tiff.Decode: %v", err)
	}
	gray, ok := img.(*image.Gray16)
	if !ok {
		t.Fatalf("decoded %T, want *image.Gray16", img)
	}
	for y := 0; y < s.Rows; y++ {
		for x := 0; x < s.Columns; x++ {
			if got, want := gray.Gray16At(x, y).Y, s.At(0, y, x); got != want {
				t.Fatalf("pixel (%d,%d) = %d, want %d", x, y, got, want)
			}
		}
	}
}

func TestGrayImage8(t *testing.T) {
	s := testStack(1)
	img, ok := GrayImage(s, 0).(*image.Gray)
	if !ok {
		t.Fatal("GrayImage on a 1-byte stack should be *image.Gray")
	}
	if got := img.GrayAt(2, 1).Y; got != uint8(s.At(0, 1, 2)) {
		t.Errorf("pixel (2,1) = %d, want %d", got, s.At(0, 1, 2))
	}
}
