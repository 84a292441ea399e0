package output

import (
	"fmt"
	"os"

	"golang.org/x/image/tiff"

	"github.com/lightsheet/dcimg-go/dcimg"
)

// ExportTIFF writes one frame of a stack as an uncompressed grayscale
// TIFF (8 or 16 bits per sample, matching the file's byte depth).
func ExportTIFF(s *dcimg.Stack, frame int, outputPath string) error {
	f, err := os.Create(outputPath)
	if err != nil {
		return err
	}
	defer f.Close()

	img := GrayImage(s, frame)
	opts := &tiff.Options{Compression: tiff.Uncompressed}
	if err := tiff.Encode(f, img, opts); err != nil {
		return fmt.Errorf("tiff encode failed: %w", err)
	}
	return nil
}
