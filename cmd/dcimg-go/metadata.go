package main

import (
	"fmt"

	"github.com/lightsheet/dcimg-go/dcimg"
)

func dumpMetadata(file *dcimg.File) error {
	h := file.Header
	s := file.Session

	fmt.Printf("file header.\n")
	fmt.Printf("  format            = %q\n", h.Format[:len(dcimg.Magic)])
	fmt.Printf("  format_version    = 0x%08x\n", h.FormatVersion)
	fmt.Printf("  nsess             = %d\n", h.Nsess)
	fmt.Printf("  nfrms             = %d\n", h.Nfrms)
	fmt.Printf("  header_size       = %d\n", h.HeaderSize)
	fmt.Printf("  file_size         = %d\n", h.FileSize)
	fmt.Printf("  file_size2        = %d\n", h.FileSize2)

	fmt.Printf("session header.\n")
	fmt.Printf("  session_size      = %d\n", s.SessionSize)
	fmt.Printf("  nfrms             = %d\n", s.Nfrms)
	fmt.Printf("  byte_depth        = %d\n", s.ByteDepth)
	fmt.Printf("  xsize             = %d\n", s.Xsize)
	fmt.Printf("  ysize             = %d\n", s.Ysize)
	fmt.Printf("  bytes_per_row     = %d\n", s.BytesPerRow)
	fmt.Printf("  bytes_per_img     = %d\n", s.BytesPerImg)
	fmt.Printf("  header_size       = %d\n", s.HeaderSize)
	fmt.Printf("  session_data_size = %d\n", s.SessionDataSize)

	return nil
}
