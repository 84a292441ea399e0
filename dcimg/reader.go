package dcimg

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/lightsheet/dcimg-go/internal/mmap"
)

var le = binary.LittleEndian

// Open memory-maps a DCIMG file for reading. The mapping is private
// (copy-on-write), so nothing ever writes through to the file.
func Open(filename string) (*File, error) {
	m, err := mmap.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to map file: %w", err)
	}

	f, err := NewBytes(m.Bytes())
	if err != nil {
		m.Close()
		return nil, err
	}
	f.closer = m.Close
	return f, nil
}

// NewBytes opens a DCIMG image over a caller-owned byte range, typically
// a memory mapping. The range must stay valid until Close and must be
// writable: restoring a frame's corner pixels patches them into the
// range, which is why Open maps files copy-on-write. Any view returned
// by Layer or Frame may alias the range.
func NewBytes(data []byte) (*File, error) {
	f := &File{data: data}
	if err := f.parseHeader(); err != nil {
		return nil, err
	}
	return f, nil
}

// Close releases the mapping. Views obtained from this file must not be
// used afterwards.
func (f *File) Close() error {
	f.data = nil
	if f.closer != nil {
		c := f.closer
		f.closer = nil
		return c()
	}
	return nil
}

// parseHeader decodes and validates the file and session headers and
// caches the derived element size. It never touches pixel data.
func (f *File) parseHeader() error {
	if err := f.checkRange("file header", 0, FileHeaderSize); err != nil {
		return err
	}
	buf := f.data[:FileHeaderSize]

	hdr := &FileHeader{}
	copy(hdr.Format[:], buf[0:8])
	if !bytes.Equal(hdr.Format[:len(Magic)], []byte(Magic)) {
		return formatErrorf("magic bytes", fmt.Sprintf("%q", Magic),
			fmt.Sprintf("%q", hdr.Format[:len(Magic)]))
	}
	hdr.FormatVersion = le.Uint32(buf[fhFormatVersion:])
	hdr.Nsess = le.Uint32(buf[fhNsess:])
	hdr.Nfrms = le.Uint32(buf[fhNfrms:])
	hdr.HeaderSize = le.Uint32(buf[fhHeaderSize:])
	hdr.FileSize = le.Uint64(buf[fhFileSize:])
	hdr.FileSize2 = le.Uint64(buf[fhFileSize2:])
	f.Header = hdr

	sessOff := int64(hdr.HeaderSize)
	if err := f.checkRange("session header", sessOff, SessionHeaderSize); err != nil {
		return err
	}
	sbuf := f.data[sessOff : sessOff+SessionHeaderSize]

	sess := &SessionHeader{
		SessionSize:     le.Uint64(sbuf[shSessionSize:]),
		Nfrms:           le.Uint32(sbuf[shNfrms:]),
		ByteDepth:       le.Uint32(sbuf[shByteDepth:]),
		Xsize:           le.Uint32(sbuf[shXsize:]),
		BytesPerRow:     le.Uint32(sbuf[shBytesPerRow:]),
		Ysize:           le.Uint32(sbuf[shYsize:]),
		BytesPerImg:     le.Uint32(sbuf[shBytesPerImg:]),
		HeaderSize:      le.Uint32(sbuf[shHeaderSize:]),
		SessionDataSize: le.Uint64(sbuf[shSessionDataSize:]),
	}
	f.Session = sess

	if sess.ByteDepth != 1 && sess.ByteDepth != 2 {
		return formatErrorf("byte_depth", "1 or 2", sess.ByteDepth)
	}
	f.elemLen = int(sess.ByteDepth)

	// A mismatch here means corruption or an unsupported format variant;
	// it is never silently corrected.
	if sess.BytesPerRow != sess.ByteDepth*sess.Ysize {
		return formatErrorf("bytes_per_row",
			fmt.Sprintf("byte_depth*ysize = %d", sess.ByteDepth*sess.Ysize),
			sess.BytesPerRow)
	}
	if sess.BytesPerImg != sess.BytesPerRow*sess.Ysize {
		return formatErrorf("bytes_per_img",
			fmt.Sprintf("bytes_per_row*ysize = %d", sess.BytesPerRow*sess.Ysize),
			sess.BytesPerImg)
	}

	debug("parsed headers: %d frames, %dx%d, %d byte(s)/px, footer at %d",
		sess.Nfrms, sess.Xsize, sess.Ysize, sess.ByteDepth, f.sessionFooterOffset())
	return nil
}

// Nfrms returns the number of frames in the session.
func (f *File) Nfrms() int { return int(f.Session.Nfrms) }

// ByteDepth returns the number of bytes per pixel (1 or 2).
func (f *File) ByteDepth() int { return int(f.Session.ByteDepth) }

func (f *File) Xsize() int { return int(f.Session.Xsize) }

func (f *File) Ysize() int { return int(f.Session.Ysize) }

func (f *File) BytesPerRow() int { return int(f.Session.BytesPerRow) }

func (f *File) BytesPerImg() int { return int(f.Session.BytesPerImg) }

// Shape returns the stack dimensions in view order (frames, rows, columns).
func (f *File) Shape() (frames, rows, cols int) {
	return f.Nfrms(), f.Ysize(), f.Xsize()
}

// sessionFooterOffset is the byte offset of the session footer: the
// pixel-data region ends where the footer begins.
func (f *File) sessionFooterOffset() int64 {
	return int64(f.Header.HeaderSize) + int64(f.Session.SessionDataSize)
}

// timestampOffset is the byte offset of the per-frame timestamp table,
// past the footer preamble and the per-frame counter table.
func (f *File) timestampOffset() int64 {
	return f.sessionFooterOffset() + footerPreambleSize +
		frameCounterEntrySize*int64(f.Session.Nfrms)
}
