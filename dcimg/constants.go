package dcimg

// DCIMG binary layout constants
const (
	// Magic bytes at offset 0
	Magic = "DCIMG"

	// Fixed record sizes
	FileHeaderSize    = 72
	SessionHeaderSize = 80

	// Minimum byte range a parseable file can occupy: file header at 0,
	// session header at FileHeader.HeaderSize (>= FileHeaderSize).
	MinFileSize = FileHeaderSize + SessionHeaderSize

	// Offset from file start to the first frame's pixel block. A literal
	// constant in all observed files, not derived from the session
	// header's own HeaderSize field.
	pixelDataOffset = 232

	// Fixed size of the footer preamble. The footer then holds a 4-byte
	// per-frame counter table, an 8-byte per-frame timestamp table and a
	// 4-pixel per-frame corner-pixel table, in that order.
	footerPreambleSize = 272

	frameCounterEntrySize = 4
	timestampEntrySize    = 8
	cornerPixelCount      = 4
)

// File header field offsets
const (
	fhFormatVersion = 0x08
	fhNsess         = 0x20
	fhNfrms         = 0x24
	fhHeaderSize    = 0x28
	fhFileSize      = 0x30
	fhFileSize2     = 0x40
)

// Session header field offsets (relative to the session header)
const (
	shSessionSize     = 0x00
	shNfrms           = 0x20
	shByteDepth       = 0x24
	shXsize           = 0x2c
	shBytesPerRow     = 0x30
	shYsize           = 0x34
	shBytesPerImg     = 0x38
	shHeaderSize      = 0x44
	shSessionDataSize = 0x48
)

// SentinelPattern is the fixed marker the acquisition hardware writes
// over the first pixels of each frame in the main pixel block, used to
// detect dropped frames. The true values live in the footer.
var SentinelPattern = [5]uint16{0x0000, 0xFFFF, 0x0000, 0xFFFF, 0x0000}
