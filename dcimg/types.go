package dcimg

// File represents an open DCIMG file
type File struct {
	Header  *FileHeader
	Session *SessionHeader

	data    []byte
	closer  func() error
	elemLen int // bytes per pixel, cached from Session.ByteDepth
}

// FileHeader represents the DCIMG file header (72 bytes)
type FileHeader struct {
	Format        [8]byte
	FormatVersion uint32
	Nsess         uint32
	Nfrms         uint32
	HeaderSize    uint32
	FileSize      uint64
	FileSize2     uint64 // repeated copy of FileSize, not enforced
}

// SessionHeader represents the session header (80 bytes), located at
// the file header's HeaderSize offset. Only session 0 is supported.
type SessionHeader struct {
	SessionSize     uint64 // including footer
	Nfrms           uint32
	ByteDepth       uint32 // bytes per pixel, 1 or 2
	Xsize           uint32
	BytesPerRow     uint32
	Ysize           uint32
	BytesPerImg     uint32
	HeaderSize      uint32
	SessionDataSize uint64 // header + x*y*byte_depth*nfrms
}

// Stack is a view over one or more consecutive frames, shaped
// (Frames, Rows, Columns). Data aliases the mapped file region unless
// the stack was produced by a converting copy; an aliasing stack must
// not be used after the File is closed.
type Stack struct {
	Data      []byte
	Frames    int
	Rows      int
	Columns   int
	ByteDepth int
}
