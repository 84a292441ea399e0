package dcimg

import "encoding/binary"

// synthOpts describes a synthetic DCIMG file for tests.
type synthOpts struct {
	nfrms      int
	xsize      int
	ysize      int
	byteDepth  int
	timestamps [][2]uint32 // per frame: whole, fraction

	// corrupt lets a test damage the encoded headers before parsing
	corrupt func(data []byte)
}

// pixelValue is the reference pattern tests compare against: the value
// every pixel of the synthetic main block holds before the sentinel is
// stamped over each frame's first pixels.
func pixelValue(frame, y, x, byteDepth int) uint16 {
	v := uint16(frame*1000 + y*40 + x + 7)
	if byteDepth == 1 {
		v &= 0xFF
	}
	return v
}

// buildSynthetic encodes a complete DCIMG byte range: file header,
// reserved gap, session header at offset 152, pixel block at 232 with
// the sentinel stamped over each frame's first five pixels, then the
// footer (preamble, counter table, timestamp table, corner-pixel
// backups of the true first four pixels).
func buildSynthetic(o synthOpts) []byte {
	if o.byteDepth == 0 {
		o.byteDepth = 2
	}
	bd := o.byteDepth
	imgLen := o.xsize * o.ysize * bd

	const headerSize = 152 // session header location; pixels at 152+80 = 232
	sessionDataSize := SessionHeaderSize + imgLen*o.nfrms
	footerOff := headerSize + sessionDataSize
	footerLen := footerPreambleSize +
		o.nfrms*(frameCounterEntrySize+timestampEntrySize+cornerPixelCount*bd)

	data := make([]byte, footerOff+footerLen)
	le := binary.LittleEndian

	// file header
	copy(data[0:], Magic)
	le.PutUint32(data[fhFormatVersion:], 0x1000000)
	le.PutUint32(data[fhNsess:], 1)
	le.PutUint32(data[fhNfrms:], uint32(o.nfrms))
	le.PutUint32(data[fhHeaderSize:], headerSize)
	le.PutUint64(data[fhFileSize:], uint64(len(data)))
	le.PutUint64(data[fhFileSize2:], uint64(len(data)))

	// session header
	s := data[headerSize:]
	le.PutUint64(s[shSessionSize:], uint64(sessionDataSize+footerLen))
	le.PutUint32(s[shNfrms:], uint32(o.nfrms))
	le.PutUint32(s[shByteDepth:], uint32(bd))
	le.PutUint32(s[shXsize:], uint32(o.xsize))
	le.PutUint32(s[shBytesPerRow:], uint32(bd*o.ysize))
	le.PutUint32(s[shYsize:], uint32(o.ysize))
	le.PutUint32(s[shBytesPerImg:], uint32(bd*o.ysize*o.ysize))
	le.PutUint32(s[shHeaderSize:], SessionHeaderSize)
	le.PutUint64(s[shSessionDataSize:], uint64(sessionDataSize))

	putPixel := func(off int, v uint16) {
		if bd == 1 {
			data[off] = uint8(v)
		} else {
			le.PutUint16(data[off:], v)
		}
	}

	// main pixel block, sentinel stamped over each frame's first pixels
	for f := 0; f < o.nfrms; f++ {
		base := pixelDataOffset + f*imgLen
		for y := 0; y < o.ysize; y++ {
			for x := 0; x < o.xsize; x++ {
				putPixel(base+(y*o.xsize+x)*bd, pixelValue(f, y, x, bd))
			}
		}
		for i, v := range SentinelPattern {
			putPixel(base+i*bd, v)
		}
	}

	// footer: counters, timestamps, corner-pixel backups
	counterOff := footerOff + footerPreambleSize
	tsOff := counterOff + frameCounterEntrySize*o.nfrms
	cornerOff := tsOff + timestampEntrySize*o.nfrms
	for f := 0; f < o.nfrms; f++ {
		le.PutUint32(data[counterOff+4*f:], uint32(f))
		if f < len(o.timestamps) {
			le.PutUint32(data[tsOff+8*f:], o.timestamps[f][0])
			le.PutUint32(data[tsOff+8*f+4:], o.timestamps[f][1])
		}
		for i := 0; i < cornerPixelCount; i++ {
			putPixel(cornerOff+(f*cornerPixelCount+i)*bd, pixelValue(f, 0, i, bd))
		}
	}

	if o.corrupt != nil {
		o.corrupt(data)
	}
	return data
}
