package dcimg

// Timestamps decodes the per-frame acquisition timestamps from the
// footer, in frame order. Values are seconds since an unspecified epoch.
//
// Each entry is two little-endian uint32s: whole seconds, then a
// fraction whose decimal scale is its own digit count, so fraction 5
// and fraction 500 both mean .5 (trailing zeros carry no meaning, and
// a fraction with leading zeros cannot be represented by the encoding).
func (f *File) Timestamps() ([]float64, error) {
	nfrms := f.Nfrms()
	offset := f.timestampOffset()
	if err := f.checkRange("timestamp table", offset,
		timestampEntrySize*int64(nfrms)); err != nil {
		return nil, err
	}

	ts := make([]float64, nfrms)
	for i := 0; i < nfrms; i++ {
		whole := le.Uint32(f.data[offset:])
		offset += 4
		fraction := le.Uint32(f.data[offset:])
		offset += 4

		val := float64(whole)
		if fraction != 0 {
			// scale = 10^digits(fraction)
			scale := 1.0
			for rest := fraction; rest > 0; rest /= 10 {
				scale *= 10
			}
			val += float64(fraction) / scale
		}
		ts[i] = val
	}
	return ts, nil
}
