// Package mmap maps files into memory as private copy-on-write byte
// ranges. Writes to the range land in private pages and are never
// flushed to the underlying file.
package mmap

// Bytes returns the mapped byte range. It aliases the mapping directly
// and is only valid until Close.
func (m *Map) Bytes() []byte { return m.data }

// Len returns the size of the mapped range in bytes.
func (m *Map) Len() int { return len(m.data) }
