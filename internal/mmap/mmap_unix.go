//go:build unix

package mmap

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Map is an open copy-on-write file mapping.
type Map struct {
	data []byte
}

// Open maps the file into memory.
//
// On Unix systems, the mapping is MAP_PRIVATE with read/write
// protection: reads come from the file, writes stay in anonymous
// copy-on-write pages and never reach disk.
func Open(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("unable to stat file: %w", err)
	}
	size := stat.Size()
	if size == 0 {
		return &Map{}, nil
	}
	if size != int64(int(size)) {
		return nil, fmt.Errorf("file too large to map: %d bytes", size)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("mmap failed: %w", err)
	}
	return &Map{data: data}, nil
}

// Close releases the mapping. Any byte slice previously returned by
// Bytes must not be touched afterwards.
func (m *Map) Close() error {
	if m.data == nil {
		return nil
	}
	data := m.data
	m.data = nil
	return unix.Munmap(data)
}
