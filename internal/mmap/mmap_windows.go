//go:build windows

package mmap

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Map is an open copy-on-write file mapping.
type Map struct {
	data   []byte
	handle windows.Handle
}

// Open maps the file into memory.
//
// On Windows, the mapping uses FILE_MAP_COPY, the copy-on-write mode:
// reads come from the file, writes stay in private pages and never
// reach disk.
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

	h, err := windows.CreateFileMapping(windows.Handle(f.Fd()), nil,
		windows.PAGE_WRITECOPY, uint32(size>>32), uint32(size), nil)
	if err != nil {
		return nil, fmt.Errorf("CreateFileMapping failed: %w", err)
	}

	addr, err := windows.MapViewOfFile(h, windows.FILE_MAP_COPY, 0, 0, uintptr(size))
	if err != nil {
		windows.CloseHandle(h)
		return nil, fmt.Errorf("MapViewOfFile failed: %w", err)
	}

	return &Map{
		data:   unsafe.Slice((*byte)(unsafe.Pointer(addr)), size),
		handle: h,
	}, nil
}

// Close releases the mapping. Any byte slice previously returned by
// Bytes must not be touched afterwards.
func (m *Map) Close() error {
	if m.data == nil {
		return nil
	}
	addr := uintptr(unsafe.Pointer(&m.data[0]))
	m.data = nil
	err := windows.UnmapViewOfFile(addr)
	if cerr := windows.CloseHandle(m.handle); err == nil {
		err = cerr
	}
	m.handle = 0
	return err
}
