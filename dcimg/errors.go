package dcimg

import "fmt"

// FormatError reports an invalid or unsupported header field. It is
// returned at open time and is fatal: the file cannot be read.
type FormatError struct {
	Field    string
	Expected string
	Actual   string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("dcimg: invalid %s: expected %s, got %s",
		e.Field, e.Expected, e.Actual)
}

// BoundsError reports a read that would fall outside the mapped byte
// range, either because the file is truncated or because the requested
// frame/layer index is past the end of the stack.
type BoundsError struct {
	What   string
	Offset int64
	Need   int64
	Size   int64
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("dcimg: %s out of range: need [%d:%d) in %d mapped bytes",
		e.What, e.Offset, e.Offset+e.Need, e.Size)
}

func formatErrorf(field, expected string, actual interface{}) *FormatError {
	return &FormatError{
		Field:    field,
		Expected: expected,
		Actual:   fmt.Sprintf("%v", actual),
	}
}

// checkRange verifies that [offset, offset+need) lies inside the mapped
// range. Out-of-range reads fail hard, they are never wrapped or clamped.
func (f *File) checkRange(what string, offset, need int64) error {
	if offset < 0 || need < 0 || offset+need > int64(len(f.data)) {
		return &BoundsError{
			What:   what,
			Offset: offset,
			Need:   need,
			Size:   int64(len(f.data)),
		}
	}
	return nil
}
