// Package dcimg reads Hamamatsu DCIMG microscopy image files.
//
// A DCIMG file holds a fixed file header, one session header, a
// contiguous block of uncompressed frames and a footer with per-frame
// metadata: counters, acquisition timestamps and a backup of each
// frame's first four pixels, which are overwritten in the main pixel
// block by a hardware sentinel pattern. The package maps the file into
// memory and exposes frames as zero-copy views, restoring the true
// corner pixels from the footer. Only session 0 is read.
package dcimg
