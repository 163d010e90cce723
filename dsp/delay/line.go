package delay

import (
	"fmt"

	"github.com/cwbudde/algo-fx/dsp/core"
)

// Line is a circular delay line of samples.
//
// The write cursor is always in [0, Len()) and wraps when it reaches Len().
type Line struct {
	buffer   []core.Sample
	writePos int
}

// New returns a zero-filled delay line of fixed size. A size of 0 yields an
// empty line whose reads return 0 and whose writes are dropped.
func New(size int) (*Line, error) {
	if size < 0 {
		return nil, fmt.Errorf("delay size must be >= 0: %d", size)
	}

	return &Line{buffer: make([]core.Sample, size)}, nil
}

// Len returns internal buffer size.
func (d *Line) Len() int {
	return len(d.buffer)
}

// Cursor returns the current write position.
func (d *Line) Cursor() int {
	return d.writePos
}

// Resize reallocates the line to size samples, zero-fills it and moves the
// cursor to 0. It reports whether anything changed; a line that already has
// the requested size keeps its contents.
func (d *Line) Resize(size int) bool {
	if size < 0 {
		size = 0
	}

	if size == len(d.buffer) {
		return false
	}

	d.buffer = make([]core.Sample, size)
	d.writePos = 0

	return true
}

// Write writes one sample at the cursor and advances it.
func (d *Line) Write(sample core.Sample) {
	if len(d.buffer) == 0 {
		return
	}

	d.buffer[d.writePos] = sample

	d.writePos++
	if d.writePos >= len(d.buffer) {
		d.writePos = 0
	}
}

// Read reads the sample written delay writes ago. Read(Len()) returns the
// slot the next Write will overwrite.
func (d *Line) Read(delay int) core.Sample {
	size := len(d.buffer)
	if size == 0 {
		return 0
	}

	readPos := ((d.writePos-delay)%size + size) % size

	return d.buffer[readPos]
}

// At returns the raw buffer slot i, or 0 when i is out of range.
func (d *Line) At(i int) core.Sample {
	if i < 0 || i >= len(d.buffer) {
		return 0
	}

	return d.buffer[i]
}

// Reset clears line state.
func (d *Line) Reset() {
	core.Zero(d.buffer)
	d.writePos = 0
}

// Clone returns an independent copy of the line and its cursor.
func (d *Line) Clone() *Line {
	buf := make([]core.Sample, len(d.buffer))
	copy(buf, d.buffer)

	return &Line{buffer: buf, writePos: d.writePos}
}
