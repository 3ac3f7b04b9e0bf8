package input

import (
	"bytes"
)

// Cursor is a positioned reader over a generated buffer.
type Cursor struct {
	*bytes.Reader
}

// NewCursor wraps the exact bytes Generate returns for (size, seed).
func NewCursor(size int, seed uint32) *Cursor {
	return CursorOver(Generate(size, seed))
}

// CursorOver wraps an existing buffer.
func CursorOver(data []byte) *Cursor {
	return &Cursor{Reader: bytes.NewReader(data)}
}

// Position is the offset of the next byte to be read.
func (c *Cursor) Position() int64 {
	return c.Size() - int64(c.Len())
}
