// Package binary provides low-level binary reading for ISOBUS object pool parsing.
package binary

import (
	"encoding/binary"
	"errors"
)

// ErrUnexpectedEnd is returned when a read would pass the end of the buffer.
var ErrUnexpectedEnd = errors.New("unexpected end of pool data")

// Cursor reads little-endian values from an immutable byte buffer.
//
// Every read is bounds-checked. A failed read moves the position to the end
// of the buffer so that no later read on the same cursor can appear to
// succeed; callers must treat the whole decode as failed. Multi-element
// regions whose element count comes from the stream itself should be checked
// with Require before the element loop, so a hostile count cannot drive
// per-element reads past the buffer one element at a time.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor creates a cursor positioned at the start of buf.
// The cursor does not copy buf; callers must not mutate it while parsing.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current read position.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.buf) - c.pos
}

// Require verifies that at least n bytes remain. On failure the position is
// moved to end-of-buffer and ErrUnexpectedEnd is returned.
func (c *Cursor) Require(n int) error {
	if n < 0 || n > c.Remaining() {
		c.pos = len(c.buf)
		return ErrUnexpectedEnd
	}
	return nil
}

// ReadUint8 reads an unsigned 8-bit integer.
func (c *Cursor) ReadUint8() (uint8, error) {
	if err := c.Require(1); err != nil {
		return 0, err
	}
	v := c.buf[c.pos]
	c.pos++
	return v, nil
}

// ReadUint16 reads an unsigned 16-bit little-endian integer.
func (c *Cursor) ReadUint16() (uint16, error) {
	if err := c.Require(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(c.buf[c.pos:])
	c.pos += 2
	return v, nil
}

// ReadInt16 reads a signed 16-bit little-endian integer.
func (c *Cursor) ReadInt16() (int16, error) {
	v, err := c.ReadUint16()
	return int16(v), err
}

// ReadUint32 reads an unsigned 32-bit little-endian integer.
func (c *Cursor) ReadUint32() (uint32, error) {
	if err := c.Require(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(c.buf[c.pos:])
	c.pos += 4
	return v, nil
}

// ReadBytes reads exactly n bytes. The returned slice aliases the underlying
// buffer and must not be modified.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	if err := c.Require(n); err != nil {
		return nil, err
	}
	v := c.buf[c.pos : c.pos+n]
	c.pos += n
	return v, nil
}
