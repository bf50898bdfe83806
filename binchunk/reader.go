package binchunk

import (
	"encoding/binary"
	"math"

	"github.com/fanlia/luaz/luaerr"
)

// reader is a byte cursor over an immutable input buffer. readBytes
// returns sub-slices that borrow from data; readString copies its payload
// into a new Go string.
type reader struct {
	data []byte
	pos  int
}

func newReader(data []byte) *reader {
	return &reader{data: data}
}

func (r *reader) truncated() error {
	return luaerr.New(luaerr.Truncated, "unexpected end of chunk at offset %d", r.pos)
}

func (r *reader) readByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, r.truncated()
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

func (r *reader) readBytes(n int) ([]byte, error) {
	if n < 0 || r.pos+n > len(r.data) {
		return nil, r.truncated()
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) readU32() (uint32, error) {
	b, err := r.readBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *reader) readU64() (uint64, error) {
	b, err := r.readBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *reader) readLuaInteger() (int64, error) {
	u, err := r.readU64()
	if err != nil {
		return 0, err
	}
	return int64(u), nil
}

func (r *reader) readLuaNumber() (float64, error) {
	u, err := r.readU64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(u), nil
}

// readString decodes Lua's length-prefixed string encoding: a one-byte
// size, or (if that byte is 0xFF) an 8-byte size following it. The stored
// length includes the trailing NUL Lua appends, so the returned payload is
// one byte shorter than the size field.
func (r *reader) readString() (string, error) {
	size, err := r.readByte()
	if err != nil {
		return "", err
	}
	if size == 0 {
		return "", nil
	}

	n := uint64(size)
	if size == 0xFF {
		n, err = r.readU64()
		if err != nil {
			return "", err
		}
	}

	b, err := r.readBytes(int(n - 1))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *reader) readU32Slice(n int) ([]uint32, error) {
	out := make([]uint32, n)
	for i := range out {
		v, err := r.readU32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
