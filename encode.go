package tagscan

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrCorruptEncoding is returned when UnmarshalBinary rejects malformed data.
var ErrCorruptEncoding = errors.New("tagscan: corrupt token store encoding")

// encodeHeaderLen is the little-endian uint32 token count preceding the arrays.
const encodeHeaderLen = 4

// MarshalBinary encodes the store as the direct mirror of its in-memory
// layout: a little-endian uint32 token count, the packed little-endian
// positions array, then the packed one-byte kinds array. Two contiguous
// unpadded arrays, never an interleaved record.
func (ts *TokenStore) MarshalBinary() ([]byte, error) {
	n := len(ts.positions)
	buf := make([]byte, 0, encodeHeaderLen+5*n)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(n))
	for _, p := range ts.positions {
		buf = binary.LittleEndian.AppendUint32(buf, p)
	}
	for _, k := range ts.kinds {
		buf = append(buf, byte(k))
	}
	return buf, nil
}

// UnmarshalBinary replaces the store contents with the decoded sequences.
// On any error the store is left unchanged; on success the equal-length
// invariant holds by construction.
func (ts *TokenStore) UnmarshalBinary(data []byte) error {
	if len(data) < encodeHeaderLen {
		return fmt.Errorf("%w: %d bytes, want at least %d", ErrCorruptEncoding, len(data), encodeHeaderLen)
	}
	n := int(binary.LittleEndian.Uint32(data))
	if len(data) != encodeHeaderLen+5*n {
		return fmt.Errorf("%w: %d bytes for %d tokens", ErrCorruptEncoding, len(data), n)
	}
	positions := make([]uint32, n)
	kinds := make([]TagKind, n)
	for i := range positions {
		positions[i] = binary.LittleEndian.Uint32(data[encodeHeaderLen+4*i:])
	}
	kindBytes := data[encodeHeaderLen+4*n:]
	for i := range kinds {
		k := TagKind(kindBytes[i])
		if !k.valid() {
			return fmt.Errorf("%w: kind byte %#x at token %d", ErrCorruptEncoding, kindBytes[i], i)
		}
		kinds[i] = k
	}
	ts.positions = positions
	ts.kinds = kinds
	return nil
}
