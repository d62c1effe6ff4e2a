package tagscan

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is returned for token accesses beyond the store length.
	ErrIndexOutOfRange = errors.New("tagscan: token index out of range")

	// ErrTokenLimit is returned by Append when a limited store's budget is
	// exhausted; the store is left unchanged.
	ErrTokenLimit = errors.New("tagscan: token limit reached")
)

// minStoreCap is the backing capacity of the first allocation.
const minStoreCap = 16

// TokenStore owns the two parallel append-only sequences produced by a scan:
// positions and kinds are allocated independently, carry no padding, and
// always have equal length, with index i in both describing the same token.
// A store has exactly one writer (the Scanner) while scanning; once the scan
// completes it is read through a TokenStream and must not be mutated.
type TokenStore struct {
	positions []uint32
	kinds     []TagKind
	limit     int // max token count, 0 means unbounded
}

func NewTokenStore() *TokenStore {
	return &TokenStore{}
}

// NewTokenStoreLimit returns a store whose Append fails once it holds max
// tokens, bounding memory on untrusted input.
func NewTokenStoreLimit(max int) *TokenStore {
	return &TokenStore{limit: max}
}

// Append adds one token to both sequences. Growth is geometric and performed
// for both backing slices as a single step, so on any failure the store is
// observably unchanged and the equal-length invariant holds. Amortized O(1);
// N appends trigger O(log N) reallocations.
func (ts *TokenStore) Append(pos uint32, kind TagKind) error {
	n := len(ts.positions)
	if ts.limit > 0 && n >= ts.limit {
		return fmt.Errorf("%w (%d tokens)", ErrTokenLimit, ts.limit)
	}
	if n == cap(ts.positions) {
		ts.grow(n)
	}
	ts.positions = append(ts.positions, pos)
	ts.kinds = append(ts.kinds, kind)
	return nil
}

// grow doubles both backing slices together rather than letting append size
// them independently, keeping their capacities in lockstep.
func (ts *TokenStore) grow(n int) {
	newCap := 2 * n
	if newCap < minStoreCap {
		newCap = minStoreCap
	}
	positions := make([]uint32, n, newCap)
	kinds := make([]TagKind, n, newCap)
	copy(positions, ts.positions)
	copy(kinds, ts.kinds)
	ts.positions = positions
	ts.kinds = kinds
}

// Len returns the number of stored tokens.
func (ts *TokenStore) Len() int {
	return len(ts.positions)
}

// Get returns the position and kind of token i.
func (ts *TokenStore) Get(i int) (uint32, TagKind, error) {
	if i < 0 || i >= len(ts.positions) {
		return 0, TagUnknown, fmt.Errorf("%w: index %d, length %d",
			ErrIndexOutOfRange, i, len(ts.positions))
	}
	return ts.positions[i], ts.kinds[i], nil
}

// Clear empties both sequences while keeping their backing capacity, so a
// store can be reused across scans without reallocating.
func (ts *TokenStore) Clear() {
	ts.positions = ts.positions[:0]
	ts.kinds = ts.kinds[:0]
}

// Stream returns the read-only view used for queries after scanning completes.
func (ts *TokenStore) Stream() TokenStream {
	return TokenStream{store: ts}
}
