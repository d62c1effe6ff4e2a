package tagscan

import "iter"

// TokenStream is a read-only view over a completed TokenStore. It materializes
// combined Token values on demand from the store's parallel sequences; the
// underlying store must not be mutated while the stream is in use.
type TokenStream struct {
	store *TokenStore
}

// Len returns the number of tokens in the stream.
func (s TokenStream) Len() int {
	if s.store == nil {
		return 0
	}
	return s.store.Len()
}

// TokenAt materializes token i from positions[i] and kinds[i].
func (s TokenStream) TokenAt(i int) (Token, error) {
	if s.store == nil {
		return Token{}, ErrIndexOutOfRange
	}
	pos, kind, err := s.store.Get(i)
	if err != nil {
		return Token{}, err
	}
	return Token{Pos: pos, Kind: kind}, nil
}

// All returns an iterator over the tokens in ascending index order, which is
// also ascending source position since the scanner emits in source order.
// The sequence is finite and restartable; ranging over it twice yields the
// same tokens.
func (s TokenStream) All() iter.Seq[Token] {
	return func(yield func(Token) bool) {
		if s.store == nil {
			return
		}
		for i := range s.store.positions {
			if !yield(Token{Pos: s.store.positions[i], Kind: s.store.kinds[i]}) {
				return
			}
		}
	}
}
