// Package tagscan is a memory-efficient lexical scanner for markup documents.
// It extracts tag tokens and their source offsets in a single forward pass and
// stores them in a structure-of-arrays layout: per-token fields live in
// separate packed sequences instead of one padded combined record.
package tagscan

// Scan tokenizes src into a fresh store and returns the completed stream.
func Scan(src []byte) (TokenStream, error) {
	store := NewTokenStore()
	if err := NewScanner(src).Scan(store); err != nil {
		return TokenStream{}, err
	}
	return store.Stream(), nil
}
