package tagscan

import "io"

// ScanString tokenizes a string source.
func ScanString(s string) (TokenStream, error) {
	return Scan([]byte(s))
}

// ScanReader tokenizes everything readable from r. The reader is drained into
// memory up front; the scanner itself never performs I/O.
func ScanReader(r io.Reader) (TokenStream, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return TokenStream{}, err
	}
	return Scan(b)
}
