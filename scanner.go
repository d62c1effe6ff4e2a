package tagscan

import (
	"errors"
	"math"
)

// ErrSourceTooLarge is returned when the input buffer cannot be addressed by
// 32-bit token positions.
var ErrSourceTooLarge = errors.New("tagscan: source exceeds 4 GiB position range")

type scanState int

const (
	stateOutside scanState = iota // plain text between tags
	stateTagOpen                  // just consumed '<', expecting a name start or '/'
	stateTagName                  // accumulating tag-name bytes
	stateInTag                    // past the name, skipping to '>' with quote tracking
)

// Scanner walks a markup document in a single forward pass and appends one
// (offset, kind) token per recognized tag boundary into a TokenStore. It
// borrows the source buffer read-only for the duration of a scan and keeps no
// state beyond its cursor; malformed markup never produces an error.
type Scanner struct {
	src []byte
	pos int
}

func NewScanner(src []byte) *Scanner {
	return &Scanner{src: src}
}

// Scan runs the state machine over the whole source, appending tokens to
// store in source order. It is restartable: a second call repeats the scan
// from the beginning. The only failures are an oversized source and a store
// that refuses an append; a failed append aborts the scan immediately.
//
// A closing tag emits the same element discriminant as its opening tag with
// TagClose set. A truncated tag at end of input is dropped without a token.
func (s *Scanner) Scan(store *TokenStore) error {
	if len(s.src) > math.MaxUint32 {
		return ErrSourceTooLarge
	}

	state := stateOutside
	var (
		start     int  // offset of the '<' that opened the current tag
		nameStart int  // offset of the first tag-name byte
		closing   bool // saw '/' immediately after '<'
		quote     byte // active attribute-value quote, 0 when unquoted
	)

	for s.pos = 0; s.pos < len(s.src); s.pos++ {
		b := s.src[s.pos]

		switch state {
		case stateOutside:
			if b == '<' {
				state = stateTagOpen
				start = s.pos
				closing = false
			}

		case stateTagOpen:
			switch {
			case b == '/' && !closing:
				closing = true
			case isNameStart(b):
				state = stateTagName
				nameStart = s.pos
			case b == '<':
				// restart on the new '<'; the previous one was literal text
				start = s.pos
				closing = false
			default:
				// stray '<' not opening a tag, treat as literal text
				state = stateOutside
			}

		case stateTagName:
			if isNameByte(b) {
				continue
			}
			kind := Classify(s.src[nameStart:s.pos])
			if closing {
				kind |= TagClose
			}
			if err := store.Append(uint32(start), kind); err != nil {
				return err
			}
			if b == '>' {
				state = stateOutside
			} else {
				state = stateInTag
				quote = 0
				if b == '\'' || b == '"' {
					quote = b
				}
			}

		case stateInTag:
			switch {
			case quote != 0:
				if b == quote {
					quote = 0
				}
			case b == '\'' || b == '"':
				quote = b
			case b == '>':
				state = stateOutside
			}
		}
	}
	// End of input mid-tag: the partial trailing tag is dropped.
	return nil
}

func isNameStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isNameByte(b byte) bool {
	return isNameStart(b) || (b >= '0' && b <= '9')
}
