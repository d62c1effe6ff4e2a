package tagscan

// TagKind identifies which tag of the closed recognized set a token holds.
// The zero value is TagUnknown. Values fit in a single byte; the high bit is
// reserved for TagClose, so element discriminants stay below 0x80.
type TagKind byte

const (
	TagUnknown TagKind = iota
	TagA
	TagBody
	TagBR
	TagCode
	TagDiv
	TagH1
	TagH2
	TagH3
	TagH4
	TagH5
	TagH6
	TagHead
	TagHR
	TagHTML
	TagImg
	TagLI
	TagOL
	TagP
	TagPre
	TagSpan
	TagTable
	TagTD
	TagTitle
	TagTR
	TagUL
	tagKindCount
)

// TagClose marks a closing tag. The scanner ORs it into the element kind, so
// "</h1>" carries TagH1|TagClose and the discriminant still fits one byte.
const TagClose TagKind = 0x80

// Token pairs a tag's start offset in the source buffer with its kind.
// Tokens are materialized on read from the store's parallel sequences and
// never held in this combined form.
type Token struct {
	Pos  uint32
	Kind TagKind
}

// Closing reports whether k describes a closing tag.
func (k TagKind) Closing() bool {
	return k&TagClose != 0
}

// Element strips the closing marker, leaving the element discriminant.
func (k TagKind) Element() TagKind {
	return k &^ TagClose
}

func (k TagKind) valid() bool {
	return k.Element() < tagKindCount
}

func (k TagKind) String() string {
	e := k.Element()
	if e >= tagKindCount {
		return "invalid"
	}
	if k.Closing() {
		return "/" + tagNames[e]
	}
	return tagNames[e]
}

// maxTagNameLen is the longest name in the recognized set ("table", "title").
const maxTagNameLen = 5

var tagNames = [tagKindCount]string{
	TagUnknown: "unknown",
	TagA:       "a",
	TagBody:    "body",
	TagBR:      "br",
	TagCode:    "code",
	TagDiv:     "div",
	TagH1:      "h1",
	TagH2:      "h2",
	TagH3:      "h3",
	TagH4:      "h4",
	TagH5:      "h5",
	TagH6:      "h6",
	TagHead:    "head",
	TagHR:      "hr",
	TagHTML:    "html",
	TagImg:     "img",
	TagLI:      "li",
	TagOL:      "ol",
	TagP:       "p",
	TagPre:     "pre",
	TagSpan:    "span",
	TagTable:   "table",
	TagTD:      "td",
	TagTitle:   "title",
	TagTR:      "tr",
	TagUL:      "ul",
}

var kindByName = make(map[string]TagKind, tagKindCount)

func init() {
	for k, name := range tagNames {
		if TagKind(k) != TagUnknown {
			kindByName[name] = TagKind(k)
		}
	}
}

// Classify maps a raw tag-name byte span to its TagKind. Comparison is ASCII
// case-insensitive. Names outside the recognized set yield TagUnknown rather
// than an error; the scanner relies on classification being total.
func Classify(name []byte) TagKind {
	if len(name) == 0 || len(name) > maxTagNameLen {
		return TagUnknown
	}
	var lower [maxTagNameLen]byte
	for i, b := range name {
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		lower[i] = b
	}
	// Map access with a converted byte slice key does not allocate.
	return kindByName[string(lower[:len(name)])]
}
