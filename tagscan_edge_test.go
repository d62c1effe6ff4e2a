package tagscan

import (
	"strings"
	"testing"
)

// TestScanNoTokens tests inputs that must produce zero tokens
func TestScanNoTokens(t *testing.T) {
	tests := []struct {
		input string
		desc  string
	}{
		{"", "empty input"},
		{"plain text only", "no markup"},
		{"< not a tag >", "stray '<' without name start"},
		{"<h1", "truncated tag at EOF"},
		{"<", "lone '<' at EOF"},
		{"</", "lone '</' at EOF"},
		{"</ div>", "'/' followed by whitespace"},
		{"<1div>", "digit as name start"},
		{"<>", "empty tag"},
		{"a < b > c", "angle brackets as literal text"},
		{"<<<<", "run of stray '<'"},
	}

	for _, tc := range tests {
		stream, err := ScanString(tc.input)
		if err != nil {
			t.Errorf("ScanString(%q) error: %v (%s)", tc.input, err, tc.desc)
			continue
		}
		if stream.Len() != 0 {
			t.Errorf("ScanString(%q) = %d tokens; want 0 (%s)",
				tc.input, stream.Len(), tc.desc)
		}
	}
}

// TestScanStrayThenReal tests that a stray '<' does not swallow a following tag
func TestScanStrayThenReal(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{"<<div>", []Token{{1, TagDiv}}},
		{"< <p>", []Token{{2, TagP}}},
		{"a < b <span>c</span>", []Token{
			{6, TagSpan},
			{13, TagSpan | TagClose},
		}},
	}

	for _, tc := range tests {
		stream, err := ScanString(tc.input)
		if err != nil {
			t.Errorf("ScanString(%q) error: %v", tc.input, err)
			continue
		}
		assertTokens(t, tc.input, stream, tc.want)
	}
}

// TestScanTruncatedAfterName tests EOF inside a tag whose name already
// terminated: the token was emitted at the name boundary and is kept
func TestScanTruncatedAfterName(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{"<h1 ", []Token{{0, TagH1}}},
		{"<div class=", []Token{{0, TagDiv}}},
		{`<div class="x`, []Token{{0, TagDiv}}},
		{"<br/", []Token{{0, TagBR}}},
	}

	for _, tc := range tests {
		stream, err := ScanString(tc.input)
		if err != nil {
			t.Errorf("ScanString(%q) error: %v", tc.input, err)
			continue
		}
		assertTokens(t, tc.input, stream, tc.want)
	}
}

// TestScanUnclosedQuote tests that an unterminated quote swallows the rest of
// the document without emitting further tokens
func TestScanUnclosedQuote(t *testing.T) {
	stream, err := ScanString(`<div class="a>b <p>not a tag</p>`)
	if err != nil {
		t.Fatalf("ScanString error: %v", err)
	}
	want := []Token{{0, TagDiv}}
	assertTokens(t, "unclosed quote", stream, want)
}

// TestScanLoneScanner tests that NewScanner is restartable over the same source
func TestScanLoneScanner(t *testing.T) {
	scanner := NewScanner([]byte("<code>x</code>"))

	first := NewTokenStore()
	if err := scanner.Scan(first); err != nil {
		t.Fatalf("first scan error: %v", err)
	}
	second := NewTokenStore()
	if err := scanner.Scan(second); err != nil {
		t.Fatalf("second scan error: %v", err)
	}

	if first.Len() != second.Len() {
		t.Fatalf("restarted scan lengths differ: %d vs %d", first.Len(), second.Len())
	}
	for i := 0; i < first.Len(); i++ {
		p1, k1, _ := first.Get(i)
		p2, k2, _ := second.Get(i)
		if p1 != p2 || k1 != k2 {
			t.Errorf("token %d differs after restart: (%d %v) vs (%d %v)", i, p1, k1, p2, k2)
		}
	}
}

// TestScanAbortsOnFullStore tests that a limited store aborts the scan and
// keeps the already-emitted prefix
func TestScanAbortsOnFullStore(t *testing.T) {
	store := NewTokenStoreLimit(2)
	err := NewScanner([]byte("<ul><li>a</li></ul>")).Scan(store)
	if err == nil {
		t.Fatal("Scan should fail once the store limit is reached")
	}
	if store.Len() != 2 {
		t.Errorf("aborted scan kept %d tokens; want 2", store.Len())
	}
	if len(store.positions) != len(store.kinds) {
		t.Errorf("sequences diverged after aborted scan: %d vs %d",
			len(store.positions), len(store.kinds))
	}
}

// TestScanLongUnknownName tests names longer than any recognized tag
func TestScanLongUnknownName(t *testing.T) {
	name := strings.Repeat("x", 500)
	stream, err := ScanString("<" + name + ">done</" + name + ">")
	if err != nil {
		t.Fatalf("ScanString error: %v", err)
	}
	want := []Token{
		{0, TagUnknown},
		{uint32(1 + len(name) + 1 + 4), TagUnknown | TagClose},
	}
	assertTokens(t, "long unknown name", stream, want)
}
