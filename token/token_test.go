package token

import "testing"

func TestTypeStringCoversWholeEnum(t *testing.T) {
	for typ := InputStart; typ <= Email; typ++ {
		s := typ.String()
		if s == "" {
			t.Fatalf("type %d stringified to empty string", int(typ))
		}
	}
}

func TestSpanLen(t *testing.T) {
	s := Span{Start: 3, End: 9}
	if got := s.Len(); got != 6 {
		t.Fatalf("Len() = %d, want 6", got)
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Type: Identifier, Slice: "ruby", Span: Span{Start: 2, End: 6}}
	want := `identifier "ruby" @2:6`
	if got := tok.String(); got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}
