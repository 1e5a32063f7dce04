// Package token defines the lexical tokens produced by the tokenizer.
//
// The token set is closed: every member of Type must have an entry in
// tokenToDescription, checked once at package init, following the same
// discipline the original SQL tokenizer this code was adapted from used
// for its own closed TokenType enum.
package token

import "fmt"

// Type identifies the lexical class of a Token.
type Type int

const (
	// InputStart and InputEnd bracket every token stream as synthetic
	// sentinels; they never correspond to actual input bytes.
	InputStart Type = iota
	InputEnd

	LineBreak
	ParagraphBreak
	Whitespace
	Identifier
	Other

	LeftBracket
	LeftBracketStar
	RightBracket
	LeftBlock      // [[
	LeftBlockStar  // [[*
	LeftBlockEnd   // [[/
	RightBlock     // ]]

	Colon
	Pipe
	BulletItem
	NumberedItem

	EmDash
	LeftDoubleSlash  // //
	LeftDoubleDash   // --
	Underscore       // __ (pair delimiter, two underscores consumed as a unit)
	Caret            // ^^
	Tilde            // ~~
	LeftDoubleBrace  // {{
	RightDoubleBrace // }}
	DoubleSingleQuote
	Email
)

var tokenToDescription = map[Type]string{
	InputStart:        "input-start",
	InputEnd:          "input-end",
	LineBreak:         "line-break",
	ParagraphBreak:    "paragraph-break",
	Whitespace:        "whitespace",
	Identifier:        "identifier",
	Other:             "other",
	LeftBracket:       "left-bracket",
	LeftBracketStar:   "left-bracket-star",
	RightBracket:      "right-bracket",
	LeftBlock:         "left-block",
	LeftBlockStar:     "left-block-star",
	LeftBlockEnd:      "left-block-end",
	RightBlock:        "right-block",
	Colon:             "colon",
	Pipe:              "pipe",
	BulletItem:        "bullet-item",
	NumberedItem:      "numbered-item",
	EmDash:            "em-dash",
	LeftDoubleSlash:   "double-slash",
	LeftDoubleDash:    "double-dash",
	Underscore:        "double-underscore",
	Caret:             "double-caret",
	Tilde:             "double-tilde",
	LeftDoubleBrace:   "left-double-brace",
	RightDoubleBrace:  "right-double-brace",
	DoubleSingleQuote: "double-single-quote",
	Email:             "email",
}

func init() {
	for t := InputStart; t <= Email; t++ {
		if _, ok := tokenToDescription[t]; !ok {
			panic(fmt.Sprintf("token: type %d has no description, enum is incomplete", int(t)))
		}
	}
}

func (t Type) String() string {
	if s, ok := tokenToDescription[t]; ok {
		return s
	}
	return fmt.Sprintf("token.Type(%d)", int(t))
}

func (t Type) GoString() string {
	return "token." + t.String()
}

// Span is a half-open byte range [Start, End) into the preprocessed input.
type Span struct {
	Start int
	End   int
}

// Len reports the number of bytes covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Token is a single lexical unit: a kind, the slice of input it covers,
// and the span of that slice. Slice is always input[Span.Start:Span.End];
// it is carried alongside the span so callers don't need the original
// input buffer in scope to inspect token text.
type Token struct {
	Type  Type
	Slice string
	Span  Span
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q @%d:%d", t.Type, t.Slice, t.Span.Start, t.Span.End)
}
