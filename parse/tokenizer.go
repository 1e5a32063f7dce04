package parse

import (
	"strings"
	"unicode/utf8"

	"github.com/smasher164/xid"

	"github.com/wikidot-go/wikidot/token"
)

// Tokenizer performs a single linear scan of preprocessed input and
// produces the complete, immutable token vector the parser consumes.
// Unlike a scanner that hands tokens to its caller lazily, Tokenize
// runs once, up front: the parser's backtracking relies on the token
// vector never changing underneath a cloned cursor.
type Tokenizer struct {
	input string
	pos   int // byte offset of the next unread rune
}

// NewTokenizer returns a Tokenizer over input, which must already have
// been passed through Preprocess.
func NewTokenizer(input string) *Tokenizer {
	return &Tokenizer{input: input}
}

// Tokenize scans the whole input and returns the token vector,
// bracketed by InputStart and InputEnd sentinels. Concatenating every
// returned token's Slice reproduces the input exactly (the sentinels
// contribute empty slices).
func (z *Tokenizer) Tokenize() []token.Token {
	var out []token.Token
	out = append(out, token.Token{Type: token.InputStart, Span: token.Span{Start: 0, End: 0}})

	atLineStart := true
	for z.pos < len(z.input) {
		start := z.pos
		r, size := z.peekRune()

		switch {
		case r == '\n':
			z.pos += size
			if z.peekAt(z.pos) == '\n' {
				z.pos++
				out = append(out, z.tok(token.ParagraphBreak, start))
			} else {
				out = append(out, z.tok(token.LineBreak, start))
			}
			atLineStart = true
			continue

		case r == ' ':
			for z.pos < len(z.input) && z.input[z.pos] == ' ' {
				z.pos++
			}
			out = append(out, z.tok(token.Whitespace, start))
			continue

		case r == '*' && atLineStart:
			z.pos += size
			out = append(out, z.tok(token.BulletItem, start))
			atLineStart = false
			continue

		case isDigit(r) && atLineStart && z.isOrderedBullet():
			for z.pos < len(z.input) && isDigit(rune(z.input[z.pos])) {
				z.pos++
			}
			z.pos++ // the '.'
			out = append(out, z.tok(token.NumberedItem, start))
			atLineStart = false
			continue

		case strings.HasPrefix(z.input[z.pos:], "[[/"):
			z.pos += 3
			out = append(out, z.tok(token.LeftBlockEnd, start))

		case strings.HasPrefix(z.input[z.pos:], "[[*"):
			z.pos += 3
			out = append(out, z.tok(token.LeftBlockStar, start))

		case strings.HasPrefix(z.input[z.pos:], "[["):
			z.pos += 2
			out = append(out, z.tok(token.LeftBlock, start))

		case strings.HasPrefix(z.input[z.pos:], "]]"):
			z.pos += 2
			out = append(out, z.tok(token.RightBlock, start))

		case r == '[' && z.peekAt(z.pos+1) == '*':
			z.pos += 2
			out = append(out, z.tok(token.LeftBracketStar, start))

		case r == '[':
			z.pos++
			out = append(out, z.tok(token.LeftBracket, start))

		case r == ']':
			z.pos++
			out = append(out, z.tok(token.RightBracket, start))

		case strings.HasPrefix(z.input[z.pos:], "--"):
			z.pos += 2
			out = append(out, z.tok(token.LeftDoubleDash, start))

		case strings.HasPrefix(z.input[z.pos:], "//"):
			z.pos += 2
			out = append(out, z.tok(token.LeftDoubleSlash, start))

		case strings.HasPrefix(z.input[z.pos:], "__"):
			z.pos += 2
			out = append(out, z.tok(token.Underscore, start))

		case strings.HasPrefix(z.input[z.pos:], "^^"):
			z.pos += 2
			out = append(out, z.tok(token.Caret, start))

		case strings.HasPrefix(z.input[z.pos:], "~~"):
			z.pos += 2
			out = append(out, z.tok(token.Tilde, start))

		case strings.HasPrefix(z.input[z.pos:], "{{"):
			z.pos += 2
			out = append(out, z.tok(token.LeftDoubleBrace, start))

		case strings.HasPrefix(z.input[z.pos:], "}}"):
			z.pos += 2
			out = append(out, z.tok(token.RightDoubleBrace, start))

		case strings.HasPrefix(z.input[z.pos:], "''"):
			z.pos += 2
			out = append(out, z.tok(token.DoubleSingleQuote, start))

		case r == '—': // em dash literal sigil, in case source already has one
			z.pos += size
			out = append(out, z.tok(token.EmDash, start))

		case r == ':':
			z.pos++
			out = append(out, z.tok(token.Colon, start))

		case r == '|':
			z.pos++
			out = append(out, z.tok(token.Pipe, start))

		case looksLikeEmailStart(z.input[z.pos:]):
			end := scanEmail(z.input[z.pos:])
			z.pos += end
			out = append(out, z.tok(token.Email, start))

		case r != utf8.RuneError && (xid.Start(r) || r == '_' || r == '#'):
			z.pos += size
			for z.pos < len(z.input) {
				// A "__" or "--" pair is a style sigil of its own, so
				// it ends the identifier instead of extending it.
				if strings.HasPrefix(z.input[z.pos:], "__") || strings.HasPrefix(z.input[z.pos:], "--") {
					break
				}
				next, nsize := decodeRune(z.input[z.pos:])
				if !(xid.Continue(next) || next == '_' || next == '-' || next == '#') {
					break
				}
				z.pos += nsize
			}
			out = append(out, z.tok(token.Identifier, start))

		default:
			z.pos += size
			out = append(out, z.tok(token.Other, start))
		}
		atLineStart = false
	}

	out = append(out, token.Token{Type: token.InputEnd, Span: token.Span{Start: len(z.input), End: len(z.input)}})
	return out
}

func (z *Tokenizer) tok(typ token.Type, start int) token.Token {
	return token.Token{Type: typ, Slice: z.input[start:z.pos], Span: token.Span{Start: start, End: z.pos}}
}

func (z *Tokenizer) peekRune() (rune, int) {
	if z.pos >= len(z.input) {
		return utf8.RuneError, 0
	}
	return decodeRune(z.input[z.pos:])
}

func (z *Tokenizer) peekAt(pos int) byte {
	if pos >= len(z.input) {
		return 0
	}
	return z.input[pos]
}

// isOrderedBullet checks, without consuming, whether the digits at the
// current position are followed by a '.' (the numbered-bullet form,
// e.g. "1. item").
func (z *Tokenizer) isOrderedBullet() bool {
	i := z.pos
	for i < len(z.input) && isDigit(rune(z.input[i])) {
		i++
	}
	return i > z.pos && i < len(z.input) && z.input[i] == '.'
}

func decodeRune(s string) (rune, int) {
	return utf8.DecodeRuneInString(s)
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// looksLikeEmailStart is a cheap heuristic: an identifier-like run
// followed eventually by '@' and a '.' before the next whitespace or
// line break. The actual scan is done by scanEmail.
func looksLikeEmailStart(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 {
		return false
	}
	for i := 0; i < at; i++ {
		c := s[i]
		if c == ' ' || c == '\n' || c == '\t' {
			return false
		}
	}
	rest := s[at+1:]
	sp := strings.IndexAny(rest, " \n\t")
	if sp < 0 {
		sp = len(rest)
	}
	return strings.Contains(rest[:sp], ".")
}

func scanEmail(s string) int {
	sp := strings.IndexAny(s, " \n\t")
	if sp < 0 {
		return len(s)
	}
	return sp
}
