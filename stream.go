package strscript

import "github.com/cznic/mathutil"

// Stream is a read-only cursor over a token sub-range. Bodies, conditions and
// expressions are kept as sub-slices of the scanned tokens and replayed
// through fresh streams; the underlying tokens are never modified.
type Stream struct {
	tokens []Token
	index  int
	eof    Token
}

func NewStream(tokens []Token) *Stream {
	eof := Token{Kind: EOF}
	if len(tokens) > 0 {
		last := tokens[len(tokens)-1]
		eof.Pos = last.Pos
		if last.Kind == EOF {
			tokens = tokens[:len(tokens)-1]
		}
	}
	return newStream(tokens, eof.Pos)
}

// newStream ends the range with a synthetic EOF placed at end, usually the
// position of the token that closed the range.
func newStream(tokens []Token, end Pos) *Stream {
	return &Stream{
		tokens: tokens,
		eof:    Token{Pos: end, Kind: EOF},
	}
}

func (s *Stream) Peek(offset int) Token {
	i := mathutil.Clamp(s.index+offset, 0, len(s.tokens))
	if i == len(s.tokens) {
		return s.eof
	}
	return s.tokens[i]
}

func (s *Stream) Next() Token {
	t := s.Peek(0)
	if s.index < len(s.tokens) {
		s.index++
	}
	return t
}

func (s *Stream) AtEnd() bool {
	return s.index >= len(s.tokens)
}

func (s *Stream) Match(k TokenKind) (Token, error) {
	t := s.Peek(0)
	if t.Kind != k {
		return Token{Kind: k}, NewError(t.Pos, SyntaxError, "expected %s, but got %s", k, t.Kind)
	}
	s.index++
	return t, nil
}

// SkipBlock is called right after an opening brace has been consumed. It
// walks forward counting '{' as +1 and '}' as -1 from depth 1, consumes the
// matching '}' and returns the tokens strictly between the braces.
func (s *Stream) SkipBlock(open Token) ([]Token, Token, error) {
	start := s.index
	depth := 1
	for !s.AtEnd() {
		t := s.Next()
		switch t.Kind {
		case LEFTBRACE:
			depth++
		case RIGHTBRACE:
			depth--
			if depth == 0 {
				return s.tokens[start : s.index-1], t, nil
			}
		}
	}
	return nil, s.eof, NewError(open.Pos, SyntaxError, "unmatched '{'")
}

// Until consumes tokens up to, but not including, the first one whose kind
// satisfies stop or the end of the range.
func (s *Stream) Until(stop func(TokenKind) bool) []Token {
	start := s.index
	for !s.AtEnd() && !stop(s.Peek(0).Kind) {
		s.index++
	}
	return s.tokens[start:s.index]
}
