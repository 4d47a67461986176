package strscript

import (
	"fmt"

	"github.com/cznic/mathutil"
)

type TokenKind int

const (
	EOF TokenKind = iota
	NEWLINE
	IDENTIFIER
	STRING
	EQ
	PLUS
	MINUS
	SLASH
	PERCENT
	BANG
	EQEQ
	NOTEQ
	LESS
	LESSEQ
	GREATER
	GREATEREQ
	QUESTION
	LEFTPAREN
	RIGHTPAREN
	LEFTBRACE
	RIGHTBRACE

	// keywords
	PRINT
	IF
	ELSE
	WHILE
	VAR
)

func (t TokenKind) String() string {
	switch t {
	case EOF:
		return "EOF"
	case NEWLINE:
		return "NEWLINE"
	case IDENTIFIER:
		return "IDENTIFIER"
	case STRING:
		return "STRING"
	case EQ:
		return "="
	case PLUS:
		return "+"
	case MINUS:
		return "-"
	case SLASH:
		return "/"
	case PERCENT:
		return "%"
	case BANG:
		return "!"
	case EQEQ:
		return "=="
	case NOTEQ:
		return "!="
	case LESS:
		return "<"
	case LESSEQ:
		return "<="
	case GREATER:
		return ">"
	case GREATEREQ:
		return ">="
	case QUESTION:
		return "?"
	case LEFTPAREN:
		return "("
	case RIGHTPAREN:
		return ")"
	case LEFTBRACE:
		return "{"
	case RIGHTBRACE:
		return "}"
	case PRINT:
		return "PRINT"
	case IF:
		return "IF"
	case ELSE:
		return "ELSE"
	case WHILE:
		return "WHILE"
	case VAR:
		return "VAR"
	}
	panic("unreachable")
}

var keywords = map[string]TokenKind{
	"PRINT": PRINT,
	"IF":    IF,
	"ELSE":  ELSE,
	"WHILE": WHILE,
	"VAR":   VAR,
}

type Pos struct {
	filename string
	line     uint
}

func NewPos(filename string, line uint) Pos {
	return Pos{filename: filename, line: line}
}

func (p Pos) Line() uint {
	return p.line
}

func (p Pos) String() string {
	return fmt.Sprintf("%s:%d", p.filename, p.line)
}

type Token struct {
	Pos
	Kind    TokenKind
	Content []byte
}

func (t Token) String() string {
	switch t.Kind {
	case IDENTIFIER, STRING:
		return string(t.Content)
	}
	return t.Kind.String()
}

func ScanTokens(filename string, source []byte) ([]Token, error) {
	sc := NewScanner(filename, source)
	tokens := []Token{}
	for {
		tok, err := sc.Scan()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == EOF {
			break
		}
	}
	return tokens, nil
}

type Scanner struct {
	pos    Pos
	source []byte
	start  int
	end    int
}

func NewScanner(filename string, source []byte) Scanner {
	const DEFAULT_LINE uint = 1
	return Scanner{
		pos: Pos{
			filename: filename,
			line:     DEFAULT_LINE,
		},
		source: source,
	}
}

func (s *Scanner) Scan() (Token, error) {
	s.skipWhitespace()
	s.start = s.end
	var t Token
	switch c := s.next(); c {
	case 0:
		if s.end < len(s.source) {
			return s.token(EOF), NewError(s.pos, LexicalError, "unexpected character: NUL")
		}
		t = s.token(EOF)
	case '\n':
		s.advance()
		t = s.token(NEWLINE)
		s.pos.line++
	case '+':
		s.advance()
		t = s.token(PLUS)
	case '-':
		s.advance()
		t = s.token(MINUS)
	case '/':
		s.advance()
		t = s.token(SLASH)
	case '%':
		s.advance()
		t = s.token(PERCENT)
	case '?':
		s.advance()
		t = s.token(QUESTION)
	case '(':
		s.advance()
		t = s.token(LEFTPAREN)
	case ')':
		s.advance()
		t = s.token(RIGHTPAREN)
	case '{':
		s.advance()
		t = s.token(LEFTBRACE)
	case '}':
		s.advance()
		t = s.token(RIGHTBRACE)
	case '=':
		s.advance()
		t = s.twoChar('=', EQEQ, EQ)
	case '!':
		s.advance()
		t = s.twoChar('=', NOTEQ, BANG)
	case '<':
		s.advance()
		t = s.twoChar('=', LESSEQ, LESS)
	case '>':
		s.advance()
		t = s.twoChar('=', GREATEREQ, GREATER)
	case '"', '\'':
		return s.str(c)
	default:
		if isId(c) {
			return s.id(), nil
		}
		return s.token(EOF), NewError(s.pos, LexicalError, "unexpected character: %c", c)
	}
	return t, nil
}

func isId(c byte) bool {
	return ('A' <= c && c <= 'Z') || ('a' <= c && c <= 'z') || c == '_'
}

func isNum(c byte) bool {
	return '0' <= c && c <= '9'
}

func (s *Scanner) twoChar(second byte, matched, single TokenKind) Token {
	if s.next() == second {
		s.advance()
		return s.token(matched)
	}
	return s.token(single)
}

func (s *Scanner) id() Token {
	for {
		c := s.next()
		if !isId(c) && !isNum(c) {
			break
		}
		s.advance()
	}
	t := s.token(IDENTIFIER)
	if kind, ok := keywords[string(t.Content)]; ok {
		t.Kind = kind
	}
	return t
}

// str keeps both quote characters in the lexeme; they are trimmed when the
// literal is used as a value.
func (s *Scanner) str(quote byte) (Token, error) {
	s.advance()
	for {
		switch c := s.next(); {
		case c == quote:
			s.advance()
			return s.token(STRING), nil
		case c == '\n' || s.end >= len(s.source):
			return s.token(EOF), NewError(s.pos, LexicalError, "unterminated string literal")
		}
		s.advance()
	}
}

func (s *Scanner) skipWhitespace() {
	for {
		switch s.next() {
		case ' ', '\t', '\r':
			s.advance()
		case '#':
			for s.next() != '\n' && s.end < len(s.source) {
				s.advance()
			}
		default:
			return
		}
	}
}

func (s *Scanner) next() byte {
	if s.end >= len(s.source) {
		return 0
	}
	return s.source[s.end]
}

func (s *Scanner) advance() byte {
	c := s.next()
	s.end++
	return c
}

func (s *Scanner) token(t TokenKind) Token {
	end := mathutil.Clamp(s.end, 0, len(s.source))
	content := s.source[s.start:end]
	s.start = end
	return Token{
		Pos: Pos{
			filename: s.pos.filename,
			line:     s.pos.line,
		},
		Kind:    t,
		Content: content,
	}
}
