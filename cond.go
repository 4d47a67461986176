package strscript

import (
	"fmt"
	"strings"
)

// Condition is a parenthesized boolean test: ['!'] operand [cmp operand].
// Operands stay as tokens and are resolved on every evaluation, so a loop
// condition observes assignments made by the previous iteration.
type Condition struct {
	Open   Token
	Negate bool
	Left   Token
	Op     *Token
	Right  Token
}

func (c Condition) String() string {
	var b strings.Builder
	b.WriteString("(")
	if c.Negate {
		b.WriteString("!")
	}
	b.WriteString(c.Left.String())
	if c.Op != nil {
		fmt.Fprintf(&b, " %s %s", c.Op.Kind, c.Right)
	}
	b.WriteString(")")
	return b.String()
}

func isComparison(k TokenKind) bool {
	switch k {
	case EQEQ, NOTEQ, LESS, LESSEQ, GREATER, GREATEREQ, QUESTION:
		return true
	}
	return false
}

// looksLikeCondition reports whether the stream is positioned at
// '(' ['!'] operand comparator, which is how PRINT tells a boolean argument
// apart from a parenthesized arithmetic expression.
func looksLikeCondition(s *Stream) bool {
	if s.Peek(0).Kind != LEFTPAREN {
		return false
	}
	i := 1
	if s.Peek(i).Kind == BANG {
		i++
	}
	return isOperand(s.Peek(i).Kind) && isComparison(s.Peek(i+1).Kind)
}

func ParseCondition(s *Stream) (Condition, error) {
	open, err := s.Match(LEFTPAREN)
	if err != nil {
		return Condition{}, err
	}
	c := Condition{Open: open}
	if s.Peek(0).Kind == BANG {
		s.Next()
		c.Negate = true
	}
	c.Left, err = matchOperand(s)
	if err != nil {
		return Condition{}, err
	}
	if next := s.Peek(0); next.Kind != RIGHTPAREN {
		if !isComparison(next.Kind) {
			return Condition{}, NewError(next.Pos, SyntaxError, "malformed comparison operator %s", next.Kind)
		}
		op := s.Next()
		c.Op = &op
		c.Right, err = matchOperand(s)
		if err != nil {
			return Condition{}, err
		}
	}
	if _, err := s.Match(RIGHTPAREN); err != nil {
		return Condition{}, err
	}
	return c, nil
}

func matchOperand(s *Stream) (Token, error) {
	t := s.Peek(0)
	if !isOperand(t.Kind) {
		return t, NewError(t.Pos, SyntaxError, "expected identifier or string literal, but got %s", t.Kind)
	}
	return s.Next(), nil
}

func EvalCondition(c Condition, scopes *ScopeStack) (bool, error) {
	left, err := resolveOperand(c.Left, scopes)
	if err != nil {
		return false, err
	}
	result := left != ""
	if c.Op != nil {
		right, err := resolveOperand(c.Right, scopes)
		if err != nil {
			return false, err
		}
		result = Compare(c.Op.Kind, left, right)
	}
	if c.Negate {
		result = !result
	}
	return result, nil
}

func Compare(op TokenKind, l, r string) bool {
	switch op {
	case EQEQ:
		return l == r
	case NOTEQ:
		return l != r
	case LESS:
		return l < r
	case LESSEQ:
		return l <= r
	case GREATER:
		return l > r
	case GREATEREQ:
		return l >= r
	case QUESTION:
		return strings.Contains(l, r)
	}
	panic("unreachable")
}
