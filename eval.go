package strscript

import (
	"strings"

	"fortio.org/log"
)

// EvalExpr evaluates a string-arithmetic expression held in tokens. Every
// token of the range has to take part in the expression.
func EvalExpr(tokens []Token, scopes *ScopeStack) (string, error) {
	e := exprEvaluator{s: NewStream(tokens), scopes: scopes}
	val, err := e.parseExpr()
	if err != nil {
		return "", err
	}
	if !e.s.AtEnd() {
		t := e.s.Peek(0)
		return "", NewError(t.Pos, SyntaxError, "unexpected %s in expression", t.Kind)
	}
	log.LogVf("expr %q", val)
	return val, nil
}

type exprEvaluator struct {
	s      *Stream
	scopes *ScopeStack
}

func (e *exprEvaluator) parseExpr() (string, error) {
	lhs, err := e.parsePrimary()
	if err != nil {
		return "", err
	}
	return e.parseBinary(lhs, 0)
}

func (e *exprEvaluator) parseBinary(lhs string, minPrec int) (string, error) {
	for precedence(e.s.Peek(0).Kind) >= minPrec {
		op := e.s.Next()
		rhs, err := e.parsePrimary()
		if err != nil {
			return "", err
		}
		for precedence(e.s.Peek(0).Kind) > precedence(op.Kind) {
			rhs, err = e.parseBinary(rhs, precedence(op.Kind)+1)
			if err != nil {
				return "", err
			}
		}
		lhs = Apply(op.Kind, lhs, rhs)
	}
	return lhs, nil
}

func precedence(t TokenKind) int {
	switch t {
	case SLASH, PERCENT:
		return 20
	case PLUS, MINUS:
		return 10
	}
	return -1
}

func (e *exprEvaluator) parsePrimary() (string, error) {
	switch t := e.s.Peek(0); t.Kind {
	case IDENTIFIER, STRING:
		return resolveOperand(e.s.Next(), e.scopes)
	case LEFTPAREN:
		left := e.s.Next()
		inner, err := e.parseExpr()
		if err != nil {
			return "", err
		}
		if e.s.Peek(0).Kind != RIGHTPAREN {
			return "", NewError(left.Pos, SyntaxError, "expected ) to close (, but got %s", e.s.Peek(0).Kind)
		}
		e.s.Next()
		return inner, nil
	}
	t := e.s.Peek(0)
	return "", NewError(t.Pos, SyntaxError, "expected operand, but got %s", t.Kind)
}

// Apply folds one string-arithmetic operator into the running left value.
func Apply(op TokenKind, l, r string) string {
	switch op {
	case PLUS:
		return l + r
	case MINUS:
		return strings.Replace(l, r, "", 1)
	case SLASH:
		if i := strings.Index(l, r); i >= 0 {
			return l[:i]
		}
		return l
	case PERCENT:
		if i := strings.Index(l, r); i >= 0 {
			return l[i+len(r):]
		}
		return ""
	}
	panic("unreachable")
}

func isOperand(k TokenKind) bool {
	return k == IDENTIFIER || k == STRING
}

func resolveOperand(t Token, scopes *ScopeStack) (string, error) {
	switch t.Kind {
	case IDENTIFIER:
		return scopes.Lookup(t.Pos, string(t.Content))
	case STRING:
		return literalValue(t), nil
	}
	return "", NewError(t.Pos, SyntaxError, "expected identifier or string literal, but got %s", t.Kind)
}

// literalValue drops exactly one quote character from each end. Escape
// sequences are not interpreted.
func literalValue(t Token) string {
	if len(t.Content) < 2 {
		return ""
	}
	return string(t.Content[1 : len(t.Content)-1])
}
