package strscript

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	SyntaxError ErrorKind = iota
	NameError
	ScopeError
	StackUnderflow
	LexicalError
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "syntax error"
	case NameError:
		return "name error"
	case ScopeError:
		return "scope error"
	case StackUnderflow:
		return "stack underflow"
	case LexicalError:
		return "lexical error"
	}
	panic("unreachable")
}

type Error struct {
	pos  Pos
	kind ErrorKind
	msg  string
}

func NewError(pos Pos, kind ErrorKind, format string, args ...interface{}) Error {
	return Error{
		pos:  pos,
		kind: kind,
		msg:  fmt.Sprintf(format, args...),
	}
}

func (e Error) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.pos, e.kind, e.msg)
}

func (e Error) Line() uint {
	return e.pos.line
}

func (e Error) Kind() ErrorKind {
	return e.kind
}

func (e Error) Message() string {
	return e.msg
}

// KindOf reports the kind of an interpreter error anywhere in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e Error
	if errors.As(err, &e) {
		return e.kind, true
	}
	return 0, false
}
