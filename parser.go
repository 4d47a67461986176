package strscript

func ParseProgram(filename string, source []byte) ([]Stmt, error) {
	tokens, err := ScanTokens(filename, source)
	if err != nil {
		return nil, err
	}
	psr := NewParser(tokens)
	return psr.ParseAll()
}

type Parser struct {
	s *Stream
}

func NewParser(tokens []Token) Parser {
	return Parser{
		s: NewStream(tokens),
	}
}

// Next parses the next statement of the range together with its line
// terminator. It returns nil once only blank lines remain.
func (p *Parser) Next() (Stmt, error) {
	p.skipNewlines()
	if p.s.AtEnd() {
		return nil, nil
	}
	stmt, err := p.ParseStmt()
	if err != nil {
		return nil, err
	}
	if _, ok := stmt.(*EnterScopeStmt); ok {
		return stmt, nil
	}
	if err := p.endOfStmt(); err != nil {
		return nil, err
	}
	return stmt, nil
}

func (p *Parser) ParseAll() ([]Stmt, error) {
	stmts := make([]Stmt, 0)
	for {
		stmt, err := p.Next()
		if err != nil {
			return nil, err
		}
		if stmt == nil {
			return stmts, nil
		}
		stmts = append(stmts, stmt)
	}
}

func (p *Parser) ParseStmt() (Stmt, error) {
	switch t := p.s.Peek(0); t.Kind {
	case PRINT:
		return p.parsePrint()
	case VAR:
		return p.parseVar()
	case IDENTIFIER:
		return p.parseAssign()
	case IF:
		return p.parseIf()
	case ELSE:
		return nil, NewError(t.Pos, SyntaxError, "ELSE without a preceding IF")
	case WHILE:
		return p.parseWhile()
	case LEFTBRACE:
		return &EnterScopeStmt{Brace: p.s.Next()}, nil
	case RIGHTBRACE:
		return &ExitScopeStmt{Brace: p.s.Next()}, nil
	case EOF, NEWLINE, STRING, EQ, PLUS, MINUS, SLASH, PERCENT, BANG,
		EQEQ, NOTEQ, LESS, LESSEQ, GREATER, GREATEREQ, QUESTION, LEFTPAREN, RIGHTPAREN:
		return nil, NewError(t.Pos, SyntaxError, "unknown statement start %s", t.Kind)
	}
	panic("unreachable")
}

func (p *Parser) parsePrint() (*PrintStmt, error) {
	stmt := &PrintStmt{Print: p.s.Next()}
	if endsStmt(p.s.Peek(0).Kind) {
		return stmt, nil
	}
	if p.s.Peek(0).Kind == BANG {
		p.s.Next()
		stmt.Negate = true
	}
	if looksLikeCondition(p.s) {
		cond, err := ParseCondition(p.s)
		if err != nil {
			return nil, err
		}
		stmt.Cond = &cond
		return stmt, nil
	}
	expr, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	stmt.Expr = expr
	return stmt, nil
}

func (p *Parser) parseVar() (*VarStmt, error) {
	kw := p.s.Next()
	id, err := p.s.Match(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.s.Match(EQ); err != nil {
		return nil, err
	}
	chain := p.parseChain()
	negate := p.parseNegation()
	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return &VarStmt{
		Var:    kw,
		Id:     id,
		Chain:  chain,
		Negate: negate,
		Value:  value,
	}, nil
}

func (p *Parser) parseAssign() (*AssignStmt, error) {
	id := p.s.Next()
	if _, err := p.s.Match(EQ); err != nil {
		return nil, err
	}
	chain := p.parseChain()
	negate := p.parseNegation()
	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	return &AssignStmt{
		Targets: append([]Token{id}, chain...),
		Negate:  negate,
		Value:   value,
	}, nil
}

// parseChain consumes leading `id =` pairs of a chained assignment.
func (p *Parser) parseChain() []Token {
	var chain []Token
	for p.s.Peek(0).Kind == IDENTIFIER && p.s.Peek(1).Kind == EQ {
		chain = append(chain, p.s.Next())
		p.s.Next()
	}
	return chain
}

func (p *Parser) parseNegation() bool {
	if p.s.Peek(0).Kind == BANG {
		p.s.Next()
		return true
	}
	return false
}

// parseValue takes the rest of the statement as an expression range.
func (p *Parser) parseValue() ([]Token, error) {
	value := p.s.Until(endsStmt)
	if len(value) == 0 {
		t := p.s.Peek(0)
		return nil, NewError(t.Pos, SyntaxError, "expected expression, but got %s", t.Kind)
	}
	for _, t := range value {
		if t.Kind == EQ {
			return nil, NewError(t.Pos, SyntaxError, "invalid assignment target")
		}
	}
	return value, nil
}

func (p *Parser) parseIf() (*IfStmt, error) {
	kw := p.s.Next()
	cond, err := ParseCondition(p.s)
	if err != nil {
		return nil, err
	}
	then, err := p.parseBody(kw)
	if err != nil {
		return nil, err
	}
	stmt := &IfStmt{
		If:   kw,
		Cond: cond,
		Then: then,
	}
	if n := p.elseAhead(); n >= 0 {
		for i := 0; i < n; i++ {
			p.s.Next()
		}
		e := p.s.Next()
		body, err := p.parseBody(e)
		if err != nil {
			return nil, err
		}
		stmt.Else = &ElseStmt{
			Else: e,
			Body: body,
		}
	}
	return stmt, nil
}

// elseAhead returns how many newlines separate the cursor from an ELSE, or
// -1 when no ELSE follows.
func (p *Parser) elseAhead() int {
	n := 0
	for p.s.Peek(n).Kind == NEWLINE {
		n++
	}
	if p.s.Peek(n).Kind == ELSE {
		return n
	}
	return -1
}

func (p *Parser) parseWhile() (*WhileStmt, error) {
	kw := p.s.Next()
	cond, err := ParseCondition(p.s)
	if err != nil {
		return nil, err
	}
	p.skipNewlines()
	if t := p.s.Peek(0); t.Kind != LEFTBRACE {
		return nil, NewError(t.Pos, SyntaxError, "expected { after WHILE condition, but got %s", t.Kind)
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &WhileStmt{
		While: kw,
		Cond:  cond,
		Body:  body,
	}, nil
}

func (p *Parser) parseBody(kw Token) (Body, error) {
	p.skipNewlines()
	if p.s.Peek(0).Kind == LEFTBRACE {
		return p.parseBlock()
	}
	if p.s.AtEnd() {
		return Body{}, NewError(kw.Pos, SyntaxError, "expected statement after %s", kw.Kind)
	}
	stmt, err := p.ParseStmt()
	if err != nil {
		return Body{}, err
	}
	return Body{
		Stmts: []Stmt{stmt},
	}, nil
}

func (p *Parser) parseBlock() (Body, error) {
	open := p.s.Next()
	inner, closer, err := p.s.SkipBlock(open)
	if err != nil {
		return Body{}, err
	}
	sub := Parser{s: newStream(inner, closer.Pos)}
	stmts, err := sub.ParseAll()
	if err != nil {
		return Body{}, err
	}
	return Body{
		Braced: true,
		Open:   open,
		Close:  closer,
		Stmts:  stmts,
	}, nil
}

func (p *Parser) endOfStmt() error {
	switch t := p.s.Peek(0); t.Kind {
	case NEWLINE:
		p.s.Next()
		return nil
	case EOF, RIGHTBRACE:
		return nil
	default:
		return NewError(t.Pos, SyntaxError, "expected end of line, but got %s", t.Kind)
	}
}

func (p *Parser) skipNewlines() {
	for p.s.Peek(0).Kind == NEWLINE {
		p.s.Next()
	}
}

func endsStmt(k TokenKind) bool {
	switch k {
	case NEWLINE, EOF, RIGHTBRACE, ELSE:
		return true
	}
	return false
}
