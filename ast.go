package strscript

// Stmt is one parsed statement. Control-flow bodies are parsed once into
// nested statements; expressions stay as token sub-ranges and are evaluated
// each time the statement runs.
type Stmt interface {
	pos() Pos
	stmt()
}

type PrintStmt struct {
	Print  Token
	Negate bool
	Cond   *Condition
	Expr   []Token
}

// Bare reports a PRINT with no argument, which pops the value stack.
func (p *PrintStmt) Bare() bool {
	return p.Cond == nil && len(p.Expr) == 0
}

// VarStmt declares Id. Chain holds identifiers from a `VAR x = y = value`
// initializer; they are assigned the value before Id is declared.
type VarStmt struct {
	Var    Token
	Id     Token
	Chain  []Token
	Negate bool
	Value  []Token
}

// AssignStmt assigns Value to every target, rightmost first.
type AssignStmt struct {
	Targets []Token
	Negate  bool
	Value   []Token
}

type IfStmt struct {
	If   Token
	Cond Condition
	Then Body
	Else *ElseStmt
}

type ElseStmt struct {
	Else Token
	Body Body
}

type WhileStmt struct {
	While Token
	Cond  Condition
	Body  Body
}

type EnterScopeStmt struct {
	Brace Token
}

type ExitScopeStmt struct {
	Brace Token
}

// Body is either a braced block, which runs in its own frame, or a single
// statement.
type Body struct {
	Braced bool
	Open   Token
	Close  Token
	Stmts  []Stmt
}

func (p *PrintStmt) pos() Pos {
	return p.Print.Pos
}
func (v *VarStmt) pos() Pos {
	return v.Var.Pos
}
func (a *AssignStmt) pos() Pos {
	return a.Targets[0].Pos
}
func (i *IfStmt) pos() Pos {
	return i.If.Pos
}
func (w *WhileStmt) pos() Pos {
	return w.While.Pos
}
func (e *EnterScopeStmt) pos() Pos {
	return e.Brace.Pos
}
func (e *ExitScopeStmt) pos() Pos {
	return e.Brace.Pos
}

func (p *PrintStmt) stmt()      {}
func (v *VarStmt) stmt()        {}
func (a *AssignStmt) stmt()     {}
func (i *IfStmt) stmt()         {}
func (w *WhileStmt) stmt()      {}
func (e *EnterScopeStmt) stmt() {}
func (e *ExitScopeStmt) stmt()  {}
