package strscript

import (
	"fmt"
	"io"

	"fortio.org/log"
)

// Interpreter is the execution context shared by every statement: the scope
// stack, the value stack consumed by a bare PRINT, and the print destination.
type Interpreter struct {
	scopes *ScopeStack
	values []string
	out    io.Writer
	config Config
}

func NewInterpreter(out io.Writer, config Config) *Interpreter {
	return &Interpreter{
		scopes: NewScopeStack(),
		out:    out,
		config: config,
	}
}

func (in *Interpreter) Scopes() *ScopeStack {
	return in.scopes
}

func (in *Interpreter) Run(filename string, source []byte) error {
	tokens, err := ScanTokens(filename, source)
	if err != nil {
		return err
	}
	return in.Execute(tokens)
}

// Execute parses and runs top-level statements one at a time, so output of
// earlier statements is written even if a later one fails.
func (in *Interpreter) Execute(tokens []Token) error {
	p := NewParser(tokens)
	for {
		stmt, err := p.Next()
		if err != nil {
			return err
		}
		if stmt == nil {
			return nil
		}
		if err := in.ExecStmt(stmt); err != nil {
			return err
		}
	}
}

func (in *Interpreter) ExecStmt(stmt Stmt) error {
	switch st := stmt.(type) {
	case *PrintStmt:
		return in.execPrint(st)
	case *VarStmt:
		return in.execVar(st)
	case *AssignStmt:
		return in.execAssign(st)
	case *IfStmt:
		return in.execIf(st)
	case *WhileStmt:
		return in.execWhile(st)
	case *EnterScopeStmt:
		in.scopes.EnterScope()
		return nil
	case *ExitScopeStmt:
		return in.scopes.ExitScope(st.Brace.Pos)
	}
	panic("unreachable")
}

func (in *Interpreter) execStmts(stmts []Stmt) error {
	for _, stmt := range stmts {
		if err := in.ExecStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execPrint(p *PrintStmt) error {
	log.LogVf("exec PRINT at %s", p.Print.Pos)
	if p.Bare() {
		if len(in.values) == 0 {
			return NewError(p.Print.Pos, StackUnderflow, "PRINT with an empty value stack")
		}
		val := in.values[len(in.values)-1]
		in.values = in.values[:len(in.values)-1]
		return in.print(val)
	}
	var val string
	if p.Cond != nil {
		ok, err := EvalCondition(*p.Cond, in.scopes)
		if err != nil {
			return err
		}
		val = in.truth(ok)
	} else {
		var err error
		val, err = EvalExpr(p.Expr, in.scopes)
		if err != nil {
			return err
		}
	}
	if p.Negate {
		val = in.negate(val)
	}
	in.push(val)
	return in.print(val)
}

func (in *Interpreter) execVar(v *VarStmt) error {
	log.LogVf("exec VAR %s at %s", v.Id.Content, v.Var.Pos)
	val, err := in.value(v.Negate, v.Value)
	if err != nil {
		return err
	}
	if err := in.assignAll(v.Chain, val); err != nil {
		return err
	}
	if err := in.scopes.Declare(v.Id.Pos, string(v.Id.Content), val); err != nil {
		return err
	}
	in.push(val)
	return nil
}

func (in *Interpreter) execAssign(a *AssignStmt) error {
	log.LogVf("exec assignment to %s at %s", a.Targets[0].Content, a.Targets[0].Pos)
	val, err := in.value(a.Negate, a.Value)
	if err != nil {
		return err
	}
	if err := in.assignAll(a.Targets, val); err != nil {
		return err
	}
	in.push(val)
	return nil
}

func (in *Interpreter) assignAll(targets []Token, val string) error {
	for i := len(targets) - 1; i >= 0; i-- {
		t := targets[i]
		if err := in.scopes.Assign(t.Pos, string(t.Content), val); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) value(negate bool, expr []Token) (string, error) {
	val, err := EvalExpr(expr, in.scopes)
	if err != nil {
		return "", err
	}
	if negate {
		val = in.negate(val)
	}
	return val, nil
}

// execIf runs exactly one branch. The ELSE body runs on the negation of the
// condition recorded for its IF.
func (in *Interpreter) execIf(s *IfStmt) error {
	ok, err := EvalCondition(s.Cond, in.scopes)
	if err != nil {
		return err
	}
	if ok {
		log.LogVf("if %s is TRUE, picking true branch", s.Cond)
		return in.execBody(s.Then)
	}
	if s.Else != nil {
		log.LogVf("if %s is FALSE, picking else branch", s.Cond)
		return in.execBody(s.Else.Body)
	}
	log.LogVf("if %s is FALSE, skipping", s.Cond)
	return nil
}

func (in *Interpreter) execWhile(w *WhileStmt) error {
	for i := 0; ; i++ {
		ok, err := EvalCondition(w.Cond, in.scopes)
		if err != nil {
			return err
		}
		if !ok {
			log.LogVf("while %s done after %d iterations", w.Cond, i)
			return nil
		}
		if err := in.execBody(w.Body); err != nil {
			return err
		}
	}
}

// execBody gives a braced body its own frame for the duration of one run.
func (in *Interpreter) execBody(b Body) error {
	if !b.Braced {
		return in.execStmts(b.Stmts)
	}
	in.scopes.EnterScope()
	err := in.execStmts(b.Stmts)
	if exitErr := in.scopes.ExitScope(b.Close.Pos); err == nil {
		err = exitErr
	}
	return err
}

func (in *Interpreter) push(val string) {
	in.values = append(in.values, val)
}

func (in *Interpreter) print(val string) error {
	if val == "" {
		val = in.config.EmptyDisplay
	}
	_, err := fmt.Fprintln(in.out, val)
	return err
}

func (in *Interpreter) truth(b bool) string {
	if b {
		return in.config.TruthMarker
	}
	return ""
}

func (in *Interpreter) negate(val string) string {
	return in.truth(val == "")
}
