package ast

// Statement is one REPL input: a declaration, a let-binding, or an eval.
type Statement interface {
	String() string
	stmtNode()
}

// Declare is `def <name> :: <type>;`.
type Declare struct {
	Name string
	Type Expr
	Pos  Pos
}

func (d *Declare) String() string { return "def " + d.Name + " :: " + d.Type.String() }
func (d *Declare) stmtNode()      {}

// Let is `let <name> := <term>;`.
type Let struct {
	Name string
	Term Expr
	Pos  Pos
}

func (l *Let) String() string { return "let " + l.Name + " := " + l.Term.String() }
func (l *Let) stmtNode()      {}

// Eval is `eval <term>;`.
type Eval struct {
	Term Expr
	Pos  Pos
}

func (e *Eval) String() string { return "eval " + e.Term.String() }
func (e *Eval) stmtNode()      {}

// Show is `show;` — print the current context.
type Show struct {
	Pos Pos
}

func (s *Show) String() string { return "show" }
func (s *Show) stmtNode()      {}
