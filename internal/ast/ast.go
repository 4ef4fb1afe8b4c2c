// Package ast defines the surface syntax tree produced by the parser.
//
// Variables are named, not de Bruijn-indexed. The evaluator keeps them named
// too, resolving them through a name -> value environment (see internal/eval).
package ast

import (
	"fmt"
	"strings"
)

// Pos identifies a location in source for error reporting.
type Pos struct {
	Line   int
	Column int
	File   string
}

func (p Pos) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Expr is the base interface for every term node.
type Expr interface {
	String() string
	Position() Pos
	exprNode()
}

// Var is a free or bound identifier.
type Var struct {
	Name string
	Pos  Pos
}

func (v *Var) String() string  { return v.Name }
func (v *Var) Position() Pos   { return v.Pos }
func (v *Var) exprNode()       {}

// Num is an unsigned numeral literal, shorthand for Succ^n Zero.
type Num struct {
	Value int
	Pos   Pos
}

func (n *Num) String() string { return fmt.Sprintf("%d", n.Value) }
func (n *Num) Position() Pos  { return n.Pos }
func (n *Num) exprNode()      {}

// Zero is the constructor 0 of Nat.
type Zero struct {
	Pos Pos
}

func (z *Zero) String() string { return "0" }
func (z *Zero) Position() Pos  { return z.Pos }
func (z *Zero) exprNode()      {}

// Succ is the successor constructor.
type Succ struct {
	Arg Expr
	Pos Pos
}

func (s *Succ) String() string { return fmt.Sprintf("S(%s)", s.Arg) }
func (s *Succ) Position() Pos  { return s.Pos }
func (s *Succ) exprNode()      {}

// Nat is the type of natural numbers.
type Nat struct {
	Pos Pos
}

func (n *Nat) String() string { return "ℕ" }
func (n *Nat) Position() Pos  { return n.Pos }
func (n *Nat) exprNode()      {}

// Universe is the sort 𝒰. The core accepts 𝒰 : 𝒰 (type-in-type).
type Universe struct {
	Pos Pos
}

func (u *Universe) String() string { return "𝒰" }
func (u *Universe) Position() Pos  { return u.Pos }
func (u *Universe) exprNode()      {}

// Lambda is an un-annotated λ-abstraction.
type Lambda struct {
	Arg  string
	Body Expr
	Pos  Pos
}

func (l *Lambda) String() string { return fmt.Sprintf("λ %s . %s", l.Arg, l.Body) }
func (l *Lambda) Position() Pos  { return l.Pos }
func (l *Lambda) exprNode()      {}

// App is function application, left-associative at the surface.
type App struct {
	Fun Expr
	Arg Expr
	Pos Pos
}

func (a *App) String() string { return fmt.Sprintf("(%s %s)", a.Fun, a.Arg) }
func (a *App) Position() Pos  { return a.Pos }
func (a *App) exprNode()      {}

// Pi is a dependent function space. ArgName is empty for a non-dependent
// arrow A -> B.
type Pi struct {
	ArgName string
	ArgType Expr
	RetType Expr
	Pos     Pos
}

func (p *Pi) String() string {
	if p.ArgName == "" {
		return fmt.Sprintf("(%s -> %s)", p.ArgType, p.RetType)
	}
	return fmt.Sprintf("∀ (%s : %s) . %s", p.ArgName, p.ArgType, p.RetType)
}
func (p *Pi) Position() Pos { return p.Pos }
func (p *Pi) exprNode()     {}

// ForallBinding is one (name, type) pair inside a Forall's binder list.
type ForallBinding struct {
	Name string
	Type Expr
}

// Forall is sugar for a right-nested chain of Pi types; it is desugared
// during elaboration (see internal/eval.Desugar).
type Forall struct {
	Bindings []ForallBinding
	Body     Expr
	Pos      Pos
}

func (f *Forall) String() string {
	parts := make([]string, len(f.Bindings))
	for i, b := range f.Bindings {
		parts[i] = fmt.Sprintf("(%s : %s)", b.Name, b.Type)
	}
	return fmt.Sprintf("forall %s . %s", strings.Join(parts, ", "), f.Body)
}
func (f *Forall) Position() Pos { return f.Pos }
func (f *Forall) exprNode()     {}

// Error is a placeholder node for a term that could not be quoted, carrying
// a message for diagnostics. The parser reports failures as errors and does
// not build this node.
type Error struct {
	Msg string
	Pos Pos
}

func (e *Error) String() string { return fmt.Sprintf("<error: %s>", e.Msg) }
func (e *Error) Position() Pos  { return e.Pos }
func (e *Error) exprNode()      {}

// Annot is an explicit type ascription e :: T.
type Annot struct {
	Term Expr
	Type Expr
	Pos  Pos
}

func (a *Annot) String() string { return fmt.Sprintf("(%s :: %s)", a.Term, a.Type) }
func (a *Annot) Position() Pos  { return a.Pos }
func (a *Annot) exprNode()      {}
