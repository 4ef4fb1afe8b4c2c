package eval

import (
	"fmt"

	"github.com/lambdapi/lambdapi/internal/ast"
)

// Value is a term in weak-head normal form, the output of Eval.
type Value interface {
	isValue()
}

// VUniverse is the sort 𝒰.
type VUniverse struct{}

func (VUniverse) isValue() {}

// VNat is the type ℕ.
type VNat struct{}

func (VNat) isValue() {}

// VZero is the constructor 0 : ℕ.
type VZero struct{}

func (VZero) isValue() {}

// VSucc is the successor of a natural number value.
type VSucc struct {
	Pred Value
}

func (VSucc) isValue() {}

// Closure pairs an unevaluated body with the environment that supplies its
// free variables. The environment is captured by value at closure-creation
// time and is never mutated afterward.
type Closure struct {
	Env  *Env
	Arg  string
	Body ast.Expr
}

// Apply evaluates the closure's body in its captured environment extended
// with Arg bound to v.
func (c *Closure) Apply(v Value) (Value, error) {
	return Eval(c.Body, c.Env.Extend(c.Arg, v))
}

// VLam is a λ-abstraction value.
type VLam struct {
	Closure *Closure
}

func (VLam) isValue() {}

// VPi is a dependent function space: the argument type is already a value,
// the return type is a closure applied to the (hypothetical) argument.
type VPi struct {
	ArgType Value
	Closure *Closure
}

func (VPi) isValue() {}

// Neutral is a term blocked on a free variable: irreducible until that
// variable is instantiated.
type Neutral interface {
	isNeutral()
}

// NVar is a neutral variable, identified by the de Bruijn level at which it
// was introduced (either a context assumption or a binder opened during
// quoting/checking). Name, when non-empty, is the user-given name of a
// context assumption and is what Quote prints instead of the synthetic
// "_<level>" form — so `def a :: T; eval a;` echoes back `a`, not `_0`.
type NVar struct {
	Level int
	Name  string
}

func (NVar) isNeutral() {}

// NApp is a neutral application: a neutral function head applied to a
// value argument.
type NApp struct {
	Fun Neutral
	Arg Value
}

func (NApp) isNeutral() {}

// VNeutral wraps a Neutral as a Value.
type VNeutral struct {
	Neutral Neutral
}

func (VNeutral) isValue() {}

// FreshNeutral builds the value standing for an as-yet-unknown argument
// introduced at the given level, with no user-facing name (Quote prints it
// as "_<level>").
func FreshNeutral(level int) Value {
	return VNeutral{Neutral: NVar{Level: level}}
}

// NamedNeutral is like FreshNeutral but remembers the user-given name of
// the context assumption it stands for, so quoting can echo that name back
// instead of a synthetic index.
func NamedNeutral(name string, level int) Value {
	return VNeutral{Neutral: NVar{Level: level, Name: name}}
}

// String renders a value for diagnostics; the REPL prints values via
// Quote+Print instead, which follows the interpreter's minimal display
// surface.
func String(v Value) string {
	switch v := v.(type) {
	case VUniverse:
		return "𝒰"
	case VNat:
		return "ℕ"
	case VZero:
		return "0"
	case VSucc:
		n := 1
		inner := v.Pred
		for {
			s, ok := inner.(VSucc)
			if !ok {
				break
			}
			n++
			inner = s.Pred
		}
		if _, ok := inner.(VZero); ok {
			return fmt.Sprintf("%d", n)
		}
		return fmt.Sprintf("S(%s)", String(v.Pred))
	case VLam:
		return "<function>"
	case VPi:
		return "<Π-type>"
	case VNeutral:
		return neutralString(v.Neutral)
	default:
		return fmt.Sprintf("<unknown value %T>", v)
	}
}

func neutralString(n Neutral) string {
	switch n := n.(type) {
	case NVar:
		if n.Name != "" {
			return n.Name
		}
		return fmt.Sprintf("_%d", n.Level)
	case NApp:
		return fmt.Sprintf("(%s %s)", neutralString(n.Fun), String(n.Arg))
	default:
		return fmt.Sprintf("<unknown neutral %T>", n)
	}
}
