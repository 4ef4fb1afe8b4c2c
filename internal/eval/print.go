package eval

import (
	"fmt"

	"github.com/lambdapi/lambdapi/internal/ast"
)

// Print renders a quoted (normalised) term using the interpreter's minimal
// display surface: bound variables as "_<index>", ℕ for Nat, 𝒰 for
// Universe, "∀ A . B" for Pi (the binder name is not shown — only its
// type), "λ . body" for Lam, "0" for Zero, and an explicit "S(...)" chain
// for every Succ — Succ is never collapsed back into a decimal digit.
func Print(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.Var:
		return e.Name
	case *ast.Universe:
		return "𝒰"
	case *ast.Nat:
		return "ℕ"
	case *ast.Zero:
		return "0"
	case *ast.Num:
		return fmt.Sprintf("%d", e.Value)
	case *ast.Succ:
		return fmt.Sprintf("S(%s)", Print(e.Arg))
	case *ast.Lambda:
		return fmt.Sprintf("λ . %s", Print(e.Body))
	case *ast.Pi:
		return fmt.Sprintf("∀ %s . %s", Print(e.ArgType), Print(e.RetType))
	case *ast.App:
		return fmt.Sprintf("(%s %s)", Print(e.Fun), Print(e.Arg))
	case *ast.Error:
		return e.String()
	default:
		return fmt.Sprintf("<unprintable %T>", e)
	}
}
