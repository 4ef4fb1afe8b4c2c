package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lambdapi/lambdapi/internal/ast"
	"github.com/lambdapi/lambdapi/internal/context"
	"github.com/lambdapi/lambdapi/internal/eval"
)

func TestInferBaseCases(t *testing.T) {
	ctx := context.New()

	ty, err := Infer(ctx, &ast.Nat{})
	require.NoError(t, err)
	assert.Equal(t, eval.VUniverse{}, ty)

	ty, err = Infer(ctx, &ast.Universe{})
	require.NoError(t, err)
	assert.Equal(t, eval.VUniverse{}, ty)

	ty, err = Infer(ctx, &ast.Zero{})
	require.NoError(t, err)
	assert.Equal(t, eval.VNat{}, ty)

	ty, err = Infer(ctx, &ast.Num{Value: 3})
	require.NoError(t, err)
	assert.Equal(t, eval.VNat{}, ty)
}

func TestInferUnboundVariable(t *testing.T) {
	ctx := context.New()
	_, err := Infer(ctx, &ast.Var{Name: "x"})
	require.Error(t, err)
}

func TestInferArrowPi(t *testing.T) {
	ctx := context.New()
	arrow := &ast.Pi{ArgType: &ast.Nat{}, RetType: &ast.Nat{}}
	ty, err := Infer(ctx, arrow)
	require.NoError(t, err)
	assert.Equal(t, eval.VUniverse{}, ty)
}

func TestCannotInferBareLambda(t *testing.T) {
	ctx := context.New()
	lam := &ast.Lambda{Arg: "x", Body: &ast.Var{Name: "x"}}
	_, err := Infer(ctx, lam)
	require.Error(t, err)
}

func TestCheckLambdaAgainstPi(t *testing.T) {
	ctx := context.New()
	lam := &ast.Lambda{Arg: "x", Body: &ast.Var{Name: "x"}}
	arrow := &ast.Pi{ArgType: &ast.Nat{}, RetType: &ast.Nat{}}
	arrowVal, err := eval.Eval(arrow, ctx.Env())
	require.NoError(t, err)

	err = Check(ctx, lam, arrowVal)
	require.NoError(t, err)
}

func TestCheckLambdaAgainstNonPiFails(t *testing.T) {
	ctx := context.New()
	lam := &ast.Lambda{Arg: "x", Body: &ast.Var{Name: "x"}}
	err := Check(ctx, lam, eval.VNat{})
	require.Error(t, err)
}

// TestDeclareThenEvalEchoesName checks that declaring an assumption
// (`def a :: ℕ -> ℕ;`) prints its Π type, and that evaluating it back
// (`eval a;`) echoes the assumption's own name rather than a synthetic
// bound-variable placeholder.
func TestDeclareThenEvalEchoesName(t *testing.T) {
	ctx := context.New()
	arrow := &ast.Pi{ArgType: &ast.Nat{}, RetType: &ast.Nat{}}

	err := Check(ctx, arrow, eval.VUniverse{})
	require.NoError(t, err)
	level := ctx.Len()
	arrowVal, err := eval.Eval(arrow, ctx.Env())
	require.NoError(t, err)
	require.NoError(t, ctx.Declare("a", arrowVal, ast.Pos{}))
	assert.Equal(t, "∀ ℕ . ℕ", eval.Print(eval.Quote(arrowVal, level)))

	ty, err := Infer(ctx, &ast.Var{Name: "a"})
	require.NoError(t, err)
	val, err := eval.Eval(&ast.Var{Name: "a"}, ctx.Env())
	require.NoError(t, err)
	assert.Equal(t, "a", eval.Print(eval.Quote(val, ctx.Len())))
	assert.NotNil(t, ty)
}

// TestIdAppliedToNumber checks that applying an annotated identity
// `let a := ℕ -> ℕ; let id := \x -> x :: a; eval (id 1);` should yield
// `S(0)`.
func TestIdAppliedToNumber(t *testing.T) {
	ctx := context.New()

	aTy, err := Infer(ctx, &ast.Pi{ArgType: &ast.Nat{}, RetType: &ast.Nat{}})
	require.NoError(t, err)
	aVal, err := eval.Eval(&ast.Pi{ArgType: &ast.Nat{}, RetType: &ast.Nat{}}, ctx.Env())
	require.NoError(t, err)
	require.NoError(t, ctx.Define("a", aTy, aVal, ast.Pos{}))

	idTerm := &ast.Annot{
		Term: &ast.Lambda{Arg: "x", Body: &ast.Var{Name: "x"}},
		Type: &ast.Var{Name: "a"},
	}
	idTy, err := Infer(ctx, idTerm)
	require.NoError(t, err)
	idVal, err := eval.Eval(idTerm, ctx.Env())
	require.NoError(t, err)
	require.NoError(t, ctx.Define("id", idTy, idVal, ast.Pos{}))

	app := &ast.App{Fun: &ast.Var{Name: "id"}, Arg: &ast.Num{Value: 1}}
	_, err = Infer(ctx, app)
	require.NoError(t, err)
	result, err := eval.Eval(app, ctx.Env())
	require.NoError(t, err)
	assert.Equal(t, "S(0)", eval.Print(eval.Quote(result, ctx.Len())))
}

// TestIdAppliedToItselfMismatches checks that applying the identity
// function to itself fails with a TypeMismatch naming ℕ as expected and
// the Π type as found.
func TestIdAppliedToItselfMismatches(t *testing.T) {
	ctx := context.New()

	piExpr := &ast.Pi{ArgType: &ast.Nat{}, RetType: &ast.Nat{}}
	aTy, err := Infer(ctx, piExpr)
	require.NoError(t, err)
	aVal, err := eval.Eval(piExpr, ctx.Env())
	require.NoError(t, err)
	require.NoError(t, ctx.Define("a", aTy, aVal, ast.Pos{}))

	idTerm := &ast.Annot{
		Term: &ast.Lambda{Arg: "x", Body: &ast.Var{Name: "x"}},
		Type: &ast.Var{Name: "a"},
	}
	idTy, err := Infer(ctx, idTerm)
	require.NoError(t, err)
	idVal, err := eval.Eval(idTerm, ctx.Env())
	require.NoError(t, err)
	require.NoError(t, ctx.Define("id", idTy, idVal, ast.Pos{}))

	app := &ast.App{Fun: &ast.Var{Name: "id"}, Arg: &ast.Var{Name: "id"}}
	_, err = Infer(ctx, app)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Type mismatch: expected ℕ, found ∀ ℕ . ℕ")
}

// TestPiBinderShadowsOuterContextEntry checks that a Pi binder whose name
// collides with an existing context entry (`def x :: ℕ; def g :: forall (x
// : 𝒰). x;`) resolves the body's `x` to the binder's own type, 𝒰, not the
// outer assumption's ℕ.
func TestPiBinderShadowsOuterContextEntry(t *testing.T) {
	ctx := context.New()
	require.NoError(t, ctx.Declare("x", eval.VNat{}, ast.Pos{}))

	forall := &ast.Forall{
		Bindings: []ast.ForallBinding{{Name: "x", Type: &ast.Universe{}}},
		Body:     &ast.Var{Name: "x"},
	}
	_, err := Infer(ctx, forall)
	require.NoError(t, err)
}

// TestDeclarationAtomicity checks that a failing declaration leaves the
// context unchanged.
func TestDeclarationAtomicity(t *testing.T) {
	ctx := context.New()
	require.NoError(t, ctx.Declare("a", eval.VNat{}, ast.Pos{}))
	before := ctx.Len()

	err := Check(ctx, &ast.Var{Name: "does-not-exist"}, eval.VUniverse{})
	require.Error(t, err)
	assert.Equal(t, before, ctx.Len())
}
