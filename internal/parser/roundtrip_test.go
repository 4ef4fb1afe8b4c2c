package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lambdapi/lambdapi/internal/ast"
)

// TestAsciiAndUnicodeSpellingsParseToEquivalentTrees checks that every
// keyword's ASCII and Unicode spelling produces the same AST shape, modulo
// source positions, by diffing the two parses with go-cmp.
func TestAsciiAndUnicodeSpellingsParseToEquivalentTrees(t *testing.T) {
	cases := []struct {
		name  string
		ascii string
		uni   string
	}{
		{"lambda", `\ x -> x`, `λ x -> x`},
		{"forall", `forall (a : U). a`, `∀ (a : U). a`},
		{"nat", `Nat -> Nat`, `ℕ -> ℕ`},
		{"universe", `U`, `𝒰`},
		{"succ-zero", `Succ Zero`, `S O`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := parseExpr(t, tc.ascii)
			u := parseExpr(t, tc.uni)
			if diff := cmp.Diff(a, u, cmpopts.IgnoreTypes(ast.Pos{})); diff != "" {
				t.Errorf("ascii and unicode spellings diverged (-ascii +unicode):\n%s", diff)
			}
		})
	}
}

// TestReparsingIdenticalSourceIsDeterministic checks that parsing the same
// source text twice yields structurally identical trees, for a term deep
// enough to exercise every binder/application/arrow production at once.
func TestReparsingIdenticalSourceIsDeterministic(t *testing.T) {
	src := `forall (m : Nat -> U). m 0 -> (forall (l : Nat). m l -> m (S l)) -> (forall (k : Nat). m k)`
	first := parseExpr(t, src)
	second := parseExpr(t, src)
	if diff := cmp.Diff(first, second, cmpopts.IgnoreTypes(ast.Pos{})); diff != "" {
		t.Errorf("re-parsing identical source produced different trees:\n%s", diff)
	}
}
