package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExprStringForms(t *testing.T) {
	assert.Equal(t, "x", (&Var{Name: "x"}).String())
	assert.Equal(t, "ℕ", (&Nat{}).String())
	assert.Equal(t, "𝒰", (&Universe{}).String())
	assert.Equal(t, "0", (&Zero{}).String())
	assert.Equal(t, "S(0)", (&Succ{Arg: &Zero{}}).String())
	assert.Equal(t, "(A -> B)", (&Pi{ArgType: &Var{Name: "A"}, RetType: &Var{Name: "B"}}).String())
	assert.Equal(t, "∀ (x : T) . B", (&Pi{ArgName: "x", ArgType: &Var{Name: "T"}, RetType: &Var{Name: "B"}}).String())
	assert.Equal(t, "(f x)", (&App{Fun: &Var{Name: "f"}, Arg: &Var{Name: "x"}}).String())
}

func TestPosString(t *testing.T) {
	assert.Equal(t, "3:4", Pos{Line: 3, Column: 4}.String())
	assert.Equal(t, "foo.lp:3:4", Pos{Line: 3, Column: 4, File: "foo.lp"}.String())
}

func TestStatementStringForms(t *testing.T) {
	assert.Equal(t, "def a :: ℕ", (&Declare{Name: "a", Type: &Nat{}}).String())
	assert.Equal(t, "let a := 0", (&Let{Name: "a", Term: &Zero{}}).String())
	assert.Equal(t, "eval 0", (&Eval{Term: &Zero{}}).String())
	assert.Equal(t, "show", (&Show{}).String())
}
