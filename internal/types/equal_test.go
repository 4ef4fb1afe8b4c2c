package types

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lambdapi/lambdapi/internal/ast"
	"github.com/lambdapi/lambdapi/internal/eval"
)

func TestEqualBaseValues(t *testing.T) {
	assert.True(t, Equal(eval.VNat{}, eval.VNat{}, 0))
	assert.True(t, Equal(eval.VUniverse{}, eval.VUniverse{}, 0))
	assert.True(t, Equal(eval.VZero{}, eval.VZero{}, 0))
	assert.False(t, Equal(eval.VNat{}, eval.VUniverse{}, 0))
}

func TestEqualSucc(t *testing.T) {
	three := eval.VSucc{Pred: eval.VSucc{Pred: eval.VSucc{Pred: eval.VZero{}}}}
	threeAgain := eval.VSucc{Pred: eval.VSucc{Pred: eval.VSucc{Pred: eval.VZero{}}}}
	two := eval.VSucc{Pred: eval.VSucc{Pred: eval.VZero{}}}

	assert.True(t, Equal(three, threeAgain, 0))
	assert.False(t, Equal(three, two, 0))
}

func TestEqualPiStructurally(t *testing.T) {
	p1 := eval.VPi{ArgType: eval.VNat{}, Closure: &eval.Closure{Arg: "_", Body: &ast.Nat{}}}
	p2 := eval.VPi{ArgType: eval.VNat{}, Closure: &eval.Closure{Arg: "_", Body: &ast.Nat{}}}
	assert.True(t, Equal(p1, p2, 0))
}
