package errors

import (
	"fmt"

	"github.com/lambdapi/lambdapi/internal/ast"
)

// Report is lambdapi's canonical structured error: every error that
// reaches the statement driver carries a code, a phase, a human-readable
// message, and (when available) a source position, rather than an opaque
// fmt.Errorf string.
type Report struct {
	Code    string
	Phase   string
	Message string
	Pos     *ast.Pos
}

// Error implements the error interface.
func (r *Report) Error() string {
	if r.Pos != nil {
		return fmt.Sprintf("%s at %s: %s", r.Code, r.Pos, r.Message)
	}
	return r.Message
}

// Render is the one-line human-readable form printed by the REPL, e.g.
// "Type mismatch: expected ℕ, found ∀ ℕ . ℕ".
func (r *Report) Render() string {
	return r.Message
}

// UnboundVariable builds an LP001 report.
func UnboundVariable(name string, pos ast.Pos) *Report {
	return &Report{Code: LP001, Phase: "typecheck", Pos: &pos,
		Message: fmt.Sprintf("Unbound variable: %s", name)}
}

// Redeclaration builds an LP002 report.
func Redeclaration(name string, pos ast.Pos) *Report {
	return &Report{Code: LP002, Phase: "context", Pos: &pos,
		Message: fmt.Sprintf("%s is already declared", name)}
}

// TypeMismatch builds an LP003 report. expected/found are already rendered
// display strings (the caller quotes the values first).
func TypeMismatch(expected, found string, pos ast.Pos) *Report {
	return &Report{Code: LP003, Phase: "typecheck", Pos: &pos,
		Message: fmt.Sprintf("Type mismatch: expected %s, found %s", expected, found)}
}

// ExpectedFunctionType builds an LP004 report.
func ExpectedFunctionType(found string, pos ast.Pos) *Report {
	return &Report{Code: LP004, Phase: "typecheck", Pos: &pos,
		Message: fmt.Sprintf("Expected a function type, found %s", found)}
}

// NotAFunction builds an LP005 report.
func NotAFunction(found string, pos ast.Pos) *Report {
	return &Report{Code: LP005, Phase: "eval", Pos: &pos,
		Message: fmt.Sprintf("Cannot apply non-function value: %s", found)}
}

// ExpectedUniverse builds an LP006 report.
func ExpectedUniverse(found string, pos ast.Pos) *Report {
	return &Report{Code: LP006, Phase: "typecheck", Pos: &pos,
		Message: fmt.Sprintf("Expected a type (𝒰), found %s", found)}
}

// CannotInferLambda builds an LP007 report.
func CannotInferLambda(pos ast.Pos) *Report {
	return &Report{Code: LP007, Phase: "typecheck", Pos: &pos,
		Message: "Cannot infer the type of an un-annotated lambda; add an annotation (e :: T)"}
}

// ParseError builds an LP008 report, surfacing the parser's message
// verbatim.
func ParseError(message string, pos ast.Pos) *Report {
	return &Report{Code: LP008, Phase: "parser", Pos: &pos, Message: message}
}

// Internal reports a violated internal invariant (e.g. an environment
// length mismatch). These are unreachable in a correctly functioning
// checker; if reached, they are fatal — the statement driver does not
// attempt to recover from one.
type Internal struct {
	Message string
}

func (i *Internal) Error() string { return "internal error: " + i.Message }
