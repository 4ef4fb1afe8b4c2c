// Package errors provides the structured error kinds surfaced by lambdapi,
// using a phase-tagged error code convention (parser codes, type-checker
// codes, evaluator codes) rather than ad-hoc fmt.Errorf text.
package errors

// Error codes, one per error kind the checker and parser can raise. The
// phase that raises each one is recorded in Registry.
const (
	// LP001 — a name was used but never declared or defined.
	LP001 = "LP001" // UnboundVariable

	// LP002 — a name was declared or defined twice in the same context.
	LP002 = "LP002" // Redeclaration

	// LP003 — a term was checked against a type it does not have.
	LP003 = "LP003" // TypeMismatch

	// LP004 — a term was applied, or a lambda checked, against a non-Π type.
	LP004 = "LP004" // ExpectedFunctionType

	// LP005 — an application's function position evaluated to a non-function.
	LP005 = "LP005" // NotAFunction

	// LP006 — a type-position term did not have type 𝒰.
	LP006 = "LP006" // ExpectedUniverse

	// LP007 — an un-annotated lambda appeared where infer, not check, applies.
	LP007 = "LP007" // CannotInferLambda

	// LP008 — the parser rejected the input; message is surfaced verbatim.
	LP008 = "LP008" // ParseError
)

// Info describes an error code: the phase that raises it and a short
// description.
type Info struct {
	Code        string
	Phase       string
	Description string
}

// Registry maps every code to its Info.
var Registry = map[string]Info{
	LP001: {LP001, "typecheck", "Unbound variable"},
	LP002: {LP002, "context", "Redeclaration of an existing name"},
	LP003: {LP003, "typecheck", "Type mismatch"},
	LP004: {LP004, "typecheck", "Expected a function (Π) type"},
	LP005: {LP005, "eval", "Application of a non-function"},
	LP006: {LP006, "typecheck", "Expected a type (𝒰)"},
	LP007: {LP007, "typecheck", "Cannot infer the type of an un-annotated lambda"},
	LP008: {LP008, "parser", "Parse error"},
}

// GetInfo looks up a code's Info.
func GetInfo(code string) (Info, bool) {
	info, ok := Registry[code]
	return info, ok
}
