// Package context implements the ordered sequence of typed bindings that
// persists across REPL statements.
package context

import (
	"github.com/lambdapi/lambdapi/internal/ast"
	"github.com/lambdapi/lambdapi/internal/errors"
	"github.com/lambdapi/lambdapi/internal/eval"
)

// Entry is one binding: an assumption (IsDef == false) or a definition.
type Entry struct {
	Name  string
	Type  eval.Value
	Value eval.Value // the definition's value; unused (nil) when IsDef is false
	IsDef bool
}

// EnvValue returns the value this entry contributes to an evaluation
// environment: the definition's value if there is one, otherwise the
// neutral variable that stands for the assumption.
func (e Entry) EnvValue(level int) eval.Value {
	if e.IsDef {
		return e.Value
	}
	return eval.NamedNeutral(e.Name, level)
}

// Context is the append-only (per statement) ordered list of bindings.
// Names are unique; redeclaration is rejected by Declare/Define.
type Context struct {
	entries []Entry
}

// New returns an empty context.
func New() *Context {
	return &Context{}
}

// Len returns the number of entries, which doubles as the next free
// de Bruijn level for a fresh assumption (see Declare/WithAssumption).
func (c *Context) Len() int {
	return len(c.entries)
}

// Lookup returns the entry for name, if present. Scans newest-first so a
// shadowing binder (e.g. one opened by WithAssumption for a Pi/lambda
// whose argument name collides with an outer entry) resolves to the
// innermost binding, matching Env()'s shadowing order.
func (c *Context) Lookup(name string) (Entry, bool) {
	for i := len(c.entries) - 1; i >= 0; i-- {
		if c.entries[i].Name == name {
			return c.entries[i], true
		}
	}
	return Entry{}, false
}

// Has reports whether name is already bound.
func (c *Context) Has(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// Declare adds a bare assumption `name :: ty`. Fails with a Redeclaration
// report if name is already present.
func (c *Context) Declare(name string, ty eval.Value, pos ast.Pos) error {
	if c.Has(name) {
		return errors.Redeclaration(name, pos)
	}
	c.entries = append(c.entries, Entry{Name: name, Type: ty})
	return nil
}

// Define adds a definition `name := value : ty`. Fails with a Redeclaration
// report if name is already present.
func (c *Context) Define(name string, ty eval.Value, value eval.Value, pos ast.Pos) error {
	if c.Has(name) {
		return errors.Redeclaration(name, pos)
	}
	c.entries = append(c.entries, Entry{Name: name, Type: ty, Value: value, IsDef: true})
	return nil
}

// WithAssumption pushes a scoped, unnamed-to-the-caller assumption of type
// ty, invokes fn with the value standing for it, and pops the assumption on
// every exit path (including a panic). It is used by the type checker when
// it needs to open a binder (Pi formation, lambda checking) without
// polluting the persistent top-level context.
func (c *Context) WithAssumption(name string, ty eval.Value, fn func(arg eval.Value) error) error {
	level := len(c.entries)
	arg := eval.NamedNeutral(name, level)
	c.entries = append(c.entries, Entry{Name: name, Type: ty})
	defer func() {
		c.entries = c.entries[:len(c.entries)-1]
	}()
	return fn(arg)
}

// Env builds the evaluation environment corresponding to every binding
// currently in scope: definitions evaluate to their stored value,
// assumptions evaluate to the neutral variable that stands for them.
func (c *Context) Env() *eval.Env {
	var env *eval.Env
	for level, e := range c.entries {
		env = env.Extend(e.Name, e.EnvValue(level))
	}
	return env
}

// Entries returns a snapshot of the current bindings, outermost first, for
// the `show` command.
func (c *Context) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}
