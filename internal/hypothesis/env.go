package hypothesis

import (
	"github.com/gridmind/gridil/internal/catalog"
	"github.com/gridmind/gridil/internal/typesystem"
)

// TypeEnv tracks the types of bound variables during generation. Entries
// keep insertion order; the generator's candidate ordering depends on it.
type TypeEnv struct {
	names []string
	types map[string]typesystem.Type
}

// NewTypeEnv returns an environment holding only the input grid.
func NewTypeEnv() *TypeEnv {
	e := &TypeEnv{types: make(map[string]typesystem.Type)}
	e.Add(InputVar, typesystem.Grid)
	return e
}

// Add binds a variable type. Rebinding keeps the original position.
func (e *TypeEnv) Add(name string, typ typesystem.Type) {
	if _, ok := e.types[name]; !ok {
		e.names = append(e.names, name)
	}
	e.types[name] = typ
}

// Get looks up a variable's type.
func (e *TypeEnv) Get(name string) (typesystem.Type, bool) {
	typ, ok := e.types[name]
	return typ, ok
}

// Names returns the bound names in insertion order. Shared, read-only.
func (e *TypeEnv) Names() []string { return e.names }

// Len returns the number of bound variables.
func (e *TypeEnv) Len() int { return len(e.names) }

// CallableVars returns the function-typed variable names in insertion order.
func (e *TypeEnv) CallableVars() []string {
	var out []string
	for _, name := range e.names {
		if typesystem.IsFunc(e.types[name]) {
			out = append(out, name)
		}
	}
	return out
}

// DeriveEnv replays a partial hypothesis and returns the resulting type
// environment. Callable-returning primitives use their override type so the
// bound variable stays callable; unknown callees and non-function callees
// degrade to Any.
func DeriveEnv(h *Hypothesis, cat *catalog.Catalog) *TypeEnv {
	env := NewTypeEnv()

	for _, step := range h.Steps() {
		var out typesystem.Type = typesystem.Any
		switch step.Kind {
		case StepPrimitive:
			if info, ok := cat.Primitive(step.Callee); ok {
				if typ, overridden := catalog.CallableReturn(step.Callee); overridden {
					out = typ
				} else {
					out = info.Return
				}
			}
		case StepVariableCall:
			if calleeType, ok := env.Get(step.Callee); ok {
				if fn, isFunc := calleeType.(typesystem.Func); isFunc {
					out = fn.Return
					if out == nil {
						out = typesystem.Any
					}
				}
			}
		}
		env.Add(step.Out, out)
	}

	return env
}
