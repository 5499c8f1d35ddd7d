package hypothesis

import (
	"fmt"
	"slices"
	"strings"
)

// Reserved variable names: the input grid and the terminal output.
const (
	InputVar    = "I"
	TerminalVar = "O"
)

// ArgKind tags how an Argument resolves at execution time.
type ArgKind int

const (
	ArgConstant ArgKind = iota
	ArgVariable
	ArgInput
	ArgPrimitive
)

func (k ArgKind) String() string {
	switch k {
	case ArgConstant:
		return "constant"
	case ArgVariable:
		return "variable"
	case ArgInput:
		return "input"
	case ArgPrimitive:
		return "primitive"
	}
	return fmt.Sprintf("ArgKind(%d)", int(k))
}

// Argument references a value by name: an injected constant, a step
// variable, the input grid, or a primitive passed as a function.
type Argument struct {
	Kind ArgKind
	Name string
}

func (a Argument) String() string { return a.Name }

// Constant references an injected constant by name.
func Constant(name string) Argument { return Argument{Kind: ArgConstant, Name: name} }

// Variable references the output of an earlier step.
func Variable(name string) Argument { return Argument{Kind: ArgVariable, Name: name} }

// Input references the input grid.
func Input() Argument { return Argument{Kind: ArgInput, Name: InputVar} }

// PrimitiveRef passes a primitive by name to a function-typed parameter.
func PrimitiveRef(name string) Argument { return Argument{Kind: ArgPrimitive, Name: name} }

// StepKind distinguishes calling a primitive from calling a function-typed
// variable produced by an earlier step.
type StepKind int

const (
	StepPrimitive StepKind = iota
	StepVariableCall
)

// Step is one assignment in a hypothesis: Out = Callee(Args...).
type Step struct {
	Kind   StepKind
	Callee string
	Args   []Argument
	Out    string
}

func (s Step) String() string {
	parts := make([]string, len(s.Args))
	for i, a := range s.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s = %s(%s)", s.Out, s.Callee, strings.Join(parts, ", "))
}

// Equal reports structural equality of two steps.
func (s Step) Equal(o Step) bool {
	return s.Kind == o.Kind && s.Callee == o.Callee && s.Out == o.Out &&
		slices.Equal(s.Args, o.Args)
}

// Hypothesis is a candidate program: a straight-line sequence of steps over
// the input grid, the last of which binds the terminal variable O. Values
// are immutable once built; Extend returns a copy.
type Hypothesis struct {
	steps []Step
}

// New builds a hypothesis from steps.
func New(steps ...Step) *Hypothesis {
	return &Hypothesis{steps: append([]Step(nil), steps...)}
}

// Steps returns the steps in order. Shared, read-only.
func (h *Hypothesis) Steps() []Step { return h.steps }

// Depth is the number of steps.
func (h *Hypothesis) Depth() int { return len(h.steps) }

// Extend returns a new hypothesis with one more step. The receiver's steps
// are copied, never aliased, so partial hypotheses can be extended fanwise.
func (h *Hypothesis) Extend(step Step) *Hypothesis {
	steps := make([]Step, len(h.steps)+1)
	copy(steps, h.steps)
	steps[len(h.steps)] = step
	return &Hypothesis{steps: steps}
}

// Equal reports structural equality of two hypotheses.
func (h *Hypothesis) Equal(o *Hypothesis) bool {
	if h == nil || o == nil {
		return h == o
	}
	if len(h.steps) != len(o.steps) {
		return false
	}
	for i := range h.steps {
		if !h.steps[i].Equal(o.steps[i]) {
			return false
		}
	}
	return true
}

// String renders the steps one per line.
func (h *Hypothesis) String() string {
	lines := make([]string, len(h.steps))
	for i, s := range h.steps {
		lines[i] = s.String()
	}
	return strings.Join(lines, "\n")
}

// Key is a canonical single-line form, usable for dedup maps and logs.
func (h *Hypothesis) Key() string {
	lines := make([]string, len(h.steps))
	for i, s := range h.steps {
		lines[i] = s.String()
	}
	return strings.Join(lines, "; ")
}

// NextVar returns the name the next intermediate step would bind.
func NextVar(h *Hypothesis) string {
	return fmt.Sprintf("x%d", h.Depth()+1)
}
