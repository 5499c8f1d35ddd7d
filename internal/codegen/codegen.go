// Package codegen renders hypotheses as solver source text and parses
// rendered text back. The format is the original solver-file layout: a
// one-parameter function, one assignment per step, a trailing return of
// the terminal variable.
package codegen

import (
	"fmt"
	"strings"

	"github.com/gridmind/gridil/internal/catalog"
	"github.com/gridmind/gridil/internal/hypothesis"
)

// ConfigError reports a rendering request the target form cannot express.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string { return "codegen: " + e.Reason }

// Render emits the solver form of a hypothesis. The output is a pure
// function of its inputs: identical hypothesis and name produce identical
// text.
func Render(h *hypothesis.Hypothesis, name string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "def solve_%s(I):\n", name)
	for _, step := range h.Steps() {
		fmt.Fprintf(&b, "    %s\n", step)
	}
	b.WriteString("    return O")
	return b.String()
}

// RenderLambda emits the single-expression form. Only a one-step primitive
// call can be expressed without named intermediate bindings; anything else
// is a ConfigError.
func RenderLambda(h *hypothesis.Hypothesis) (string, error) {
	steps := h.Steps()
	if len(steps) != 1 {
		return "", &ConfigError{Reason: fmt.Sprintf("cannot render a %d-step hypothesis as a lambda", len(steps))}
	}
	step := steps[0]
	if step.Kind != hypothesis.StepPrimitive {
		return "", &ConfigError{Reason: "cannot render a variable call as a lambda"}
	}
	return fmt.Sprintf("lambda I: %s(%s)", step.Callee, joinArgs(step.Args)), nil
}

// Repr is a compact one-line form for logs: callees and arguments chained
// in step order, output variables dropped.
func Repr(h *hypothesis.Hypothesis) string {
	parts := make([]string, 0, h.Depth())
	for _, step := range h.Steps() {
		parts = append(parts, fmt.Sprintf("%s(%s)", step.Callee, joinArgs(step.Args)))
	}
	return strings.Join(parts, " -> ")
}

func joinArgs(args []hypothesis.Argument) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = a.String()
	}
	return strings.Join(parts, ", ")
}

// ParseFunction parses rendered solver text back into its name and
// hypothesis, the inverse of Render. Identifiers are classified against
// the catalog: the input name and earlier step outputs by position,
// then constants, then primitive references; a callee bound by an earlier
// step parses as a variable call. Anything unrecognized is an error.
func ParseFunction(src string, cat *catalog.Catalog) (string, *hypothesis.Hypothesis, error) {
	var lines []string
	for _, line := range strings.Split(src, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimSpace(line))
		}
	}
	if len(lines) == 0 {
		return "", nil, fmt.Errorf("codegen: empty source")
	}

	name, err := parseHeader(lines[0])
	if err != nil {
		return "", nil, err
	}

	last := lines[len(lines)-1]
	if last != "return "+hypothesis.TerminalVar {
		return "", nil, fmt.Errorf("codegen: missing terminal return, got %q", last)
	}

	bound := map[string]bool{}
	var steps []hypothesis.Step
	for i, line := range lines[1 : len(lines)-1] {
		step, err := parseStep(line, bound, cat)
		if err != nil {
			return "", nil, fmt.Errorf("codegen: line %d: %w", i+2, err)
		}
		bound[step.Out] = true
		steps = append(steps, step)
	}

	return name, hypothesis.New(steps...), nil
}

func parseHeader(line string) (string, error) {
	rest, ok := strings.CutPrefix(line, "def solve_")
	if !ok {
		return "", fmt.Errorf("codegen: missing solver header, got %q", line)
	}
	name, ok := strings.CutSuffix(rest, "(I):")
	if !ok || name == "" {
		return "", fmt.Errorf("codegen: malformed solver header, got %q", line)
	}
	return name, nil
}

func parseStep(line string, bound map[string]bool, cat *catalog.Catalog) (hypothesis.Step, error) {
	lhs, rhs, ok := strings.Cut(line, "=")
	if !ok {
		return hypothesis.Step{}, fmt.Errorf("malformed step %q", line)
	}
	out := strings.TrimSpace(lhs)
	rhs = strings.TrimSpace(rhs)

	open := strings.IndexByte(rhs, '(')
	if open <= 0 || !strings.HasSuffix(rhs, ")") {
		return hypothesis.Step{}, fmt.Errorf("malformed call %q", rhs)
	}
	callee := rhs[:open]
	inner := rhs[open+1 : len(rhs)-1]

	kind := hypothesis.StepPrimitive
	if bound[callee] {
		kind = hypothesis.StepVariableCall
	}

	var args []hypothesis.Argument
	if inner != "" {
		for _, raw := range strings.Split(inner, ",") {
			arg, err := classify(strings.TrimSpace(raw), bound, cat)
			if err != nil {
				return hypothesis.Step{}, err
			}
			args = append(args, arg)
		}
	}

	return hypothesis.Step{Kind: kind, Callee: callee, Args: args, Out: out}, nil
}

func classify(name string, bound map[string]bool, cat *catalog.Catalog) (hypothesis.Argument, error) {
	switch {
	case name == hypothesis.InputVar:
		return hypothesis.Input(), nil
	case bound[name]:
		return hypothesis.Variable(name), nil
	default:
		if _, ok := cat.Constant(name); ok {
			return hypothesis.Constant(name), nil
		}
		if _, ok := cat.Primitive(name); ok {
			return hypothesis.PrimitiveRef(name), nil
		}
		return hypothesis.Argument{}, fmt.Errorf("unknown identifier %q", name)
	}
}
