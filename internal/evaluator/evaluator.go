// Package evaluator executes hypotheses against worked examples.
// Execution is an untyped replay of the step list: the generator already
// guaranteed type validity, so the evaluator only resolves names and
// calls. Runtime failures are expected in bulk during search and reject
// the hypothesis rather than abort anything.
package evaluator

import (
	"errors"
	"fmt"

	"github.com/gridmind/gridil/internal/catalog"
	"github.com/gridmind/gridil/internal/hypothesis"
	"github.com/gridmind/gridil/internal/object"
)

// ErrNoTerminal reports a hypothesis whose steps never bind the terminal
// variable. Hypotheses from the generator always do; hand-built ones may
// not.
var ErrNoTerminal = errors.New("evaluator: hypothesis has no terminal step")

// Example is one worked input/output pair a hypothesis must reproduce.
type Example struct {
	Input  object.Value
	Output object.Value
}

// ExecutionError reports the step at which a hypothesis failed at runtime.
type ExecutionError struct {
	Step   int
	Callee string
	Err    error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("step %d (%s): %v", e.Step, e.Callee, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

// Execute replays a hypothesis on one input and returns the terminal
// value. The environment starts with the input bound to I; each step binds
// its output variable for later steps to reference.
func Execute(h *hypothesis.Hypothesis, cat *catalog.Catalog, input object.Value) (object.Value, error) {
	env := map[string]object.Value{hypothesis.InputVar: input}

	for i, step := range h.Steps() {
		fn, err := resolveCallee(step, env, cat)
		if err != nil {
			return nil, &ExecutionError{Step: i, Callee: step.Callee, Err: err}
		}
		args := make([]object.Value, len(step.Args))
		for j, arg := range step.Args {
			v, err := resolveArgument(arg, env, cat)
			if err != nil {
				return nil, &ExecutionError{Step: i, Callee: step.Callee, Err: err}
			}
			args[j] = v
		}
		out, err := call(fn, args)
		if err != nil {
			return nil, &ExecutionError{Step: i, Callee: step.Callee, Err: err}
		}
		env[step.Out] = out
	}

	out, ok := env[hypothesis.TerminalVar]
	if !ok {
		return nil, ErrNoTerminal
	}
	return out, nil
}

// Evaluate reports whether the hypothesis reproduces every example. The
// first runtime failure or mismatch rejects it; errors never propagate.
func Evaluate(h *hypothesis.Hypothesis, cat *catalog.Catalog, examples []Example) bool {
	for _, ex := range examples {
		out, err := Execute(h, cat, ex.Input)
		if err != nil {
			return false
		}
		if !object.Equal(out, ex.Output) {
			return false
		}
	}
	return true
}

// Score reports how many examples the hypothesis reproduces out of the
// total. Unlike Evaluate it never stops early, so it can rank near misses.
func Score(h *hypothesis.Hypothesis, cat *catalog.Catalog, examples []Example) (passed, total int) {
	for _, ex := range examples {
		out, err := Execute(h, cat, ex.Input)
		if err == nil && object.Equal(out, ex.Output) {
			passed++
		}
	}
	return passed, len(examples)
}

func resolveCallee(step hypothesis.Step, env map[string]object.Value, cat *catalog.Catalog) (*object.Callable, error) {
	switch step.Kind {
	case hypothesis.StepPrimitive:
		fn, ok := cat.Callable(step.Callee)
		if !ok {
			return nil, fmt.Errorf("unknown primitive %q", step.Callee)
		}
		return fn, nil
	case hypothesis.StepVariableCall:
		v, ok := env[step.Callee]
		if !ok {
			return nil, fmt.Errorf("unbound variable %q", step.Callee)
		}
		fn, ok := v.(*object.Callable)
		if !ok {
			return nil, fmt.Errorf("variable %q is not callable", step.Callee)
		}
		return fn, nil
	default:
		return nil, fmt.Errorf("unknown step kind %d", step.Kind)
	}
}

func resolveArgument(arg hypothesis.Argument, env map[string]object.Value, cat *catalog.Catalog) (object.Value, error) {
	switch arg.Kind {
	case hypothesis.ArgInput:
		return env[hypothesis.InputVar], nil
	case hypothesis.ArgConstant:
		k, ok := cat.Constant(arg.Name)
		if !ok {
			return nil, fmt.Errorf("unknown constant %q", arg.Name)
		}
		return k.Value, nil
	case hypothesis.ArgVariable:
		v, ok := env[arg.Name]
		if !ok {
			return nil, fmt.Errorf("unbound variable %q", arg.Name)
		}
		return v, nil
	case hypothesis.ArgPrimitive:
		fn, ok := cat.Callable(arg.Name)
		if !ok {
			return nil, fmt.Errorf("unknown primitive %q", arg.Name)
		}
		return fn, nil
	default:
		return nil, fmt.Errorf("unknown argument kind %d", arg.Kind)
	}
}

// call invokes the callable, converting panics from primitive internals
// into ordinary errors. Out-of-range grid access and bad shapes surface
// as panics; during search those just mean the hypothesis is wrong.
func call(fn *object.Callable, args []object.Value) (v object.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn.Call(args...)
}
