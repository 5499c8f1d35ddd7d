package object

import "fmt"

// Boolean is a truth value.
type Boolean bool

func (b Boolean) Kind() Kind      { return KindBoolean }
func (b Boolean) Inspect() string { return fmt.Sprintf("%t", bool(b)) }
func (Boolean) numerical()        {} // booleans count as 0/1 in arithmetic contexts

// Integer is a plain integer value.
type Integer int

func (i Integer) Kind() Kind      { return KindInteger }
func (i Integer) Inspect() string { return fmt.Sprintf("%d", int(i)) }
func (Integer) numerical()        {}

// Pair is an integer pair, used for locations, offsets and dimensions in
// (row, column) order.
type Pair struct {
	I int
	J int
}

func (p Pair) Kind() Kind      { return KindPair }
func (p Pair) Inspect() string { return fmt.Sprintf("(%d, %d)", p.I, p.J) }
func (Pair) numerical()        {}

// Cell is one colored grid location.
type Cell struct {
	Value int
	Loc   Pair
}

func (c Cell) Kind() Kind      { return KindCell }
func (c Cell) Inspect() string { return fmt.Sprintf("(%d, %s)", c.Value, c.Loc.Inspect()) }

// Callable is a first-class function value. Higher-order primitives produce
// them and the apply family consumes them.
type Callable struct {
	Name  string
	Arity int
	Fn    func(args ...Value) (Value, error)
}

func (c *Callable) Kind() Kind { return KindCallable }

func (c *Callable) Inspect() string {
	if c.Name == "" {
		return fmt.Sprintf("<callable/%d>", c.Arity)
	}
	return fmt.Sprintf("<callable %s/%d>", c.Name, c.Arity)
}

// Call invokes the callable after checking arity.
func (c *Callable) Call(args ...Value) (Value, error) {
	if len(args) != c.Arity {
		return nil, fmt.Errorf("callable %s: want %d arguments, got %d", c.Inspect(), c.Arity, len(args))
	}
	return c.Fn(args...)
}
