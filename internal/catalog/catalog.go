package catalog

import (
	"sort"
	"strings"

	"github.com/gridmind/gridil/internal/object"
	"github.com/gridmind/gridil/internal/typesystem"
)

// Param is one named, tagged parameter of a library signature.
type Param struct {
	Name string
	Tag  string
}

// Signature is the static description a library publishes for one
// primitive. Tags are resolved against an AliasTable at extraction time;
// the library itself never deals in resolved types.
type Signature struct {
	Name   string
	Params []Param
	Return string
}

// Constant is a named, typed value a library injects into the search space.
type Constant struct {
	Name  string
	Tag   string
	Value object.Value
}

// Library is the boundary between the engine and a primitive collection:
// a static signature table for generation plus callables for execution.
type Library interface {
	Signatures() []Signature
	Callable(name string) (*object.Callable, bool)
}

// ConstantProvider is implemented by libraries that ship their own
// constants alongside their primitives.
type ConstantProvider interface {
	Constants() []Constant
}

// Primitive is the resolved form of one signature.
type Primitive struct {
	Name            string
	ParamNames      []string
	ParamTypes      []typesystem.Type
	Return          typesystem.Type
	HigherOrder     bool
	ReturnsCallable bool
}

// FuncType is the function type formed by the primitive's own signature,
// used when the primitive is passed by name to a higher-order parameter.
func (p *Primitive) FuncType() typesystem.Func {
	return typesystem.Func{Params: p.ParamTypes, Return: p.Return}
}

// ConstantInfo is the resolved form of one injected constant.
type ConstantInfo struct {
	Name  string
	Type  typesystem.Type
	Value object.Value
}

// Catalog is the resolved search space: primitives in name order and
// constants in declared order. Both orders are load-bearing, they fix the
// enumeration sequence of the generator.
type Catalog struct {
	lib        Library
	primitives []Primitive
	constants  []ConstantInfo
	byName     map[string]int
	constIdx   map[string]int
}

// Extract resolves a library's signature table against the default alias
// vocabulary. Constants passed here are joined with any the library itself
// provides, library constants first.
func Extract(lib Library, consts []Constant) *Catalog {
	return ExtractWith(lib, consts, DefaultAliases())
}

// ExtractWith is Extract with a caller-supplied alias table.
func ExtractWith(lib Library, consts []Constant, aliases *AliasTable) *Catalog {
	cat := &Catalog{
		lib:      lib,
		byName:   make(map[string]int),
		constIdx: make(map[string]int),
	}

	sigs := append([]Signature(nil), lib.Signatures()...)
	sort.Slice(sigs, func(a, b int) bool { return sigs[a].Name < sigs[b].Name })

	for _, sig := range sigs {
		if sig.Name == "" || strings.HasPrefix(sig.Name, "_") {
			continue
		}
		p := Primitive{
			Name:       sig.Name,
			ParamNames: make([]string, len(sig.Params)),
			ParamTypes: make([]typesystem.Type, len(sig.Params)),
			Return:     aliases.Resolve(sig.Return),
		}
		for i, param := range sig.Params {
			p.ParamNames[i] = param.Name
			p.ParamTypes[i] = aliases.Resolve(param.Tag)
			if typesystem.IsFunc(p.ParamTypes[i]) {
				p.HigherOrder = true
			}
		}
		p.ReturnsCallable = typesystem.IsFunc(p.Return)

		if at, ok := cat.byName[sig.Name]; ok {
			cat.primitives[at] = p
			continue
		}
		cat.byName[sig.Name] = len(cat.primitives)
		cat.primitives = append(cat.primitives, p)
	}

	if provider, ok := lib.(ConstantProvider); ok {
		cat.addConstants(provider.Constants(), aliases)
	}
	cat.addConstants(consts, aliases)

	return cat
}

func (c *Catalog) addConstants(consts []Constant, aliases *AliasTable) {
	for _, k := range consts {
		if k.Name == "" {
			continue
		}
		info := ConstantInfo{Name: k.Name, Type: aliases.Resolve(k.Tag), Value: k.Value}
		if at, ok := c.constIdx[k.Name]; ok {
			c.constants[at] = info
			continue
		}
		c.constIdx[k.Name] = len(c.constants)
		c.constants = append(c.constants, info)
	}
}

// Primitives returns the primitives in name order. Shared, read-only.
func (c *Catalog) Primitives() []Primitive { return c.primitives }

// Constants returns the constants in declared order. Shared, read-only.
func (c *Catalog) Constants() []ConstantInfo { return c.constants }

// Primitive looks up a primitive by name.
func (c *Catalog) Primitive(name string) (*Primitive, bool) {
	at, ok := c.byName[name]
	if !ok {
		return nil, false
	}
	return &c.primitives[at], true
}

// Constant looks up a constant by name.
func (c *Catalog) Constant(name string) (*ConstantInfo, bool) {
	at, ok := c.constIdx[name]
	if !ok {
		return nil, false
	}
	return &c.constants[at], true
}

// Callable resolves the executable form of a primitive. Generation works
// from signatures alone; execution reaches back into the library.
func (c *Catalog) Callable(name string) (*object.Callable, bool) {
	if c.lib == nil {
		return nil, false
	}
	return c.lib.Callable(name)
}

// Len returns the number of primitives.
func (c *Catalog) Len() int { return len(c.primitives) }
