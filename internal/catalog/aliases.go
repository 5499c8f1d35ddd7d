package catalog

import (
	"strings"

	"github.com/gridmind/gridil/internal/typesystem"
)

// AliasTable translates the type tags a library declares in its signatures
// into the closed type vocabulary. Tags are plain names such as "Grid" or
// "Piece"; unknown tags resolve to Any so an unusual library still loads.
type AliasTable struct {
	order []string
	types map[string]typesystem.Type
}

// NewAliasTable returns an empty alias table.
func NewAliasTable() *AliasTable {
	return &AliasTable{types: make(map[string]typesystem.Type)}
}

// Bind maps a tag to a type. Rebinding an existing tag keeps its original
// position in the fallback scan order.
func (t *AliasTable) Bind(tag string, typ typesystem.Type) {
	if _, ok := t.types[tag]; !ok {
		t.order = append(t.order, tag)
	}
	t.types[tag] = typ
}

// Resolve maps a tag to a type. An empty tag and any unknown tag resolve to
// Any; tags mentioning Callable resolve to the generic unary function type;
// a bracketed suffix such as "FrozenSet[Integer]" is stripped before lookup.
// When the stripped tag is still unknown, the first bound tag contained in
// the full tag string decides, in binding order.
func (t *AliasTable) Resolve(tag string) typesystem.Type {
	if tag == "" {
		return typesystem.Any
	}
	if strings.Contains(tag, "Callable") {
		return typesystem.NewFunc(typesystem.Any, typesystem.Any)
	}

	base := tag
	if i := strings.IndexByte(base, '['); i >= 0 {
		base = base[:i]
	}
	if typ, ok := t.types[base]; ok {
		return typ
	}

	for _, key := range t.order {
		if strings.Contains(tag, key) {
			return t.types[key]
		}
	}
	return typesystem.Any
}

// DefaultAliases is the standard tag vocabulary of the grid DSL, including
// the union aliases, mapped to their widest searchable representative.
func DefaultAliases() *AliasTable {
	t := NewAliasTable()
	for _, a := range []struct {
		tag string
		typ typesystem.Type
	}{
		{"Boolean", typesystem.Boolean},
		{"bool", typesystem.Boolean},
		{"Integer", typesystem.Integer},
		{"int", typesystem.Integer},
		{"IntegerTuple", typesystem.IntPair},
		{"Numerical", typesystem.IntPair},
		{"Grid", typesystem.Grid},
		{"Cell", typesystem.Cell},
		{"Object", typesystem.Object},
		{"Objects", typesystem.Objects},
		{"Indices", typesystem.Indices},
		{"IndicesSet", typesystem.IndicesSet},
		{"IntegerSet", typesystem.IntSet},
		{"Patch", typesystem.Object},
		{"Element", typesystem.Grid},
		{"Piece", typesystem.Grid},
		{"Tuple", typesystem.Tuple},
		{"TupleTuple", typesystem.TupleTuple},
		{"Container", typesystem.Container},
		{"ContainerContainer", typesystem.ContainerContainer},
		{"FrozenSet", typesystem.AnySet},
		{"Any", typesystem.Any},
	} {
		t.Bind(a.tag, a.typ)
	}
	return t
}
