package main

import (
	"fmt"
	"go/format"
	"strings"
)

// Import paths compiled into the generated file.
const (
	catalogImport = "github.com/gridmind/gridil/internal/catalog"
	objectImport  = "github.com/gridmind/gridil/internal/object"
)

// render produces the generated source: the signature table the
// catalog serves and the adapter map that narrows untyped arguments
// before each call.
func render(pkgName string, prims []primitive, aliases aliasSet) ([]byte, error) {
	var b strings.Builder

	b.WriteString("// Code generated by siggen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkgName)
	b.WriteString("import (\n")
	fmt.Fprintf(&b, "\t%q\n", catalogImport)
	fmt.Fprintf(&b, "\t%q\n", objectImport)
	b.WriteString(")\n\n")

	b.WriteString("// signatures lists the published primitives in source order.\n")
	b.WriteString("var signatures = []catalog.Signature{\n")
	for _, p := range prims {
		fmt.Fprintf(&b, "\t{Name: %q, Params: []catalog.Param{%s}, Return: %q},\n",
			p.name, paramList(p.params), p.ret)
	}
	b.WriteString("}\n\n")

	b.WriteString("// adapters binds each published name to its argument-unpacking form.\n")
	b.WriteString("var adapters = map[string]*object.Callable{\n")
	for _, p := range prims {
		fmt.Fprintf(&b, "\t%q: {Name: %q, Arity: %d, Fn: func(args ...object.Value) (object.Value, error) {\n",
			p.name, p.name, len(p.params))
		fmt.Fprintf(&b, "\t\treturn %s(%s), nil\n", p.name, callArgs(p.params, aliases))
		b.WriteString("\t}},\n")
	}
	b.WriteString("}\n")

	src, err := format.Source([]byte(b.String()))
	if err != nil {
		return nil, fmt.Errorf("formatting output: %w", err)
	}
	return src, nil
}

// paramList renders the catalog.Param literals for one signature.
func paramList(params []param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = fmt.Sprintf("{Name: %q, Tag: %q}", p.name, p.tag)
	}
	return strings.Join(parts, ", ")
}

// callArgs renders the argument expressions for one adapter call,
// applying the converter where the tag narrows to a concrete type.
func callArgs(params []param, aliases aliasSet) string {
	parts := make([]string, len(params))
	for i, p := range params {
		if conv := aliases[p.tag]; conv != "" {
			parts[i] = fmt.Sprintf("%s(args[%d])", conv, i)
		} else {
			parts[i] = fmt.Sprintf("args[%d]", i)
		}
	}
	return strings.Join(parts, ", ")
}
