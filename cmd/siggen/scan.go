package main

import (
	"go/ast"
	"go/token"
	"sort"
)

// sourceFile pairs a parsed file with its base filename so primitives
// can be ordered deterministically across the package.
type sourceFile struct {
	name string
	ast  *ast.File
}

// aliasSet maps a tag name to the converter that narrows an untyped
// argument to the tag's concrete type. Tags aliased to the loose value
// interface convert to the empty string and pass arguments through.
type aliasSet map[string]string

// primitive is one qualified library function.
type primitive struct {
	name   string
	params []param
	ret    string
}

// param is one declared parameter with its tag.
type param struct {
	name string
	tag  string
}

// collectAliases gathers the tag vocabulary from the package's type
// alias declarations. A tag aliased to pkg.Name converts via asName;
// a tag aliased to the value interface (pkg.Value) has no converter.
func collectAliases(files []sourceFile) aliasSet {
	aliases := make(aliasSet)
	for _, sf := range files {
		for _, decl := range sf.ast.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || !ts.Assign.IsValid() {
					continue
				}
				sel := selectorName(ts.Type)
				if sel == "" {
					continue
				}
				if sel == "Value" {
					aliases[ts.Name.Name] = ""
				} else {
					aliases[ts.Name.Name] = "as" + sel
				}
			}
		}
	}
	return aliases
}

// selectorName unwraps pkg.Name or *pkg.Name and returns Name.
func selectorName(expr ast.Expr) string {
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	sel, ok := expr.(*ast.SelectorExpr)
	if !ok {
		return ""
	}
	if _, ok := sel.X.(*ast.Ident); !ok {
		return ""
	}
	return sel.Sel.Name
}

// collectPrimitives extracts the qualified functions in source order:
// files by name, declarations by position. A function qualifies when it
// is unexported, has no receiver and no type parameters, declares
// exactly one result, and every parameter and result type is a tag.
func collectPrimitives(files []sourceFile, aliases aliasSet) []primitive {
	ordered := make([]sourceFile, len(files))
	copy(ordered, files)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].name < ordered[j].name })

	var prims []primitive
	for _, sf := range ordered {
		for _, decl := range sf.ast.Decls {
			fd, ok := decl.(*ast.FuncDecl)
			if !ok {
				continue
			}
			p, ok := qualify(fd, aliases)
			if !ok {
				continue
			}
			prims = append(prims, p)
		}
	}
	return prims
}

// qualify checks a declaration against the publication rule and
// extracts its signature. Helpers fail the rule naturally: they take
// concrete or builtin types, return multiple values, or are methods.
func qualify(fd *ast.FuncDecl, aliases aliasSet) (primitive, bool) {
	if fd.Recv != nil || fd.Type.TypeParams != nil {
		return primitive{}, false
	}
	if ast.IsExported(fd.Name.Name) {
		return primitive{}, false
	}

	results := fd.Type.Results
	if results == nil || len(results.List) != 1 || len(results.List[0].Names) > 0 {
		return primitive{}, false
	}
	ret, ok := tagName(results.List[0].Type, aliases)
	if !ok {
		return primitive{}, false
	}

	p := primitive{name: fd.Name.Name, ret: ret}
	if fd.Type.Params != nil {
		for _, field := range fd.Type.Params.List {
			tag, ok := tagName(field.Type, aliases)
			if !ok || len(field.Names) == 0 {
				return primitive{}, false
			}
			for _, id := range field.Names {
				p.params = append(p.params, param{name: id.Name, tag: tag})
			}
		}
	}
	return p, true
}

// tagName returns the tag a type expression names, if it is a bare
// identifier in the alias set.
func tagName(expr ast.Expr, aliases aliasSet) (string, bool) {
	id, ok := expr.(*ast.Ident)
	if !ok {
		return "", false
	}
	if _, ok := aliases[id.Name]; !ok {
		return "", false
	}
	return id.Name, true
}
