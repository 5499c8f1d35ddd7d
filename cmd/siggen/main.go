// siggen generates the signature table and adapter map a primitive
// library publishes through the catalog. It reads the tag vocabulary
// from the package's type alias declarations, qualifies every
// unexported single-result function whose parameter and result types
// are all tags, and writes the two tables out in source order.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/go/packages"
)

func main() {
	dir := flag.String("dir", ".", "directory of the library package to scan")
	out := flag.String("out", "signatures_gen.go", "output filename, relative to -dir")
	flag.Parse()

	if err := run(*dir, *out); err != nil {
		fmt.Fprintf(os.Stderr, "siggen: %s\n", err)
		os.Exit(1)
	}
}

func run(dir, out string) error {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedSyntax,
		Dir:  dir,
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return fmt.Errorf("loading package: %w", err)
	}
	if len(pkgs) != 1 {
		return fmt.Errorf("expected one package in %s, found %d", dir, len(pkgs))
	}
	pkg := pkgs[0]

	var errs []string
	for _, e := range pkg.Errors {
		errs = append(errs, e.Msg)
	}
	if len(errs) > 0 {
		return fmt.Errorf("package %s:\n  %s", pkg.PkgPath, strings.Join(errs, "\n  "))
	}

	// The previous output and test files never contribute primitives.
	var files []sourceFile
	for _, f := range pkg.Syntax {
		name := filepath.Base(pkg.Fset.Position(f.Pos()).Filename)
		if name == out || strings.HasSuffix(name, "_test.go") {
			continue
		}
		files = append(files, sourceFile{name: name, ast: f})
	}

	aliases := collectAliases(files)
	if len(aliases) == 0 {
		return fmt.Errorf("no tag aliases declared in %s", pkg.PkgPath)
	}
	prims := collectPrimitives(files, aliases)
	if len(prims) == 0 {
		return fmt.Errorf("no primitives qualified in %s", pkg.PkgPath)
	}

	src, err := render(pkg.Name, prims, aliases)
	if err != nil {
		return err
	}

	path := filepath.Join(dir, out)
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	fmt.Printf("siggen: %d primitives -> %s\n", len(prims), path)
	return nil
}
