package keynet

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"
)

func TestExportedTypesDocumented(t *testing.T) {
	fset := token.NewFileSet()
	pkgs, err := parser.ParseDir(fset, ".", nil, parser.ParseComments)
	if err != nil {
		t.Fatal(err)
	}
	pkg, ok := pkgs["keynet"]
	if !ok {
		t.Fatalf("package keynet not found")
	}
	for name, file := range pkg.Files {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}
			for _, spec := range gen.Specs {
				ts := spec.(*ast.TypeSpec)
				if !ts.Name.IsExported() {
					continue
				}
				if ts.Doc == nil && (gen.Doc == nil || len(gen.Specs) > 1) {
					t.Errorf("%s: exported type %s has no doc comment", name, ts.Name.Name)
				}
			}
		}
	}
}
