package main

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestUsage(t *testing.T) {
	var stderr bytes.Buffer
	if code := run(nil, &stderr); code != 1 {
		t.Fatalf("ERR exit code without argument: %d\n", code)
	}
	if !strings.Contains(stderr.String(), "Usage: swifftgen") {
		t.Fatalf("ERR no usage message: %q\n", stderr.String())
	}
}

func TestUnwritablePath(t *testing.T) {
	var stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "missing", "zconst.go")
	if code := run([]string{path}, &stderr); code != 1 {
		t.Fatalf("ERR exit code for unwritable path: %d\n", code)
	}
	if _, err := os.Stat(path); err == nil {
		t.Fatalf("ERR partial output left behind\n")
	}
}

func TestUnknownParams(t *testing.T) {
	var stderr bytes.Buffer
	path := filepath.Join(t.TempDir(), "zconst.go")
	if code := run([]string{"-params", "huge", path}, &stderr); code != 1 {
		t.Fatalf("ERR exit code for unknown parameters: %d\n", code)
	}
}

func TestGenerate(t *testing.T) {
	var tests = []struct {
		params string
		sizes  map[string]int
	}{
		{"standard", map[string]int{
			"std_multipliers": 64, "std_butterfly": 2048,
			"std_key": 2048, "std_omega_powers": 129}},
		{"toy", map[string]int{
			"std_multipliers": 8, "std_butterfly": 16,
			"std_key": 16, "std_omega_powers": 17}},
	}
	for _, tt := range tests {
		dir := t.TempDir()
		path := filepath.Join(dir, "zconst.go")
		var stderr bytes.Buffer
		if code := run([]string{"-params", tt.params, "-pkg", "gen", path}, &stderr); code != 0 {
			t.Fatalf("ERR %s: exit code %d: %s\n", tt.params, code, stderr.String())
		}
		src, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		f, err := parser.ParseFile(token.NewFileSet(), path, src, 0)
		if err != nil {
			t.Fatalf("ERR %s: generated source does not parse: %v\n", tt.params, err)
		}
		if f.Name.Name != "gen" {
			t.Fatalf("ERR %s: package %s\n", tt.params, f.Name.Name)
		}
		found := 0
		for _, d := range f.Decls {
			g, ok := d.(*ast.GenDecl)
			if !ok {
				continue
			}
			for _, s := range g.Specs {
				vs := s.(*ast.ValueSpec)
				name := vs.Names[0].Name
				n, ok := tt.sizes[name]
				if !ok {
					t.Fatalf("ERR %s: unexpected declaration %s\n", tt.params, name)
				}
				lit := vs.Values[0].(*ast.CompositeLit)
				if len(lit.Elts) != n {
					t.Fatalf("ERR %s: %s has %d values (exp: %d)\n",
						tt.params, name, len(lit.Elts), n)
				}
				found++
			}
		}
		if found != 4 {
			t.Fatalf("ERR %s: %d arrays\n", tt.params, found)
		}

		// No temporary file is left in the directory.
		ents, _ := os.ReadDir(dir)
		if len(ents) != 1 {
			t.Fatalf("ERR %s: %d files in output directory\n", tt.params, len(ents))
		}
	}
}

// With default flags, the output is the checked-in constants file.
func TestStandardMatchesCheckedIn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zconst.go")
	var stderr bytes.Buffer
	if code := run([]string{path}, &stderr); code != 0 {
		t.Fatalf("ERR exit code %d: %s\n", code, stderr.String())
	}
	got, _ := os.ReadFile(path)
	exp, err := os.ReadFile(filepath.Join("..", "..", "swifft", "zconst.go"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, exp) {
		t.Fatalf("ERR generated source differs from swifft/zconst.go\n")
	}
}
