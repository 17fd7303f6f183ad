package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benjivesterby/go-swifft/swifft"
)

func TestMeasureAndRender(t *testing.T) {
	tab := swifft.StandardTables()
	blocks := 4
	in := make([]byte, blocks*tab.InputBlockSize())
	swifft.SeededInput([]byte("swifftbench-test"), in)
	results, err := measure(tab, in, blocks, 2)
	if err != nil {
		t.Fatal(err)
	}
	tiers := swifft.Tiers()
	if len(results) != len(tiers) {
		t.Fatalf("ERR %d results for %d tiers\n", len(results), len(tiers))
	}
	for i, r := range results {
		if r.tier != tiers[i] || r.elapsed <= 0 || r.mbps <= 0 {
			t.Fatalf("ERR result %d: %+v\n", i, r)
		}
	}

	path := filepath.Join(t.TempDir(), "report.html")
	if err := render(path, results, blocks); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	html := string(data)
	for _, want := range []string{"swifftbench", "MB/s", swifft.Baseline.String()} {
		if !strings.Contains(html, want) {
			t.Fatalf("ERR report does not contain %q\n", want)
		}
	}
}

func TestRenderBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.html")
	if err := render(path, nil, 1); err == nil {
		t.Fatalf("ERR render to a missing directory succeeded\n")
	}
}
