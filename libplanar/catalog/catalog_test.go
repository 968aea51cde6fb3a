package catalog_test

import (
	"os"
	"path"
	"testing"

	"github.com/fine-structures/planar.SDK/goplanar"
	"github.com/fine-structures/planar.SDK/libplanar"
	"github.com/fine-structures/planar.SDK/libplanar/catalog"
)

func TestBasics(t *testing.T) {

	dir, err := os.MkdirTemp("", "junk*")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(dir)

	ctx := goplanar.NewCatalogContext()

	opts := goplanar.CatalogOpts{
		DbPathName: path.Join(dir, "TestBasics"),
	}
	cat, err := catalog.OpenCatalog(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}

	sols := enumerate(t)
	if len(sols) == 0 {
		t.Fatal("no solutions under the test ceiling")
	}

	for _, sol := range sols {
		if added := cat.TryAddSolution(sol); !added {
			t.Fatal("nope")
		}
		if added := cat.TryAddSolution(sol); added {
			t.Fatal("nope")
		}
	}

	if cat.TotalSolutions() != int64(len(sols)) {
		t.Fatal("total off")
	}
	perHex := int64(0)
	for hexes := int32(0); hexes < 30; hexes++ {
		perHex += cat.NumSolutions(hexes)
	}
	if perHex != int64(len(sols)) {
		t.Fatal("per-hex totals off")
	}

	// Select -- we should get back everything we added
	{
		total := 0
		onHit := make(chan *goplanar.Solution)
		go func() {
			cat.Select(goplanar.DefaultSolutionSelector, onHit)
			close(onHit)
		}()
		for sol := range onHit {
			sol.Println(">>>")
			total++
		}
		if total != len(sols) {
			t.Fatal("Select fail")
		}
	}

	// Reopen -- state and solutions persist
	cat.Close()
	cat, err = catalog.OpenCatalog(ctx, opts)
	if err != nil {
		t.Fatal(err)
	}
	if cat.TotalSolutions() != int64(len(sols)) {
		t.Fatal("state did not persist")
	}
	if added := cat.TryAddSolution(sols[0]); added {
		t.Fatal("dedup did not persist")
	}
	cat.Close()

	// Read-only catalogs never add
	cat, err = catalog.OpenCatalog(ctx, goplanar.CatalogOpts{
		DbPathName: opts.DbPathName,
		ReadOnly:   true,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !cat.IsReadOnly() {
		t.Fatal("not read-only")
	}
	fresh := *sols[0]
	fresh.Canonic = append([]byte(nil), sols[0].Canonic...)
	fresh.Canonic[len(fresh.Canonic)-1] ^= 0xFF
	if added := cat.TryAddSolution(&fresh); added {
		t.Fatal("read-only add")
	}
	cat.Close()

	ctx.Close()
	<-ctx.Done()
}

func TestInMemory(t *testing.T) {
	ctx := goplanar.NewCatalogContext()

	if _, err := catalog.OpenCatalog(ctx, goplanar.CatalogOpts{ReadOnly: true}); err == nil {
		t.Fatal("read-only requires a db path")
	}

	cat, err := catalog.OpenCatalog(ctx, goplanar.CatalogOpts{})
	if err != nil {
		t.Fatal(err)
	}
	for _, sol := range enumerate(t) {
		if added := cat.TryAddSolution(sol); !added {
			t.Fatal("nope")
		}
	}
	cat.Close()

	ctx.Close()
	<-ctx.Done()
}

func enumerate(t *testing.T) []*goplanar.Solution {
	t.Helper()
	opts := libplanar.DefaultEnumOpts()
	opts.MaxFaces = 12

	stream, err := libplanar.EnumPlanarGraphs(opts)
	if err != nil {
		t.Fatal(err)
	}
	var sols []*goplanar.Solution
	for sol := range stream.Outlet {
		sols = append(sols, sol)
	}
	return sols
}
