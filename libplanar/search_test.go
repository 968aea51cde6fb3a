package libplanar_test

import (
	"bytes"
	"testing"

	"github.com/fine-structures/planar.SDK/goplanar"
	"github.com/fine-structures/planar.SDK/libplanar"
)

func TestEnumOptsValidate(t *testing.T) {
	opts := libplanar.DefaultEnumOpts()
	opts.Quota.Sq = 1
	if _, err := libplanar.EnumPlanarGraphs(opts); err != goplanar.ErrQuotaInfeasible {
		t.Fatalf("got %v", err)
	}

	opts = libplanar.DefaultEnumOpts()
	opts.Quota = goplanar.FaceQuota{Tri: 2, Sq: 3, Pent: 0}
	if _, err := libplanar.EnumPlanarGraphs(opts); err != goplanar.ErrQuotaUnsupported {
		t.Fatalf("got %v", err)
	}

	opts = libplanar.DefaultEnumOpts()
	opts.MaxFaces = goplanar.SeedFaceCount - 1
	if _, err := libplanar.EnumPlanarGraphs(opts); err != goplanar.ErrBadCeiling {
		t.Fatalf("got %v", err)
	}
}

func TestEnumSolutions(t *testing.T) {
	opts := libplanar.DefaultEnumOpts()
	opts.MaxFaces = 12

	stream, err := libplanar.EnumPlanarGraphs(opts)
	if err != nil {
		t.Fatal(err)
	}

	seen := make(map[string]bool)
	for sol := range stream.Outlet {
		checkSolution(t, sol, opts)
		if seen[string(sol.Canonic)] {
			t.Fatal("duplicate isomorphism class emitted")
		}
		seen[string(sol.Canonic)] = true
	}
	if len(seen) != 17 {
		t.Fatalf("found %d solutions with up to 12 faces, want 17", len(seen))
	}
}

// A ceiling above the seed's face count but below the smallest solution must
// terminate with an empty stream, not an error.
func TestEnumLowCeiling(t *testing.T) {
	opts := libplanar.DefaultEnumOpts()
	opts.MaxFaces = 8

	stream, err := libplanar.EnumPlanarGraphs(opts)
	if err != nil {
		t.Fatal(err)
	}
	for sol := range stream.Outlet {
		t.Fatalf("emitted a %d-face solution under an 8-face ceiling", sol.FaceCount)
	}
}

func checkSolution(t *testing.T, sol *goplanar.Solution, opts libplanar.EnumOpts) {
	t.Helper()

	if sol.FaceCount > opts.MaxFaces {
		t.Fatalf("%d faces exceeds the ceiling", sol.FaceCount)
	}
	if sol.SqCount != opts.Quota.Sq || sol.PentCount != opts.Quota.Pent {
		t.Fatalf("face census sq=%d pent=%d off quota", sol.SqCount, sol.PentCount)
	}

	// A closed cubic planar map has V = 2(F-2) and E = 3(F-2), and its
	// non-hexagonal faces are fixed by quota.
	if sol.VtxCount != 2*(sol.FaceCount-2) {
		t.Fatalf("%d verts with %d faces", sol.VtxCount, sol.FaceCount)
	}
	if int32(len(sol.Edges)) != 3*(sol.FaceCount-2) {
		t.Fatalf("%d edges with %d faces", len(sol.Edges), sol.FaceCount)
	}
	if sol.HexCount != sol.FaceCount-1-sol.SqCount-sol.PentCount {
		t.Fatal("hex count off")
	}

	degs := make([]int32, sol.VtxCount+1)
	for _, e := range sol.Edges {
		degs[e.V1]++
		degs[e.V2]++
	}
	for v, d := range degs[1:] {
		if d != 3 {
			t.Fatalf("vertex %d has degree %d", v+1, d)
		}
	}

	if len(sol.Canonic) == 0 || sol.GroupOrder < 1 {
		t.Fatal("solution not canonized")
	}
	if len(sol.TriNbrs) != 3 {
		t.Fatal("triangle neighbor summary")
	}
	if int32(len(sol.SqrNbrs)) != sol.SqCount {
		t.Fatal("square neighbor summary")
	}
	for _, nbrs := range sol.SqrNbrs {
		if len(nbrs) != 4 {
			t.Fatal("square neighbor summary")
		}
	}
}

func TestEnumDeterministic(t *testing.T) {
	a := enumCanonics(t, 12)
	b := enumCanonics(t, 12)
	if len(a) != len(b) {
		t.Fatalf("%d vs %d solutions", len(a), len(b))
	}
	for i := range a {
		if !bytes.Equal(a[i], b[i]) {
			t.Fatalf("solution %d differs between runs", i)
		}
	}
}

// Raising the face ceiling only adds solutions: every graph within the lower
// ceiling is still within the higher one.
func TestEnumCeilingMonotone(t *testing.T) {
	lo := enumCanonics(t, 10)
	hi := enumCanonics(t, 13)
	if len(lo) != 4 || len(hi) != 33 {
		t.Fatalf("found %d and %d solutions, want 4 and 33", len(lo), len(hi))
	}

	seen := make(map[string]bool, len(hi))
	for _, c := range hi {
		seen[string(c)] = true
	}
	for i, c := range lo {
		if !seen[string(c)] {
			t.Fatalf("solution %d lost when the ceiling was raised", i)
		}
	}
}

func enumCanonics(t *testing.T, maxFaces int32) [][]byte {
	t.Helper()
	opts := libplanar.DefaultEnumOpts()
	opts.MaxFaces = maxFaces

	stream, err := libplanar.EnumPlanarGraphs(opts)
	if err != nil {
		t.Fatal(err)
	}
	var canonics [][]byte
	for sol := range stream.Outlet {
		canonics = append(canonics, sol.Canonic)
	}
	return canonics
}
