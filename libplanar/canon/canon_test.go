package canon_test

import (
	"bytes"
	"testing"

	"github.com/fine-structures/planar.SDK/goplanar"
	"github.com/fine-structures/planar.SDK/libplanar/canon"
)

func makeSolution(vtxCount int32, edges ...[2]int32) *goplanar.Solution {
	sol := &goplanar.Solution{
		VtxCount: vtxCount,
	}
	for _, e := range edges {
		sol.Edges = append(sol.Edges, goplanar.EdgePair{
			V1: goplanar.VtxID(e[0]),
			V2: goplanar.VtxID(e[1]),
		})
	}
	return sol
}

func mustCanonize(t *testing.T, sol *goplanar.Solution) *goplanar.Solution {
	t.Helper()
	if err := canon.Canonize(sol); err != nil {
		t.Fatal(err)
	}
	return sol
}

func TestK4(t *testing.T) {
	K4 := mustCanonize(t, makeSolution(4,
		[2]int32{1, 2}, [2]int32{1, 3}, [2]int32{1, 4},
		[2]int32{2, 3}, [2]int32{2, 4}, [2]int32{3, 4}))

	if K4.GroupOrder != 24 {
		t.Fatalf("|Aut(K4)| = %d", K4.GroupOrder)
	}
	if len(K4.Canonic) == 0 {
		t.Fatal("no canonical form")
	}
}

func TestPrism(t *testing.T) {
	// The triangular prism: two triangles joined by rungs.
	prism := mustCanonize(t, makeSolution(6,
		[2]int32{1, 2}, [2]int32{2, 3}, [2]int32{1, 3},
		[2]int32{4, 5}, [2]int32{5, 6}, [2]int32{4, 6},
		[2]int32{1, 4}, [2]int32{2, 5}, [2]int32{3, 6}))

	if prism.GroupOrder != 12 {
		t.Fatalf("|Aut(prism)| = %d", prism.GroupOrder)
	}

	// Any relabeling canonizes to the same form.
	relabeled := mustCanonize(t, makeSolution(6,
		[2]int32{6, 1}, [2]int32{1, 5}, [2]int32{6, 5},
		[2]int32{2, 4}, [2]int32{4, 3}, [2]int32{2, 3},
		[2]int32{6, 2}, [2]int32{1, 4}, [2]int32{5, 3}))

	if !bytes.Equal(prism.Canonic, relabeled.Canonic) {
		t.Fatal("relabeled prism canonizes differently")
	}
	if relabeled.GroupOrder != 12 {
		t.Fatalf("|Aut| = %d after relabeling", relabeled.GroupOrder)
	}

	// K(3,3) is the other cubic graph on 6 vertices.
	k33 := mustCanonize(t, makeSolution(6,
		[2]int32{1, 4}, [2]int32{1, 5}, [2]int32{1, 6},
		[2]int32{2, 4}, [2]int32{2, 5}, [2]int32{2, 6},
		[2]int32{3, 4}, [2]int32{3, 5}, [2]int32{3, 6}))

	if bytes.Equal(prism.Canonic, k33.Canonic) {
		t.Fatal("prism and K(3,3) canonize identically")
	}
	if k33.GroupOrder != 72 {
		t.Fatalf("|Aut(K33)| = %d", k33.GroupOrder)
	}
}

func TestCube(t *testing.T) {
	Q3 := mustCanonize(t, makeSolution(8,
		[2]int32{1, 2}, [2]int32{2, 3}, [2]int32{3, 4}, [2]int32{4, 1},
		[2]int32{5, 6}, [2]int32{6, 7}, [2]int32{7, 8}, [2]int32{8, 5},
		[2]int32{1, 5}, [2]int32{2, 6}, [2]int32{3, 7}, [2]int32{4, 8}))

	if Q3.GroupOrder != 48 {
		t.Fatalf("|Aut(Q3)| = %d", Q3.GroupOrder)
	}
}

func TestValidation(t *testing.T) {
	cases := []struct {
		sol  *goplanar.Solution
		want error
	}{
		// Vertex out of range.
		{makeSolution(4,
			[2]int32{1, 2}, [2]int32{1, 3}, [2]int32{1, 5},
			[2]int32{2, 3}, [2]int32{2, 4}, [2]int32{3, 4}), goplanar.ErrBadVtxID},

		// Self loop.
		{makeSolution(4,
			[2]int32{1, 1}, [2]int32{1, 3}, [2]int32{1, 4},
			[2]int32{2, 3}, [2]int32{2, 4}, [2]int32{3, 4}), goplanar.ErrNotSimple},

		// Duplicate edge.
		{makeSolution(4,
			[2]int32{1, 2}, [2]int32{2, 1}, [2]int32{1, 4},
			[2]int32{2, 3}, [2]int32{2, 4}, [2]int32{3, 4}), goplanar.ErrNotSimple},

		// A path is not cubic.
		{makeSolution(3,
			[2]int32{1, 2}, [2]int32{2, 3}), goplanar.ErrNotCubic},

		// Two disjoint K4s.
		{makeSolution(8,
			[2]int32{1, 2}, [2]int32{1, 3}, [2]int32{1, 4},
			[2]int32{2, 3}, [2]int32{2, 4}, [2]int32{3, 4},
			[2]int32{5, 6}, [2]int32{5, 7}, [2]int32{5, 8},
			[2]int32{6, 7}, [2]int32{6, 8}, [2]int32{7, 8}), goplanar.ErrDisconnected},
	}
	for i, tc := range cases {
		if err := canon.Canonize(tc.sol); err != tc.want {
			t.Fatalf("case %d: got %v, want %v", i, err, tc.want)
		}
	}
}
