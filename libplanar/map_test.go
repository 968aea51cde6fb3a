package libplanar

import (
	"testing"

	"github.com/fine-structures/planar.SDK/goplanar"
)

func TestSeedState(t *testing.T) {
	G := NewSeedState(goplanar.DefaultQuota)

	if G.VtxCount != 7 || len(G.Edges) != 8 || G.NumFaces() != 7 {
		t.Fatal("seed census")
	}
	if G.NumSq != 0 || G.NumPent != 0 || G.NumHex != 1 {
		t.Fatal("seed counters")
	}
	if len(G.Faces[0]) != 3 || len(G.Faces[1]) != 6 {
		t.Fatal("seed closed faces")
	}
	if len(G.Ring) != 5 {
		t.Fatal("seed ring")
	}
	if !G.sizeCheck() {
		t.Fatal("seed fails size check")
	}

	// Free endpoints of each open stub, walking the outer boundary.
	endpoints := []struct {
		face       goplanar.FaceID
		start, end goplanar.VtxID
	}{
		{2, 7, 2},
		{3, 2, 4},
		{4, 4, 5},
		{5, 5, 6},
		{6, 6, 7},
	}
	for _, ep := range endpoints {
		F := G.Faces[ep.face]
		if G.startPt(F) != ep.start || G.endPt(F) != ep.end {
			t.Fatalf("face %d endpoints: got %d..%d, want %d..%d",
				ep.face, G.startPt(F), G.endPt(F), ep.start, ep.end)
		}
	}
}

func TestMakeCopy(t *testing.T) {
	G := NewSeedState(goplanar.DefaultQuota)
	Gc := G.MakeCopy()

	Gc.addEdge(Gc.newVtx(), 1)
	Gc.appendEdgeTo(2, 5)
	Gc.Ring = Gc.Ring[:2]
	Gc.NumSq++

	if G.VtxCount != 7 || len(G.Edges) != 8 || len(G.Faces[2]) != 2 {
		t.Fatal("copy leaked into original")
	}
	if len(G.Ring) != 5 || G.NumSq != 0 {
		t.Fatal("copy leaked into original")
	}
}

func TestKillFace(t *testing.T) {
	G := NewSeedState(goplanar.DefaultQuota)

	G.absorbFace(2, 3)
	if G.NumFaces() != 6 || G.Faces[3] != nil {
		t.Fatal("absorb")
	}
	if len(G.Faces[2]) != 4 {
		t.Fatal("absorb should concatenate edge paths")
	}

	// FaceIDs stay stable: face 4 is untouched by the absorb.
	if len(G.Faces[4]) != 1 {
		t.Fatal("face slot moved")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("double kill should panic")
		}
	}()
	G.killFace(3)
}

func TestQuotaTally(t *testing.T) {
	G := NewSeedState(goplanar.DefaultQuota)
	qt := G.tally()

	if !qt.add(6) || !qt.add(6) {
		t.Fatal("hexes are unconstrained")
	}
	if qt.add(3) {
		t.Fatal("second triangle should exceed quota")
	}

	qt = G.tally()
	if !qt.add(4) || !qt.add(4) {
		t.Fatal("two squares fit the quota")
	}
	if qt.add(4) {
		t.Fatal("third square should exceed quota")
	}

	qt = G.tally()
	for i := 0; i < 5; i++ {
		if !qt.add(5) {
			t.Fatalf("pentagon %d should fit the quota", i+1)
		}
	}
	if qt.add(5) {
		t.Fatal("sixth pentagon should exceed quota")
	}

	qt = G.tally()
	if qt.add(2) || qt.add(7) {
		t.Fatal("face size out of range")
	}
}
