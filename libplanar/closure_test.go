package libplanar

import (
	"testing"

	"github.com/fine-structures/planar.SDK/goplanar"
)

// On the seed the ring faces have sizes [2, 2, 1, 1, 1], so the chosen face
// is the first length-2 stub.  Only the three methods that grow F to size
// 4, 5, or 6 apply: joining the ends would make a second triangle, and the
// stub-consuming methods either strand a face or close a size-2 face.
func TestSeedMethods(t *testing.T) {
	G := NewSeedState(goplanar.DefaultQuota)
	G.chooseFace()

	if G.ChosenFace != 0 {
		t.Fatalf("chose ring position %d", G.ChosenFace)
	}

	want := map[Method]bool{
		MethodBridgeVtx:    true,
		MethodBridgePath:   true,
		MethodTripleBridge: true,
	}
	for m := MethodNone; m <= NumMethods; m++ {
		if got := G.CanApply(G.ChosenFace, m); got != want[m] {
			t.Fatalf("CanApply(method %d) = %v", m, got)
		}
	}
}

func TestAdvanceMethod(t *testing.T) {
	G := NewSeedState(goplanar.DefaultQuota)
	G.chooseFace()

	for _, want := range []Method{MethodBridgeVtx, MethodBridgePath, MethodTripleBridge} {
		if !G.advanceMethod() {
			t.Fatal("expected another method")
		}
		if G.Method != want {
			t.Fatalf("advanced to method %d, want %d", G.Method, want)
		}
	}
	if G.advanceMethod() {
		t.Fatalf("advanced past the last method to %d", G.Method)
	}
}

func TestApplyBridgeVtx(t *testing.T) {
	G := NewSeedState(goplanar.DefaultQuota)
	G.chooseFace()
	G.Method = MethodBridgeVtx
	G.ApplyChosen()

	if G.VtxCount != 8 || len(G.Edges) != 10 {
		t.Fatal("bridge adds one vertex and two edges")
	}
	if G.NumSq != 1 {
		t.Fatal("closing the stub across a new vertex makes a square")
	}
	if len(G.Faces[2]) != 4 {
		t.Fatal("chosen face size")
	}
	wantRing := []goplanar.FaceID{3, 4, 5, 6}
	checkRing(t, G, wantRing)
	if len(G.Faces[6]) != 2 || len(G.Faces[3]) != 3 {
		t.Fatal("neighbor faces each gain one edge")
	}
	if !G.sizeCheck() {
		t.Fatal("size check")
	}
}

func TestApplyBridgePath(t *testing.T) {
	G := NewSeedState(goplanar.DefaultQuota)
	G.chooseFace()
	G.Method = MethodBridgePath
	G.ApplyChosen()

	if G.VtxCount != 9 || len(G.Edges) != 11 {
		t.Fatal("path bridge adds two vertices and three edges")
	}
	if G.NumPent != 1 {
		t.Fatal("closing the stub across a two-vertex path makes a pentagon")
	}
	// The middle edge of the path stays open as a new length-1 face in the
	// chosen face's ring slot.
	wantRing := []goplanar.FaceID{7, 3, 4, 5, 6}
	checkRing(t, G, wantRing)
	if len(G.Faces[7]) != 1 {
		t.Fatal("new stub face size")
	}
	if G.startPt(G.Faces[7]) != 8 || G.endPt(G.Faces[7]) != 9 {
		t.Fatal("new stub face endpoints")
	}
	if !G.sizeCheck() {
		t.Fatal("size check")
	}
}

func TestApplyTripleBridge(t *testing.T) {
	G := NewSeedState(goplanar.DefaultQuota)
	G.chooseFace()
	G.Method = MethodTripleBridge
	G.ApplyChosen()

	if G.VtxCount != 10 || len(G.Edges) != 12 {
		t.Fatal("triple bridge adds three vertices and four edges")
	}
	if G.NumHex != 2 {
		t.Fatal("closing the stub across a three-vertex path makes a hexagon")
	}
	wantRing := []goplanar.FaceID{7, 8, 3, 4, 5, 6}
	checkRing(t, G, wantRing)
	if len(G.Faces[7]) != 1 || len(G.Faces[8]) != 1 {
		t.Fatal("new stub face sizes")
	}
	if !G.sizeCheck() {
		t.Fatal("size check")
	}
}

func checkRing(t *testing.T, G *GraphState, want []goplanar.FaceID) {
	t.Helper()
	if len(G.Ring) != len(want) {
		t.Fatalf("ring %v, want %v", G.Ring, want)
	}
	for i, fid := range want {
		if G.Ring[i] != fid {
			t.Fatalf("ring %v, want %v", G.Ring, want)
		}
		if G.Faces[fid] == nil {
			t.Fatalf("ring references dead face %d", fid)
		}
	}
}
