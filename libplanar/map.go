package libplanar

import (
	"fmt"
	"io"

	"github.com/fine-structures/planar.SDK/goplanar"
)

// Edge is an undirected edge between two vertices of a map.
type Edge struct {
	V1, V2 goplanar.VtxID
}

// Face is a sequence of edge positions in a map's edge sequence.
//
// An open face is a path: its edge order matters and its two endpoints are the
// unshared vertices of the first and last edge.  A closed face is a completed
// cycle; closed faces are never extended again, so their edge order is not
// kept cyclically consistent.  A nil Face marks a slot whose face was absorbed
// into a neighbor; slots are never compacted, so a FaceID stays valid for the
// life of the map.
type Face []goplanar.EdgeID

// GraphState is a partial cubic planar map under construction: an append-only
// edge sequence, the face table, and the open-face ring, which holds the
// still-open faces in cyclic order along the outer boundary.
//
// The square/pentagon/hexagon tallies travel with the map so that a snapshot
// restores them along with everything else.  The triangle count is fixed at 1
// by the seed construction and has no counter.
type GraphState struct {
	VtxCount int32
	NumSq    int32
	NumPent  int32
	NumHex   int32
	Quota    goplanar.FaceQuota
	Edges    []Edge
	Faces    []Face
	Ring     []goplanar.FaceID // open faces in planar cyclic order

	// ChosenFace is the ring position currently being closed and Method is
	// the closure method last tried on it (MethodNone if none yet).
	ChosenFace int
	Method     Method

	dead int32 // number of absorbed (nil) face slots
}

// NewSeedState returns the fixed seed configuration: a triangle sharing an
// edge with a hexagon, leaving five open stub faces around the boundary.
// Face 0 is the triangle, face 1 the hexagon; faces 2..6 are open.
func NewSeedState(quota goplanar.FaceQuota) *GraphState {
	return &GraphState{
		VtxCount: 7,
		NumHex:   1,
		Quota:    quota,
		Edges: []Edge{
			{1, 2},
			{2, 3},
			{1, 3},
			{3, 4},
			{4, 5},
			{5, 6},
			{6, 7},
			{7, 1},
		},
		Faces: []Face{
			{0, 1, 2},
			{2, 3, 4, 5, 6, 7},
			{7, 0},
			{1, 3},
			{4}, {5}, {6},
		},
		Ring:       []goplanar.FaceID{2, 3, 4, 5, 6},
		ChosenFace: 0,
		Method:     MethodNone,
	}
}

// MakeCopy returns a fully independent copy of this map, the snapshot pushed
// by the search driver as its undo point.
func (G *GraphState) MakeCopy() *GraphState {
	Gc := &GraphState{
		VtxCount:   G.VtxCount,
		NumSq:      G.NumSq,
		NumPent:    G.NumPent,
		NumHex:     G.NumHex,
		Quota:      G.Quota,
		Edges:      append([]Edge(nil), G.Edges...),
		Faces:      make([]Face, len(G.Faces)),
		Ring:       append([]goplanar.FaceID(nil), G.Ring...),
		ChosenFace: G.ChosenFace,
		Method:     G.Method,
		dead:       G.dead,
	}
	for i, F := range G.Faces {
		if F != nil {
			Gc.Faces[i] = append(Face(nil), F...)
		}
	}
	return Gc
}

// NumFaces returns the number of live (open or closed) faces.
func (G *GraphState) NumFaces() int32 {
	return int32(len(G.Faces)) - G.dead
}

func (G *GraphState) newVtx() goplanar.VtxID {
	G.VtxCount++
	return goplanar.VtxID(G.VtxCount)
}

func (G *GraphState) addEdge(v1, v2 goplanar.VtxID) goplanar.EdgeID {
	G.Edges = append(G.Edges, Edge{v1, v2})
	return goplanar.EdgeID(len(G.Edges) - 1)
}

// newFace appends a new open singleton face and returns its FaceID.
func (G *GraphState) newFace(e goplanar.EdgeID) goplanar.FaceID {
	G.Faces = append(G.Faces, Face{e})
	return goplanar.FaceID(len(G.Faces) - 1)
}

func (G *GraphState) appendEdgeTo(f goplanar.FaceID, e goplanar.EdgeID) {
	G.Faces[f] = append(G.Faces[f], e)
}

func (G *GraphState) pushFrontEdge(f goplanar.FaceID, e goplanar.EdgeID) {
	F := G.Faces[f]
	F = append(F, 0)
	copy(F[1:], F)
	F[0] = e
	G.Faces[f] = F
}

// absorbFace concatenates src's edge path onto dst and kills src's slot.
func (G *GraphState) absorbFace(dst, src goplanar.FaceID) {
	G.Faces[dst] = append(G.Faces[dst], G.Faces[src]...)
	G.killFace(src)
}

// killFace marks a face slot as absorbed.  Slots are never reused, so no
// other face or ring reference needs renumbering.
func (G *GraphState) killFace(f goplanar.FaceID) {
	if G.Faces[f] == nil {
		panic("killFace: face already dead")
	}
	G.Faces[f] = nil
	G.dead++
}

// startPt returns the free endpoint at the start of an open face's path.
// Only defined for open faces, since closed faces are not kept in cyclic
// order.  An ambiguous endpoint indicates a modeling bug and panics.
func (G *GraphState) startPt(F Face) goplanar.VtxID {
	first := G.Edges[F[0]]
	if len(F) == 1 {
		return first.V1
	}
	sec := G.Edges[F[1]]
	if first.V1 == sec.V1 || first.V1 == sec.V2 {
		panic(fmt.Sprintf("ambiguous start point of open face %v", F))
	}
	return first.V1
}

// endPt returns the free endpoint at the end of an open face's path.
// Only defined for open faces (like startPt).
func (G *GraphState) endPt(F Face) goplanar.VtxID {
	last := G.Edges[F[len(F)-1]]
	if len(F) == 1 {
		return last.V2
	}
	pen := G.Edges[F[len(F)-2]]
	if last.V2 == pen.V1 || last.V2 == pen.V2 {
		panic(fmt.Sprintf("ambiguous end point of open face %v", F))
	}
	return last.V2
}

// countFace tallies a face that just became closed.  Only sizes 4..6 can
// arise here: the sole triangle is closed in the seed, and the validity
// oracle rejects any closure that would produce a face past size 6.
func (G *GraphState) countFace(f goplanar.FaceID) {
	switch len(G.Faces[f]) {
	case 4:
		G.NumSq++
	case 5:
		G.NumPent++
	case 6:
		G.NumHex++
	default:
		panic(fmt.Sprintf("closed a face of size %d", len(G.Faces[f])))
	}
}

// quotaTally is the running face-count budget used by the validity oracle to
// test whether closing faces of given sizes stays within quota.  The triangle
// count starts at 1: the seed's unique triangle.
type quotaTally struct {
	tri, sq, pent int32
	quota         goplanar.FaceQuota
}

func (G *GraphState) tally() quotaTally {
	return quotaTally{1, G.NumSq, G.NumPent, G.Quota}
}

// add tallies a newly closed face of the given size, returning false if the
// size is out of range or the quota for that size is exceeded.
func (qt *quotaTally) add(size int) bool {
	switch size {
	case 3:
		qt.tri++
		return qt.tri <= qt.quota.Tri
	case 4:
		qt.sq++
		return qt.sq <= qt.quota.Sq
	case 5:
		qt.pent++
		return qt.pent <= qt.quota.Pent
	case 6:
		return true
	default:
		return false
	}
}

// sizeCheck verifies the map is still viable after a closure: no face past
// size 6, no open face past size 5 (growth always adds at least one edge),
// no leftover closed face of size under 3, and tallies within quota.
// A mismatch between the recount and the running counters is a modeling bug.
func (G *GraphState) sizeCheck() bool {
	var facesOfLen [7]int32
	for _, F := range G.Faces {
		if F == nil {
			continue
		}
		if len(F) > 6 {
			return false
		}
		facesOfLen[len(F)]++
	}
	for _, fid := range G.Ring {
		F := G.Faces[fid]
		if len(F) > 5 {
			return false
		}
		facesOfLen[len(F)]--
	}
	if facesOfLen[0] != 0 || facesOfLen[1] != 0 || facesOfLen[2] != 0 {
		return false
	}
	if facesOfLen[3] != 1 ||
		facesOfLen[4] != G.NumSq ||
		facesOfLen[5] != G.NumPent ||
		facesOfLen[6] != G.NumHex {
		panic(fmt.Sprintf("face tallies (%v) do not match counters (sq=%d pent=%d hex=%d)",
			facesOfLen, G.NumSq, G.NumPent, G.NumHex))
	}
	return facesOfLen[3] <= G.Quota.Tri &&
		facesOfLen[4] <= G.Quota.Sq &&
		facesOfLen[5] <= G.Quota.Pent
}

// sizeFinal verifies a fully closed map: every face size 3..6, tallies equal
// to the quota exactly, and every vertex of degree exactly 3.
func (G *GraphState) sizeFinal() bool {
	var facesOfLen [7]int32
	for _, F := range G.Faces {
		if F == nil {
			continue
		}
		if len(F) < 3 || len(F) > 6 {
			return false
		}
		facesOfLen[len(F)]++
	}
	if facesOfLen[3] != 1 ||
		facesOfLen[4] != G.NumSq ||
		facesOfLen[5] != G.NumPent ||
		facesOfLen[6] != G.NumHex {
		panic(fmt.Sprintf("face tallies (%v) do not match counters (sq=%d pent=%d hex=%d)",
			facesOfLen, G.NumSq, G.NumPent, G.NumHex))
	}

	degs := make([]int32, G.VtxCount+1)
	for _, e := range G.Edges {
		if e.V1 < 1 || e.V2 < 1 {
			panic(fmt.Sprintf("edge %v has a non-positive vertex", e))
		}
		degs[e.V1]++
		degs[e.V2]++
	}
	for _, d := range degs[1:] {
		if d != 3 {
			return false
		}
	}

	return facesOfLen[3] == G.Quota.Tri &&
		facesOfLen[4] == G.Quota.Sq &&
		facesOfLen[5] == G.Quota.Pent
}

// faceNbrs returns, for each edge of the given face in path order, the size
// of the other face sharing that edge.  Every edge must belong to exactly two
// live faces.
func (G *GraphState) faceNbrs(face goplanar.FaceID) []int32 {
	nbrs := make([]int32, 0, len(G.Faces[face]))
	for _, e := range G.Faces[face] {
		numFound := 0
		for f, F := range G.Faces {
			if goplanar.FaceID(f) == face || F == nil {
				continue
			}
			for _, fe := range F {
				if fe == e {
					nbrs = append(nbrs, int32(len(F)))
					numFound++
					break
				}
			}
		}
		if numFound != 1 {
			panic(fmt.Sprintf("edge %d belongs to %d faces besides face %d", e, numFound, face))
		}
	}
	return nbrs
}

// ExportSolution converts a fully closed map into a Solution.  The canonical
// form is left unset; the search driver fills it in via the gateway.
func (G *GraphState) ExportSolution() *goplanar.Solution {
	sol := &goplanar.Solution{
		VtxCount:  G.VtxCount,
		Edges:     make([]goplanar.EdgePair, len(G.Edges)),
		FaceCount: G.NumFaces(),
		SqCount:   G.NumSq,
		PentCount: G.NumPent,
		HexCount:  G.NumHex,
		TriNbrs:   G.faceNbrs(0),
	}
	for i, e := range G.Edges {
		sol.Edges[i] = goplanar.EdgePair{V1: e.V1, V2: e.V2}
	}
	for f, F := range G.Faces {
		if F != nil && len(F) == 4 {
			sol.SqrNbrs = append(sol.SqrNbrs, G.faceNbrs(goplanar.FaceID(f)))
		}
	}
	return sol
}

// writeRingState writes a compact view of the ring for diagnostics: the
// running counters, pending method, and the open face sizes in ring order.
func (G *GraphState) writeRingState(out io.Writer) {
	fmt.Fprintf(out, "sq=%d pent=%d hex=%d method %d on face %d [",
		G.NumSq, G.NumPent, G.NumHex, G.Method, G.Ring[G.ChosenFace])
	for i, fid := range G.Ring {
		if i > 0 {
			io.WriteString(out, ", ")
		}
		fmt.Fprintf(out, "%d", len(G.Faces[fid]))
	}
	io.WriteString(out, "]")
}
