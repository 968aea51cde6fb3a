package libplanar

import "fmt"

// Method is one of ten structurally distinct edge-insertion patterns used to
// close the chosen open face F, distinguished by how many edges and vertices
// it introduces and which neighboring open faces it consumes:
//
//	 1: one new edge joining F's two open endpoints.
//	 2: two new edges from F's endpoints to one new vertex.
//	 3: three new edges: close the next face; the length-1 face after it;
//	    back to F's start point.  Closes the whole ring when four faces remain.
//	 4: mirror of 3 on the previous side (same as 3 when four faces remain).
//	 5: three new edges and two new vertices; the middle edge stays open as a
//	    new length-1 face.
//	 6: four new edges: close the next face; across the length-2 face after
//	    it; back to F's start point.  Closes the ring when four faces remain.
//	 7: mirror of 6 on the previous side.
//	 8: four new edges: close the next face; the length-1 face after it; from
//	    there and F's start point to one new vertex.
//	 9: mirror of 8 on the previous side.
//	10: four new edges and three new vertices; two of the edges stay open as
//	    new length-1 faces.
type Method int32

const (
	// MethodNone is the "no method tried yet" sentinel; it never validates.
	MethodNone Method = iota
	MethodJoinEnds
	MethodBridgeVtx
	MethodCloseNextStub
	MethodClosePrevStub
	MethodBridgePath
	MethodCloseNextPair
	MethodClosePrevPair
	MethodStubVtxNext
	MethodStubVtxPrev
	MethodTripleBridge

	NumMethods = 10
)

// ringNbrs holds the ring positions around the chosen face, taken modulo the
// ring length: three on the previous side and three on the next side.
type ringNbrs struct {
	ppp, pp, p, n, nn, nnn int
}

func ringNbrsOf(oF, n int) ringNbrs {
	return ringNbrs{
		ppp: (oF + 2*n - 3) % n,
		pp:  (oF + n - 2) % n,
		p:   (oF + n - 1) % n,
		n:   (oF + 1) % n,
		nn:  (oF + 2) % n,
		nnn: (oF + 3) % n,
	}
}

// CanApply decides whether the given closure method can be applied to the
// open face at ring position oF without violating planarity bookkeeping or
// the face-count budget.  It performs no mutation.
func (G *GraphState) CanApply(oF int, m Method) bool {
	n := len(G.Ring)
	at := ringNbrsOf(oF, n)
	pppF := G.Faces[G.Ring[at.ppp]]
	prprF := G.Faces[G.Ring[at.pp]]
	prevF := G.Faces[G.Ring[at.p]]
	F := G.Faces[G.Ring[oF]]
	nextF := G.Faces[G.Ring[at.n]]
	nnF := G.Faces[G.Ring[at.nn]]
	nnnF := G.Faces[G.Ring[at.nnn]]
	qt := G.tally()

	if len(F) <= 1 {
		panic("chosen face must have length > 1")
	}

	switch m {
	case MethodNone:
		return false

	case MethodJoinEnds:
		// The faces on either side merge across the new edge.
		if n > 2 && len(prevF)+len(nextF) > 4 {
			return false
		}
		if n == 2 && !qt.add(len(nextF)+1) {
			return false
		}
		return qt.add(len(F) + 1)

	case MethodBridgeVtx:
		if len(prevF) > 4 {
			return false
		}
		if len(nextF) > 4 {
			return false
		}
		return qt.add(len(F) + 2)

	case MethodCloseNextStub:
		// With five ring entries the operation would strand a lone open face.
		if n < 4 || n == 5 {
			return false
		}
		if len(nnF) != 1 {
			return false
		}
		if !qt.add(len(nextF) + 1) {
			return false
		}
		if n > 4 && len(prevF)+len(nnnF) > 4 {
			return false
		}
		if n == 4 && !qt.add(len(prevF)+1) {
			return false
		}
		return qt.add(len(F) + 3)

	case MethodClosePrevStub:
		// When n == 4 this is MethodCloseNextStub; n == 5 strands a face.
		if n < 6 {
			return false
		}
		if len(prprF) != 1 {
			return false
		}
		if !qt.add(len(prevF) + 1) {
			return false
		}
		if len(pppF)+len(nextF) > 4 {
			return false
		}
		return qt.add(len(F) + 3)

	case MethodBridgePath:
		if len(prevF) > 4 {
			return false
		}
		if len(nextF) > 4 {
			return false
		}
		return qt.add(len(F) + 3)

	case MethodCloseNextPair:
		if n < 4 || n == 5 {
			return false
		}
		if len(nnF) != 2 {
			return false
		}
		if !qt.add(len(nextF) + 1) {
			return false
		}
		if n > 4 && len(prevF)+len(nnnF) > 4 {
			return false
		}
		if n == 4 && !qt.add(len(prevF)+1) {
			return false
		}
		return qt.add(len(F) + 4)

	case MethodClosePrevPair:
		// When n == 4 this is MethodCloseNextPair.
		if n < 6 {
			return false
		}
		if len(prprF) != 2 {
			return false
		}
		if !qt.add(len(prevF) + 1) {
			return false
		}
		if len(pppF)+len(nextF) > 4 {
			return false
		}
		return qt.add(len(F) + 4)

	case MethodStubVtxNext:
		if n < 5 {
			return false
		}
		if len(nnF) != 1 {
			return false
		}
		if len(prevF) > 4 {
			return false
		}
		if len(nnnF) > 4 {
			return false
		}
		if !qt.add(len(nextF) + 1) {
			return false
		}
		return qt.add(len(F) + 4)

	case MethodStubVtxPrev:
		if n < 5 {
			return false
		}
		if len(prprF) != 1 {
			return false
		}
		if len(nextF) > 4 {
			return false
		}
		if len(pppF) > 4 {
			return false
		}
		if !qt.add(len(prevF) + 1) {
			return false
		}
		return qt.add(len(F) + 4)

	case MethodTripleBridge:
		if len(prevF) > 4 {
			return false
		}
		if len(nextF) > 4 {
			return false
		}
		return qt.add(len(F) + 4)

	default:
		return false
	}
}

// advanceMethod tries successive methods on the chosen face until one
// validates or all ten are exhausted.  Method advancement is monotonic within
// a stack frame, which is what makes the depth-first search visit each branch
// exactly once.
func (G *GraphState) advanceMethod() bool {
	for G.Method < NumMethods {
		G.Method++
		if G.CanApply(G.ChosenFace, G.Method) {
			return true
		}
	}
	return false
}

// chooseFace selects the ring position with the largest open face (ties to
// the first occurrence) and resets the method counter.  Closing the largest
// face first bounds boundary growth: big open faces are the ones closest to
// the size-6 ceiling.
func (G *GraphState) chooseFace() {
	G.ChosenFace = 0
	for i := 1; i < len(G.Ring); i++ {
		if len(G.Faces[G.Ring[i]]) > len(G.Faces[G.Ring[G.ChosenFace]]) {
			G.ChosenFace = i
		}
	}
	G.Method = MethodNone
}

// removeRingAt removes the given ring positions, which may wrap around the
// array boundary, preserving the cyclic order of the remainder.  Face slots
// are stable, so nothing else needs renumbering.
func (G *GraphState) removeRingAt(drop ...int) {
	out := G.Ring[:0]
	for i, fid := range G.Ring {
		dropIt := false
		for _, d := range drop {
			if d == i {
				dropIt = true
				break
			}
		}
		if !dropIt {
			out = append(out, fid)
		}
	}
	G.Ring = out
}

// ApplyChosen applies the current (validated) method to the chosen face.
func (G *GraphState) ApplyChosen() {
	G.applyMethod(G.ChosenFace, G.Method)
}

// applyMethod performs the structural edits of a validated closure method:
// append new edges, extend or merge faces, retire consumed ring entries and
// splice in newly created open faces, and tally every face that closes.
func (G *GraphState) applyMethod(oF int, m Method) {
	n := len(G.Ring)
	at := ringNbrsOf(oF, n)
	pppF := G.Ring[at.ppp]
	ppF := G.Ring[at.pp]
	pF := G.Ring[at.p]
	fF := G.Ring[oF]
	nF := G.Ring[at.n]
	nnF := G.Ring[at.nn]
	nnnF := G.Ring[at.nnn]
	startF := G.startPt(G.Faces[fF])
	endF := G.endPt(G.Faces[fF])

	switch m {
	case MethodJoinEnds:
		e := G.addEdge(startF, endF)
		G.appendEdgeTo(fF, e)
		G.appendEdgeTo(pF, e)
		G.removeRingAt(oF, at.n)
		if n == 2 {
			// prevF is nextF, and that face also closes.
			G.countFace(pF)
			break
		}
		G.absorbFace(pF, nF)

	case MethodBridgeVtx:
		v := G.newVtx()
		e1 := G.addEdge(startF, v)
		G.appendEdgeTo(pF, e1)

		e2 := G.addEdge(v, endF)
		G.appendEdgeTo(fF, e2)
		G.appendEdgeTo(fF, e1)
		G.pushFrontEdge(nF, e2)

		G.removeRingAt(oF)

	case MethodCloseNextStub, MethodCloseNextPair:
		if m == MethodCloseNextStub && len(G.Faces[nnF]) != 1 {
			panic("next-next face must be a stub")
		}
		e1 := G.addEdge(endF, G.endPt(G.Faces[nF]))
		G.appendEdgeTo(fF, e1)
		G.appendEdgeTo(nF, e1)
		G.countFace(nF)

		endNN := G.endPt(G.Faces[nnF])
		G.absorbFace(fF, nnF)

		e2 := G.addEdge(startF, endNN)
		G.appendEdgeTo(fF, e2)
		G.appendEdgeTo(pF, e2)

		G.removeRingAt(oF, at.n, at.nn, at.nnn)

		if n == 4 {
			// prevF is nnnF, and that face also closes.
			G.countFace(pF)
			break
		}
		G.absorbFace(pF, nnnF)

	case MethodClosePrevStub, MethodClosePrevPair:
		if m == MethodClosePrevStub && len(G.Faces[ppF]) != 1 {
			panic("prev-prev face must be a stub")
		}
		if G.endPt(G.Faces[pF]) != startF {
			panic("previous face does not meet F's start point")
		}
		e1 := G.addEdge(G.startPt(G.Faces[pF]), startF)
		G.appendEdgeTo(fF, e1)
		G.appendEdgeTo(pF, e1)
		G.countFace(pF)

		startPP := G.startPt(G.Faces[ppF])
		G.absorbFace(fF, ppF)

		e2 := G.addEdge(startPP, endF)
		G.appendEdgeTo(fF, e2)
		G.appendEdgeTo(pppF, e2)

		G.removeRingAt(at.pp, at.p, oF, at.n)

		if n == 4 {
			// pppF is nextF, and that face also closes.
			G.countFace(nF)
			break
		}
		G.absorbFace(pppF, nF)

	case MethodBridgePath:
		v1 := G.newVtx()
		e1 := G.addEdge(startF, v1)
		G.appendEdgeTo(pF, e1)

		v2 := G.newVtx()
		e2 := G.addEdge(v1, v2)
		G.Ring[oF] = G.newFace(e2)

		e3 := G.addEdge(v2, endF)
		G.appendEdgeTo(fF, e3)
		G.appendEdgeTo(fF, e2)
		G.appendEdgeTo(fF, e1)
		G.pushFrontEdge(nF, e3)

	case MethodStubVtxNext:
		if len(G.Faces[nnF]) != 1 {
			panic("next-next face must be a stub")
		}
		if endF != G.startPt(G.Faces[nF]) {
			panic("next face does not meet F's end point")
		}
		e1 := G.addEdge(endF, G.endPt(G.Faces[nF]))
		G.appendEdgeTo(fF, e1)
		if G.endPt(G.Faces[nnF]) == G.endPt(G.Faces[nF]) {
			panic("stub face folds back onto the next face")
		}
		G.appendEdgeTo(nF, e1)

		G.appendEdgeTo(fF, G.Faces[nnF][0])

		v := G.newVtx()
		e2 := G.addEdge(v, G.endPt(G.Faces[nnF]))
		G.appendEdgeTo(fF, e2)
		G.pushFrontEdge(nnnF, e2)

		e3 := G.addEdge(startF, v)
		G.appendEdgeTo(fF, e3)
		G.appendEdgeTo(pF, e3)

		G.removeRingAt(oF, at.n, at.nn)
		G.countFace(nF)
		G.killFace(nnF)

	case MethodStubVtxPrev:
		if len(G.Faces[ppF]) != 1 {
			panic("prev-prev face must be a stub")
		}
		if G.endPt(G.Faces[pF]) != startF {
			panic("previous face does not meet F's start point")
		}
		e1 := G.addEdge(G.startPt(G.Faces[pF]), startF)
		G.appendEdgeTo(fF, e1)
		G.appendEdgeTo(pF, e1)

		G.appendEdgeTo(fF, G.Faces[ppF][0])

		if G.startPt(G.Faces[ppF]) == G.startPt(G.Faces[pF]) {
			panic("stub face folds back onto the previous face")
		}
		v := G.newVtx()
		e2 := G.addEdge(G.startPt(G.Faces[ppF]), v)
		G.appendEdgeTo(fF, e2)
		G.appendEdgeTo(pppF, e2)

		e3 := G.addEdge(v, endF)
		G.appendEdgeTo(fF, e3)
		G.pushFrontEdge(nF, e3)

		G.removeRingAt(at.pp, at.p, oF)
		G.countFace(pF)
		G.killFace(ppF)

	case MethodTripleBridge:
		v1 := G.newVtx()
		e1 := G.addEdge(startF, v1)
		G.appendEdgeTo(fF, e1)
		G.appendEdgeTo(pF, e1)

		v2 := G.newVtx()
		e2 := G.addEdge(v1, v2)
		G.appendEdgeTo(fF, e2)
		faceA := G.newFace(e2)
		G.Ring = append(G.Ring, 0)
		copy(G.Ring[oF+1:], G.Ring[oF:])
		G.Ring[oF] = faceA

		v3 := G.newVtx()
		e3 := G.addEdge(v2, v3)
		G.appendEdgeTo(fF, e3)
		G.Ring[oF+1] = G.newFace(e3)

		e4 := G.addEdge(v3, endF)
		G.appendEdgeTo(fF, e4)
		G.pushFrontEdge(nF, e4)

	default:
		panic(fmt.Sprintf("applyMethod: bad method %d", m))
	}

	G.countFace(fF)
}
