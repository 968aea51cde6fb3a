package graph

import (
	"github.com/fine-structures/planar.SDK/goplanar"
)

// DefFromSolution converts a finished solution to its storage form.
func DefFromSolution(sol *goplanar.Solution) *SolutionDef {
	def := &SolutionDef{
		VtxCount:   sol.VtxCount,
		EdgeEnds:   make([]int32, 0, 2*len(sol.Edges)),
		SqCount:    sol.SqCount,
		PentCount:  sol.PentCount,
		HexCount:   sol.HexCount,
		FaceCount:  sol.FaceCount,
		Canonic:    sol.Canonic,
		GroupOrder: sol.GroupOrder,
		TriNbrs:    sol.TriNbrs,
	}
	for _, e := range sol.Edges {
		def.EdgeEnds = append(def.EdgeEnds, int32(e.V1), int32(e.V2))
	}
	for _, nbrs := range sol.SqrNbrs {
		def.SqrNbrs = append(def.SqrNbrs, &FaceNbrs{Sizes: nbrs})
	}
	return def
}

// AsSolution converts a stored def back into a Solution.
func (def *SolutionDef) AsSolution() (*goplanar.Solution, error) {
	if len(def.EdgeEnds)&1 != 0 {
		return nil, goplanar.ErrUnmarshal
	}
	sol := &goplanar.Solution{
		VtxCount:   def.VtxCount,
		Edges:      make([]goplanar.EdgePair, len(def.EdgeEnds)/2),
		FaceCount:  def.FaceCount,
		SqCount:    def.SqCount,
		PentCount:  def.PentCount,
		HexCount:   def.HexCount,
		Canonic:    def.Canonic,
		GroupOrder: def.GroupOrder,
		TriNbrs:    def.TriNbrs,
	}
	for i := range sol.Edges {
		sol.Edges[i] = goplanar.EdgePair{
			V1: goplanar.VtxID(def.EdgeEnds[2*i]),
			V2: goplanar.VtxID(def.EdgeEnds[2*i+1]),
		}
	}
	for _, nbrs := range def.SqrNbrs {
		sol.SqrNbrs = append(sol.SqrNbrs, nbrs.Sizes)
	}
	return sol, nil
}
