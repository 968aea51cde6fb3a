package libplanar

import (
	"strings"

	"github.com/fine-structures/planar.SDK/goplanar"
	"github.com/fine-structures/planar.SDK/libplanar/canon"
	"github.com/plan-systems/klog"
)

// EnumOpts parameterizes a planar graph enumeration.
type EnumOpts struct {

	// Quota gives the exact closed-face census every emitted graph must have
	// for triangles, squares, and pentagons (hexagons are unconstrained).
	Quota goplanar.FaceQuota

	// MaxFaces caps the total face count of emitted graphs.
	MaxFaces int32

	// Dedup receives every candidate solution and reports whether its
	// canonical form is new.  If nil, an in-memory set is used.
	Dedup goplanar.CanonicSet
}

// DefaultEnumOpts returns the stock enumeration: tri=1 sq<=2 pent<=5 up to
// MaxFaces total faces.
func DefaultEnumOpts() EnumOpts {
	return EnumOpts{
		Quota:    goplanar.DefaultQuota,
		MaxFaces: goplanar.DefaultMaxFaces,
	}
}

// Validate checks that the requested enumeration is well posed.
func (opts *EnumOpts) Validate() error {
	if !opts.Quota.Feasible() {
		return goplanar.ErrQuotaInfeasible
	}
	if opts.Quota.Tri != 1 {
		// The seed construction fixes the triangle count at one.
		return goplanar.ErrQuotaUnsupported
	}
	if opts.MaxFaces < goplanar.SeedFaceCount {
		return goplanar.ErrBadCeiling
	}
	return nil
}

// EnumPlanarGraphs enumerates every cubic planar graph whose closed-face
// census matches opts.Quota, each isomorphism class exactly once, streaming
// solutions in the deterministic order the search discovers them.  The
// returned stream is closed when the search space is exhausted.
func EnumPlanarGraphs(opts EnumOpts) (*goplanar.SolutionStream, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	s := &searcher{
		opts:  opts,
		dedup: opts.Dedup,
	}
	if s.dedup == nil {
		s.dedup = NewMemorySet()
		s.ownsDedup = true
	}
	out := goplanar.NewSolutionStream()
	go func() {
		s.run(out)
		if s.ownsDedup {
			s.dedup.Close()
		}
		out.Close()
	}()
	return out, nil
}

// searcher is the backtracking driver: a depth-first walk over (face, method)
// choices, snapshotting the map before each closure so a pop restores the
// exact pre-closure state with the method counter intact.
type searcher struct {
	opts      EnumOpts
	stack     []*GraphState
	dedup     goplanar.CanonicSet
	ownsDedup bool
	count     int64
}

func (s *searcher) run(out *goplanar.SolutionStream) {
	G := NewSeedState(s.opts.Quota)
	pop := false

	for {
		if pop {
			n := len(s.stack)
			if n == 0 {
				break
			}
			G = s.stack[n-1]
			s.stack = s.stack[:n-1]
			pop = false
		}

		if !G.advanceMethod() {
			klog.V(3).Infof("can't close face %d", G.Ring[G.ChosenFace])
			pop = true
			continue
		}

		s.stack = append(s.stack, G.MakeCopy())
		klog.V(3).Infof("method %d on face %d", G.Method, G.Ring[G.ChosenFace])
		G.ApplyChosen()

		// The seed is mirror symmetric in its two length-2 stub faces, so any
		// graph that closes face 2 larger than face 3 is also reached by the
		// reflected branch that closes face 2 smaller.  Keep only that branch.
		if F2, F3 := G.Faces[2], G.Faces[3]; F2 != nil && F3 != nil &&
			len(F2) > 4 && !ringContains(G.Ring, 3) && len(F3) < len(F2) {
			pop = true
			continue
		}

		if len(G.Ring) == 0 {
			pop = true
			if G.NumFaces() > s.opts.MaxFaces {
				continue
			}
			if !G.sizeFinal() {
				klog.Errorf("closed map failed final validation: %v", G.Faces)
				continue
			}
			s.emit(G, out)
			continue
		}

		if int32(len(s.stack)) > s.opts.MaxFaces-goplanar.ClosureHeadroom {
			klog.V(2).Infof("curtailing at %d pending closures", len(s.stack))
			pop = true
			continue
		}
		if len(G.Ring) == 1 {
			// A lone open face can never close against itself.
			pop = true
			continue
		}
		if !G.sizeCheck() {
			if klog.V(1) {
				var b strings.Builder
				G.writeRingState(&b)
				klog.Infof("over quota: %s", b.String())
			}
			pop = true
			continue
		}

		G.chooseFace()
	}
}

// emit canonizes a fully closed map and pushes it downstream if its
// isomorphism class has not been seen before.
func (s *searcher) emit(G *GraphState, out *goplanar.SolutionStream) {
	sol := G.ExportSolution()
	if err := canon.Canonize(sol); err != nil {
		// The search only closes simple cubic connected maps.
		panic(err)
	}
	if !s.dedup.TryAdd(sol) {
		if klog.V(1) {
			var b strings.Builder
			sol.WriteAsString(&b, goplanar.DefaultPrintOpts)
			klog.Infof("  ! %s -- seen before", b.String())
		}
		return
	}
	s.count++
	out.PushSolution(sol)
}

func ringContains(ring []goplanar.FaceID, f goplanar.FaceID) bool {
	for _, fid := range ring {
		if fid == f {
			return true
		}
	}
	return false
}
