package goplanar

const (
	// DefaultMaxFaces is the default ceiling on the total face count of an
	// enumerated map.  Without a hard ceiling the search never terminates.
	DefaultMaxFaces = 14

	// MinFaceSize and MaxFaceSize bound the face sizes a finished map may carry.
	MinFaceSize = 3
	MaxFaceSize = 6

	// ClosureHeadroom is the minimum number of faces any sequence of closure
	// steps needs to take an open map to a finished one, and so is the
	// headroom kept below the face ceiling when pruning by stack depth.
	ClosureHeadroom = 4

	// SeedFaceCount is the face count of the seed map every enumeration
	// grows from, and so the smallest meaningful face ceiling.
	SeedFaceCount = 7
)

// VtxID is a one-based vertex identifier within a single map.
type VtxID int32

// EdgeID is the position of an edge in a map's append-only edge sequence.
type EdgeID int32

// FaceID is a stable identifier of a face within a single map.  A face keeps
// its FaceID for the life of the map, even after it closes or is absorbed.
type FaceID int32

// EdgePair is an undirected edge between two vertices.
type EdgePair struct {
	V1, V2 VtxID
}

// FaceQuota is the face-count budget a finished map must satisfy: exactly
// Tri triangles and Sq squares and Pent pentagons, plus any number of hexagons.
type FaceQuota struct {
	Tri  int32
	Sq   int32
	Pent int32
}

// DefaultQuota is the quota this project was built around: a unique triangle,
// two squares, and five pentagons.
var DefaultQuota = FaceQuota{
	Tri:  1,
	Sq:   2,
	Pent: 5,
}

// Feasible returns true if the quota satisfies the Euler-formula identity for
// cubic planar maps whose faces have size 3..6:
//
//	3*Tri + 2*Sq + 1*Pent = 12
//
// A quota that fails this identity admits no solutions at all.
func (q FaceQuota) Feasible() bool {
	return q.Tri >= 0 && q.Sq >= 0 && q.Pent >= 0 &&
		3*q.Tri+2*q.Sq+q.Pent == 12
}

// Solution is a finished cubic planar map: every vertex has degree exactly 3,
// every face is closed with size 3..6, and the face counts meet a FaceQuota.
type Solution struct {
	VtxCount   int32      // number of vertices (degree 3 each)
	Edges      []EdgePair // undirected edge list
	FaceCount  int32      // total number of faces
	SqCount    int32      // number of squares
	PentCount  int32      // number of pentagons
	HexCount   int32      // number of hexagons
	Canonic    []byte     // canonical form issued by the canonicalization gateway
	GroupOrder int64      // automorphism group order (0 if not computed)
	TriNbrs    []int32    // sizes of the faces adjacent to the triangle
	SqrNbrs    [][]int32  // per square, sizes of its adjacent faces
}

// OnSolutionHit is a callback channel used to return Solutions meeting a set
// of selection criteria.  Ownership of a Solution travels through the channel.
type OnSolutionHit chan<- *Solution

// CanonicSet answers whether an equivalent (isomorphic) solution has already
// been added, keyed by the solution's canonical form.
type CanonicSet interface {

	// TryAdd adds the given solution if its canonical form is not already present.
	//
	// If an isomorphic solution is already in this set, this call has no
	// effect and TryAdd() returns false.  Otherwise the solution's canonical
	// form is added and TryAdd() returns true.
	//
	// After one or more calls to TryAdd(), call Close() for cleanup.
	TryAdd(sol *Solution) bool

	// Close removes all previously added items from this set.
	Close()
}

// SolutionAdder accepts finished solutions, deduplicating by canonical form.
type SolutionAdder interface {

	// Tries to add the given solution to this collection.
	// If true is returned, no isomorphic solution existed and sol was added.
	TryAddSolution(sol *Solution) bool
}

// Catalog wraps a database of distinct enumerated solutions.
type Catalog interface {
	SolutionAdder

	// Returns true if this catalog was opened for read-only access.
	IsReadOnly() bool

	// NumSolutions returns the number of distinct solutions in this catalog
	// having the given hexagon count.  An out of bounds count returns 0.
	NumSolutions(hexCount int32) int64

	// TotalSolutions returns the number of distinct solutions in this catalog.
	TotalSolutions() int64

	// Select fires the given callback with each stored Solution that meets
	// the selection criteria.
	Select(sel SolutionSelector, onHit OnSolutionHit)

	// Closes this catalog, flushing its state.
	Close() error
}

// CatalogContext is a container for open / active Catalog instances.
type CatalogContext interface {

	// Attaches the given Catalog to this context.
	AttachCatalog(cat Catalog)

	// Detaches the given Catalog from this context.
	DetachCatalog(cat Catalog)

	// Signals all open catalogs to close then closes.
	Close()

	// Closing signals when Close() has been called.
	Closing() <-chan struct{}

	// Done signals when Close() completed and all open Catalogs have been closed.
	Done() <-chan struct{}
}

// CatalogOpts specifies params for opening a solution Catalog.
type CatalogOpts struct {
	DbPathName string // omit for in-memory db
	ReadOnly   bool   // open in read-only mode
	MaxFaces   int32  // face ceiling this catalog was built for
}

// SolutionSelector is an operator that either selects a given Solution or not.
type SolutionSelector struct {
	MinHexes int32
	MaxHexes int32
	MinVerts int32
	MaxVerts int32
}

// DefaultSolutionSelector selects every stored solution.
var DefaultSolutionSelector = SolutionSelector{
	MaxHexes: 1 << 30,
	MaxVerts: 1 << 30,
}

// SelectsSolution returns true if sol meets this selector's criteria.
func (sel *SolutionSelector) SelectsSolution(sol *Solution) bool {
	if sol.HexCount < sel.MinHexes || sol.HexCount > sel.MaxHexes {
		return false
	}
	if sol.VtxCount < sel.MinVerts || sol.VtxCount > sel.MaxVerts {
		return false
	}
	return true
}

// PrintOpts specifies what is printed when printing a solution.
type PrintOpts struct {
	Label    string // Prefix label
	Nbrs     bool   // If set, prints the face-adjacency summary of the triangle and squares
	Edges    bool   // If set, prints the edge list
	AutGroup bool   // If set, prints the automorphism group order
}

// DefaultPrintOpts prints the face-adjacency summary with no edge list.
var DefaultPrintOpts = PrintOpts{
	Nbrs: true,
}
