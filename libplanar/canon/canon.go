// Package canon produces canonical encodings of cubic graphs, so that two
// solutions are isomorphic exactly when their encodings are equal.
//
// The encoding comes from refinement with individualization: vertices are
// first partitioned by an isomorphism-invariant signature (their closed walk
// counts), the partition is refined against neighbor colors until stable, and
// remaining ties are broken by individualizing one vertex of the first
// smallest class and recursing.  Every discrete leaf yields a labeling; the
// lexicographically least encoding over all leaves is canonical, and the
// number of leaves attaining it is the order of the automorphism group.
package canon

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/fine-structures/planar.SDK/goplanar"
)

// Canonize validates sol as a simple connected cubic graph, then fills in
// sol.Canonic and sol.GroupOrder.
func Canonize(sol *goplanar.Solution) error {
	g, err := graphOf(sol)
	if err != nil {
		return err
	}
	canonic, groupOrder := g.canonize()
	sol.Canonic = canonic
	sol.GroupOrder = groupOrder
	return nil
}

// graph is a zero-based adjacency view of a solution's edge list.
type graph struct {
	n   int
	adj [][]int
}

func graphOf(sol *goplanar.Solution) (*graph, error) {
	n := int(sol.VtxCount)
	g := &graph{
		n:   n,
		adj: make([][]int, n),
	}
	for _, e := range sol.Edges {
		if e.V1 < 1 || int(e.V1) > n || e.V2 < 1 || int(e.V2) > n {
			return nil, goplanar.ErrBadVtxID
		}
		v1, v2 := int(e.V1)-1, int(e.V2)-1
		if v1 == v2 {
			return nil, goplanar.ErrNotSimple
		}
		for _, w := range g.adj[v1] {
			if w == v2 {
				return nil, goplanar.ErrNotSimple
			}
		}
		g.adj[v1] = append(g.adj[v1], v2)
		g.adj[v2] = append(g.adj[v2], v1)
	}
	for _, nbrs := range g.adj {
		if len(nbrs) != 3 {
			return nil, goplanar.ErrNotCubic
		}
	}
	if !g.connected() {
		return nil, goplanar.ErrDisconnected
	}
	return g, nil
}

func (g *graph) connected() bool {
	if g.n == 0 {
		return false
	}
	seen := make([]bool, g.n)
	queue := []int{0}
	seen[0] = true
	reached := 1
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		for _, w := range g.adj[v] {
			if !seen[w] {
				seen[w] = true
				reached++
				queue = append(queue, w)
			}
		}
	}
	return reached == g.n
}

func (g *graph) canonize() ([]byte, int64) {
	cs := &canonSearch{g: g}
	colors := g.walkColors()
	g.refine(colors)
	cs.explore(colors)
	return cs.best, cs.bestHits
}

// walkColors assigns each vertex an initial color class from its closed walk
// counts: the diagonal entries of successive powers of the adjacency matrix.
// Vertices that automorphisms identify always land in the same class.
func (g *graph) walkColors() []int {
	n := g.n
	depth := n
	if depth > 12 {
		depth = 12
	}

	walks := make([][]int64, n)
	for v := range walks {
		walks[v] = make([]int64, 0, depth)
	}

	// pow starts as A and gains one factor of A per round.
	pow := make([][]int64, n)
	for v := range pow {
		pow[v] = make([]int64, n)
		for _, w := range g.adj[v] {
			pow[v][w] = 1
		}
	}
	next := make([][]int64, n)
	for v := range next {
		next[v] = make([]int64, n)
	}

	for k := 2; k <= depth; k++ {
		for i := 0; i < n; i++ {
			row := next[i]
			for j := 0; j < n; j++ {
				row[j] = 0
			}
			for j, pij := range pow[i] {
				if pij == 0 {
					continue
				}
				for _, w := range g.adj[j] {
					row[w] += pij
				}
			}
		}
		pow, next = next, pow
		for v := 0; v < n; v++ {
			walks[v] = append(walks[v], pow[v][v])
		}
	}

	order := make([]int, n)
	for v := range order {
		order[v] = v
	}
	sort.Slice(order, func(i, j int) bool {
		return lessInt64s(walks[order[i]], walks[order[j]])
	})

	colors := make([]int, n)
	c := 0
	for i, v := range order {
		if i > 0 && lessInt64s(walks[order[i-1]], walks[v]) {
			c++
		}
		colors[v] = c
	}
	return colors
}

func lessInt64s(a, b []int64) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// refine sharpens a coloring against neighbor colors until stable, rewriting
// colors in place as dense ranks 0..k-1.  The rank assignment depends only on
// (color, neighbor color multiset) order, so refinement commutes with graph
// isomorphism.
func (g *graph) refine(colors []int) {
	n := g.n
	keys := make([][4]int, n)
	order := make([]int, n)

	lastColors := -1
	for {
		for v := 0; v < n; v++ {
			k := [4]int{colors[v], 0, 0, 0}
			nb := k[1:]
			for i, w := range g.adj[v] {
				nb[i] = colors[w]
			}
			sort.Ints(nb)
			keys[v] = k
		}
		numColors := g.rankByKey(colors, keys, order)
		if numColors == n || numColors == lastColors {
			break
		}
		lastColors = numColors
	}
}

// rankByKey reassigns colors as the dense rank of each vertex's key,
// returning the number of distinct colors.
func (g *graph) rankByKey(colors []int, keys [][4]int, order []int) int {
	for v := range order {
		order[v] = v
	}
	sort.Slice(order, func(i, j int) bool {
		return lessKey(keys[order[i]], keys[order[j]])
	})
	c := 0
	for i, v := range order {
		if i > 0 && keys[order[i-1]] != keys[v] {
			c++
		}
		colors[v] = c
	}
	return c + 1
}

func lessKey(a, b [4]int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

type canonSearch struct {
	g        *graph
	best     []byte
	bestHits int64
}

// explore walks the individualization tree rooted at the given stable
// coloring, updating the best encoding and its hit count at each leaf.
func (cs *canonSearch) explore(colors []int) {
	g := cs.g
	n := g.n

	// Find the first smallest non-singleton color class.
	classSize := make([]int, n)
	for _, c := range colors {
		classSize[c]++
	}
	target, targetSize := -1, n+1
	for c := 0; c < n; c++ {
		if classSize[c] > 1 && classSize[c] < targetSize {
			target, targetSize = c, classSize[c]
		}
	}

	if target < 0 {
		cs.visitLeaf(colors)
		return
	}

	branch := make([]int, n)
	for v, c := range colors {
		if c != target {
			continue
		}
		copy(branch, colors)
		// Splitting v off from its class: v outranks the rest of the class,
		// and refinement re-densifies the ranks.
		for w := range branch {
			branch[w] <<= 1
		}
		branch[v]--
		g.refine(branch)
		cs.explore(branch)
	}
}

// visitLeaf encodes the discrete coloring as a labeled adjacency list and
// folds it into the running minimum.
func (cs *canonSearch) visitLeaf(colors []int) {
	g := cs.g
	n := g.n

	vtxAt := make([]int, n)
	for v, c := range colors {
		vtxAt[c] = v
	}

	enc := make([]byte, 0, 1+3*n*2)
	enc = binary.AppendUvarint(enc, uint64(n))
	var nb [3]int
	for pos := 0; pos < n; pos++ {
		v := vtxAt[pos]
		for i, w := range g.adj[v] {
			nb[i] = colors[w]
		}
		sort.Ints(nb[:])
		for _, p := range nb {
			enc = binary.AppendUvarint(enc, uint64(p))
		}
	}

	if cs.best == nil || bytes.Compare(enc, cs.best) < 0 {
		cs.best = enc
		cs.bestHits = 1
	} else if bytes.Equal(enc, cs.best) {
		cs.bestHits++
	}
}
