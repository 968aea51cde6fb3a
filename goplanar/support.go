package goplanar

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/emirpasic/gods/trees/redblacktree"
)

func NewCatalogContext() CatalogContext {
	ctx := &catalogContext{
		openCatalogs: make(map[Catalog]struct{}),
		closing:      make(chan struct{}),
		closed:       make(chan struct{}),
	}
	ctx.openCount.Add(1)
	go func() {
		<-ctx.Closing()
		ctx.openCount.Done()
		ctx.openCount.Wait()
		close(ctx.closed)
	}()
	return ctx
}

type catalogContext struct {
	mu           sync.Mutex
	openCount    sync.WaitGroup
	openCatalogs map[Catalog]struct{}
	closing      chan struct{}
	closed       chan struct{}
}

func (ctx *catalogContext) AttachCatalog(cat Catalog) {
	ctx.openCount.Add(1)
	ctx.mu.Lock()
	ctx.openCatalogs[cat] = struct{}{}
	ctx.mu.Unlock()
}

func (ctx *catalogContext) DetachCatalog(cat Catalog) {
	ctx.mu.Lock()
	if _, exists := ctx.openCatalogs[cat]; exists {
		delete(ctx.openCatalogs, cat)
		ctx.openCount.Done()
	}
	ctx.mu.Unlock()
}

func (ctx *catalogContext) Closing() <-chan struct{} {
	return ctx.closing
}

func (ctx *catalogContext) Done() <-chan struct{} {
	return ctx.closed
}

func (ctx *catalogContext) Close() {
	close(ctx.closing)
	ctx.mu.Lock()
	for cat := range ctx.openCatalogs {
		go cat.Close()
	}
	ctx.mu.Unlock()
}

func commaPrint(out io.Writer, sizes []int32) {
	for i, sz := range sizes {
		if i > 0 {
			io.WriteString(out, ", ")
		}
		fmt.Fprintf(out, "%d", sz)
	}
}

// WriteAsString appends a one-line summary of this solution: the adjacency
// summary of the triangle and each square, then the hexagon and vertex counts.
func (sol *Solution) WriteAsString(out io.Writer, opts PrintOpts) {
	if len(opts.Label) > 0 {
		io.WriteString(out, opts.Label)
	}
	if opts.Nbrs {
		io.WriteString(out, "  tri: ")
		commaPrint(out, sol.TriNbrs)
		for _, nbrs := range sol.SqrNbrs {
			io.WriteString(out, "  sqr: ")
			commaPrint(out, nbrs)
		}
	}
	fmt.Fprintf(out, "  %2d hexes, %d verts", sol.HexCount, sol.VtxCount)
	if opts.AutGroup && sol.GroupOrder > 0 {
		fmt.Fprintf(out, ", |Aut| = %d", sol.GroupOrder)
	}
	if opts.Edges {
		io.WriteString(out, "  [")
		for i, e := range sol.Edges {
			if i > 0 {
				io.WriteString(out, " ")
			}
			fmt.Fprintf(out, "%d-%d", e.V1, e.V2)
		}
		io.WriteString(out, "]")
	}
}

func (sol *Solution) Println(prefix string) {
	b := strings.Builder{}
	b.Grow(192)
	b.WriteString(prefix)
	sol.WriteAsString(&b, DefaultPrintOpts)
	fmt.Println(b.String())
}

// HexTally aggregates distinct-solution counts by hexagon count, the compact
// output mode where solutions are only tallied rather than printed.
type HexTally struct {
	counts *redblacktree.Tree
	total  int64
}

func NewHexTally() *HexTally {
	return &HexTally{
		counts: redblacktree.NewWithIntComparator(),
	}
}

// Add tallies one distinct solution having the given hexagon count.
func (tally *HexTally) Add(hexCount int32) {
	n := int64(0)
	if prev, found := tally.counts.Get(int(hexCount)); found {
		n = prev.(int64)
	}
	tally.counts.Put(int(hexCount), n+1)
	tally.total++
}

// Count returns the number of distinct solutions tallied for a hexagon count.
func (tally *HexTally) Count(hexCount int32) int64 {
	if n, found := tally.counts.Get(int(hexCount)); found {
		return n.(int64)
	}
	return 0
}

// Total returns the number of distinct solutions tallied so far.
func (tally *HexTally) Total() int64 {
	return tally.total
}

// WriteAsString writes one "hexCount:  count" line per hexagon count seen,
// in ascending hexagon count order.
func (tally *HexTally) WriteAsString(out io.Writer) {
	it := tally.counts.Iterator()
	for it.Next() {
		fmt.Fprintf(out, "%d:  %d\n", it.Key().(int), it.Value().(int64))
	}
}
