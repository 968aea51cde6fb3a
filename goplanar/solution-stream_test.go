package goplanar_test

import (
	"strings"
	"testing"

	"github.com/fine-structures/planar.SDK/goplanar"
)

type memAdder struct {
	seen map[string]bool
}

func (m *memAdder) TryAddSolution(sol *goplanar.Solution) bool {
	key := string(sol.Canonic)
	if m.seen[key] {
		return false
	}
	m.seen[key] = true
	return true
}

func pushSolutions(sols ...*goplanar.Solution) *goplanar.SolutionStream {
	stream := goplanar.NewSolutionStream()
	go func() {
		for _, sol := range sols {
			stream.PushSolution(sol)
		}
		stream.Close()
	}()
	return stream
}

func TestStreamPipeline(t *testing.T) {
	a := &goplanar.Solution{HexCount: 1, VtxCount: 14, Canonic: []byte("a")}
	b := &goplanar.Solution{HexCount: 1, VtxCount: 14, Canonic: []byte("b")}
	c := &goplanar.Solution{HexCount: 2, VtxCount: 16, Canonic: []byte("c")}

	adder := &memAdder{seen: make(map[string]bool)}
	stream := pushSolutions(a, b, a, c).AddTo(adder)

	tally := stream.Tally()
	if tally.Total() != 3 {
		t.Fatalf("tallied %d", tally.Total())
	}
	if tally.Count(1) != 2 || tally.Count(2) != 1 || tally.Count(3) != 0 {
		t.Fatal("hex histogram")
	}

	var out strings.Builder
	tally.WriteAsString(&out)
	if out.String() != "1:  2\n2:  1\n" {
		t.Fatalf("got %q", out.String())
	}
}

func TestStreamSelect(t *testing.T) {
	a := &goplanar.Solution{HexCount: 1, VtxCount: 14}
	b := &goplanar.Solution{HexCount: 3, VtxCount: 18}

	sel := goplanar.DefaultSolutionSelector
	sel.MinHexes = 2

	count := pushSolutions(a, b).SelectFromStream(sel).PullAll()
	if count != 1 {
		t.Fatalf("selected %d", count)
	}
}

func TestStreamPrint(t *testing.T) {
	sol := &goplanar.Solution{
		HexCount: 2,
		VtxCount: 16,
		TriNbrs:  []int32{6, 6, 6},
		SqrNbrs:  [][]int32{{5, 6, 5, 6}, {5, 6, 5, 6}},
	}

	var out strings.Builder
	count := pushSolutions(sol).Print(&out, goplanar.DefaultPrintOpts).PullAll()
	if count != 1 {
		t.Fatal("print should pass solutions through")
	}
	want := "   1.  tri: 6, 6, 6  sqr: 5, 6, 5, 6  sqr: 5, 6, 5, 6   2 hexes, 16 verts\n"
	if out.String() != want {
		t.Fatalf("got %q", out.String())
	}
}
