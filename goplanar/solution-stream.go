package goplanar

import (
	"fmt"
	"io"
	"strings"
)

// SolutionStream is a pull-based pipeline of finished solutions.
type SolutionStream struct {
	Outlet chan *Solution
}

func NewSolutionStream() *SolutionStream {
	stream := &SolutionStream{
		Outlet: make(chan *Solution, 1),
	}
	return stream
}

func (stream *SolutionStream) Close() {
	if stream.Outlet != nil {
		close(stream.Outlet)
	}
}

func (stream *SolutionStream) PushSolution(sol *Solution) {
	stream.Outlet <- sol
}

func (stream *SolutionStream) PullSolution() *Solution {
	sol := <-stream.Outlet
	return sol
}

// PullAll drains the stream, returning the number of solutions pulled.
func (stream *SolutionStream) PullAll() int {
	count := int(0)
	for range stream.Outlet {
		count++
	}
	return count
}

// Print passes each solution through, writing an ordinal plus the solution's
// summary line to out.
func (stream *SolutionStream) Print(out io.Writer, opts PrintOpts) *SolutionStream {
	next := &SolutionStream{
		Outlet: make(chan *Solution, 1),
	}

	go func() {
		buf := strings.Builder{}
		buf.Grow(256)

		count := 0
		for sol := range stream.Outlet {
			count++
			fmt.Fprintf(&buf, "%4d.", count)
			sol.WriteAsString(&buf, opts)
			buf.WriteByte('\n')
			io.WriteString(out, buf.String())
			buf.Reset()
			next.Outlet <- sol
		}
		next.Close()
	}()

	return next
}

// AddTo passes through only solutions newly added to the target, dropping
// ones the target has already seen.
func (stream *SolutionStream) AddTo(target SolutionAdder) *SolutionStream {
	next := &SolutionStream{
		Outlet: make(chan *Solution, 1),
	}

	go func() {
		for sol := range stream.Outlet {
			wasAdded := target.TryAddSolution(sol)
			if wasAdded {
				next.Outlet <- sol
			}
		}
		next.Close()
	}()

	return next
}

// SelectFromStream passes through only solutions matching the selector.
func (stream *SolutionStream) SelectFromStream(sel SolutionSelector) *SolutionStream {
	next := &SolutionStream{
		Outlet: make(chan *Solution, 1),
	}

	go func() {
		for sol := range stream.Outlet {
			if sel.SelectsSolution(sol) {
				next.Outlet <- sol
			}
		}
		next.Close()
	}()

	return next
}

// Tally drains the stream into a per-hexagon-count histogram.
func (stream *SolutionStream) Tally() *HexTally {
	tally := NewHexTally()
	for sol := range stream.Outlet {
		tally.Add(sol.HexCount)
	}
	return tally
}

// SelectFromCatalog streams the catalog's stored solutions matching sel.
func SelectFromCatalog(cat Catalog, sel SolutionSelector) *SolutionStream {
	next := &SolutionStream{
		Outlet: make(chan *Solution, 1),
	}

	onHit := make(chan *Solution, 4)

	go func() {
		cat.Select(sel, onHit)
		close(onHit)
	}()

	go func() {
		for sol := range onHit {
			if sel.SelectsSolution(sol) {
				next.Outlet <- sol
			}
		}
		next.Close()
	}()

	return next
}
