package molgraph

import "testing"

//propane-like chain with a pendant atom: 0-1-2-3, 1-4
func chain() *Graph {
	g := New(5)
	g.AddBond(0, 1)
	g.AddBond(1, 2)
	g.AddBond(2, 3)
	g.AddBond(1, 4)
	return g
}

func TestNeighbors(Te *testing.T) {
	g := chain()
	n := g.Neighbors(1)
	want := []int{0, 2, 4}
	if len(n) != len(want) {
		Te.Fatalf("Wrong number of neighbors: %v", n)
	}
	for i := range want {
		if n[i] != want[i] {
			Te.Errorf("Neighbors(1) = %v, want %v", n, want)
		}
	}
	if !g.HasBond(0, 1) || g.HasBond(0, 2) {
		Te.Error("HasBond disagrees with the bonds added")
	}
}

func TestWithinDepth(Te *testing.T) {
	g := chain()
	sizes := []int{1, 4, 5, 5}
	for depth, want := range sizes {
		in := g.WithinDepth([]int{1}, depth)
		if len(in) != want {
			Te.Errorf("depth %d: got %d atoms, want %d", depth, len(in), want)
		}
	}
	//depth 0 must be only the sources themselves
	in := g.WithinDepth([]int{0, 3}, 0)
	if len(in) != 2 || !in[0] || !in[3] {
		Te.Errorf("depth 0 set wrong: %v", in)
	}
}

func TestWithinDepthMonotonic(Te *testing.T) {
	g := chain()
	prev := g.WithinDepth([]int{0}, 0)
	for depth := 1; depth < 5; depth++ {
		cur := g.WithinDepth([]int{0}, depth)
		for at := range prev {
			if !cur[at] {
				Te.Errorf("depth %d lost atom %d present at depth %d", depth, at, depth-1)
			}
		}
		prev = cur
	}
}

func TestConnected(Te *testing.T) {
	g := chain()
	if !g.Connected() {
		Te.Error("Chain reported as disconnected")
	}
	g2 := New(4)
	g2.AddBond(0, 1)
	g2.AddBond(2, 3)
	if g2.Connected() {
		Te.Error("Two components reported as connected")
	}
}
