package molgraph

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"
)

//Graph is an undirected molecular graph over atom indices. Nodes are the
//indices 0..n-1 of the structure the graph belongs to; edges are bonds.
//It wraps a gonum graph so the traversal machinery there can be used
//directly.
type Graph struct {
	g      *simple.UndirectedGraph
	natoms int
}

//New returns a graph with natoms nodes, indices 0..natoms-1, and no bonds.
func New(natoms int) *Graph {
	g := simple.NewUndirectedGraph()
	for i := 0; i < natoms; i++ {
		g.AddNode(simple.Node(int64(i)))
	}
	return &Graph{g: g, natoms: natoms}
}

//NAtoms returns the number of nodes in the graph.
func (G *Graph) NAtoms() int {
	return G.natoms
}

//NBonds returns the number of edges in the graph.
func (G *Graph) NBonds() int {
	return G.g.Edges().Len()
}

func (G *Graph) check(i int) {
	if i < 0 || i >= G.natoms {
		panic(fmt.Sprintf("molgraph: atom index %d out of range (%d atoms)", i, G.natoms))
	}
}

//AddBond adds an edge between atoms i and j. Adding an existing bond is
//a no-op. Panics on out-of-range indices or a self bond, both of which
//are programming errors.
func (G *Graph) AddBond(i, j int) {
	G.check(i)
	G.check(j)
	if i == j {
		panic(fmt.Sprintf("molgraph: attempted self-bond on atom %d", i))
	}
	if G.HasBond(i, j) {
		return
	}
	G.g.SetEdge(simple.Edge{F: simple.Node(int64(i)), T: simple.Node(int64(j))})
}

//RemoveBond removes the edge between atoms i and j, if present.
func (G *Graph) RemoveBond(i, j int) {
	G.check(i)
	G.check(j)
	G.g.RemoveEdge(int64(i), int64(j))
}

//HasBond reports whether atoms i and j are bonded.
func (G *Graph) HasBond(i, j int) bool {
	G.check(i)
	G.check(j)
	return G.g.HasEdgeBetween(int64(i), int64(j))
}

//Neighbors returns the indices bonded to atom i, in ascending order.
func (G *Graph) Neighbors(i int) []int {
	G.check(i)
	nodes := G.g.From(int64(i))
	ret := make([]int, 0, nodes.Len())
	for nodes.Next() {
		ret = append(ret, int(nodes.Node().ID()))
	}
	sort.Ints(ret)
	return ret
}

//Bonds returns every edge as an index pair with the smaller index first,
//sorted. Mostly for rebuilding a graph after renumbering.
func (G *Graph) Bonds() [][2]int {
	edges := G.g.Edges()
	ret := make([][2]int, 0, edges.Len())
	for edges.Next() {
		e := edges.Edge()
		a, b := int(e.From().ID()), int(e.To().ID())
		if a > b {
			a, b = b, a
		}
		ret = append(ret, [2]int{a, b})
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i][0] != ret[j][0] {
			return ret[i][0] < ret[j][0]
		}
		return ret[i][1] < ret[j][1]
	})
	return ret
}

//WithinDepth returns the set of atoms reachable from any of the sources
//in at most depth bonds. Depth is inclusive: depth 0 gives the sources
//themselves. The traversal is a plain bounded BFS; any chemistry rule
//(like keeping pi systems whole) belongs to the caller as a pass over
//the returned set.
func (G *Graph) WithinDepth(sources []int, depth int) map[int]bool {
	in := make(map[int]bool, len(sources))
	if depth < 0 {
		return in
	}
	for _, s := range sources {
		G.check(s)
		bf := traverse.BreadthFirst{}
		//BFS dequeues in depth order, so stopping at the first node past
		//the limit leaves exactly the wanted set collected.
		bf.Walk(G.g, simple.Node(int64(s)), func(n graph.Node, d int) bool {
			if d > depth {
				return true
			}
			in[int(n.ID())] = true
			return false
		})
	}
	return in
}

//Induced returns the subgraph induced by the keys of oldToNew, with the
//nodes renumbered through the map. Edges with an endpoint outside the
//map's domain are dropped.
func (G *Graph) Induced(oldToNew map[int]int) *Graph {
	N := New(len(oldToNew))
	for _, b := range G.Bonds() {
		i, oki := oldToNew[b[0]]
		j, okj := oldToNew[b[1]]
		if oki && okj {
			N.AddBond(i, j)
		}
	}
	return N
}

//Connected reports whether the graph is a single connected component.
func (G *Graph) Connected() bool {
	if G.natoms == 0 {
		return true
	}
	return len(G.WithinDepth([]int{0}, G.natoms)) == G.natoms
}
