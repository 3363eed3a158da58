/*
 * core_test.go, part of autode.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package autode

import (
	"fmt"
	"testing"

	"github.com/jmgx30/autodE/molgraph"
	v3 "github.com/jmgx30/autodE/v3"
)

//haloalkane is a 32-atom test system: a branched skeleton on atoms 0-29
//plus a separate two-atom nucleophile on 30-31, with the halide (0), its
//carbon (1) and the attacking atom (30) active. The connectivity is laid
//out so that the core sizes at depths 2, 3 and 5 are 15, 17 and 32.
func haloalkane() *Structure {
	atoms := make([]*Atom, 32)
	for i := range atoms {
		atoms[i] = &Atom{Symbol: "C", Index: i}
	}
	atoms[0].Symbol = "Br"
	atoms[30].Symbol = "O"
	atoms[31].Symbol = "H"
	S, err := MakeStructure("haloalkane", atoms, v3.Zeros(32), -1, 1)
	if err != nil {
		panic(err.Error())
	}
	g := molgraph.New(32)
	bonds := [][2]int{
		{0, 1},
		{1, 2}, {1, 3}, {1, 4},
		{2, 5}, {2, 6}, {2, 7},
		{3, 8}, {3, 9}, {3, 10},
		{4, 11}, {4, 12},
		{5, 13}, {5, 14},
		{13, 15}, {13, 16},
		{14, 17}, {14, 18},
		{15, 19}, {15, 20}, {15, 21},
		{16, 22}, {16, 23}, {16, 24},
		{17, 25}, {17, 26}, {17, 27},
		{18, 28}, {18, 29},
		{30, 31},
	}
	for _, b := range bonds {
		g.AddBond(b[0], b[1])
	}
	S.Graph = g
	S.ActiveAtoms = []int{0, 1, 30}
	return S
}

func TestCoreAtomsDepths(Te *testing.T) {
	S := haloalkane()
	for _, c := range []struct{ depth, want int }{{2, 15}, {3, 17}, {5, 32}} {
		core, err := S.CoreAtoms(c.depth)
		if err != nil {
			Te.Fatal(err)
		}
		if len(core) != c.want {
			Te.Errorf("depth %d: core has %d atoms, want %d", c.depth, len(core), c.want)
		}
	}
	fmt.Println("Core extraction depths OK")
}

func TestCoreAtomsNoActive(Te *testing.T) {
	S := haloalkane()
	S.ActiveAtoms = nil
	if _, err := S.CoreAtoms(2); err == nil {
		Te.Error("CoreAtoms accepted a structure with no active atoms")
	}
	S = haloalkane()
	S.Graph = nil
	if _, err := S.CoreAtoms(2); err == nil {
		Te.Error("CoreAtoms accepted a structure with no bond graph")
	}
}

func TestCoreAtomsMonotonic(Te *testing.T) {
	S := haloalkane()
	prev, err := S.CoreAtoms(0)
	if err != nil {
		Te.Fatal(err)
	}
	if len(prev) != 3 {
		Te.Errorf("depth 0 core should be the active atoms, got %v", prev)
	}
	for depth := 1; depth <= 6; depth++ {
		cur, err := S.CoreAtoms(depth)
		if err != nil {
			Te.Fatal(err)
		}
		for _, at := range prev {
			if !isInInt(cur, at) {
				Te.Errorf("depth %d dropped atom %d present at depth %d", depth, at, depth-1)
			}
		}
		prev = cur
	}
}

func TestCoreAtomsPiClosure(Te *testing.T) {
	S := haloalkane()
	//a conjugated chain hanging off the depth-2 boundary: pulling in 13
	//must cascade to 15.
	S.PiBonds = []BondPair{{5, 13}, {13, 15}}
	core, err := S.CoreAtoms(2)
	if err != nil {
		Te.Fatal(err)
	}
	if len(core) != 17 {
		Te.Errorf("pi-extended core has %d atoms, want 17: %v", len(core), core)
	}
	for _, pb := range S.PiBonds {
		if isInInt(core, pb[0]) != isInInt(core, pb[1]) {
			Te.Errorf("pi bond %v split by core extraction", pb)
		}
	}
}

func TestStripCore(Te *testing.T) {
	S := haloalkane()
	br := MakeBondRearrangement([]BondPair{{1, 30}}, []BondPair{{0, 1}})
	core, err := S.CoreAtoms(2)
	if err != nil {
		Te.Fatal(err)
	}
	frag, fbr, err := S.StripCore(core, br)
	if err != nil {
		Te.Fatal(err)
	}
	if frag.Len() != 15 {
		Te.Errorf("fragment has %d atoms, want 15", frag.Len())
	}
	if !frag.IsFragment() {
		Te.Error("stripped structure not marked as fragment")
	}
	if S.IsFragment() {
		Te.Error("original structure got marked as fragment")
	}
	if len(fbr.FBonds) != 1 || fbr.FBonds[0] != (BondPair{1, 13}) {
		Te.Errorf("forming bonds remapped to %v, want [(1,13)]", fbr.FBonds)
	}
	if len(fbr.BBonds) != 1 || fbr.BBonds[0] != (BondPair{0, 1}) {
		Te.Errorf("breaking bonds remapped to %v, want [(0,1)]", fbr.BBonds)
	}
	//the fragment keeps its own consistent annotations
	if len(frag.ActiveAtoms) != 3 {
		Te.Errorf("fragment active atoms: %v", frag.ActiveAtoms)
	}
	if frag.Graph.NAtoms() != 15 {
		Te.Errorf("fragment graph has %d nodes", frag.Graph.NAtoms())
	}
	//the original must be untouched
	if S.Len() != 32 || len(br.FBonds) != 1 || br.FBonds[0] != (BondPair{1, 30}) {
		Te.Error("StripCore mutated its inputs")
	}
}

func TestStripCoreOrderPreserved(Te *testing.T) {
	S := haloalkane()
	core, _ := S.CoreAtoms(2)
	frag, _, err := S.StripCore(core, nil)
	if err != nil {
		Te.Fatal(err)
	}
	//ascending original indices must map to ascending new ones; with the
	//kept list sorted, symbols land in original relative order.
	if frag.Atom(0).Symbol != "Br" {
		Te.Error("atom 0 of the fragment should still be the halide")
	}
	if frag.Atom(13).Symbol != "O" || frag.Atom(14).Symbol != "H" {
		Te.Errorf("nucleophile not renumbered to the fragment tail: %s %s", frag.Atom(13).Symbol, frag.Atom(14).Symbol)
	}
}

func TestStripCoreNoOp(Te *testing.T) {
	S := haloalkane()
	br := MakeBondRearrangement([]BondPair{{1, 30}}, []BondPair{{0, 1}})
	//nil core: nothing to do
	s2, br2, err := S.StripCore(nil, br)
	if err != nil {
		Te.Fatal(err)
	}
	if s2 != S || br2 != br {
		Te.Error("nil-core strip should return the inputs by identity")
	}
	//full-coverage core: no reduction possible
	all := make([]int, S.Len())
	for i := range all {
		all[i] = i
	}
	s3, br3, err := S.StripCore(all, br)
	if err != nil {
		Te.Fatal(err)
	}
	if s3 != S || br3 != br || s3.IsFragment() {
		Te.Error("full-core strip should be the identity")
	}
}

func TestStripCoreEmpty(Te *testing.T) {
	S := haloalkane()
	frag, _, err := S.StripCore([]int{}, nil)
	if err == nil {
		Te.Fatal("an empty core should be rejected, not stripped to nothing")
	}
	if frag != nil {
		Te.Errorf("no fragment should come with the error, got %v", frag)
	}
	if !err.(Err).Critical() {
		Te.Error("an empty core is a caller mistake, the error should be critical")
	}
}

func TestStripCoreBadRearrangement(Te *testing.T) {
	S := haloalkane()
	br := MakeBondRearrangement([]BondPair{{1, 40}}, nil)
	if _, _, err := S.StripCore(nil, br); err == nil {
		Te.Error("StripCore accepted a rearrangement referencing a non-existent atom")
	}
}

func TestStripCoreDropsOutsidePairs(Te *testing.T) {
	S := haloalkane()
	//(17,25) lies entirely outside the depth-2 core and cannot be
	//represented after reduction.
	br := MakeBondRearrangement([]BondPair{{1, 30}}, []BondPair{{17, 25}})
	core, _ := S.CoreAtoms(2)
	_, fbr, err := S.StripCore(core, br)
	if err != nil {
		Te.Fatal(err)
	}
	if len(fbr.BBonds) != 0 {
		Te.Errorf("pair outside the core survived the strip: %v", fbr.BBonds)
	}
	if len(fbr.FBonds) != 1 {
		Te.Errorf("pair inside the core was dropped: %v", fbr.FBonds)
	}
}
