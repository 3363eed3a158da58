/*
 * core.go, part of autode.
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

	v3 "github.com/jmgx30/autodE/v3"
)

//Large structures make constrained optimisations needlessly expensive:
//most of the molecule is a spectator. CoreAtoms and StripCore reduce a
//structure to the chemically relevant region around the reacting atoms,
//renumbering a bond rearrangement along with it.

//CoreAtoms returns the indices of the atoms within depth bonds of any
//active atom, in ascending order. Depth is inclusive; depth 0 gives just
//the active atoms. Pairs in PiBonds are never split: whenever one
//endpoint of a pi bond makes it into the set, the other is pulled in too,
//since a truncated partial double bond is not a valid species.
//An error is returned if the structure has no active atoms or no bond
//graph; both are caller mistakes, not empty results.
func (S *Structure) CoreAtoms(depth int) ([]int, error) {
	if len(S.ActiveAtoms) == 0 {
		return nil, Error{message: NoActiveAtoms, deco: []string{"CoreAtoms"}, critical: true}
	}
	if S.Graph == nil {
		return nil, Error{message: NoBondInfo, deco: []string{"CoreAtoms"}, critical: true}
	}
	if depth < 0 {
		return nil, Error{message: IndexOutOfRange, info: fmt.Sprintf("negative depth %d", depth), deco: []string{"CoreAtoms"}, critical: true}
	}
	for _, a := range S.ActiveAtoms {
		if a < 0 || a >= S.Len() {
			return nil, Error{message: IndexOutOfRange, info: fmt.Sprintf("active atom %d", a), deco: []string{"CoreAtoms"}, critical: true}
		}
	}
	in := S.Graph.WithinDepth(S.ActiveAtoms, depth)
	//pi closure. Iterated to a fixed point: pulling in one end of a
	//conjugated chain can expose the next pair.
	for changed := true; changed; {
		changed = false
		for _, pb := range S.PiBonds {
			a, b := in[pb[0]], in[pb[1]]
			if a != b {
				in[pb[0]] = true
				in[pb[1]] = true
				changed = true
			}
		}
	}
	return sortedKeys(in), nil
}

//StripCore returns a copy of the structure reduced to the atoms in core,
//together with the rearrangement renumbered into the fragment's index
//space. Atoms keep their original relative order, so the renumbering is
//deterministic. Rearrangement pairs with an endpoint outside the core
//refer to chemistry the fragment cannot represent and are dropped.
//A nil core, or a core covering every atom, makes stripping pointless:
//the receiver and the rearrangement are returned unchanged, and the
//result is not marked as a fragment. An empty non-nil core is an error,
//as a fragment with no atoms is not a species.
func (S *Structure) StripCore(core []int, rearr *BondRearrangement) (*Structure, *BondRearrangement, error) {
	if rearr != nil {
		if err := rearr.CheckIndexes(S.Len()); err != nil {
			return nil, nil, errDecorate(err, "StripCore")
		}
	}
	if core == nil {
		return S, rearr, nil
	}
	if len(core) == 0 {
		//unlike nil, an empty core asks for a fragment with no atoms
		return nil, nil, Error{message: IndexOutOfRange, info: "empty core", deco: []string{"StripCore"}, critical: true}
	}
	keep := make(map[int]bool, len(core))
	for _, i := range core {
		if i < 0 || i >= S.Len() {
			return nil, nil, Error{message: IndexOutOfRange, info: fmt.Sprintf("core atom %d, %d atoms", i, S.Len()), deco: []string{"StripCore"}, critical: true}
		}
		keep[i] = true
	}
	if len(keep) == S.Len() {
		return S, rearr, nil
	}
	kept := sortedKeys(keep) //ascending original order, so new indices are stable
	oldToNew := make(map[int]int, len(kept))
	for n, o := range kept {
		oldToNew[o] = n
	}

	N := new(Structure)
	N.name = S.name
	N.charge = S.charge
	N.multi = S.multi
	N.fragment = true
	N.Atoms = make([]*Atom, len(kept))
	for n, o := range kept {
		N.Atoms[n] = S.Atoms[o].Copy()
		N.Atoms[n].Index = n
	}
	if S.Coords != nil {
		N.Coords = v3.Zeros(len(kept))
		N.Coords.SomeVecs(S.Coords, kept)
	}
	if S.Graph != nil {
		N.Graph = S.Graph.Induced(oldToNew)
	}
	for _, pb := range S.PiBonds {
		if np, ok := remapPair(pb, oldToNew); ok {
			N.PiBonds = append(N.PiBonds, np)
		}
	}
	for _, a := range S.ActiveAtoms {
		if na, ok := oldToNew[a]; ok {
			N.ActiveAtoms = append(N.ActiveAtoms, na)
		}
	}

	var nbr *BondRearrangement
	if rearr != nil {
		nbr = new(BondRearrangement)
		for _, p := range rearr.FBonds {
			if np, ok := remapPair(p, oldToNew); ok {
				nbr.FBonds = append(nbr.FBonds, np)
			}
		}
		for _, p := range rearr.BBonds {
			if np, ok := remapPair(p, oldToNew); ok {
				nbr.BBonds = append(nbr.BBonds, np)
			}
		}
	}
	return N, nbr, nil
}

//remapPair maps both endpoints of p through oldToNew. The second return
//is false when either endpoint has no new index, i.e. was not kept.
func remapPair(p BondPair, oldToNew map[int]int) (BondPair, bool) {
	a, oka := oldToNew[p[0]]
	b, okb := oldToNew[p[1]]
	if !oka || !okb {
		return BondPair{}, false
	}
	return BondPair{a, b}, true
}
