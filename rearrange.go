/*
 * rearrange.go, part of autode.
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

import "fmt"

//BondPair is a pair of atom indices identifying one bond. Pairs are
//undirected: (i,j) and (j,i) name the same bond.
type BondPair [2]int

//Same reports whether the two pairs name the same bond, ignoring
//direction.
func (b BondPair) Same(o BondPair) bool {
	return b == o || (b[0] == o[1] && b[1] == o[0])
}

//In reports whether atom index i is an endpoint of the pair.
func (b BondPair) In(i int) bool {
	return b[0] == i || b[1] == i
}

//BondRearrangement holds the topological signature of a reaction: the
//bonds formed (FBonds) and broken (BBonds), in the index space of the
//structure the rearrangement is paired with.
type BondRearrangement struct {
	FBonds []BondPair
	BBonds []BondPair
}

//MakeBondRearrangement returns a BondRearrangement with the given
//forming and breaking bonds.
func MakeBondRearrangement(fbonds, bbonds []BondPair) *BondRearrangement {
	return &BondRearrangement{FBonds: fbonds, BBonds: bbonds}
}

//AllPairs returns forming then breaking bonds as one slice.
func (br *BondRearrangement) AllPairs() []BondPair {
	ret := make([]BondPair, 0, len(br.FBonds)+len(br.BBonds))
	ret = append(ret, br.FBonds...)
	ret = append(ret, br.BBonds...)
	return ret
}

//ActiveAtoms returns the sorted set of atoms appearing in any forming or
//breaking bond.
func (br *BondRearrangement) ActiveAtoms() []int {
	in := make(map[int]bool)
	for _, p := range br.AllPairs() {
		in[p[0]] = true
		in[p[1]] = true
	}
	return sortedKeys(in)
}

//Equal reports whether the two rearrangements have the same forming and
//breaking bonds, in order, ignoring pair direction.
func (br *BondRearrangement) Equal(o *BondRearrangement) bool {
	if br == o {
		return true
	}
	if o == nil || len(br.FBonds) != len(o.FBonds) || len(br.BBonds) != len(o.BBonds) {
		return false
	}
	for i, p := range br.FBonds {
		if !p.Same(o.FBonds[i]) {
			return false
		}
	}
	for i, p := range br.BBonds {
		if !p.Same(o.BBonds[i]) {
			return false
		}
	}
	return true
}

//CheckIndexes returns an error if any pair references an index outside
//0..natoms-1. A rearrangement pointing outside its structure is a caller
//bug and must surface early rather than become an empty result.
func (br *BondRearrangement) CheckIndexes(natoms int) error {
	for _, p := range br.AllPairs() {
		if p[0] < 0 || p[0] >= natoms || p[1] < 0 || p[1] >= natoms {
			return Error{message: IndexOutOfRange, info: fmt.Sprintf("bond pair %v, %d atoms", p, natoms), deco: []string{"CheckIndexes"}, critical: true}
		}
	}
	return nil
}
