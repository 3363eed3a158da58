/*
 * bonds.go, part of autode.
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
	"sort"

	"github.com/jmgx30/autodE/molgraph"
)

//constants from DOI:10.1186/1758-2946-3-33
const (
	tooclose = 0.63
	bondtol  = 0.45
)

type perceivedBond struct {
	at1, at2 int
	dist     float64
}

//AssignBonds builds the bond graph of the structure from a simple distance
//criterion, similar to that described in DOI:10.1186/1758-2946-3-33: two
//atoms are bonded when their distance falls below the sum of their covalent
//radii plus a tolerance. Afterwards, atoms with a defined maximum valence
//get their longest surplus bonds removed. It might get slow for large
//systems; it is really not thought for proteins or macromolecules.
func AssignBonds(S *Structure) error {
	tot := S.Len()
	bonds := make([]perceivedBond, 0, tot)
	perAtom := make([][]perceivedBond, tot)
	for i := 0; i < tot; i++ {
		cov1 := symbolCovrad[S.Atom(i).Symbol]
		if cov1 == 0 {
			return Error{message: UnknownElement, info: fmt.Sprintf("no covalent radius for %s %d", S.Atom(i).Symbol, i), deco: []string{"AssignBonds"}, critical: true}
		}
		for j := i + 1; j < tot; j++ {
			cov2 := symbolCovrad[S.Atom(j).Symbol]
			if cov2 == 0 {
				return Error{message: UnknownElement, info: fmt.Sprintf("no covalent radius for %s %d", S.Atom(j).Symbol, j), deco: []string{"AssignBonds"}, critical: true}
			}
			d := S.Coords.VecDistance(i, j)
			if d < cov1+cov2+bondtol && d > tooclose {
				b := perceivedBond{at1: i, at2: j, dist: d}
				bonds = append(bonds, b)
				perAtom[i] = append(perAtom[i], b)
				perAtom[j] = append(perAtom[j], b)
			}
		}
	}
	//Now we check that no atom has too many bonds, removing the longest
	//ones until it doesn't.
	removed := make(map[[2]int]bool)
	for i := 0; i < tot; i++ {
		max := symbolMaxBonds[S.Atom(i).Symbol]
		if max == 0 { //no specified number of bonds for this element.
			continue
		}
		mine := perAtom[i]
		sort.Slice(mine, func(a, b int) bool { return mine[a].dist < mine[b].dist })
		live := 0
		for _, b := range mine {
			if removed[[2]int{b.at1, b.at2}] {
				continue
			}
			live++
			if live > max {
				removed[[2]int{b.at1, b.at2}] = true
			}
		}
	}
	g := molgraph.New(tot)
	for _, b := range bonds {
		if !removed[[2]int{b.at1, b.at2}] {
			g.AddBond(b.at1, b.at2)
		}
	}
	S.Graph = g
	return nil
}
