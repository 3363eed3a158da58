/*
 * structure.go, part of autode.
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

	"github.com/jmgx30/autodE/molgraph"
	v3 "github.com/jmgx30/autodE/v3"
)

/*Note: several funcitons here panic instead of returning errors. They are
"fundamental" functions: if something goes wrong in them the program is
way-most likely wrong already and should crash. The panics are related to
out-of-bounds access or nil receivers.*/

//Atom contains the static data of one atom. Coordinates are kept apart,
//in the Structure's coordinate matrix.
type Atom struct {
	Symbol string
	Index  int
	Mass   float64
}

//Copy returns a copy of the Atom object.
func (A *Atom) Copy() *Atom {
	if A == nil {
		panic("Attempted to copy a nil atom")
	}
	at := new(Atom)
	*at = *A
	return at
}

//Structure is an ordered set of atoms with one set of cartesian
//coordinates and everything about the species that geometry optimisation
//does not change: total charge, spin multiplicity, the bond graph, the
//pi-bonded pairs and the atoms active in the reaction under study.
type Structure struct {
	Atoms  []*Atom
	Coords *v3.Matrix
	Graph  *molgraph.Graph

	//PiBonds are pairs known to be part of a double or aromatic bond.
	//When the reactive core is extracted, a pi system is never split.
	PiBonds []BondPair

	//ActiveAtoms are the atoms directly involved in bond breaking or
	//formation. Empty means the structure has no reactive centre defined.
	ActiveAtoms []int

	name     string
	charge   int
	multi    int
	fragment bool
}

//MakeStructure builds a Structure from atoms and coordinates. It returns
//an error on nil slices or a coordinate/atom count mismatch. It doesn't
//check for a correct charge or multiplicity.
func MakeStructure(name string, atoms []*Atom, coords *v3.Matrix, charge, multi int) (*Structure, error) {
	if atoms == nil {
		return nil, Error{message: NilStructure, deco: []string{"MakeStructure"}, critical: true}
	}
	if coords == nil {
		return nil, Error{message: NilCoordinates, deco: []string{"MakeStructure"}, critical: true}
	}
	if coords.NVecs() != len(atoms) {
		return nil, Error{message: NilCoordinates, info: fmt.Sprintf("%d coordinates for %d atoms", coords.NVecs(), len(atoms)), deco: []string{"MakeStructure"}, critical: true}
	}
	S := new(Structure)
	S.name = name
	S.Atoms = atoms
	S.Coords = coords
	S.charge = charge
	S.multi = multi
	for i, at := range S.Atoms {
		at.Index = i
	}
	return S, nil
}

//Len returns the number of atoms in the structure.
func (S *Structure) Len() int {
	return len(S.Atoms)
}

//Atom returns the atom at index i. Panics if out of range.
func (S *Structure) Atom(i int) *Atom {
	if i < 0 || i >= S.Len() {
		panic("Structure: requested Atom out of bounds")
	}
	return S.Atoms[i]
}

//Name returns the name of the structure.
func (S *Structure) Name() string { return S.name }

//SetName sets the name of the structure to name.
func (S *Structure) SetName(name string) { S.name = name }

//Charge returns the total charge of the structure.
func (S *Structure) Charge() int { return S.charge }

//Multi returns the spin multiplicity of the structure.
func (S *Structure) Multi() int { return S.multi }

//SetCharge sets the total charge to i.
func (S *Structure) SetCharge(i int) { S.charge = i }

//SetMulti sets the spin multiplicity to i.
func (S *Structure) SetMulti(i int) { S.multi = i }

//IsFragment reports whether this structure was produced by stripping a
//larger one down to its reactive core. Downstream logic needs the
//distinction, e.g. to know that results refer to renumbered atoms.
func (S *Structure) IsFragment() bool { return S.fragment }

//BondDistance returns the distance between the two atoms of the pair.
//Panics if either index is out of range.
func (S *Structure) BondDistance(pair BondPair) float64 {
	if pair[0] >= S.Len() || pair[1] >= S.Len() || pair[0] < 0 || pair[1] < 0 {
		panic(fmt.Sprintf("Structure: bond pair %v out of bounds", pair))
	}
	return S.Coords.VecDistance(pair[0], pair[1])
}

//SetCoords replaces the coordinates of the structure with coords. It
//returns an error if the number of vectors doesn't match the number of
//atoms. The given matrix is used as-is, not copied.
func (S *Structure) SetCoords(coords *v3.Matrix) error {
	if coords == nil {
		return Error{message: NilCoordinates, deco: []string{"SetCoords"}, critical: true}
	}
	if coords.NVecs() != S.Len() {
		return Error{message: NilCoordinates, info: fmt.Sprintf("%d coordinates for %d atoms", coords.NVecs(), S.Len()), deco: []string{"SetCoords"}, critical: true}
	}
	S.Coords = coords
	return nil
}

//Copy returns a deep copy of the structure, including coordinates, bond
//graph and reaction annotations. The copy shares nothing with the
//original, so it is safe to hand to code that mutates its input.
func (S *Structure) Copy() *Structure {
	if S == nil {
		panic("Attempted to copy a nil structure")
	}
	N := new(Structure)
	N.name = S.name
	N.charge = S.charge
	N.multi = S.multi
	N.fragment = S.fragment
	N.Atoms = make([]*Atom, S.Len())
	for i, at := range S.Atoms {
		N.Atoms[i] = at.Copy()
	}
	if S.Coords != nil {
		N.Coords = S.Coords.Copy()
	}
	if S.Graph != nil {
		N.Graph = molgraph.New(S.Graph.NAtoms())
		for _, b := range S.Graph.Bonds() {
			N.Graph.AddBond(b[0], b[1])
		}
	}
	if S.PiBonds != nil {
		N.PiBonds = make([]BondPair, len(S.PiBonds))
		copy(N.PiBonds, S.PiBonds)
	}
	if S.ActiveAtoms != nil {
		N.ActiveAtoms = make([]int, len(S.ActiveAtoms))
		copy(N.ActiveAtoms, S.ActiveAtoms)
	}
	return N
}
