/*
 * interfaces.go, part of autode.
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

//Atomer is the basic read interface for a set of atoms.
type Atomer interface {

	//Atom returns the Atom corresponding to the index i.
	//Should panic if out of range.
	Atom(i int) *Atom

	Len() int
}

//AtomMultiCharger is an Atomer that also carries a total charge and a
//spin multiplicity, which is what an electronic-structure program needs
//to know about a species besides its geometry.
type AtomMultiCharger interface {
	Atomer

	//Charge gets the total charge of the species.
	Charge() int

	//Multi returns the spin multiplicity of the species.
	Multi() int
}

//Logger is the diagnostics collaborator injected into the components of
//this library. Implementations must never alter control flow; everything
//emitted through a Logger is informational.
type Logger interface {
	Infof(format string, args ...interface{})
	Warningf(format string, args ...interface{})
}
