/*
 * atomicdata.go, part of autode.
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

//A map for assigning mass to elements.
//Note that just the elements common in organic reactions are present.
var symbolMass = map[string]float64{
	"H":  1.008,
	"C":  12.01,
	"O":  16.00,
	"N":  14.01,
	"P":  30.97,
	"S":  32.06,
	"F":  18.998,
	"Cl": 35.45,
	"Br": 79.904,
	"I":  126.90,
	"B":  10.81,
	"Si": 28.08,
	"Na": 22.99,
	"K":  39.1,
	"Mg": 24.30,
	"Ca": 40.08,
	"Li": 6.94,
}

//A map for assigning covalent radii to elements
//Values from Cordero et al., 2008 (DOI:10.1039/B801115J)
var symbolCovrad = map[string]float64{
	"H":  0.4, //0.31, set longer on purpose: H can only have one bond so the extra ones get pruned later anyway.
	"C":  0.76, //the sp3 radius
	"O":  0.66,
	"N":  0.71,
	"P":  1.07,
	"S":  1.05,
	"F":  0.57,
	"Cl": 1.02,
	"Br": 1.2,
	"I":  1.39,
	"B":  0.84,
	"Si": 1.11,
	"Na": 1.66,
	"K":  2.03,
	"Mg": 1.41,
	"Ca": 1.76,
	"Li": 1.28,
}

//A map for checking that atoms don't end up with too many bonds after
//perception. A value of 0 means undefined, i.e. that the atom shouldn't
//be checked for max bonds.
var symbolMaxBonds = map[string]int{
	"H":  1, //this is the only one truly important.
	"C":  4,
	"O":  2,
	"N":  0, //undefined
	"P":  0,
	"S":  0,
	"F":  1,
	"Cl": 1,
	"Br": 1,
	"I":  1,
}
