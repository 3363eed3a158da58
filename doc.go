/*
 * doc.go, part of autode.
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

/*Package autode provides molecular structures and the reactive-core
machinery used to prepare transition-state searches: distance-based bond
perception, selection of the atoms around a reaction's active centre, and
stripping of a structure down to that core while keeping the indices of the
forming/breaking bonds consistent across the renumbering.

The scan along a reaction coordinate lives in the pes subpackage, and the
communication with electronic-structure programs in qm. Coordinates are
handled as v3.Matrix (an Nx3 gonum-backed matrix, one atom per row).*/
package autode
