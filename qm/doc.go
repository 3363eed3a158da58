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

//Package qm implements communication with electronic-structure programs,
//in such a way that the calculation settings are as separated as possible
//from the choice of program performing the calculation. The relaxed-scan
//code upstream only ever sees the Driver, which turns a geometry plus a
//distance constraint into a relaxed geometry and an energy.
package qm
