/*
 * files.go, part of autode.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	v3 "github.com/jmgx30/autodE/v3"
)

//XYZRead reads an XYZ file and returns a Structure named after the file.
//Only the first frame of a multi-frame file is read. Charge and
//multiplicity default to 0 and 1; the bond graph is not assigned (see
//AssignBonds).
func XYZRead(xyzname string) (*Structure, error) {
	xyzfile, err := os.Open(xyzname)
	if err != nil {
		return nil, err
	}
	defer xyzfile.Close()
	name := strings.TrimSuffix(filepath.Base(xyzname), ".xyz")
	S, err := xyzReadFrame(bufio.NewReader(xyzfile), name)
	if err != nil {
		return nil, errDecorate(err, "XYZRead: "+xyzname)
	}
	return S, nil
}

func xyzReadFrame(xyz *bufio.Reader, name string) (*Structure, error) {
	line, err := xyz.ReadString('\n')
	if err != nil {
		return nil, Error{message: WrongXYZFormat, info: "missing atom-count line", critical: true}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || natoms <= 0 {
		return nil, Error{message: WrongXYZFormat, info: "bad atom count: " + strings.TrimSpace(line), critical: true}
	}
	if _, err := xyz.ReadString('\n'); err != nil && err != io.EOF { //title line, not used
		return nil, Error{message: WrongXYZFormat, critical: true}
	}
	atoms := make([]*Atom, natoms)
	coords := make([]float64, 0, natoms*3)
	for i := 0; i < natoms; i++ {
		line, err = xyz.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, Error{message: WrongXYZFormat, info: fmt.Sprintf("line %d", i), critical: true}
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return nil, Error{message: WrongXYZFormat, info: fmt.Sprintf("line %d ill formed", i), critical: true}
		}
		at := new(Atom)
		at.Symbol = fields[0]
		at.Mass = symbolMass[at.Symbol]
		atoms[i] = at
		for j := 1; j < 4; j++ {
			c, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, Error{message: WrongXYZFormat, info: fmt.Sprintf("line %d: %s", i, fields[j]), critical: true}
			}
			coords = append(coords, c)
		}
	}
	m, err := v3.NewMatrix(coords)
	if err != nil {
		return nil, errDecorate(err, "xyzReadFrame")
	}
	return MakeStructure(name, atoms, m, 0, 1)
}

//XYZWrite writes coords and the symbols of atoms as an XYZ file named
//xyzname, overwriting it if present. The title line gets the comment.
func XYZWrite(xyzname string, coords *v3.Matrix, atoms Atomer, comment string) error {
	if coords == nil {
		return Error{message: NilCoordinates, deco: []string{"XYZWrite"}, critical: true}
	}
	if coords.NVecs() != atoms.Len() {
		return Error{message: NilCoordinates, info: fmt.Sprintf("%d coordinates for %d atoms", coords.NVecs(), atoms.Len()), deco: []string{"XYZWrite"}, critical: true}
	}
	out, err := os.Create(xyzname)
	if err != nil {
		return err
	}
	defer out.Close()
	return xyzWriteFrame(out, coords, atoms, comment)
}

func xyzWriteFrame(out io.Writer, coords *v3.Matrix, atoms Atomer, comment string) error {
	if _, err := fmt.Fprintf(out, "%d\n%s\n", atoms.Len(), comment); err != nil {
		return err
	}
	for i := 0; i < atoms.Len(); i++ {
		c := coords.Vec(i)
		_, err := fmt.Fprintf(out, "%-3s %12.8f %12.8f %12.8f\n", atoms.Atom(i).Symbol, c[0], c[1], c[2])
		if err != nil {
			return err
		}
	}
	return nil
}
