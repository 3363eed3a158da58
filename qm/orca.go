/*
 * orca.go, part of autode.
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

package qm

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	autode "github.com/jmgx30/autodE"
	v3 "github.com/jmgx30/autodE/v3"
)

const ORCA = "ORCA"

//Note that the default method and basis are NOT considered part of the
//API, so they can always change.
type OrcaHandle struct {
	defmethod string
	defbasis  string
	command   string
	inputname string
	nCPU      int
}

//NewOrcaHandle initializes and returns an ORCA handle with the defaults.
func NewOrcaHandle() *OrcaHandle {
	O := new(OrcaHandle)
	O.SetDefaults()
	return O
}

//OrcaHandle methods

//SetnCPU sets the number of CPU to be used.
func (O *OrcaHandle) SetnCPU(cpu int) {
	O.nCPU = cpu
}

func (O *OrcaHandle) SetName(name string) {
	O.inputname = name
}

func (O *OrcaHandle) SetCommand(name string) {
	O.command = name
}

/*SetDefaults sets defaults for an ORCA calculation. Default is
PBE0/def2-SVP, the ORCA command is set to $ORCA_PATH/orca, at least in
unix, and half the available CPUs are used.*/
func (O *OrcaHandle) SetDefaults() {
	O.defmethod = "PBE0"
	O.defbasis = "def2-SVP"
	O.command = os.ExpandEnv("${ORCA_PATH}/orca")
	if O.command == "/orca" { //if ORCA_PATH was not defined
		O.command = "./orca"
	}
	O.nCPU = runtime.NumCPU() / 2
}

//BuildInput builds an input for ORCA from the data in atoms, coords and Q.
func (O *OrcaHandle) BuildInput(coords *v3.Matrix, atoms autode.AtomMultiCharger, Q *Calc) error {
	if atoms == nil || coords == nil {
		return Error{ErrMissingInput, ORCA, O.inputname, "", []string{"BuildInput"}, true}
	}
	if O.inputname == "" {
		O.inputname = "orcajob"
	}
	if Q.Method == "" {
		Q.Method = O.defmethod
	}
	if Q.Basis == "" {
		Q.Basis = O.defbasis
	}
	keywords := []string{Q.Method, Q.Basis}
	if Q.Optimize {
		if atoms.Len() == 1 {
			//an optimisation of a single atom is meaningless and ORCA rejects it
			Q.Optimize = false
		} else {
			keywords = append(keywords, "Opt")
		}
	}
	keywords = append(keywords, Q.Keywords...)

	inp, err := os.Create(O.inputname + ".inp")
	if err != nil {
		return Error{ErrCantInput, ORCA, O.inputname, err.Error(), []string{"os.Create", "BuildInput"}, true}
	}
	defer inp.Close()
	fmt.Fprintf(inp, "! %s\n", strings.Join(keywords, " "))
	if s := buildOrcaDistConstraints(Q.DistConstraints); s != "" {
		inp.WriteString(s)
	}
	if s := buildOrcaCartConstraints(Q.CartConstraints); s != "" {
		inp.WriteString(s)
	}
	if Q.Optimize && atoms.Len() < 33 {
		//small systems converge well within this; it also caps the cost
		//of pathological scan points.
		inp.WriteString("%geom MaxIter 100 end\n")
	}
	if O.nCPU > 1 {
		fmt.Fprintf(inp, "%%pal nprocs %d\nend\n", O.nCPU)
	}
	if Q.Memory > 0 {
		fmt.Fprintf(inp, "%%maxcore %d\n", Q.Memory)
	}
	inp.WriteString("%output\nxyzfile=True\nend\n")
	fmt.Fprintf(inp, "*xyz %d %d\n", atoms.Charge(), atoms.Multi())
	for i := 0; i < atoms.Len(); i++ {
		c := coords.Vec(i)
		fmt.Fprintf(inp, "%-3s %12.8f %12.8f %12.8f\n", atoms.Atom(i).Symbol, c[0], c[1], c[2])
	}
	inp.WriteString("*\n")
	return nil
}

//buildOrcaDistConstraints transforms the distance constraints in the
//calculation settings into an ORCA-formatted %geom block.
func buildOrcaDistConstraints(C []*DistConstraint) string {
	if len(C) == 0 {
		return ""
	}
	constraints := make([]string, 0, len(C)+3)
	constraints = append(constraints, "%geom Constraints\n")
	for _, v := range C {
		constraints = append(constraints, fmt.Sprintf("         {B %d %d %.4f C}\n", v.Atoms[0], v.Atoms[1], v.Dist))
	}
	constraints = append(constraints, "         end\n", "end\n")
	return strings.Join(constraints, "")
}

//buildOrcaCartConstraints does the same for frozen-atom constraints.
func buildOrcaCartConstraints(C []int) string {
	if len(C) == 0 {
		return ""
	}
	constraints := make([]string, 0, len(C)+3)
	constraints = append(constraints, "%geom Constraints\n")
	for _, v := range C {
		constraints = append(constraints, fmt.Sprintf("         {C %d C}\n", v))
	}
	constraints = append(constraints, "         end\n", "end\n")
	return strings.Join(constraints, "")
}

//Run runs the ORCA command for a calculation previously set up. It waits
//or not for the result depending on wait. Not waiting works only on
//unix-compatible systems, as it uses sh and nohup.
func (O *OrcaHandle) Run(wait bool) error {
	var err error
	if wait {
		out, cerr := os.Create(O.inputname + ".out")
		if cerr != nil {
			return Error{ErrNotRunning, ORCA, O.inputname, cerr.Error(), []string{"os.Create", "Run"}, true}
		}
		defer out.Close()
		command := exec.Command(O.command, O.inputname+".inp")
		command.Stdout = out
		err = command.Run()
	} else {
		command := exec.Command("sh", "-c", "nohup "+O.command+fmt.Sprintf(" %s.inp > %s.out &", O.inputname, O.inputname))
		err = command.Start()
	}
	if err != nil {
		return Error{ErrNotRunning, ORCA, O.inputname, err.Error(), []string{"exec.Run", "Run"}, true}
	}
	return nil
}

//normalTermination checks that the calculation actually finished.
func (O *OrcaHandle) normalTermination() bool {
	return lastLineContaining("****ORCA TERMINATED NORMALLY****", O.inputname+".out") != ""
}

//Energy returns the energy of a previous ORCA calculation, in Hartree.
//It returns an error if the calculation didn't terminate properly, even
//when an energy is present in the output.
func (O *OrcaHandle) Energy() (float64, error) {
	if !O.normalTermination() {
		return 0, Error{ErrAbnormal, ORCA, O.inputname, "", []string{"Energy"}, true}
	}
	line := lastLineContaining("FINAL SINGLE POINT ENERGY", O.inputname+".out")
	if line == "" {
		return 0, Error{ErrNoEnergy, ORCA, O.inputname, "", []string{"Energy"}, true}
	}
	fields := strings.Fields(line)
	energy, err := strconv.ParseFloat(fields[len(fields)-1], 64)
	if err != nil {
		return 0, Error{ErrNoEnergy, ORCA, O.inputname, err.Error(), []string{"strconv.ParseFloat", "Energy"}, true}
	}
	return energy, nil
}

//OptimizedGeometry reads the optimized geometry from the xyz file ORCA
//writes alongside the output.
func (O *OrcaHandle) OptimizedGeometry(atoms autode.Atomer) (*v3.Matrix, error) {
	if !O.normalTermination() {
		return nil, Error{ErrNoGeometry, ORCA, O.inputname, "calculation didn't end normally", []string{"OptimizedGeometry"}, true}
	}
	S, err := autode.XYZRead(O.inputname + ".xyz")
	if err != nil {
		return nil, Error{ErrNoGeometry, ORCA, O.inputname, err.Error(), []string{"OptimizedGeometry"}, true}
	}
	if S.Len() != atoms.Len() {
		return nil, Error{ErrNoGeometry, ORCA, O.inputname, fmt.Sprintf("%d atoms in output, %d expected", S.Len(), atoms.Len()), []string{"OptimizedGeometry"}, true}
	}
	return S.Coords, nil
}
