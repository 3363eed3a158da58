/*
 * xtb.go, part of autode.
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
//In order to use this part of the library you need the xtb program from
//Prof. Stefan Grimme's group. Please cite the xtb references if you use it.

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

const XTB = "XTB"

//XTBHandle runs calculations with the xtb semiempirical program. xtb is
//the workhorse for relaxed scans here: single steps are cheap enough
//that a full scan stays interactive.
type XTBHandle struct {
	command   string
	inputname string
	nCPU      int
	options   []string
}

//NewXTBHandle initializes and returns an xtb handle with the defaults.
func NewXTBHandle() *XTBHandle {
	O := new(XTBHandle)
	O.SetDefaults()
	return O
}

//XTBHandle methods

//SetnCPU sets the number of CPU to be used.
func (O *XTBHandle) SetnCPU(cpu int) {
	O.nCPU = cpu
}

func (O *XTBHandle) SetName(name string) {
	O.inputname = name
}

func (O *XTBHandle) SetCommand(name string) {
	O.command = name
}

func (O *XTBHandle) SetDefaults() {
	O.command = "xtb"
	O.nCPU = runtime.NumCPU() / 2
}

//BuildInput writes the xyz geometry and the xcontrol file for an xtb
//calculation. Only GFN methods are supported; anything else in Q.Method
//falls back to GFN2.
func (O *XTBHandle) BuildInput(coords *v3.Matrix, atoms autode.AtomMultiCharger, Q *Calc) error {
	if atoms == nil || coords == nil {
		return Error{ErrMissingInput, XTB, O.inputname, "", []string{"BuildInput"}, true}
	}
	if O.inputname == "" {
		O.inputname = "xtbjob"
	}
	err := autode.XYZWrite(O.inputname+".xyz", coords, atoms, "")
	if err != nil {
		return Error{ErrCantInput, XTB, O.inputname, err.Error(), []string{"BuildInput"}, true}
	}
	O.options = make([]string, 0, 6)
	O.options = append(O.options, fmt.Sprintf("-c %d", atoms.Charge()))
	O.options = append(O.options, fmt.Sprintf("-u %d", atoms.Multi()-1))
	if O.nCPU > 1 {
		O.options = append(O.options, fmt.Sprintf("-P %d", O.nCPU))
	}
	if m, ok := map[string]string{"gfn0": "0", "gfn1": "1", "gfn2": "2"}[Q.Method]; ok {
		O.options = append(O.options, "--gfn "+m)
	} else {
		O.options = append(O.options, "--gfn 2") //default method
	}
	if Q.Optimize {
		O.options = append(O.options, "-o normal")
	}
	O.options = append(O.options, Q.Keywords...)

	xcontrol, err := os.Create(O.inputname + ".inp")
	if err != nil {
		return Error{ErrCantInput, XTB, O.inputname, err.Error(), []string{"os.Create", "BuildInput"}, true}
	}
	defer xcontrol.Close()
	if len(Q.DistConstraints) > 0 {
		xcontrol.WriteString("$constrain\n")
		xcontrol.WriteString(" force constant=20\n")
		for _, v := range Q.DistConstraints {
			//xcontrol atom numbering is 1-based
			fmt.Fprintf(xcontrol, " distance: %d, %d, %.4f\n", v.Atoms[0]+1, v.Atoms[1]+1, v.Dist)
		}
		xcontrol.WriteString("$end\n")
	}
	if len(Q.CartConstraints) > 0 {
		fixed := make([]string, len(Q.CartConstraints))
		for i, v := range Q.CartConstraints {
			fixed[i] = strconv.Itoa(v + 1)
		}
		xcontrol.WriteString("$fix\n")
		xcontrol.WriteString(" atoms: " + strings.Join(fixed, ",") + "\n")
		xcontrol.WriteString("$end\n")
	}
	return nil
}

//Run runs the xtb command for a calculation previously set up. It waits
//or not for the result depending on wait. Not waiting works only on
//unix-compatible systems, as it uses sh and nohup.
func (O *XTBHandle) Run(wait bool) error {
	var err error
	com := fmt.Sprintf(" %s.xyz --input %s.inp %s > %s.out 2>&1", O.inputname, O.inputname, strings.Join(O.options, " "), O.inputname)
	if wait {
		command := exec.Command("sh", "-c", O.command+com)
		err = command.Run()
	} else {
		command := exec.Command("sh", "-c", "nohup "+O.command+com)
		err = command.Start()
	}
	if err != nil {
		return Error{ErrNotRunning, XTB, O.inputname, err.Error(), []string{"exec.Run", "Run"}, true}
	}
	os.Remove("xtbrestart")
	return nil
}

//normalTermination checks that an xtb calculation terminated normally.
func (O *XTBHandle) normalTermination() bool {
	return lastLineContaining("normal termination of x", O.inputname+".out") != ""
}

//Energy returns the energy of a previous xtb calculation, in Hartree.
func (O *XTBHandle) Energy() (float64, error) {
	if !O.normalTermination() {
		return 0, Error{ErrAbnormal, XTB, O.inputname, "", []string{"Energy"}, true}
	}
	line := lastLineContaining("TOTAL ENERGY", O.inputname+".out")
	if line == "" {
		return 0, Error{ErrNoEnergy, XTB, O.inputname, "", []string{"Energy"}, true}
	}
	fields := strings.Fields(line)
	if len(fields) < 4 {
		return 0, Error{ErrNoEnergy, XTB, O.inputname, line, []string{"Energy"}, true}
	}
	energy, err := strconv.ParseFloat(fields[3], 64)
	if err != nil {
		return 0, Error{ErrNoEnergy, XTB, O.inputname, err.Error(), []string{"strconv.ParseFloat", "Energy"}, true}
	}
	return energy, nil
}

//OptimizedGeometry reads the latest geometry from an xtb optimization.
//It doesn't actually need the Atomer beyond a sanity check, but takes it
//so XTBHandle fits the Handle interface.
func (O *XTBHandle) OptimizedGeometry(atoms autode.Atomer) (*v3.Matrix, error) {
	if !O.normalTermination() {
		return nil, Error{ErrNoGeometry, XTB, O.inputname, "calculation didn't end normally", []string{"OptimizedGeometry"}, true}
	}
	//xtb always writes the same file name, so parallel runs need
	//separate directories.
	S, err := autode.XYZRead("xtbopt.xyz")
	if err != nil {
		return nil, Error{ErrNoGeometry, XTB, O.inputname, err.Error(), []string{"OptimizedGeometry"}, true}
	}
	if S.Len() != atoms.Len() {
		return nil, Error{ErrNoGeometry, XTB, O.inputname, fmt.Sprintf("%d atoms in output, %d expected", S.Len(), atoms.Len()), []string{"OptimizedGeometry"}, true}
	}
	return S.Coords, nil
}
