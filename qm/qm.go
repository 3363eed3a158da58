/*
 * qm.go, part of autode.
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
	"bufio"
	"fmt"
	"os"
	"strings"

	autode "github.com/jmgx30/autodE"
	v3 "github.com/jmgx30/autodE/v3"
)

//Handle allows to set up and run QM calculations using different programs.
//Implementations write and read files in the current working directory;
//running several calculations with the same name in the same directory at
//once will step on each other's files.
type Handle interface {

	//SetName sets the name of the job, used for the input and output
	//files. The extensions depend on the program.
	SetName(name string)

	//BuildInput builds an input file for the QM program from the
	//geometry in coords, the species data in atoms and the settings
	//in Q. It must not modify coords.
	BuildInput(coords *v3.Matrix, atoms autode.AtomMultiCharger, Q *Calc) error

	//Run runs the QM program on a previously built input. It waits for
	//the result or not depending on wait.
	Run(wait bool) error

	//Energy returns the last energy of the calculation, in Hartree, by
	//parsing the program's output file.
	Energy() (float64, error)

	//OptimizedGeometry reads the optimized geometry from the
	//calculation output.
	OptimizedGeometry(atoms autode.Atomer) (*v3.Matrix, error)
}

//DistConstraint is an equality constraint on the distance between two
//atoms during an optimisation.
type DistConstraint struct {
	Atoms autode.BondPair
	Dist  float64
}

//Calc holds the settings of one QM calculation, independently of the
//program that will run it.
type Calc struct {
	Method          string
	Basis           string
	Keywords        []string //extra program keywords, appended verbatim
	Optimize        bool
	DistConstraints []*DistConstraint
	CartConstraints []int //atom indices to freeze
	Memory          int   //max memory per core, in MB
}

//Driver adapts a Handle to the one capability the scan code consumes:
//relax a geometry under a distance constraint and report the result.
//The Calc given at construction acts as a template; each call works on
//its own copy, so a Driver can be reused across scan steps.
type Driver struct {
	handle Handle
	calc   Calc
	log    autode.Logger
}

//NewDriver returns a Driver running calculations through h with the
//settings in calc. A nil log disables diagnostics.
func NewDriver(h Handle, calc Calc, log autode.Logger) *Driver {
	if log == nil {
		log = autode.NopLogger{}
	}
	return &Driver{handle: h, calc: calc, log: log}
}

//ConstrainedOpt relaxes coords with the distance between the atoms of
//pair constrained to dist, and returns the relaxed geometry and its
//energy in Hartree. The input coordinates are not modified. A failed or
//non-converged calculation comes back as an error; callers treat that as
//"no result for this point", not as a reason to stop scanning.
func (D *Driver) ConstrainedOpt(name string, atoms autode.AtomMultiCharger, coords *v3.Matrix, pair autode.BondPair, dist float64) (*v3.Matrix, float64, error) {
	Q := D.calc
	Q.Optimize = true
	cons := make([]*DistConstraint, 0, len(D.calc.DistConstraints)+1)
	cons = append(cons, &DistConstraint{Atoms: pair, Dist: dist})
	cons = append(cons, D.calc.DistConstraints...)
	Q.DistConstraints = cons
	D.handle.SetName(name)
	D.log.Infof("qm: relaxing %s with d(%d-%d) = %.3f A", name, pair[0], pair[1], dist)
	if err := D.handle.BuildInput(coords, atoms, &Q); err != nil {
		return nil, 0, errDecorate(err, "ConstrainedOpt")
	}
	if err := D.handle.Run(true); err != nil {
		return nil, 0, errDecorate(err, "ConstrainedOpt")
	}
	geo, err := D.handle.OptimizedGeometry(atoms)
	if err != nil {
		return nil, 0, errDecorate(err, "ConstrainedOpt")
	}
	energy, err := D.handle.Energy()
	if err != nil {
		return nil, 0, errDecorate(err, "ConstrainedOpt")
	}
	return geo, energy, nil
}

//lastLineContaining returns the last line of the file that contains str,
//or an empty string if there is none or the file cannot be read. QM
//programs append their final results, so the last occurrence is the one
//that matters.
func lastLineContaining(str, filename string) string {
	f, err := os.Open(filename)
	if err != nil {
		return ""
	}
	defer f.Close()
	found := ""
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if strings.Contains(scanner.Text(), str) {
			found = scanner.Text()
		}
	}
	return found
}

//Errors

//Error is the qm implementation of the library-wide error interface.
type Error struct {
	message   string
	program   string
	inputname string
	extra     string
	deco      []string
	critical  bool
}

func (err Error) Error() string {
	if err.extra == "" {
		return fmt.Sprintf("qm error in %s calculation %s: %s", err.program, err.inputname, err.message)
	}
	return fmt.Sprintf("qm error in %s calculation %s: %s (%s)", err.program, err.inputname, err.message, err.extra)
}

//Decorate adds the caller dec to the error trail and returns the trail.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical reports whether the error is critical.
func (err Error) Critical() bool { return err.critical }

const (
	ErrMissingInput = "Missing species data or coordinates"
	ErrCantInput    = "Can't build the input file"
	ErrNotRunning   = "Couldn't run the QM program"
	ErrNoEnergy     = "No energy in the output"
	ErrNoGeometry   = "No optimized geometry in the output"
	ErrAbnormal     = "Calculation didn't terminate normally"
)

//errDecorate asserts that err implements autode.Err and decorates it
//with the caller's name. Panics on any other error type.
func errDecorate(err error, caller string) error {
	err2 := err.(autode.Err)
	err2.Decorate(caller)
	return err2
}
