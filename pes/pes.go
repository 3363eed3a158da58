/*
 * pes.go, part of autode.
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

package pes

import (
	"fmt"

	autode "github.com/jmgx30/autodE"
	v3 "github.com/jmgx30/autodE/v3"
)

//Ha2KcalMol converts energies from Hartree to kcal/mol.
const Ha2KcalMol = 627.509

//ScanPoint is the outcome of one step of a relaxed scan. When the
//constrained optimisation of a step fails, the point is still recorded,
//with Ok set to false and no geometry or energy.
type ScanPoint struct {
	Dist   float64
	Coords *v3.Matrix
	Energy float64 //Hartree
	Ok     bool
}

//Optimizer relaxes a geometry while keeping the distance between two
//atoms fixed. qm.Driver implements it.
type Optimizer interface {
	ConstrainedOpt(name string, atoms autode.AtomMultiCharger, coords *v3.Matrix, pair autode.BondPair, dist float64) (*v3.Matrix, float64, error)
}

//FrameWriter appends geometries to a trajectory. traj.StampWObj
//implements it.
type FrameWriter interface {
	WNext(coords *v3.Matrix) error
}

//Plotter draws an energy profile. pesplot.Plotter implements it.
type Plotter interface {
	Plot1D(dists, relenergies []float64, name string) error
}

//Scanner runs relaxed scans through an Optimizer. The trajectory writer
//and the plotter are optional; without them the scan just returns its
//points.
type Scanner struct {
	opt  Optimizer
	log  autode.Logger
	traj FrameWriter
	plot Plotter
}

//NewScanner returns a Scanner running its optimisations through opt.
//A nil log disables diagnostics.
func NewScanner(opt Optimizer, log autode.Logger) *Scanner {
	if log == nil {
		log = autode.NopLogger{}
	}
	return &Scanner{opt: opt, log: log}
}

//SetTrajectory makes the scanner record every successfully relaxed
//geometry to w, in scan order.
func (Sc *Scanner) SetTrajectory(w FrameWriter) {
	Sc.traj = w
}

//SetPlotter makes GuessTS draw the energy profile with p.
func (Sc *Scanner) SetPlotter(p Plotter) {
	Sc.plot = p
}

//Run performs a relaxed scan of the distance between the atoms of pair,
//over n evenly spaced values from start to end, both included, in
//Angstrom. Each step starts from the relaxed geometry of the last
//successful step, so consecutive points stay on the same valley of the
//surface. A failed step is logged and recorded as a not-Ok point, and
//the scan goes on; Run always returns exactly n points.
func (Sc *Scanner) Run(S *autode.Structure, pair autode.BondPair, start, end float64, n int) ([]*ScanPoint, error) {
	if S == nil || S.Coords == nil {
		return nil, Error{ErrNilStructure, []string{"Run"}, true}
	}
	if n < 2 {
		return nil, Error{ErrFewSteps, []string{"Run"}, true}
	}
	if pair[0] < 0 || pair[1] < 0 || pair[0] >= S.Len() || pair[1] >= S.Len() || pair[0] == pair[1] {
		return nil, Error{ErrBadPair, []string{"Run"}, true}
	}
	points := make([]*ScanPoint, 0, n)
	coords := S.Coords
	for i, d := range linspace(start, end, n) {
		name := fmt.Sprintf("%s_scan_%d", S.Name(), i)
		geo, energy, err := Sc.opt.ConstrainedOpt(name, S, coords, pair, d)
		if err != nil {
			Sc.log.Warningf("pes: scan step %d (d = %.3f A) failed, skipping its energy: %v", i, d, err)
			points = append(points, &ScanPoint{Dist: d})
			continue
		}
		coords = geo
		points = append(points, &ScanPoint{Dist: d, Coords: geo, Energy: energy, Ok: true})
		if Sc.traj != nil {
			if err := Sc.traj.WNext(geo); err != nil {
				Sc.log.Warningf("pes: couldn't record scan step %d to the trajectory: %v", i, err)
			}
		}
	}
	return points, nil
}

//FindPeak returns the index of the point to take as the transition-state
//guess of a scan: the highest point that is strictly above both of its
//neighbors in the sequence of successful points. The first and last
//successful points never qualify, whatever their energy, as an end-point
//maximum usually means the scan just didn't go far enough. The second
//return is false when the profile has no peak, which happens for
//monotonic curves and for scans with fewer than three successful points.
func FindPeak(points []*ScanPoint) (int, bool) {
	valid := make([]int, 0, len(points))
	for i, p := range points {
		if p.Ok {
			valid = append(valid, i)
		}
	}
	if len(valid) < 3 {
		return 0, false
	}
	emin := points[valid[0]].Energy
	for _, i := range valid {
		if points[i].Energy < emin {
			emin = points[i].Energy
		}
	}
	best := -1
	for k := 1; k < len(valid)-1; k++ {
		i := valid[k]
		e := points[i].Energy
		if e > points[valid[k-1]].Energy && e > points[valid[k+1]].Energy && e > emin {
			if best < 0 || e > points[best].Energy {
				best = i
			}
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

//Profile returns the distances and relative energies, in kcal/mol above
//the lowest successful point, of the successful points of a scan, in
//scan order. This is the curve handed to the plotter.
func Profile(points []*ScanPoint) (dists, relenergies []float64) {
	first := true
	var emin float64
	for _, p := range points {
		if !p.Ok {
			continue
		}
		if first || p.Energy < emin {
			emin = p.Energy
			first = false
		}
	}
	for _, p := range points {
		if !p.Ok {
			continue
		}
		dists = append(dists, p.Dist)
		relenergies = append(relenergies, (p.Energy-emin)*Ha2KcalMol)
	}
	return dists, relenergies
}

func linspace(start, end float64, n int) []float64 {
	v := make([]float64, n)
	step := (end - start) / float64(n-1)
	for i := range v {
		v[i] = start + float64(i)*step
	}
	v[n-1] = end //don't let rounding move the last point
	return v
}

//Errors

//Error is the pes implementation of the library-wide error interface.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string { return fmt.Sprintf("pes error: %s", err.message) }

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
	ErrNilStructure = "Nil structure or coordinates"
	ErrFewSteps     = "A scan needs at least 2 steps"
	ErrBadPair      = "Scanned atom pair out of range"
)
