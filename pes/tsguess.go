/*
 * tsguess.go, part of autode.
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
	"github.com/google/uuid"

	autode "github.com/jmgx30/autodE"
)

//TSGuess is a candidate transition-state geometry taken from the peak
//of a scan, with the bonds that should stay active in a later
//transition-state refinement. The scanned bond is always ActiveBonds[0].
type TSGuess struct {
	Name          string
	ReactionClass string
	Structure     *autode.Structure
	ActiveBonds   []autode.BondPair
}

//GuessTS extracts a transition-state guess from the points of a relaxed
//scan over scanned, run on S. The active bonds of the guess are the
//scanned bond followed by extra, minus duplicates. If the scanner has a
//plotter, the energy profile is drawn first, so a plot comes out even
//when there is no peak; a failed plot is only logged. When the profile
//has no peak GuessTS warns and returns nil, nil, since a peakless scan
//is an ordinary outcome, not a failure.
func (Sc *Scanner) GuessTS(S *autode.Structure, points []*ScanPoint, scanned autode.BondPair, extra []autode.BondPair, reactionClass string) (*TSGuess, error) {
	if S == nil {
		return nil, Error{ErrNilStructure, []string{"GuessTS"}, true}
	}
	name := reactionClass
	if name == "" {
		name = S.Name()
	}
	name = name + "_tsguess_" + uuid.New().String()[:8]
	if Sc.plot != nil {
		dists, relenergies := Profile(points)
		if err := Sc.plot.Plot1D(dists, relenergies, name); err != nil {
			Sc.log.Warningf("pes: couldn't plot the scan profile: %v", err)
		}
	}
	peak, ok := FindPeak(points)
	if !ok {
		Sc.log.Warningf("pes: no peak in the %s scan profile, no TS guess obtained", S.Name())
		return nil, nil
	}
	Sc.log.Infof("pes: TS guess at d = %.3f A, %.1f kcal/mol above the scan minimum", points[peak].Dist, relativeEnergy(points, peak))
	ts := S.Copy()
	ts.SetName(name)
	if err := ts.SetCoords(points[peak].Coords.Copy()); err != nil {
		return nil, errDecorate(err, "GuessTS")
	}
	active := []autode.BondPair{scanned}
	for _, b := range extra {
		if !b.Same(scanned) {
			active = append(active, b)
		}
	}
	return &TSGuess{
		Name:          name,
		ReactionClass: reactionClass,
		Structure:     ts,
		ActiveBonds:   active,
	}, nil
}

func relativeEnergy(points []*ScanPoint, i int) float64 {
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
	return (points[i].Energy - emin) * Ha2KcalMol
}

//errDecorate asserts that err implements autode.Err and decorates it
//with the caller's name. Panics on any other error type.
func errDecorate(err error, caller string) error {
	err2 := err.(autode.Err)
	err2.Decorate(caller)
	return err2
}
