/*
 * pes_test.go, part of autode.
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
	"math"
	"testing"

	autode "github.com/jmgx30/autodE"
	v3 "github.com/jmgx30/autodE/v3"
)

func hydrogenFluoride(Te *testing.T) *autode.Structure {
	atoms := []*autode.Atom{{Symbol: "H"}, {Symbol: "F"}}
	coords, err := v3.NewMatrix([]float64{0, 0, 0, 0, 0, 0.92})
	if err != nil {
		Te.Fatal(err)
	}
	S, err := autode.MakeStructure("hf", atoms, coords, 0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	return S
}

//fakeOpt hands back canned energies, one per call, and a fresh copy of
//the input geometry, recording what it was started from at every step.
type fakeOpt struct {
	energies []float64
	failAt   map[int]bool
	call     int
	dists    []float64
	started  []*v3.Matrix
	returned []*v3.Matrix
}

func (F *fakeOpt) ConstrainedOpt(name string, atoms autode.AtomMultiCharger, coords *v3.Matrix, pair autode.BondPair, dist float64) (*v3.Matrix, float64, error) {
	i := F.call
	F.call++
	F.dists = append(F.dists, dist)
	F.started = append(F.started, coords)
	if F.failAt[i] {
		return nil, 0, Error{"step refused to converge", []string{"ConstrainedOpt"}, false}
	}
	geo := coords.Copy()
	F.returned = append(F.returned, geo)
	return geo, F.energies[i], nil
}

func pt(dist, energy float64) *ScanPoint {
	return &ScanPoint{Dist: dist, Energy: energy, Ok: true}
}

func failed(dist float64) *ScanPoint {
	return &ScanPoint{Dist: dist}
}

func TestRunScanWarmStart(Te *testing.T) {
	S := hydrogenFluoride(Te)
	fake := &fakeOpt{energies: []float64{-100.0, -99.9, -99.8, -99.95}}
	Sc := NewScanner(fake, nil)
	points, err := Sc.Run(S, autode.BondPair{0, 1}, 1.0, 2.5, 4)
	if err != nil {
		Te.Fatal(err)
	}
	if len(points) != 4 {
		Te.Fatalf("expected 4 points, got %d", len(points))
	}
	wantd := []float64{1.0, 1.5, 2.0, 2.5}
	for i, p := range points {
		if math.Abs(p.Dist-wantd[i]) > 1e-10 {
			Te.Errorf("point %d at distance %v, want %v", i, p.Dist, wantd[i])
		}
		if !p.Ok || p.Energy != fake.energies[i] {
			Te.Errorf("point %d: %+v", i, p)
		}
	}
	if fake.started[0] != S.Coords {
		Te.Error("the first step must start from the input geometry")
	}
	for i := 1; i < 4; i++ {
		if fake.started[i] != fake.returned[i-1] {
			Te.Errorf("step %d didn't start from the relaxed geometry of step %d", i, i-1)
		}
	}
}

func TestRunScanFailedStep(Te *testing.T) {
	S := hydrogenFluoride(Te)
	fake := &fakeOpt{
		energies: []float64{-100.0, -99.9, 0, -99.8, -99.95},
		failAt:   map[int]bool{2: true},
	}
	Sc := NewScanner(fake, nil)
	points, err := Sc.Run(S, autode.BondPair{0, 1}, 1.0, 2.5, 5)
	if err != nil {
		Te.Fatal(err)
	}
	if len(points) != 5 {
		Te.Fatalf("a failed step must still give a point: got %d of 5", len(points))
	}
	if points[2].Ok || points[2].Coords != nil {
		Te.Errorf("point 2 should carry no result: %+v", points[2])
	}
	//the step after the failure restarts from the last good geometry
	if fake.started[3] != fake.returned[1] {
		Te.Error("step 3 didn't start from the relaxed geometry of step 1")
	}
	if i, ok := FindPeak(points); !ok || i != 3 {
		Te.Errorf("expected the peak at point 3, got %d (found: %v)", i, ok)
	}
}

func TestRunScanBadInput(Te *testing.T) {
	S := hydrogenFluoride(Te)
	Sc := NewScanner(&fakeOpt{}, nil)
	if _, err := Sc.Run(S, autode.BondPair{0, 1}, 1.0, 2.0, 1); err == nil {
		Te.Error("a 1-step scan should be rejected")
	}
	if _, err := Sc.Run(S, autode.BondPair{0, 5}, 1.0, 2.0, 4); err == nil {
		Te.Error("an out-of-range pair should be rejected")
	}
	if _, err := Sc.Run(nil, autode.BondPair{0, 1}, 1.0, 2.0, 4); err == nil {
		Te.Error("a nil structure should be rejected")
	}
}

func TestFindPeak(Te *testing.T) {
	cases := []struct {
		name   string
		points []*ScanPoint
		peak   int
		found  bool
	}{
		{"single max", []*ScanPoint{pt(1.0, -100.0), pt(1.5, -99.8), pt(2.0, -99.95)}, 1, true},
		{"monotonic up", []*ScanPoint{pt(1.0, -100.0), pt(1.5, -99.9), pt(2.0, -99.8)}, 0, false},
		{"monotonic down", []*ScanPoint{pt(1.0, -99.8), pt(1.5, -99.9), pt(2.0, -100.0)}, 0, false},
		{"high endpoint only", []*ScanPoint{pt(1.0, -99.5), pt(1.5, -99.9), pt(2.0, -100.0)}, 0, false},
		{"two maxima, second higher", []*ScanPoint{pt(1.0, -100.0), pt(1.2, -99.9), pt(1.4, -99.95), pt(1.6, -99.7), pt(1.8, -100.1)}, 3, true},
		{"two maxima, first higher", []*ScanPoint{pt(1.0, -100.0), pt(1.2, -99.7), pt(1.4, -99.95), pt(1.6, -99.9), pt(1.8, -100.1)}, 1, true},
		{"too few valid", []*ScanPoint{pt(1.0, -100.0), failed(1.5), pt(2.0, -99.8)}, 0, false},
		{"peak next to a failed step", []*ScanPoint{pt(1.0, -100.0), failed(1.5), pt(2.0, -99.8), pt(2.5, -99.9)}, 2, true},
	}
	for _, c := range cases {
		i, ok := FindPeak(c.points)
		if ok != c.found || (ok && i != c.peak) {
			Te.Errorf("%s: got peak %d (found: %v), want %d (found: %v)", c.name, i, ok, c.peak, c.found)
		}
	}
}

func TestProfile(Te *testing.T) {
	points := []*ScanPoint{pt(1.0, -100.0), failed(1.5), pt(2.0, -99.9)}
	dists, rel := Profile(points)
	if len(dists) != 2 || len(rel) != 2 {
		Te.Fatalf("expected 2 profile points, got %d", len(dists))
	}
	if dists[0] != 1.0 || dists[1] != 2.0 {
		Te.Errorf("wrong distances: %v", dists)
	}
	if rel[0] != 0 {
		Te.Errorf("the minimum should sit at 0, got %v", rel[0])
	}
	if math.Abs(rel[1]-0.1*Ha2KcalMol) > 1e-9 {
		Te.Errorf("wrong relative energy: %v", rel[1])
	}
}

type fakePlot struct {
	dists []float64
	rel   []float64
	calls int
}

func (F *fakePlot) Plot1D(dists, relenergies []float64, name string) error {
	F.calls++
	F.dists = dists
	F.rel = relenergies
	return nil
}

func TestGuessTS(Te *testing.T) {
	S := hydrogenFluoride(Te)
	fake := &fakeOpt{energies: []float64{-100.0, -99.8, -99.95}}
	plot := &fakePlot{}
	Sc := NewScanner(fake, nil)
	Sc.SetPlotter(plot)
	points, err := Sc.Run(S, autode.BondPair{0, 1}, 1.0, 2.0, 3)
	if err != nil {
		Te.Fatal(err)
	}
	extra := []autode.BondPair{{1, 0}, {0, 1}} //both duplicate the scanned bond
	ts, err := Sc.GuessTS(S, points, autode.BondPair{0, 1}, extra, "substitution")
	if err != nil {
		Te.Fatal(err)
	}
	if ts == nil {
		Te.Fatal("expected a TS guess")
	}
	if plot.calls != 1 || len(plot.dists) != 3 {
		Te.Errorf("the profile wasn't plotted: %d calls, %d points", plot.calls, len(plot.dists))
	}
	if ts.ReactionClass != "substitution" {
		Te.Errorf("wrong reaction class: %q", ts.ReactionClass)
	}
	if len(ts.ActiveBonds) != 1 || ts.ActiveBonds[0] != (autode.BondPair{0, 1}) {
		Te.Errorf("wrong active bonds: %v", ts.ActiveBonds)
	}
	want := points[1].Coords
	for i := 0; i < 2; i++ {
		a, b := ts.Structure.Coords.Vec(i), want.Vec(i)
		for j := 0; j < 3; j++ {
			if a[j] != b[j] {
				Te.Fatalf("TS geometry differs from the peak geometry at atom %d", i)
			}
		}
	}
	if ts.Structure == S || ts.Structure.Coords == S.Coords {
		Te.Error("the TS guess must not share state with the input structure")
	}
}

func TestGuessTSNoPeak(Te *testing.T) {
	S := hydrogenFluoride(Te)
	Sc := NewScanner(&fakeOpt{}, nil)
	points := []*ScanPoint{pt(1.0, -100.0), pt(1.5, -99.9), pt(2.0, -99.8)}
	ts, err := Sc.GuessTS(S, points, autode.BondPair{0, 1}, nil, "")
	if err != nil {
		Te.Fatal(err)
	}
	if ts != nil {
		Te.Errorf("a monotonic profile should give no TS guess, got %+v", ts)
	}
}
