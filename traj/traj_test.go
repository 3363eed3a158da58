/*
 * traj_test.go, part of autode.
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

package traj

import (
	"math"
	"path/filepath"
	"testing"

	autode "github.com/jmgx30/autodE"
	v3 "github.com/jmgx30/autodE/v3"
)

func TestTrajRoundTrip(Te *testing.T) {
	atoms := []*autode.Atom{{Symbol: "O"}, {Symbol: "H"}, {Symbol: "H"}}
	base, err := v3.NewMatrix([]float64{
		0.0, 0.0, 0.117,
		0.0, 0.757, -0.469,
		0.0, -0.757, -0.469,
	})
	if err != nil {
		Te.Fatal(err)
	}
	S, err := autode.MakeStructure("water", atoms, base, 0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "scan.xyz.zst")
	w, err := NewWriter(name, S)
	if err != nil {
		Te.Fatal(err)
	}
	const nframes = 3
	for fr := 0; fr < nframes; fr++ {
		frame := base.Copy()
		for i := 0; i < 3; i++ {
			frame.Set(i, 2, base.At(i, 2)+0.1*float64(fr))
		}
		if err := w.WNext(frame); err != nil {
			Te.Fatal(err)
		}
	}
	w.Close()
	if err := w.WNext(base); err == nil {
		Te.Error("writing to a closed trajectory should fail")
	}

	r, err := NewReader(name)
	if err != nil {
		Te.Fatal(err)
	}
	defer r.Close()
	got := v3.Zeros(3)
	for fr := 0; fr < nframes; fr++ {
		if err := r.Next(got); err != nil {
			Te.Fatalf("frame %d: %v", fr, err)
		}
		for i := 0; i < 3; i++ {
			want := base.At(i, 2) + 0.1*float64(fr)
			if math.Abs(got.At(i, 2)-want) > 1e-6 {
				Te.Errorf("frame %d atom %d: z = %v, want %v", fr, i, got.At(i, 2), want)
			}
		}
	}
	err = r.Next(got)
	if err == nil {
		Te.Fatal("expected the end of the trajectory")
	}
	if !IsLastFrame(err) {
		Te.Errorf("the end of the trajectory should not be a real error: %v", err)
	}
}

func TestTrajWrongSize(Te *testing.T) {
	atoms := []*autode.Atom{{Symbol: "H"}, {Symbol: "H"}}
	coords := v3.Zeros(2)
	S, err := autode.MakeStructure("h2", atoms, coords, 0, 1)
	if err != nil {
		Te.Fatal(err)
	}
	name := filepath.Join(Te.TempDir(), "h2.xyz.zst")
	w, err := NewWriter(name, S)
	if err != nil {
		Te.Fatal(err)
	}
	defer w.Close()
	if err := w.WNext(v3.Zeros(3)); err == nil {
		Te.Error("a frame with the wrong number of atoms should be rejected")
	}
	if err := w.WNext(nil); err == nil {
		Te.Error("a nil frame should be rejected")
	}
}
