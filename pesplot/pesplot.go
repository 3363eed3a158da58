/*
 * pesplot.go, part of autode.
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

//Package pesplot draws the energy profiles of relaxed scans.
package pesplot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

//Plotter draws 1-D energy profiles to PNG files. It implements the
//pes.Plotter interface.
type Plotter struct {
	width  vg.Length
	height vg.Length
}

//NewPlotter returns a Plotter producing plots of a sensible size.
func NewPlotter() *Plotter {
	return &Plotter{width: 12 * vg.Centimeter, height: 9 * vg.Centimeter}
}

//SetSize sets the width and height of the plots, in centimeters.
func (P *Plotter) SetSize(width, height float64) {
	P.width = vg.Length(width) * vg.Centimeter
	P.height = vg.Length(height) * vg.Centimeter
}

//Plot1D draws relenergies, in kcal/mol, against dists, in Angstrom, as
//a line through the scan points, and saves the result to name.png. The
//two slices must have the same length.
func (P *Plotter) Plot1D(dists, relenergies []float64, name string) error {
	if len(dists) != len(relenergies) {
		return Error{ErrMismatchedData, []string{"Plot1D"}, true}
	}
	if len(dists) == 0 {
		return Error{ErrNoData, []string{"Plot1D"}, true}
	}
	p := plot.New()
	p.Title.Text = name
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = "Distance / A"
	p.Y.Label.Text = "Relative energy / kcal mol⁻¹"
	p.Add(plotter.NewGrid())
	pts := make(plotter.XYs, len(dists))
	for i := range dists {
		pts[i].X = dists[i]
		pts[i].Y = relenergies[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return Error{ErrCantPlot, []string{"plotter.NewLine", "Plot1D"}, true}
	}
	line.Color = color.RGBA{B: 180, A: 255}
	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return Error{ErrCantPlot, []string{"plotter.NewScatter", "Plot1D"}, true}
	}
	scatter.GlyphStyle.Color = color.RGBA{R: 180, A: 255}
	p.Add(line, scatter)
	if err := p.Save(P.width, P.height, name+".png"); err != nil {
		return Error{err.Error(), []string{"plot.Save", "Plot1D"}, true}
	}
	return nil
}

//Errors

//Error is the pesplot implementation of the library-wide error
//interface.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string { return fmt.Sprintf("pesplot error: %s", err.message) }

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
	ErrMismatchedData = "Distances and energies differ in length"
	ErrNoData         = "Nothing to plot"
	ErrCantPlot       = "Couldn't build the plot"
)
