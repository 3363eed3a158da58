/*
 * v3.go, part of autode.
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

package v3

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

//Matrix is a set of row vectors in 3D space, i.e. an Nx3 matrix.
//Within the package it is understood that a "vector" is a row of
//the matrix, the cartesian coordinates of one point.
type Matrix struct {
	*mat.Dense
}

//Matrix2Dense returns the gonum Dense matrix underlying A.
func Matrix2Dense(A *Matrix) *mat.Dense {
	return A.Dense
}

//Dense2Matrix wraps a gonum Dense matrix into a Matrix. It panics
//if the Dense does not have exactly 3 columns.
func Dense2Matrix(A *mat.Dense) *Matrix {
	_, c := A.Dims()
	if c != 3 {
		panic(fmt.Sprintf("v3: Dense with %d columns cannot be a Matrix", c))
	}
	return &Matrix{A}
}

//NewMatrix creates and returns a Matrix with 3 columns from data.
func NewMatrix(data []float64) (*Matrix, error) {
	const cols int = 3
	l := len(data)
	rows := l / cols
	if l%cols != 0 {
		return nil, Error{fmt.Sprintf("Input slice length %d not divisible by %d", l, cols), []string{"NewMatrix"}, true}
	}
	return &Matrix{mat.NewDense(rows, cols, data)}, nil
}

//Zeros returns a zero-filled Matrix with vecs vectors.
func Zeros(vecs int) *Matrix {
	return &Matrix{mat.NewDense(vecs, 3, nil)}
}

//NVecs returns the number of vectors in the matrix.
func (F *Matrix) NVecs() int {
	r, _ := F.Dims()
	return r
}

//VecView returns a view of the ith vector of the matrix. Changes
//in the view are reflected in F.
func (F *Matrix) VecView(i int) *Matrix {
	r := F.Dense.Slice(i, i+1, 0, 3).(*mat.Dense)
	return &Matrix{r}
}

//Vec returns the ith vector as a newly allocated slice.
func (F *Matrix) Vec(i int) []float64 {
	v := make([]float64, 3)
	copy(v, F.RawRowView(i))
	return v
}

//Copy returns a newly allocated copy of F.
func (F *Matrix) Copy() *Matrix {
	r := new(mat.Dense)
	r.CloneFrom(F.Dense)
	return &Matrix{r}
}

//SetVecs copies the vectors of A into F at the positions given by
//clist, in order. Panics if clist and A don't match or a position
//is out of range, as misuse here is a programming error.
func (F *Matrix) SetVecs(A *Matrix, clist []int) {
	if A.NVecs() != len(clist) {
		panic(fmt.Sprintf("v3: %d positions given for %d vectors", len(clist), A.NVecs()))
	}
	for k, j := range clist {
		if j >= F.NVecs() {
			panic(fmt.Sprintf("v3: position %d out of range", j))
		}
		F.SetRow(j, A.RawRowView(k))
	}
}

//SomeVecs puts in F a copy of the vectors of A with the indexes in
//clist, in the given order. F must have len(clist) vectors.
func (F *Matrix) SomeVecs(A *Matrix, clist []int) {
	if len(clist) != F.NVecs() {
		panic(fmt.Sprintf("v3: receiver has %d vectors but %d indexes given", F.NVecs(), len(clist)))
	}
	for k, j := range clist {
		F.SetRow(k, A.RawRowView(j))
	}
}

//VecDistance returns the euclidean distance between the ith and
//jth vectors of the matrix.
func (F *Matrix) VecDistance(i, j int) float64 {
	a := F.RawRowView(i)
	b := F.RawRowView(j)
	var d2 float64
	for k := 0; k < 3; k++ {
		d := a[k] - b[k]
		d2 += d * d
	}
	return math.Sqrt(d2)
}

//Errors

//Error is the v3 implementation of the library-wide error interface.
type Error struct {
	message  string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("v3 error: %s", err.message)
}

//Decorate adds the caller deco to the error trail and returns the trail.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//Critical reports whether the error is critical.
func (err Error) Critical() bool { return err.critical }
