/*
 * traj.go, part of autode.
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

//Package traj reads and writes scan trajectories: multi-frame xyz files
//compressed with zstd, one frame per relaxed scan step. The format is a
//plain concatenation of xyz blocks, so a decompressed trajectory opens
//in any molecular viewer.
package traj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"

	autode "github.com/jmgx30/autodE"
	v3 "github.com/jmgx30/autodE/v3"
)

//Write!

type TrajW struct {
	f         *os.File
	h         io.WriteCloser
	atoms     autode.Atomer
	natoms    int
	nframes   int
	filename  string
	writeable bool
}

//NewWriter opens name for writing and returns a trajectory writer for
//geometries of the atoms in atoms. The element symbols of every frame
//come from atoms, so all frames describe the same species.
func NewWriter(name string, atoms autode.Atomer) (*TrajW, error) {
	if atoms == nil {
		return nil, Error{autode.NilStructure, name, []string{"NewWriter"}, true}
	}
	S := new(TrajW)
	var err error
	S.f, err = os.Create(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"os.Create", "NewWriter"}, true}
	}
	S.h, err = zstd.NewWriter(S.f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		S.f.Close()
		return nil, Error{err.Error(), name, []string{"zstd.NewWriter", "NewWriter"}, true}
	}
	S.atoms = atoms
	S.natoms = atoms.Len()
	S.filename = name
	S.writeable = true
	return S, nil
}

func (S *TrajW) Len() int {
	return S.natoms
}

//WNext appends one frame with the coordinates in coord.
func (S *TrajW) WNext(coord *v3.Matrix) error {
	if !S.writeable {
		return Error{TrajUnIniWrite, S.filename, []string{"WNext"}, true}
	}
	if coord == nil {
		return Error{autode.NilCoordinates, S.filename, []string{"WNext"}, true}
	}
	if v := coord.NVecs(); v != S.natoms {
		return Error{fmt.Sprintf("%d coordinates given, but %d expected", v, S.natoms), S.filename, []string{"WNext"}, true}
	}
	fmt.Fprintf(S.h, "%d\nframe %d\n", S.natoms, S.nframes)
	for i := 0; i < S.natoms; i++ {
		c := coord.Vec(i)
		fmt.Fprintf(S.h, "%-3s %12.8f %12.8f %12.8f\n", S.atoms.Atom(i).Symbol, c[0], c[1], c[2])
	}
	S.nframes++
	return nil
}

func (S *TrajW) Close() {
	if S == nil {
		return
	}
	if S.writeable {
		S.h.Close()
		S.f.Close()
	}
	S.writeable = false
}

//Read!

type TrajR struct {
	f        *os.File
	z        *zstd.Decoder
	buf      *bufio.Reader
	natoms   int
	filename string
	readable bool
}

//NewReader opens the trajectory in name for reading. The number of
//atoms isn't known until the first frame is read.
func NewReader(name string) (*TrajR, error) {
	S := new(TrajR)
	var err error
	S.f, err = os.Open(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"os.Open", "NewReader"}, true}
	}
	S.z, err = zstd.NewReader(S.f)
	if err != nil {
		S.f.Close()
		return nil, Error{err.Error(), name, []string{"zstd.NewReader", "NewReader"}, true}
	}
	S.buf = bufio.NewReader(S.z)
	S.filename = name
	S.readable = true
	return S, nil
}

func (S *TrajR) Len() int {
	return S.natoms
}

func (S *TrajR) Readable() bool {
	return S.readable
}

//Next reads the next frame into c, which must hold as many coordinates
//as the frame. A nil c skips the frame. At the end of the trajectory
//Next returns a non-critical error for which IsLastFrame is true.
func (S *TrajR) Next(c *v3.Matrix) error {
	if !S.readable {
		return Error{TrajUnIniRead, S.filename, []string{"Next"}, true}
	}
	line, err := S.buf.ReadString('\n')
	if err == io.EOF && strings.TrimSpace(line) == "" {
		S.Close()
		return lastFrameError{S.filename}
	}
	if err != nil {
		return Error{err.Error(), S.filename, []string{"Next"}, true}
	}
	natoms, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return Error{autode.WrongXYZFormat, S.filename, []string{"Next"}, true}
	}
	S.natoms = natoms
	if _, err := S.buf.ReadString('\n'); err != nil { //comment line
		return Error{err.Error(), S.filename, []string{"Next"}, true}
	}
	if c != nil && c.NVecs() != natoms {
		return Error{fmt.Sprintf("%d coordinates expected, but the frame has %d", c.NVecs(), natoms), S.filename, []string{"Next"}, true}
	}
	for i := 0; i < natoms; i++ {
		line, err := S.buf.ReadString('\n')
		if err != nil && !(err == io.EOF && i == natoms-1) {
			return Error{err.Error(), S.filename, []string{"Next"}, true}
		}
		if c == nil {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 4 {
			return Error{autode.WrongXYZFormat, S.filename, []string{"Next"}, true}
		}
		for j := 0; j < 3; j++ {
			v, err := strconv.ParseFloat(fields[j+1], 64)
			if err != nil {
				return Error{autode.WrongXYZFormat, S.filename, []string{"strconv.ParseFloat", "Next"}, true}
			}
			c.Set(i, j, v)
		}
	}
	return nil
}

func (S *TrajR) Close() {
	if S == nil {
		return
	}
	if S.readable {
		S.z.Close()
		S.f.Close()
	}
	S.readable = false
}

//Errors

//Error is the traj implementation of the library-wide error interface.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("traj file %s error: %s", err.filename, err.message)
}

//Decorate adds the caller dec to the error trail and returns the trail.
func (err Error) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//FileName returns the name of the trajectory the error refers to.
func (err Error) FileName() string { return err.filename }

//Critical reports whether the error is critical.
func (err Error) Critical() bool { return err.critical }

const (
	TrajUnIniWrite = "Trajectory not initialized for writing"
	TrajUnIniRead  = "Trajectory not initialized for reading"
)

//lastFrameError signals the normal end of a trajectory.
type lastFrameError struct {
	filename string
}

func (E lastFrameError) Error() string           { return "EOF" }
func (E lastFrameError) Decorate(string) []string { return nil }
func (E lastFrameError) FileName() string        { return E.filename }
func (E lastFrameError) Critical() bool          { return false }

//IsLastFrame reports whether err just marks the normal end of a
//trajectory, as opposed to an actual reading failure.
func IsLastFrame(err error) bool {
	_, ok := err.(lastFrameError)
	return ok
}
