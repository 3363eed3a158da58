/*
 * errors.go, part of autode.
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

package autode

import "fmt"

//Err is the interface for errors that all packages in this library
//implement. The Decorate method adds information to the error as it is
//passed up the calling stack, without changing its type or wrapping it
//around something else. Each call returns the current decoration trail;
//an empty string only queries the trail.
type Err interface {
	Error() string
	Decorate(string) []string
	Critical() bool
}

//Error is the concrete error for the root package. The message constants
//below cover the cases callers are expected to branch on.
type Error struct {
	message  string
	info     string //extra context, often an offending index or file.
	deco     []string
	critical bool
}

func (err Error) Error() string {
	if err.info == "" {
		return fmt.Sprintf("autode error: %s", err.message)
	}
	return fmt.Sprintf("autode error: %s: %s", err.message, err.info)
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

//Message returns the message constant an Error was built from, so callers
//can branch without string-matching the full text.
func (err Error) Message() string { return err.message }

const (
	NoActiveAtoms   = "Structure has no active atoms set"
	NoBondInfo      = "Structure has no bond graph; run AssignBonds first"
	IndexOutOfRange = "Atom index out of range for this structure"
	NilCoordinates  = "Given nil coordinates"
	NilStructure    = "Given nil structure"
	WrongXYZFormat  = "Ill-formatted XYZ file"
	UnknownElement  = "Unknown element symbol"
)

//errDecorate asserts that err implements Err and decorates it with the
//caller's name before returning it. Calling it on any other error is a
//programming mistake, so it panics.
func errDecorate(err error, caller string) error {
	err2 := err.(Err)
	err2.Decorate(caller)
	return err2
}
