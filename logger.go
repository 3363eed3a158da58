/*
 * logger.go, part of autode.
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

import "github.com/plan-systems/klog"

//KLogger implements Logger on top of klog, the logging used by the CLI.
type KLogger struct{}

func (KLogger) Infof(format string, args ...interface{}) {
	klog.Infof(format, args...)
}

func (KLogger) Warningf(format string, args ...interface{}) {
	klog.Warningf(format, args...)
}

//NopLogger discards everything. Useful for tests and for callers that
//don't care about diagnostics.
type NopLogger struct{}

func (NopLogger) Infof(format string, args ...interface{})    {}
func (NopLogger) Warningf(format string, args ...interface{}) {}
