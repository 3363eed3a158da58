/*
 * config.go, part of autode.
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

//Package config reads the yaml settings file of the autode command.
//Every setting has a default, so a partial file, or none at all, is
//fine.
package config

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

//Scan holds the defaults of a relaxed scan.
type Scan struct {
	Start float64 `yaml:"start"`
	End   float64 `yaml:"end"`
	Steps int     `yaml:"steps"`
}

//Config holds the settings of the autode command.
type Config struct {
	Program    string   `yaml:"program"` //"xtb" or "orca"
	Command    string   `yaml:"command"` //path to the QM program, empty for the program's default
	NCores     int      `yaml:"ncores"`
	Method     string   `yaml:"method"`
	Basis      string   `yaml:"basis"`
	Keywords   []string `yaml:"keywords"`
	Memory     int      `yaml:"memory"` //MB per core
	CoreDepth  int      `yaml:"core_depth"`
	Scan       Scan     `yaml:"scan"`
	Plot       bool     `yaml:"plot"`
	Trajectory string   `yaml:"trajectory"` //file for the scan trajectory, empty disables it
}

//Defaults returns a Config with every setting at its default.
func Defaults() *Config {
	return &Config{
		Program:   "xtb",
		NCores:    runtime.NumCPU() / 2,
		CoreDepth: 3,
		Scan:      Scan{Start: 1.0, End: 2.5, Steps: 10},
		Plot:      true,
	}
}

//Load reads the yaml file in name over the defaults, so settings absent
//from the file keep their default values. An empty name just returns
//the defaults.
func Load(name string) (*Config, error) {
	conf := Defaults()
	if name == "" {
		return conf, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, Error{err.Error(), name, []string{"os.ReadFile", "Load"}, true}
	}
	if err := yaml.Unmarshal(data, conf); err != nil {
		return nil, Error{err.Error(), name, []string{"yaml.Unmarshal", "Load"}, true}
	}
	if conf.Program != "xtb" && conf.Program != "orca" {
		return nil, Error{fmt.Sprintf("unknown program %q", conf.Program), name, []string{"Load"}, true}
	}
	if conf.Scan.Steps < 2 {
		return nil, Error{fmt.Sprintf("a scan needs at least 2 steps, not %d", conf.Scan.Steps), name, []string{"Load"}, true}
	}
	return conf, nil
}

//Errors

//Error is the config implementation of the library-wide error
//interface.
type Error struct {
	message  string
	filename string
	deco     []string
	critical bool
}

func (err Error) Error() string {
	return fmt.Sprintf("config file %s error: %s", err.filename, err.message)
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
