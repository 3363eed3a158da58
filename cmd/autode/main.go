/*
 * main.go, part of autode.
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

//The autode command extracts reactive cores from molecular structures
//and finds transition-state guesses with relaxed scans.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	autode "github.com/jmgx30/autodE"
	"github.com/jmgx30/autodE/config"
	"github.com/jmgx30/autodE/pes"
	"github.com/jmgx30/autodE/pesplot"
	"github.com/jmgx30/autodE/qm"
	"github.com/jmgx30/autodE/traj"
)

var rootCmd = &cobra.Command{
	Use:   "autode",
	Short: "automated transition-state guess discovery",
	Long: `autode reads molecular geometries in xyz format and runs the two halves
of an automated transition-state search: cutting a structure down to the
core atoms around its reacting bonds, and scanning a bond distance to
locate the energy maximum along a reaction coordinate.`,
	SilenceUsage: true,
}

var (
	cfgFile  string
	forming  string
	breaking string
	depth    int
	outFile  string
	bond     string
	start    float64
	end      float64
	steps    int
	charge   int
	mult     int
	class    string
)

var stripCmd = &cobra.Command{
	Use:   "strip molecule.xyz",
	Short: "extract the reactive core of a structure",
	Args:  cobra.ExactArgs(1),
	RunE:  runStrip,
}

var scanCmd = &cobra.Command{
	Use:   "scan molecule.xyz",
	Short: "run a relaxed scan over a bond and extract a TS guess",
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "yaml settings file")

	stripCmd.Flags().StringVar(&forming, "forming", "", "bonds formed in the reaction, as i-j[,k-l...]")
	stripCmd.Flags().StringVar(&breaking, "breaking", "", "bonds broken in the reaction, as i-j[,k-l...]")
	stripCmd.Flags().IntVar(&depth, "depth", -1, "bonds to keep around the active atoms (default from the settings)")
	stripCmd.Flags().StringVar(&outFile, "out", "", "file for the core fragment (default NAME_core.xyz)")

	scanCmd.Flags().StringVar(&bond, "bond", "", "bond to scan, as i-j (required)")
	scanCmd.MarkFlagRequired("bond")
	scanCmd.Flags().Float64Var(&start, "start", 0, "first scanned distance, in Angstrom")
	scanCmd.Flags().Float64Var(&end, "end", 0, "last scanned distance, in Angstrom")
	scanCmd.Flags().IntVar(&steps, "steps", 0, "number of scan steps")
	scanCmd.Flags().IntVar(&charge, "charge", 0, "total charge")
	scanCmd.Flags().IntVar(&mult, "mult", 1, "spin multiplicity")
	scanCmd.Flags().StringVar(&class, "class", "", "reaction class label for the TS guess")

	rootCmd.AddCommand(stripCmd, scanCmd)
}

//parsePair reads an atom pair given as "i-j", with 0-based indexes.
func parsePair(s string) (autode.BondPair, error) {
	var pair autode.BondPair
	fields := strings.SplitN(s, "-", 2)
	if len(fields) != 2 {
		return pair, fmt.Errorf("%q is not an atom pair: want i-j", s)
	}
	for k, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return pair, fmt.Errorf("%q is not an atom pair: %v", s, err)
		}
		pair[k] = v
	}
	if pair[0] == pair[1] {
		return pair, fmt.Errorf("%q: an atom can't pair with itself", s)
	}
	return pair, nil
}

func parsePairs(s string) ([]autode.BondPair, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var pairs []autode.BondPair
	for _, one := range strings.Split(s, ",") {
		p, err := parsePair(one)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	return pairs, nil
}

func readMolecule(name string) (*autode.Structure, error) {
	S, err := autode.XYZRead(name)
	if err != nil {
		return nil, err
	}
	if err := autode.AssignBonds(S); err != nil {
		return nil, err
	}
	return S, nil
}

func runStrip(cmd *cobra.Command, args []string) error {
	conf, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if depth < 0 {
		depth = conf.CoreDepth
	}
	fbonds, err := parsePairs(forming)
	if err != nil {
		return err
	}
	bbonds, err := parsePairs(breaking)
	if err != nil {
		return err
	}
	if len(fbonds)+len(bbonds) == 0 {
		return fmt.Errorf("no reaction given: use --forming and/or --breaking")
	}
	S, err := readMolecule(args[0])
	if err != nil {
		return err
	}
	rearr := autode.MakeBondRearrangement(fbonds, bbonds)
	if err := rearr.CheckIndexes(S.Len()); err != nil {
		return err
	}
	S.ActiveAtoms = rearr.ActiveAtoms()
	core, err := S.CoreAtoms(depth)
	if err != nil {
		return err
	}
	frag, fragRearr, err := S.StripCore(core, rearr)
	if err != nil {
		return err
	}
	klog.Infof("core of %s: %d of %d atoms at depth %d", S.Name(), frag.Len(), S.Len(), depth)
	if outFile == "" {
		outFile = S.Name() + "_core.xyz"
	}
	comment := fmt.Sprintf("core of %s, forming %v breaking %v", S.Name(), fragRearr.FBonds, fragRearr.BBonds)
	if err := autode.XYZWrite(outFile, frag.Coords, frag, comment); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d atoms)\n", outFile, frag.Len())
	return nil
}

func runScan(cmd *cobra.Command, args []string) error {
	conf, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("start") {
		start = conf.Scan.Start
	}
	if !cmd.Flags().Changed("end") {
		end = conf.Scan.End
	}
	if !cmd.Flags().Changed("steps") {
		steps = conf.Scan.Steps
	}
	pair, err := parsePair(bond)
	if err != nil {
		return err
	}
	S, err := readMolecule(args[0])
	if err != nil {
		return err
	}
	S.SetCharge(charge)
	S.SetMulti(mult)
	S.ActiveAtoms = []int{pair[0], pair[1]}

	var h qm.Handle
	switch conf.Program {
	case "orca":
		o := qm.NewOrcaHandle()
		o.SetnCPU(conf.NCores)
		if conf.Command != "" {
			o.SetCommand(conf.Command)
		}
		h = o
	default:
		x := qm.NewXTBHandle()
		x.SetnCPU(conf.NCores)
		if conf.Command != "" {
			x.SetCommand(conf.Command)
		}
		h = x
	}
	calc := qm.Calc{
		Method:   conf.Method,
		Basis:    conf.Basis,
		Keywords: conf.Keywords,
		Memory:   conf.Memory,
	}
	log := autode.KLogger{}
	driver := qm.NewDriver(h, calc, log)
	scanner := pes.NewScanner(driver, log)
	if conf.Plot {
		scanner.SetPlotter(pesplot.NewPlotter())
	}
	if conf.Trajectory != "" {
		w, err := traj.NewWriter(conf.Trajectory, S)
		if err != nil {
			return err
		}
		defer w.Close()
		scanner.SetTrajectory(w)
	}

	klog.Infof("scanning d(%d-%d) of %s from %.2f to %.2f A in %d steps with %s",
		pair[0], pair[1], S.Name(), start, end, steps, conf.Program)
	points, err := scanner.Run(S, pair, start, end, steps)
	if err != nil {
		return err
	}
	ts, err := scanner.GuessTS(S, points, pair, nil, class)
	if err != nil {
		return err
	}
	if ts == nil {
		fmt.Println("no peak in the scan profile: no TS guess")
		return nil
	}
	name := ts.Name + ".xyz"
	if err := autode.XYZWrite(name, ts.Structure.Coords, ts.Structure, "TS guess from a scan of "+S.Name()); err != nil {
		return err
	}
	fmt.Printf("wrote TS guess %s (active bonds %v)\n", name, ts.ActiveBonds)
	return nil
}

func main() {
	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "2")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})
	defer klog.Flush()
	if err := rootCmd.Execute(); err != nil {
		klog.Flush()
		os.Exit(1)
	}
}
