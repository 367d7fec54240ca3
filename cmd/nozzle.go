/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/quasi1d/InputParameters"
	"github.com/notargets/quasi1d/TimeIntegrator"
	"github.com/notargets/quasi1d/exact_nozzle"
	"github.com/notargets/quasi1d/mesh1D"
	"github.com/notargets/quasi1d/model_problems/Euler1D"
	"github.com/notargets/quasi1d/recorder"
	"github.com/notargets/quasi1d/solver"
	"github.com/notargets/quasi1d/types"
)

const exampleFile = `
########################################
Title: "Supersonic Nozzle"
CellNumber: 64
OutflowBC: Out # Can be "BackPressure"
BackPressure: 120000
CFL: 0.5
LocalTimeStep: true
MaxIterations: 20000
ConvergenceTol: 1.e-6
HistoryFile: history.csv # .csv or .sqlite3
########################################
`

// NozzleCmd represents the nozzle command
var NozzleCmd = &cobra.Command{
	Use:   "nozzle",
	Short: "Quasi one dimensional nozzle flow marched to steady state",
	Long: `
Solves the quasi one dimensional Euler equations in the converging-diverging nozzle
A(x) = 0.2 + 0.4*(1 + sin(pi*(x-0.5))) on [-1,1] with stagnation inflow conditions:

quasi1d nozzle -I input.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			ip  *InputParameters.InputParametersNozzle
		)
		fmt.Println("nozzle called")
		icFile, _ := cmd.Flags().GetString("inputConditionsFile")
		if ip, err = processNozzleInput(icFile); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			fmt.Printf("Example File:%s\n", exampleFile)
			os.Exit(1)
		}
		ip.Print()
		nr, err := RunNozzle(context.Background(), ip, os.Stdout)
		if err != nil {
			log.WithError(err).Error("Nozzle run failed")
			os.Exit(1)
		}
		if studyFile, _ := cmd.Flags().GetString("study"); len(studyFile) != 0 && nr.Errors != nil {
			if err = AppendStudy(studyFile, ip.Title, ip.CellNumber, *nr.Errors); err != nil {
				panic(err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(NozzleCmd)
	NozzleCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML (.yaml) or INI (.ini) file for input parameters like:\n\t- CFL\n\t- CellNumber\n\t- OutflowBC")
	NozzleCmd.Flags().IntP("k", "k", 0, "Number of cells in model, overrides the input file")
	NozzleCmd.Flags().Float64("CFL", 0, "CFL - increase for speedup, decrease for stability")
	NozzleCmd.Flags().Int("maxIterations", 0, "Maximum number of pseudo time iterations")
	NozzleCmd.Flags().Bool("local", true, "use local time stepping, false uses the global minimum time step")
	NozzleCmd.Flags().String("history", "", "residual history output file, .csv or .sqlite3")
	NozzleCmd.Flags().String("study", "", "append the exact solution error norms to this grid refinement study (.csv), see tools/convOrder")
	for key, flag := range map[string]string{
		"CellNumber":    "k",
		"CFL":           "CFL",
		"MaxIterations": "maxIterations",
		"LocalTimeStep": "local",
		"HistoryFile":   "history",
	} {
		_ = viper.BindPFlag(key, NozzleCmd.Flags().Lookup(flag))
	}
}

// processNozzleInput merges the defaults, the input file and any flag, config file or environment overrides
func processNozzleInput(icFile string) (ip *InputParameters.InputParametersNozzle, err error) {
	var (
		data []byte
	)
	ip = InputParameters.NewInputParametersNozzle()
	if len(icFile) != 0 {
		if data, err = os.ReadFile(icFile); err != nil {
			return nil, err
		}
		switch strings.ToLower(filepath.Ext(icFile)) {
		case ".ini":
			err = ip.ParseINI(data)
		default:
			err = ip.Parse(data)
		}
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", icFile, err)
		}
	}
	if viper.IsSet("CellNumber") {
		ip.CellNumber = viper.GetInt("CellNumber")
	}
	if viper.IsSet("CFL") {
		ip.CFL = viper.GetFloat64("CFL")
	}
	if viper.IsSet("MaxIterations") {
		ip.MaxIterations = viper.GetInt("MaxIterations")
	}
	if viper.IsSet("LocalTimeStep") {
		ip.LocalTimeStep = viper.GetBool("LocalTimeStep")
	}
	if viper.IsSet("HistoryFile") {
		ip.HistoryFile = viper.GetString("HistoryFile")
	}
	if err = ip.Validate(); err != nil {
		return nil, err
	}
	return
}

// NozzleRun is the outcome of RunNozzle, Errors is only set for the supersonic case which has an exact solution
type NozzleRun struct {
	Result solver.Result
	Field  *types.Field
	Model  *Euler1D.Euler
	Errors *exact_nozzle.ErrorNorms
}

func RunNozzle(ctx context.Context, ip *InputParameters.InputParametersNozzle, out io.Writer) (nr *NozzleRun, err error) {
	var (
		mesh    *mesh1D.Mesh
		outflow types.BCFLAG
		rec     recorder.Recorder
		d       *solver.Driver
	)
	if outflow, err = ip.Outflow(); err != nil {
		return
	}
	if mesh, err = mesh1D.NewMesh(ip.XMin, ip.XMax, ip.CellNumber, mesh1D.NozzleArea); err != nil {
		return
	}
	nr = &NozzleRun{
		Model: Euler1D.NewEuler(mesh, ip.Gamma, ip.R, ip.P0, ip.T0, outflow, ip.BackPressure),
		Field: types.NewField(ip.CellNumber),
	}
	nr.Model.InitializeField(nr.Field)
	fmt.Fprintln(out, nr.Model.Print())
	fmt.Fprintln(out, mesh.Print())

	if rec, err = recorder.New(ip.HistoryFile); err != nil {
		return
	}
	defer func() {
		if cerr := rec.Close(); err == nil {
			err = cerr
		}
	}()
	obs := TimeIntegrator.NewLogObserver(log.StandardLogger())
	d, err = solver.NewDriver(ip.SolverConfig(), nr.Model, mesh, nr.Field, ip.LimiterBounds(), obs, rec)
	if err != nil {
		return
	}
	d.Out = out
	if nr.Result, err = d.Run(ctx); err != nil {
		return
	}
	if hits := obs.LimiterHits; hits != [3]int{} {
		log.WithFields(log.Fields{
			"density":  hits[types.Density],
			"velocity": hits[types.Velocity],
			"pressure": hits[types.Pressure],
		}).Warn("Limiter was active during the run")
	}
	if outflow == types.BC_Out {
		var (
			Q  []types.Triple
			en exact_nozzle.ErrorNorms
			nz = exact_nozzle.NewNozzle(ip.Gamma, ip.R, ip.P0, ip.T0, mesh1D.NozzleArea, 0)
		)
		if Q, err = nz.ExactField(mesh.XC); err != nil {
			return
		}
		en = exact_nozzle.DiscretizationErrorNorms(nr.Field, Q)
		nr.Errors = &en
		fmt.Fprintf(out, "Discretization error against the exact isentropic solution, %d cells:\n", mesh.CellNumber)
		fmt.Fprint(out, en.Print())
	}
	return
}

// AppendStudy adds one grid to a refinement study file in the layout read by tools/convOrder
func AppendStudy(path, title string, cellNumber int, en exact_nozzle.ErrorNorms) (err error) {
	var (
		f      *os.File
		fi     os.FileInfo
		header = []string{"title", "cells", "rhoRMS", "uRMS", "pRMS", "rhoMAX", "uMAX", "pMAX"}
	)
	if f, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644); err != nil {
		return
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	w := csv.NewWriter(f)
	if fi, err = f.Stat(); err != nil {
		return
	}
	if fi.Size() == 0 {
		if err = w.Write(header); err != nil {
			return
		}
	}
	rec := []string{title, strconv.Itoa(cellNumber)}
	for _, norm := range []types.Triple{en.L2, en.LInf} {
		for q := 0; q < 3; q++ {
			rec = append(rec, strconv.FormatFloat(norm[q], 'e', -1, 64))
		}
	}
	if err = w.Write(rec); err != nil {
		return
	}
	w.Flush()
	return w.Error()
}
