package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
)

var (
	csvFile string
)

/*
Reads a grid refinement study written by "quasi1d nozzle --study" and prints the observed order of accuracy
between successive grids:

	p = ln(e_coarse/e_fine) / ln(N_fine/N_coarse)
*/
func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	f, err := os.Open(csvFile)
	if err != nil {
		panic(err)
	}
	defer f.Close()
	studies, err := readCSV(f)
	if err != nil {
		panic(err)
	}
	titles := make([]string, 0, len(studies))
	for title := range studies {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	for _, title := range titles {
		cs := studies[title]
		fmt.Printf("Title = %s\n", cs.title)
		fmt.Printf("%8s%12s%12s%12s%12s%12s%12s\n", "cells", "rhoRMS", "uRMS", "pRMS", "rhoMAX", "uMAX", "pMAX")
		for i := range cs.numCells {
			fmt.Printf("%8d", cs.numCells[i])
			for _, e := range cs.errors[i] {
				fmt.Printf("%12.4e", e)
			}
			fmt.Printf("\n")
		}
		fmt.Printf("Observed order between successive grids\n")
		for i, p := range cs.ObservedOrder() {
			fmt.Printf("%4d ->%4d", cs.numCells[i], cs.numCells[i+1])
			for _, pp := range p {
				fmt.Printf("%12.4f", pp)
			}
			fmt.Printf("\n")
		}
	}
}

// ConvergenceStudy holds the error norms of one case on a sequence of grids
type ConvergenceStudy struct {
	title    string
	numCells []int
	errors   [][6]float64 // rhoRMS, uRMS, pRMS, rhoMAX, uMAX, pMAX
}

func NewConvergenceStudy(title string) *ConvergenceStudy {
	return &ConvergenceStudy{
		title: title,
	}
}

func (cs *ConvergenceStudy) Add(numCells int, errors [6]float64) {
	cs.numCells = append(cs.numCells, numCells)
	cs.errors = append(cs.errors, errors)
}

// Sort orders the grids from coarse to fine
func (cs *ConvergenceStudy) Sort() {
	idx := make([]int, len(cs.numCells))
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(i, j int) bool { return cs.numCells[idx[i]] < cs.numCells[idx[j]] })
	numCells, errors := make([]int, len(idx)), make([][6]float64, len(idx))
	for i, k := range idx {
		numCells[i], errors[i] = cs.numCells[k], cs.errors[k]
	}
	cs.numCells, cs.errors = numCells, errors
}

// ObservedOrder returns the order of accuracy for each pair of successive grids, one value per error norm
func (cs *ConvergenceStudy) ObservedOrder() (p [][6]float64) {
	for i := 0; i+1 < len(cs.numCells); i++ {
		var (
			pp = [6]float64{}
			r  = float64(cs.numCells[i+1]) / float64(cs.numCells[i])
		)
		for n := 0; n < 6; n++ {
			pp[n] = math.Log(cs.errors[i][n]/cs.errors[i+1][n]) / math.Log(r)
		}
		p = append(p, pp)
	}
	return
}

func readCSV(rdr io.Reader) (studies map[string]*ConvergenceStudy, err error) {
	var (
		records [][]string
		ok      bool
		cs      *ConvergenceStudy
	)
	studies = make(map[string]*ConvergenceStudy)
	r := csv.NewReader(bufio.NewReader(rdr))
	if records, err = r.ReadAll(); err != nil {
		return
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		if len(rec) != 8 {
			return nil, fmt.Errorf("line %d: expected 8 fields, got %d", i+1, len(rec))
		}
		title, ncellstxt := rec[0], rec[1]
		var (
			ncells int
			errs   [6]float64
		)
		if ncells, err = strconv.Atoi(ncellstxt); err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		for n := 0; n < 6; n++ {
			if errs[n], err = strconv.ParseFloat(rec[n+2], 64); err != nil {
				return nil, fmt.Errorf("line %d: %w", i+1, err)
			}
		}
		if cs, ok = studies[title]; !ok {
			cs = NewConvergenceStudy(title)
			studies[title] = cs
		}
		cs.Add(ncells, errs)
	}
	for _, cs := range studies {
		cs.Sort()
	}
	return
}
