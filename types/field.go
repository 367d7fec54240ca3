package types

import "fmt"

// NumGhost is the number of ghost cells padding each end of a Field
const NumGhost = 2

type Side uint8

const (
	Inflow  Side = iota // Low x end
	Outflow             // High x end
)

/*
Field stores the primitive state (density, velocity, pressure) of every cell, with NumGhost ghost cells at each end:

	[ g1 g0 | 0 1 ... N-1 | g0 g1 ]
	 Inflow     interior    Outflow

Ghost index 0 is always the ghost adjacent to the interior. All offset arithmetic lives here.
*/
type Field struct {
	cells     []Triple
	nInterior int
}

func NewField(nInterior int) (f *Field) {
	if nInterior < 1 {
		panic(fmt.Errorf("field must have at least one interior cell, have %d", nInterior))
	}
	f = &Field{
		cells:     make([]Triple, nInterior+2*NumGhost),
		nInterior: nInterior,
	}
	return
}

// NewFieldFromCells wraps a fully padded slice, ghosts included
func NewFieldFromCells(cells []Triple) (f *Field) {
	if len(cells) < 2*NumGhost+1 {
		panic(fmt.Errorf("padded field needs at least %d cells, have %d", 2*NumGhost+1, len(cells)))
	}
	f = &Field{
		cells:     cells,
		nInterior: len(cells) - 2*NumGhost,
	}
	return
}

func (f *Field) NumInterior() int { return f.nInterior }

// Len is the total cell count including ghost padding
func (f *Field) Len() int { return len(f.cells) }

func (f *Field) Interior(i int) *Triple {
	if i < 0 || i >= f.nInterior {
		panic(fmt.Errorf("interior index %d out of range [0,%d)", i, f.nInterior))
	}
	return &f.cells[i+NumGhost]
}

func (f *Field) Ghost(side Side, i int) *Triple {
	if i < 0 || i >= NumGhost {
		panic(fmt.Errorf("ghost index %d out of range [0,%d)", i, NumGhost))
	}
	switch side {
	case Inflow:
		return &f.cells[NumGhost-1-i]
	case Outflow:
		return &f.cells[NumGhost+f.nInterior+i]
	}
	panic(fmt.Errorf("unknown side %d", side))
}

// Cell addresses a cell relative to the interior: j < 0 reaches inflow ghosts, j >= NumInterior outflow ghosts
func (f *Field) Cell(j int) *Triple {
	if j < -NumGhost || j >= f.nInterior+NumGhost {
		panic(fmt.Errorf("cell index %d out of range [%d,%d)", j, -NumGhost, f.nInterior+NumGhost))
	}
	return &f.cells[j+NumGhost]
}

// Cells exposes the padded storage, ghosts included, in x order
func (f *Field) Cells() []Triple { return f.cells }

func (f *Field) Copy() (fc *Field) {
	fc = &Field{
		cells:     make([]Triple, len(f.cells)),
		nInterior: f.nInterior,
	}
	copy(fc.cells, f.cells)
	return
}

// Column extracts one primitive variable over the interior cells
func (f *Field) Column(n int) (col []float64) {
	col = make([]float64, f.nInterior)
	for i := range col {
		col[i] = f.cells[i+NumGhost][n]
	}
	return
}

func (f *Field) IsFinite() bool {
	for _, c := range f.cells {
		if !c.IsFinite() {
			return false
		}
	}
	return true
}
