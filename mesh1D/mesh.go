package mesh1D

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

type AreaFunc func(x float64) (A float64)

// NozzleArea is the converging-diverging nozzle on x in [-1,1], throat at x=0 with area 0.2, ends with area 1
func NozzleArea(x float64) (A float64) {
	A = 0.2 + 0.4*(1+math.Sin(math.Pi*(x-0.5)))
	return
}

func ConstantArea(A0 float64) AreaFunc {
	return func(x float64) float64 { return A0 }
}

/*
Mesh is a uniform 1D grid of CellNumber physical cells.

	X:  face coordinates, length CellNumber+1, cell n spans [X[n], X[n+1]]
	XC: cell center coordinates, length CellNumber
*/
type Mesh struct {
	XMin, XMax, Dx float64
	CellNumber     int
	X, XC          []float64
	Area           AreaFunc
}

func NewMesh(XMin, XMax float64, CellNumber int, area AreaFunc) (m *Mesh, err error) {
	if CellNumber < 1 {
		err = fmt.Errorf("need at least one cell, have %d", CellNumber)
		return
	}
	if XMax <= XMin {
		err = fmt.Errorf("degenerate domain [%8.5f, %8.5f]", XMin, XMax)
		return
	}
	m = &Mesh{
		XMin:       XMin,
		XMax:       XMax,
		Dx:         (XMax - XMin) / float64(CellNumber),
		CellNumber: CellNumber,
		X:          make([]float64, CellNumber+1),
		XC:         make([]float64, CellNumber),
		Area:       area,
	}
	floats.Span(m.X, XMin, XMax)
	for n := range m.XC {
		m.XC[n] = 0.5 * (m.X[n] + m.X[n+1])
	}
	if err = m.Validate(); err != nil {
		m = nil
	}
	return
}

// Validate rejects meshes with non-positive face areas or cell volumes
func (m *Mesh) Validate() (err error) {
	for j, x := range m.X {
		if A := m.Area(x); !(A > 0) {
			return fmt.Errorf("non-positive area %8.5e at face %d, x = %8.5f", A, j, x)
		}
	}
	for n := 0; n < m.CellNumber; n++ {
		if vol := m.GetCellVolume(n); !(vol > 0) {
			return fmt.Errorf("non-positive volume %8.5e in cell %d", vol, n)
		}
	}
	return
}

// GetCellVolume is the trapezoidal volume of cell n between faces xcoords[n] and xcoords[n+1]
func GetCellVolume(n int, dx float64, xcoords []float64, area AreaFunc) (vol float64) {
	vol = 0.5 * (area(xcoords[n]) + area(xcoords[n+1])) * dx
	return
}

func (m *Mesh) GetCellVolume(n int) float64 {
	return GetCellVolume(n, m.Dx, m.X, m.Area)
}

// FaceArea of face j, the face between cells j-1 and j
func (m *Mesh) FaceArea(j int) float64 {
	return m.Area(m.X[j])
}

func (m *Mesh) Print() string {
	return fmt.Sprintf("Mesh: %d cells on [%8.5f, %8.5f], dx = %8.5e", m.CellNumber, m.XMin, m.XMax, m.Dx)
}
