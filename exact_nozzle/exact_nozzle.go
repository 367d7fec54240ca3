package exact_nozzle

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/quasi1d/mesh1D"
	"github.com/notargets/quasi1d/types"
)

/*
Nozzle is the exact isentropic solution of a converging-diverging nozzle with a sonic throat. Upstream of the
throat the flow is on the subsonic branch of the area-Mach relation, downstream on the supersonic branch.
*/
type Nozzle struct {
	Gamma, R, P0, T0 float64
	Area             mesh1D.AreaFunc
	XThroat, AThroat float64
}

func NewNozzle(Gamma, R, P0, T0 float64, area mesh1D.AreaFunc, XThroat float64) *Nozzle {
	return &Nozzle{
		Gamma:   Gamma,
		R:       R,
		P0:      P0,
		T0:      T0,
		Area:    area,
		XThroat: XThroat,
		AThroat: area(XThroat),
	}
}

// areaMachFunc is the residual of the area-Mach relation at Mach M for area ratio A/A*
func areaMachFunc(M, gamma, AR float64) (y float64) {
	var (
		gp1, gm1 = gamma + 1, gamma - 1
		psi      = (2 / gp1) * (1 + 0.5*gm1*M*M)
	)
	y = math.Pow(psi, gp1/gm1)/(M*M) - AR*AR
	return
}

// MachFromArea solves the area-Mach relation on the requested branch by bisection
func MachFromArea(AR, gamma float64, supersonic bool) (M float64, err error) {
	var (
		tol      = 1.e-12
		lo, hi   float64
		maxIters = 200
	)
	if AR < 1 {
		err = fmt.Errorf("area ratio %8.5f is below the sonic area", AR)
		return
	}
	if AR-1 < tol {
		return 1, nil
	}
	if supersonic {
		lo, hi = 1, 100
	} else {
		lo, hi = 1.e-8, 1
	}
	// f decreases on the subsonic branch and increases on the supersonic branch, both are zero at the root
	fLo := areaMachFunc(lo, gamma, AR)
	for i := 0; i < maxIters; i++ {
		M = 0.5 * (lo + hi)
		fM := areaMachFunc(M, gamma, AR)
		if math.Abs(hi-lo) < tol*M {
			return
		}
		if (fM > 0) == (fLo > 0) {
			lo, fLo = M, fM
		} else {
			hi = M
		}
	}
	return
}

func (nz *Nozzle) State(x float64) (q types.Triple, err error) {
	var (
		M   float64
		psi float64
	)
	if M, err = MachFromArea(nz.Area(x)/nz.AThroat, nz.Gamma, x > nz.XThroat); err != nil {
		return
	}
	psi = 1 + 0.5*(nz.Gamma-1)*M*M
	T := nz.T0 / psi
	p := nz.P0 / math.Pow(psi, nz.Gamma/(nz.Gamma-1))
	q = types.Triple{p / (nz.R * T), M * math.Sqrt(nz.Gamma*nz.R*T), p}
	return
}

// ExactField evaluates the exact solution at the given cell centers
func (nz *Nozzle) ExactField(xc []float64) (Q []types.Triple, err error) {
	Q = make([]types.Triple, len(xc))
	for n, x := range xc {
		if Q[n], err = nz.State(x); err != nil {
			return nil, err
		}
	}
	return
}

// ErrorNorms holds L1, L2 and Linf discretization error norms, one entry per primitive variable
type ErrorNorms struct {
	L1, L2, LInf types.Triple
}

// DiscretizationErrorNorms compares the interior of the field against the exact solution
func DiscretizationErrorNorms(f *types.Field, exact []types.Triple) (en ErrorNorms) {
	var (
		N = f.NumInterior()
	)
	if len(exact) != N {
		panic(fmt.Errorf("exact solution has %d cells, field has %d", len(exact), N))
	}
	diff := make([]float64, N)
	for q := 0; q < 3; q++ {
		for n := 0; n < N; n++ {
			diff[n] = f.Interior(n)[q] - exact[n][q]
		}
		en.L1[q] = floats.Norm(diff, 1) / float64(N)
		en.L2[q] = floats.Norm(diff, 2) / math.Sqrt(float64(N))
		en.LInf[q] = floats.Norm(diff, math.Inf(1))
	}
	return
}

func (en ErrorNorms) Print() (o string) {
	format := "%12.4e"
	for q := 0; q < 3; q++ {
		o += fmt.Sprintf("%-9s L1 =%s, L2 =%s, LInf =%s\n", types.PrimitiveNames[q],
			fmt.Sprintf(format, en.L1[q]), fmt.Sprintf(format, en.L2[q]), fmt.Sprintf(format, en.LInf[q]))
	}
	return
}
