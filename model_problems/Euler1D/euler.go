package Euler1D

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/quasi1d/mesh1D"
	"github.com/notargets/quasi1d/types"
)

// MachFloor keeps the extrapolated inflow Mach number positive
const MachFloor = 1.e-4

/*
Euler is the quasi-1D Euler model for a calorically perfect gas flowing through a variable area duct:

	d(UA)/dt + d(FA)/dx = S,  U = [rho, rho*u, rho*et],  F = [rho*u, rho*u^2+p, u*(rho*et+p)],  S = [0, p*dA/dx, 0]

The solution Field carries primitive variables, the residual assembly uses conserved variables.
*/
type Euler struct {
	Gamma, R     float64 // Ratio of specific heats, gas constant
	P0, T0       float64 // Inflow stagnation pressure and temperature
	BackPressure float64
	OutflowBC    types.BCFLAG
	Mesh         *mesh1D.Mesh
}

func NewEuler(mesh *mesh1D.Mesh, Gamma, R, P0, T0 float64, outflow types.BCFLAG, backPressure float64) (c *Euler) {
	c = &Euler{
		Gamma:        Gamma,
		R:            R,
		P0:           P0,
		T0:           T0,
		BackPressure: backPressure,
		OutflowBC:    outflow,
		Mesh:         mesh,
	}
	return
}

func (c *Euler) SoundSpeed(q types.Triple) float64 {
	return math.Sqrt(c.Gamma * q[types.Pressure] / q[types.Density])
}

// GetLambdaMax is the largest characteristic speed |u|+a of interior cell i
func (c *Euler) GetLambdaMax(f *types.Field, i int) float64 {
	q := *f.Interior(i)
	return math.Abs(q[types.Velocity]) + c.SoundSpeed(q)
}

func (c *Euler) GetMachNumber(f *types.Field, i int) float64 {
	return c.Mach(*f.Interior(i))
}

func (c *Euler) Mach(q types.Triple) float64 {
	return math.Abs(q[types.Velocity]) / c.SoundSpeed(q)
}

func (c *Euler) ComputeConserved(f *types.Field, i int) types.Triple {
	return c.PrimitiveToConserved(*f.Interior(i))
}

func (c *Euler) ComputePrimitive(f *types.Field, U types.Triple, i int) {
	*f.Interior(i) = c.ConservedToPrimitive(U)
}

func (c *Euler) PrimitiveToConserved(q types.Triple) (U types.Triple) {
	var (
		rho, u, p = q[types.Density], q[types.Velocity], q[types.Pressure]
	)
	U[types.Mass] = rho
	U[types.Momentum] = rho * u
	U[types.Energy] = p/(c.Gamma-1) + 0.5*rho*u*u
	return
}

func (c *Euler) ConservedToPrimitive(U types.Triple) (q types.Triple) {
	var (
		rho, rhou, rhoet = U[types.Mass], U[types.Momentum], U[types.Energy]
	)
	q[types.Density] = rho
	q[types.Velocity] = rhou / rho
	q[types.Pressure] = (c.Gamma - 1) * (rhoet - 0.5*rhou*rhou/rho)
	return
}

// Flux is the physical flux F(q) evaluated from primitive variables
func (c *Euler) Flux(q types.Triple) (F types.Triple) {
	var (
		rho, u, p = q[types.Density], q[types.Velocity], q[types.Pressure]
		rhoet     = p/(c.Gamma-1) + 0.5*rho*u*u
	)
	F[types.Mass] = rho * u
	F[types.Momentum] = rho*u*u + p
	F[types.Energy] = u * (rhoet + p)
	return
}

// RusanovFlux is the local Lax-Friedrichs interface flux between left and right primitive states
func (c *Euler) RusanovFlux(qL, qR types.Triple) (F types.Triple) {
	var (
		FL, FR = c.Flux(qL), c.Flux(qR)
		UL, UR = c.PrimitiveToConserved(qL), c.PrimitiveToConserved(qR)
		lm     = math.Max(
			math.Abs(qL[types.Velocity])+c.SoundSpeed(qL),
			math.Abs(qR[types.Velocity])+c.SoundSpeed(qR))
	)
	for n := 0; n < 3; n++ {
		F[n] = 0.5*(FL[n]+FR[n]) - 0.5*lm*(UR[n]-UL[n])
	}
	return
}

/*
ComputeResidual assembles the steady residual of every interior cell n:

	R[n] = F[n+1]*A[n+1] - F[n]*A[n] - [0, p[n]*(A[n+1]-A[n]), 0]

where face j sits between cells j-1 and j. Ghost cells must be current before calling.
*/
func (c *Euler) ComputeResidual(f *types.Field) (Resid []types.Triple) {
	var (
		N     = f.NumInterior()
		mesh  = c.Mesh
		FaceF = make([]types.Triple, N+1)
	)
	if mesh.CellNumber != N {
		panic(fmt.Errorf("field has %d interior cells, mesh has %d", N, mesh.CellNumber))
	}
	for j := 0; j <= N; j++ {
		FaceF[j] = c.RusanovFlux(*f.Cell(j-1), *f.Cell(j))
	}
	Resid = make([]types.Triple, N)
	for n := 0; n < N; n++ {
		var (
			AL, AR = mesh.FaceArea(n), mesh.FaceArea(n + 1)
			p      = f.Interior(n)[types.Pressure]
		)
		for eq := 0; eq < 3; eq++ {
			Resid[n][eq] = FaceF[n+1][eq]*AR - FaceF[n][eq]*AL
		}
		Resid[n][types.Momentum] -= p * (AR - AL)
	}
	return
}

// StagnationState returns the primitive state at Mach M isentropically expanded from (P0, T0)
func (c *Euler) StagnationState(M float64) (q types.Triple) {
	var (
		psi = 1 + 0.5*(c.Gamma-1)*M*M
		T   = c.T0 / psi
		p   = c.P0 / math.Pow(psi, c.Gamma/(c.Gamma-1))
	)
	q[types.Density] = p / (c.R * T)
	q[types.Velocity] = M * math.Sqrt(c.Gamma*c.R*T)
	q[types.Pressure] = p
	return
}

func (c *Euler) Temperature(q types.Triple) float64 {
	return q[types.Pressure] / (q[types.Density] * c.R)
}

func (c *Euler) ApplyBoundaryConditions(f *types.Field) {
	c.inflowBC(f)
	switch c.OutflowBC {
	case types.BC_BackPressure:
		c.backPressureBC(f)
	case types.BC_Out:
		c.extrapolationBC(f)
	default:
		panic(fmt.Errorf("unsupported outflow boundary condition: %s", c.OutflowBC.Print()))
	}
}

func (c *Euler) inflowBC(f *types.Field) {
	var (
		M0, M1 = c.Mach(*f.Cell(0)), c.Mach(*f.Cell(1))
		Mg0    = math.Max(2*M0-M1, MachFloor)
		Mg1    = math.Max(2*Mg0-M0, MachFloor)
	)
	*f.Ghost(types.Inflow, 0) = c.StagnationState(Mg0)
	*f.Ghost(types.Inflow, 1) = c.StagnationState(Mg1)
}

func (c *Euler) extrapolationBC(f *types.Field) {
	var (
		N        = f.NumInterior()
		qN1, qN2 = *f.Cell(N - 1), *f.Cell(N - 2)
		g0, g1   = f.Ghost(types.Outflow, 0), f.Ghost(types.Outflow, 1)
	)
	for n := 0; n < 3; n++ {
		g0[n] = 2*qN1[n] - qN2[n]
		g1[n] = 2*g0[n] - qN1[n]
	}
}

func (c *Euler) backPressureBC(f *types.Field) {
	var (
		N   = f.NumInterior()
		qN1 = *f.Cell(N - 1)
	)
	c.extrapolationBC(f)
	pg := 2*c.BackPressure - qN1[types.Pressure]
	f.Ghost(types.Outflow, 0)[types.Pressure] = pg
	f.Ghost(types.Outflow, 1)[types.Pressure] = pg
}

// InitializeField sets a linear Mach distribution through the nozzle, then fills the ghost cells
func (c *Euler) InitializeField(f *types.Field) {
	var (
		xc = c.Mesh.XC
	)
	for n := 0; n < f.NumInterior(); n++ {
		var M float64
		switch c.OutflowBC {
		case types.BC_BackPressure:
			M = 0.3
		default:
			// M = 0.1 at x=-1, sonic at the throat, M = 1.9 at x=1
			M = 0.9*xc[n] + 1.0
		}
		*f.Interior(n) = c.StagnationState(M)
	}
	c.ApplyBoundaryConditions(f)
}

/*
ResidualNorm computes a per equation norm of the residual:

	L = 1: sum(|R|)/N, L = 2: sqrt(sum(R^2)/N), L = +Inf: max(|R|)
*/
func ResidualNorm(Resid []types.Triple, L float64) (norm types.Triple) {
	var (
		N   = len(Resid)
		col = make([]float64, N)
	)
	if N == 0 {
		return
	}
	for eq := 0; eq < 3; eq++ {
		for n := range Resid {
			col[n] = Resid[n][eq]
		}
		norm[eq] = floats.Norm(col, L)
		switch L {
		case 1:
			norm[eq] /= float64(N)
		case 2:
			norm[eq] /= math.Sqrt(float64(N))
		}
	}
	return
}

func (c *Euler) Print() string {
	return fmt.Sprintf("Quasi-1D Euler, Gamma = %5.3f, R = %8.3f, P0 = %10.2f, T0 = %8.2f, Outflow: %s",
		c.Gamma, c.R, c.P0, c.T0, c.OutflowBC.Print())
}
