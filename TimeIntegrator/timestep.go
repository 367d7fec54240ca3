package TimeIntegrator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/notargets/quasi1d/types"
)

/*
EulerExplicit is the forward Euler time marching engine for CellNumber physical cells.
Time step and residual slices are indexed by interior cell, the Field carries the ghost padding.
*/
type EulerExplicit struct {
	CellNumber int
	Observer   Observer
}

func NewEulerExplicit(CellNumber int, obs Observer) (ee *EulerExplicit) {
	if obs == nil {
		obs = NopObserver{}
	}
	ee = &EulerExplicit{
		CellNumber: CellNumber,
		Observer:   obs,
	}
	return
}

func (ee *EulerExplicit) checkField(f *types.Field) {
	if f.NumInterior() != ee.CellNumber {
		panic(fmt.Errorf("field has %d interior cells, integrator expects %d", f.NumInterior(), ee.CellNumber))
	}
}

/*
ComputeLocalTimeStep returns dt = CFL*dx/lambda_max for every interior cell. A non-finite wave speed is reported to
the Observer and the resulting time step is stored anyway; the caller decides what to do with it.
*/
func (ee *EulerExplicit) ComputeLocalTimeStep(f *types.Field, physics Physics, CFL, dx float64) (timeSteps []float64) {
	var (
		lambdaMax float64
	)
	ee.checkField(f)
	timeSteps = make([]float64, ee.CellNumber)
	for i := 0; i < ee.CellNumber; i++ {
		lambdaMax = physics.GetLambdaMax(f, i)
		if math.IsNaN(lambdaMax) || math.IsInf(lambdaMax, 0) {
			ee.Observer.NonFiniteWaveSpeed(i, f.Interior(i)[types.Velocity], physics.GetMachNumber(f, i))
		}
		timeSteps[i] = CFL * (dx / lambdaMax)
	}
	return
}

// ComputeGlobalTimeStep broadcasts the smallest local time step to every cell
func (ee *EulerExplicit) ComputeGlobalTimeStep(f *types.Field, physics Physics, CFL, dx float64) (timeSteps []float64) {
	timeSteps = ee.ComputeLocalTimeStep(f, physics, CFL, dx)
	minTimeStep := floats.Min(timeSteps)
	for n := range timeSteps {
		timeSteps[n] = minTimeStep
	}
	return
}
