package TimeIntegrator

import (
	"fmt"

	"github.com/notargets/quasi1d/types"
)

/*
FWDEulerAdvance performs one forward Euler step on the interior cells of the field:

	U[n][i] -= Omega[i] * (timeSteps[n] / vol[n]) * Resid[n][i]

U is the conserved state recovered from the field, Omega the per equation relaxation factor (1 for a full update).
The updated conserved state is converted back to primitive variables in place. Ghost cells are never written.
*/
func (ee *EulerExplicit) FWDEulerAdvance(f *types.Field, Resid []types.Triple, physics Physics, geom Geometry,
	timeSteps []float64, Omega types.Triple) {
	var (
		vol      float64
		conserve types.Triple
	)
	ee.checkField(f)
	if len(Resid) != ee.CellNumber || len(timeSteps) != ee.CellNumber {
		panic(fmt.Errorf("size mismatch: %d cells, %d residuals, %d time steps",
			ee.CellNumber, len(Resid), len(timeSteps)))
	}
	for n := 0; n < ee.CellNumber; n++ {
		vol = geom.GetCellVolume(n)
		conserve = physics.ComputeConserved(f, n)
		for i := 0; i < 3; i++ {
			conserve[i] -= Omega[i] * (timeSteps[n] / vol) * Resid[n][i]
		}
		physics.ComputePrimitive(f, conserve, n)
	}
}
