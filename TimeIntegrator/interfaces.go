package TimeIntegrator

import (
	"github.com/notargets/quasi1d/types"
)

//go:generate mockgen -destination "mock_TimeIntegrator_test.go" -package $GOPACKAGE -write_package_comment=false github.com/notargets/quasi1d/TimeIntegrator Physics,Geometry,Observer

// Physics supplies the flow model. Cell indices are interior indices, see types.Field
type Physics interface {
	GetLambdaMax(f *types.Field, i int) float64
	GetMachNumber(f *types.Field, i int) float64
	ComputeConserved(f *types.Field, i int) types.Triple
	// ComputePrimitive writes the primitive state recovered from U into interior cell i
	ComputePrimitive(f *types.Field, U types.Triple, i int)
}

// Geometry supplies the volume of interior cell n
type Geometry interface {
	GetCellVolume(n int) float64
}

/*
Observer receives diagnostics from the integrator and limiter. Calls are notifications only, they never change the
numerical result and an Observer must not mutate the Field.
*/
type Observer interface {
	NonFiniteWaveSpeed(cell int, velocity, mach float64)
	LimiterHit(quantity int, cell int, value float64)
}

type NopObserver struct{}

func (NopObserver) NonFiniteWaveSpeed(int, float64, float64) {}
func (NopObserver) LimiterHit(int, int, float64)             {}
