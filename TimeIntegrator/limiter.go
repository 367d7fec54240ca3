package TimeIntegrator

import (
	"fmt"
	"math"

	"github.com/notargets/quasi1d/types"
)

// Bounds are the admissible ranges of the primitive variables, fixed for a run
type Bounds struct {
	DensityMin, DensityMax   float64
	VelocityMin, VelocityMax float64
	PressureMin, PressureMax float64
}

func (b Bounds) MinMax(quantity int) (lo, hi float64) {
	switch quantity {
	case types.Density:
		return b.DensityMin, b.DensityMax
	case types.Velocity:
		return b.VelocityMin, b.VelocityMax
	case types.Pressure:
		return b.PressureMin, b.PressureMax
	}
	panic(fmt.Errorf("unknown primitive variable %d", quantity))
}

func (b Bounds) Validate() (err error) {
	for n := 0; n < 3; n++ {
		lo, hi := b.MinMax(n)
		if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
			return fmt.Errorf("invalid %s bounds [%v, %v]", types.PrimitiveNames[n], lo, hi)
		}
	}
	return
}

// Limiter clamps every cell of a field, ghosts included, into Bounds
type Limiter struct {
	bounds   Bounds
	observer Observer
}

func NewLimiter(b Bounds, obs Observer) (l *Limiter, err error) {
	if err = b.Validate(); err != nil {
		return
	}
	if obs == nil {
		obs = NopObserver{}
	}
	l = &Limiter{
		bounds:   b,
		observer: obs,
	}
	return
}

func (l *Limiter) Bounds() Bounds { return l.bounds }

// Apply is the solution limiter. A value sitting on a bound after clamping is reported to the Observer
func (l *Limiter) Apply(f *types.Field) {
	cells := f.Cells()
	for n := range cells {
		for q := 0; q < 3; q++ {
			lo, hi := l.bounds.MinMax(q)
			cells[n][q] = clamp(lo, hi, cells[n][q])
			if cells[n][q] == lo || cells[n][q] == hi {
				l.observer.LimiterHit(q, n, cells[n][q])
			}
		}
	}
}

func clamp(lo, hi, val float64) float64 {
	return math.Min(hi, math.Max(lo, val))
}
