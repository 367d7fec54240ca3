package types

import (
	"fmt"
	"math"
	"strings"
)

//go:generate stringer -type=BCFLAG

type BCFLAG uint8

const (
	BC_None        BCFLAG = iota
	BC_In                 // Stagnation inflow, Mach number extrapolated from the interior
	BC_Out                // Supersonic outflow, all primitives extrapolated
	BC_BackPressure       // Subsonic outflow, static pressure imposed
)

var BCNameMap = map[string]BCFLAG{
	"inflow":       BC_In,
	"in":           BC_In,
	"out":          BC_Out,
	"outflow":      BC_Out,
	"supersonic":   BC_Out,
	"backpressure": BC_BackPressure,
	"subsonic":     BC_BackPressure,
}

func NewBCFLAG(label string) (bc BCFLAG, err error) {
	var (
		ok bool
	)
	if bc, ok = BCNameMap[strings.ToLower(strings.TrimSpace(label))]; !ok {
		err = fmt.Errorf("unknown boundary condition type: [%s]", label)
	}
	return
}

func (bc BCFLAG) Print() string {
	switch bc {
	case BC_In:
		return "Stagnation Inflow"
	case BC_Out:
		return "Supersonic Outflow"
	case BC_BackPressure:
		return "Subsonic Outflow (Back Pressure)"
	}
	return "None"
}

// Triple holds one value per conservation equation or per primitive variable
type Triple [3]float64

// Primitive variable slots of a Triple
const (
	Density = iota
	Velocity
	Pressure
)

// Conserved variable / equation slots of a Triple
const (
	Mass = iota
	Momentum
	Energy
)

var PrimitiveNames = [3]string{"density", "velocity", "pressure"}
var EquationNames = [3]string{"mass", "momentum", "energy"}

func (t Triple) IsFinite() bool {
	for _, v := range t {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (t Triple) Print(format string) (o string) {
	for n := 0; n < 3; n++ {
		o += fmt.Sprintf(format, t[n])
	}
	return
}
