package TimeIntegrator

import (
	log "github.com/sirupsen/logrus"

	"github.com/notargets/quasi1d/types"
)

// LogObserver writes integrator diagnostics to a logrus logger
type LogObserver struct {
	Logger *log.Logger
	// Counts of limiter hits per primitive variable, useful for a summary at the end of a run
	LimiterHits [3]int
}

func NewLogObserver(logger *log.Logger) *LogObserver {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &LogObserver{Logger: logger}
}

func (o *LogObserver) NonFiniteWaveSpeed(cell int, velocity, mach float64) {
	o.Logger.WithFields(log.Fields{
		"cell":     cell,
		"velocity": velocity,
		"mach":     mach,
	}).Warn("Infinity detected in wave speed")
}

func (o *LogObserver) LimiterHit(quantity int, cell int, value float64) {
	o.LimiterHits[quantity]++
	o.Logger.WithFields(log.Fields{
		"field": types.PrimitiveNames[quantity],
		"cell":  cell,
		"value": value,
	}).Debug("Limiter was hit")
}
