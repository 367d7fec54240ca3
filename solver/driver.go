package solver

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/notargets/quasi1d/TimeIntegrator"
	"github.com/notargets/quasi1d/mesh1D"
	"github.com/notargets/quasi1d/model_problems/Euler1D"
	"github.com/notargets/quasi1d/recorder"
	"github.com/notargets/quasi1d/types"
	"github.com/notargets/quasi1d/utils"
)

// Model is the flow model marched to steady state by the Driver
type Model interface {
	TimeIntegrator.Physics
	ApplyBoundaryConditions(f *types.Field)
	ComputeResidual(f *types.Field) []types.Triple
}

type Config struct {
	CFL               float64
	LocalTimeStepping bool
	MaxIterations     int
	ConvergenceTol    float64 // Relative to the first residual norm, per equation
	RelaxationGrowth  float64 // Residual growth factor C that raises an under-relaxation flag
	RelaxationFactor  float64 // Omega applied to flagged equations
	RelaxationHold    int     // Flagged iterations before the flags are cleared
	LogFrequency      int     // Iterations between progress lines
}

func DefaultConfig() Config {
	return Config{
		CFL:               0.5,
		LocalTimeStepping: true,
		MaxIterations:     20000,
		ConvergenceTol:    1.e-6,
		RelaxationGrowth:  1.5,
		RelaxationFactor:  0.5,
		RelaxationHold:    10,
		LogFrequency:      100,
	}
}

func (cfg Config) Validate() (err error) {
	switch {
	case !(cfg.CFL > 0):
		err = fmt.Errorf("%w: CFL must be positive, have %v", ErrInvalidConfig, cfg.CFL)
	case cfg.MaxIterations < 1:
		err = fmt.Errorf("%w: MaxIterations must be at least 1, have %d", ErrInvalidConfig, cfg.MaxIterations)
	case cfg.ConvergenceTol < 0:
		err = fmt.Errorf("%w: ConvergenceTol must not be negative, have %v", ErrInvalidConfig, cfg.ConvergenceTol)
	case !(cfg.RelaxationGrowth > 0):
		err = fmt.Errorf("%w: RelaxationGrowth must be positive, have %v", ErrInvalidConfig, cfg.RelaxationGrowth)
	case !(cfg.RelaxationFactor > 0 && cfg.RelaxationFactor <= 1):
		err = fmt.Errorf("%w: RelaxationFactor must be in (0,1], have %v", ErrInvalidConfig, cfg.RelaxationFactor)
	case cfg.RelaxationHold < 1:
		err = fmt.Errorf("%w: RelaxationHold must be at least 1, have %d", ErrInvalidConfig, cfg.RelaxationHold)
	}
	return
}

// Result summarizes a run
type Result struct {
	Iterations   int
	Converged    bool
	InitialNorms types.Triple // L2 residual norms at the first iteration
	Norms        types.Triple // L2 residual norms at the last iteration
	Resets       int          // Number of times the under-relaxation flags were cleared
	Elapsed      time.Duration
}

/*
Driver runs the explicit pseudo-time iteration to steady state:

	boundary conditions -> time step -> residual -> convergence and relaxation check -> advance -> limiter
*/
type Driver struct {
	Config
	Model    Model
	Mesh     *mesh1D.Mesh
	Field    *types.Field
	Engine   *TimeIntegrator.EulerExplicit
	Limiter  *TimeIntegrator.Limiter
	Relax    TimeIntegrator.RelaxationState
	Recorder recorder.Recorder
	Logger   *log.Logger
	Out      io.Writer // Progress table destination
}

func NewDriver(cfg Config, model Model, mesh *mesh1D.Mesh, f *types.Field, bounds TimeIntegrator.Bounds,
	obs TimeIntegrator.Observer, rec recorder.Recorder) (d *Driver, err error) {
	var (
		lim *TimeIntegrator.Limiter
	)
	if err = cfg.Validate(); err != nil {
		return
	}
	if f.NumInterior() != mesh.CellNumber {
		err = fmt.Errorf("%w: field has %d interior cells, mesh has %d",
			ErrInvalidConfig, f.NumInterior(), mesh.CellNumber)
		return
	}
	if lim, err = TimeIntegrator.NewLimiter(bounds, obs); err != nil {
		return
	}
	if rec == nil {
		rec = recorder.NopRecorder{}
	}
	d = &Driver{
		Config:   cfg,
		Model:    model,
		Mesh:     mesh,
		Field:    f,
		Engine:   TimeIntegrator.NewEulerExplicit(mesh.CellNumber, obs),
		Limiter:  lim,
		Recorder: rec,
		Logger:   log.StandardLogger(),
		Out:      os.Stdout,
	}
	return
}

func (d *Driver) Run(ctx context.Context) (res Result, err error) {
	var (
		start = time.Now()
		f     = d.Field
	)
	defer func() { res.Elapsed = time.Since(start) }()
	d.PrintInitialization()
	for it := 1; it <= d.MaxIterations; it++ {
		if err = ctx.Err(); err != nil {
			return
		}
		res.Iterations = it
		d.Model.ApplyBoundaryConditions(f)

		timeSteps := d.timeSteps()
		if n := firstBadTimeStep(timeSteps); n >= 0 {
			err = &IterationError{Iteration: it, Cell: n, Err: ErrNonFiniteTimeStep}
			d.Logger.WithFields(log.Fields{
				"iteration": it,
				"cell":      n,
				"dt":        timeSteps[n],
				"nanField":  utils.IsNan(f),
			}).Error("Time step failure")
			return
		}

		Resid := d.Model.ComputeResidual(f)
		res.Norms = Euler1D.ResidualNorm(Resid, 2)
		if !res.Norms.IsFinite() {
			err = &IterationError{Iteration: it, Cell: -1, Err: ErrNonFiniteResidual}
			d.Logger.WithFields(log.Fields{
				"iteration": it,
				"norm":      res.Norms.Print("%12.4e"),
				"nanField":  utils.IsNan(f),
			}).Error("Residual failure")
			return
		}
		if it == 1 {
			res.InitialNorms = res.Norms
		}
		if err = d.Recorder.Record(it, res.Norms); err != nil {
			err = fmt.Errorf("recording iteration %d: %w", it, err)
			return
		}
		if d.converged(res.InitialNorms, res.Norms) {
			res.Converged = true
			d.PrintUpdate(it, timeSteps, res.Norms)
			break
		}
		if d.LogFrequency > 0 && (it == 1 || it%d.LogFrequency == 0) {
			d.PrintUpdate(it, timeSteps, res.Norms)
		}

		d.Relax.Update(res.Norms, d.RelaxationGrowth)
		if d.Relax.Any() && d.Relax.FlagCount >= d.RelaxationHold {
			d.Logger.WithFields(log.Fields{"iteration": it, "flags": d.Relax.Flags}).Debug("Clearing under-relaxation")
			d.Relax.Reset()
			res.Resets++
		}

		d.Engine.FWDEulerAdvance(f, Resid, d.Model, d.Mesh, timeSteps, d.Relax.Omega(d.RelaxationFactor))
		d.Limiter.Apply(f)
	}
	// Leave the ghost cells consistent with the final interior
	d.Model.ApplyBoundaryConditions(f)
	if err = d.Recorder.Flush(); err != nil {
		return
	}
	d.PrintFinal(time.Since(start), res)
	d.Logger.WithFields(log.Fields{
		"iterations": res.Iterations,
		"converged":  res.Converged,
		"resets":     res.Resets,
	}).Info("Iteration finished")
	return
}

func (d *Driver) timeSteps() []float64 {
	if d.LocalTimeStepping {
		return d.Engine.ComputeLocalTimeStep(d.Field, d.Model, d.CFL, d.Mesh.Dx)
	}
	return d.Engine.ComputeGlobalTimeStep(d.Field, d.Model, d.CFL, d.Mesh.Dx)
}

func firstBadTimeStep(timeSteps []float64) int {
	for n, dt := range timeSteps {
		if math.IsNaN(dt) || math.IsInf(dt, 0) || dt <= 0 {
			return n
		}
	}
	return -1
}

// converged is true when every equation dropped below ConvergenceTol relative to its first norm
func (d *Driver) converged(norm0, norm types.Triple) bool {
	for eq := 0; eq < 3; eq++ {
		rel := norm[eq]
		if norm0[eq] > 0 {
			rel /= norm0[eq]
		}
		if rel >= d.ConvergenceTol {
			return false
		}
	}
	return true
}

func (d *Driver) PrintInitialization() {
	if d.LocalTimeStepping {
		fmt.Fprintf(d.Out, "Solving until Max Iterations = %d using local time stepping\n", d.MaxIterations)
	} else {
		fmt.Fprintf(d.Out, "Solving until Max Iterations = %d using global time stepping\n", d.MaxIterations)
	}
	fmt.Fprintf(d.Out, "    iter     min_dt")
	fmt.Fprintf(d.Out, "       Res0       Res1       Res2\n")
}

func (d *Driver) PrintUpdate(steps int, timeSteps []float64, norm types.Triple) {
	format := "%11.4e"
	minDt := timeSteps[0]
	for _, dt := range timeSteps {
		minDt = math.Min(minDt, dt)
	}
	fmt.Fprintf(d.Out, "%8d", steps)
	fmt.Fprintf(d.Out, format, minDt)
	for n := 0; n < 3; n++ {
		fmt.Fprintf(d.Out, format, norm[n])
	}
	fmt.Fprintf(d.Out, "\n")
}

func (d *Driver) PrintFinal(elapsed time.Duration, res Result) {
	if res.Converged {
		fmt.Fprintf(d.Out, "\nConverged in %d iterations\n", res.Iterations)
	} else {
		fmt.Fprintf(d.Out, "\nStopped at Max Iterations = %d without converging\n", res.Iterations)
	}
	rate := float64(elapsed.Microseconds()) / float64(d.Mesh.CellNumber*res.Iterations)
	fmt.Fprintf(d.Out, "Rate of execution = %8.5f us/(cell*iteration) over %d iterations\n", rate, res.Iterations)
	fmt.Fprintf(d.Out, "%s\n", utils.GetMemUsage())
}
